package ecieserr

import (
	"fmt"
	"time"
)

// Error wraps a Kind's sentinel with the operation name and free-form
// context the bare sentinel can't carry (spec.md §7 "canonical kind and
// optional context"), the way backkem-matter's StatusError wraps a status
// code — except here the payload travels alongside the original sentinel
// rather than replacing it, so errors.Is still matches the Kind.
type Error struct {
	Kind      Kind
	Op        string
	Context   map[string]any
	Timestamp time.Time

	err error // the Kind's sentinel; Unwrap returns this
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Op, e.err.Error())
}

// Unwrap lets errors.Is/errors.As see through to the Kind's sentinel.
func (e *Error) Unwrap() error {
	return e.err
}

// Wrap attaches an operation name and optional context to k's sentinel
// error. Passing an unknown Kind wraps ErrInvalidOperation instead.
func Wrap(k Kind, op string, context map[string]any) *Error {
	sentinel, ok := sentinels[k]
	if !ok {
		k = KindInvalidOperation
		sentinel = ErrInvalidOperation
	}
	return &Error{
		Kind:      k,
		Op:        op,
		Context:   context,
		Timestamp: timeNow(),
		err:       sentinel,
	}
}

// WithContext returns a copy of e with ctx merged into its Context map.
func (e *Error) WithContext(ctx map[string]any) *Error {
	merged := make(map[string]any, len(e.Context)+len(ctx))
	for k, v := range e.Context {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}
	next := *e
	next.Context = merged
	return &next
}

// timeNow is a var so tests can pin it if exact timestamps ever matter.
var timeNow = time.Now
