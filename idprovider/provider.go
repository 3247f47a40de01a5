// Package idprovider is the pluggable recipient-identifier abstraction
// spec.md §4.2 describes: a fixed byte width plus generate/validate/
// serialize/deserialize/to-bytes/from-bytes, woven into the MULTIPLE wire
// format's recipient-id field width. Native identifiers travel as []byte
// throughout — the idiomatic Go shape for a fixed-width opaque id — so
// ToBytes/FromBytes are the identity and Serialize/Deserialize are the only
// place string conversion happens.
package idprovider

import (
	"reflect"
	"sync"

	"github.com/Digital-Defiance/ecies-lib-sub006/ecieserr"
)

// Provider is the capability set spec.md §4.2 requires of every identifier
// strategy. Implementations must be safe for concurrent use: one provider
// instance is shared by reference across a service's lifetime.
type Provider interface {
	Name() string
	ByteWidth() int
	Generate() ([]byte, error)
	Validate(b []byte) bool
	Serialize(b []byte) (string, error)
	Deserialize(s string) ([]byte, error)
	ToBytes(b []byte) ([]byte, error)
	FromBytes(b []byte) ([]byte, error)
}

var (
	validatedMu sync.Mutex
	validated   = map[uintptr]struct{}{}
)

// EnsureValidated runs p's construction-time self-check exactly once per
// distinct pointer provider instance (non-pointer providers are checked on
// every call), caching the result in a process-wide set
// (spec.md §4.2 "done once per distinct instance and cached"; spec.md §5
// calls this cache a "weak set" — Go has no first-class weak references, so
// this is a plain mutex-guarded map that is never evicted, which is
// harmless since validation is idempotent and cheap).
func EnsureValidated(p Provider) error {
	key := providerKey(p)
	if key == 0 {
		return selfCheck(p)
	}

	validatedMu.Lock()
	_, ok := validated[key]
	validatedMu.Unlock()
	if ok {
		return nil
	}

	if err := selfCheck(p); err != nil {
		return err
	}

	validatedMu.Lock()
	validated[key] = struct{}{}
	validatedMu.Unlock()
	return nil
}

func providerKey(p Provider) uintptr {
	v := reflect.ValueOf(p)
	if v.Kind() == reflect.Ptr {
		return v.Pointer()
	}
	// Non-pointer providers are validated on every call; they're cheap and
	// this only matters for caching, not correctness.
	return 0
}

// selfCheck exercises every Provider method and cross-checks lengths, per
// spec.md §4.2's construction-time validation contract.
func selfCheck(p Provider) error {
	if p.ByteWidth() < 1 || p.ByteWidth() > 255 {
		return ecieserr.Wrap(ecieserr.KindIdProviderValidationFailed, "idprovider.selfCheck",
			map[string]any{"reason": "byte width out of [1, 255]", "byte_width": p.ByteWidth()})
	}

	generated, err := p.Generate()
	if err != nil {
		return ecieserr.Wrap(ecieserr.KindIdProviderValidationFailed, "idprovider.selfCheck",
			map[string]any{"reason": "generate failed", "error": err.Error()})
	}
	if len(generated) != p.ByteWidth() {
		return ecieserr.Wrap(ecieserr.KindIdProviderValidationFailed, "idprovider.selfCheck",
			map[string]any{"reason": "generate produced wrong length", "got": len(generated), "want": p.ByteWidth()})
	}
	if !p.Validate(generated) {
		return ecieserr.Wrap(ecieserr.KindIdProviderValidationFailed, "idprovider.selfCheck",
			map[string]any{"reason": "generated id failed validate"})
	}

	toBytes, err := p.ToBytes(generated)
	if err != nil {
		return ecieserr.Wrap(ecieserr.KindIdProviderValidationFailed, "idprovider.selfCheck",
			map[string]any{"reason": "to_bytes failed", "error": err.Error()})
	}
	fromBytes, err := p.FromBytes(toBytes)
	if err != nil {
		return ecieserr.Wrap(ecieserr.KindIdProviderValidationFailed, "idprovider.selfCheck",
			map[string]any{"reason": "from_bytes failed", "error": err.Error()})
	}
	if string(fromBytes) != string(generated) {
		return ecieserr.Wrap(ecieserr.KindIdProviderValidationFailed, "idprovider.selfCheck",
			map[string]any{"reason": "from_bytes(to_bytes(id)) != id"})
	}

	serialized, err := p.Serialize(generated)
	if err != nil {
		return ecieserr.Wrap(ecieserr.KindIdProviderValidationFailed, "idprovider.selfCheck",
			map[string]any{"reason": "serialize failed", "error": err.Error()})
	}
	deserialized, err := p.Deserialize(serialized)
	if err != nil {
		return ecieserr.Wrap(ecieserr.KindIdProviderValidationFailed, "idprovider.selfCheck",
			map[string]any{"reason": "deserialize failed", "error": err.Error()})
	}
	if string(deserialized) != string(generated) {
		return ecieserr.Wrap(ecieserr.KindIdProviderValidationFailed, "idprovider.selfCheck",
			map[string]any{"reason": "deserialize(serialize(id)) != id"})
	}

	return nil
}
