package idprovider

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/Digital-Defiance/ecies-lib-sub006/ecieserr"
)

// CustomFixedWidthProvider is a generic fixed-byte-width identifier with no
// internal structure: ids are opaque random bytes, serialized as hex.
type CustomFixedWidthProvider struct {
	width int
	name  string
}

// NewCustomFixedWidthProvider constructs a provider generating opaque
// random identifiers of exactly width bytes. width must be in [1, 255]
// (spec.md §4.2); a caller-chosen name distinguishes providers in logs and
// error context.
func NewCustomFixedWidthProvider(width int, name string) (*CustomFixedWidthProvider, error) {
	if width < 1 || width > 255 {
		return nil, ecieserr.Wrap(ecieserr.KindIdProviderValidationFailed, "NewCustomFixedWidthProvider",
			map[string]any{"reason": "byte width out of [1, 255]", "width": width})
	}
	if name == "" {
		name = "CustomFixedWidth"
	}
	return &CustomFixedWidthProvider{width: width, name: name}, nil
}

func (p *CustomFixedWidthProvider) Name() string { return p.name }

func (p *CustomFixedWidthProvider) ByteWidth() int { return p.width }

func (p *CustomFixedWidthProvider) Generate() ([]byte, error) {
	out := make([]byte, p.width)
	if _, err := rand.Read(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *CustomFixedWidthProvider) Validate(b []byte) bool {
	return len(b) == p.width
}

func (p *CustomFixedWidthProvider) Serialize(b []byte) (string, error) {
	if !p.Validate(b) {
		return "", ecieserr.Wrap(ecieserr.KindIdProviderValidationFailed, "CustomFixedWidthProvider.Serialize",
			map[string]any{"length": len(b), "expected": p.width})
	}
	return hex.EncodeToString(b), nil
}

func (p *CustomFixedWidthProvider) Deserialize(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if !p.Validate(b) {
		return nil, ecieserr.Wrap(ecieserr.KindIdProviderValidationFailed, "CustomFixedWidthProvider.Deserialize",
			map[string]any{"length": len(b), "expected": p.width})
	}
	return b, nil
}

func (p *CustomFixedWidthProvider) ToBytes(b []byte) ([]byte, error) {
	return append([]byte(nil), b...), nil
}

func (p *CustomFixedWidthProvider) FromBytes(b []byte) ([]byte, error) {
	return append([]byte(nil), b...), nil
}

var _ Provider = (*CustomFixedWidthProvider)(nil)
