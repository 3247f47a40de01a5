package idprovider

import (
	"github.com/Digital-Defiance/ecies-lib-sub006/ecieserr"
	"github.com/Digital-Defiance/ecies-lib-sub006/uuid"
)

// GuidV4Provider generates RFC 4122 version-4 UUIDs, serialized in the
// canonical 8-4-4-4-12 hex form. Grounded on the uuid/uuid.go gofrs/uuid
// wrapper, adapted into the byte-width-aware Provider shape.
type GuidV4Provider struct{}

// NewGuidV4Provider constructs a GuidV4Provider. There is no per-instance
// state to initialize; the constructor exists for symmetry with the other
// providers and so callers can pass it by pointer for validation caching.
func NewGuidV4Provider() *GuidV4Provider {
	return &GuidV4Provider{}
}

func (p *GuidV4Provider) Name() string { return "GuidV4" }

func (p *GuidV4Provider) ByteWidth() int { return uuid.Size }

func (p *GuidV4Provider) Generate() ([]byte, error) {
	return uuid.Bytes(uuid.New()), nil
}

func (p *GuidV4Provider) Validate(b []byte) bool {
	return uuid.IsValidV4(b)
}

func (p *GuidV4Provider) Serialize(b []byte) (string, error) {
	u, err := uuid.FromBytes(b)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

func (p *GuidV4Provider) Deserialize(s string) ([]byte, error) {
	u, err := uuid.FromString(s)
	if err != nil {
		return nil, err
	}
	b := uuid.Bytes(u)
	if !p.Validate(b) {
		return nil, ecieserr.Wrap(ecieserr.KindIdProviderValidationFailed, "GuidV4Provider.Deserialize",
			map[string]any{"reason": "parsed uuid is not a valid v4"})
	}
	return b, nil
}

func (p *GuidV4Provider) ToBytes(b []byte) ([]byte, error) {
	return append([]byte(nil), b...), nil
}

func (p *GuidV4Provider) FromBytes(b []byte) ([]byte, error) {
	return append([]byte(nil), b...), nil
}

var _ Provider = (*GuidV4Provider)(nil)
