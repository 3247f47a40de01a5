package idprovider

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"sync/atomic"
	"time"

	"github.com/Digital-Defiance/ecies-lib-sub006/ecieserr"
)

// ObjectIdWidth is the fixed byte width of an ObjectId (spec.md §4.2).
const ObjectIdWidth = 12

// ObjectIdProvider generates MongoDB-style object ids: 4-byte big-endian
// Unix seconds, 5 random bytes, and a 3-byte rolling counter, serialized as
// 24 lowercase hex characters.
type ObjectIdProvider struct {
	counter uint32
}

// NewObjectIdProvider constructs an ObjectIdProvider with its counter
// seeded from the CSPRNG, so two providers in the same process don't start
// in lockstep.
func NewObjectIdProvider() *ObjectIdProvider {
	var seed [4]byte
	_, _ = rand.Read(seed[:])
	return &ObjectIdProvider{counter: binary.BigEndian.Uint32(seed[:])}
}

func (p *ObjectIdProvider) Name() string { return "ObjectId" }

func (p *ObjectIdProvider) ByteWidth() int { return ObjectIdWidth }

func (p *ObjectIdProvider) Generate() ([]byte, error) {
	out := make([]byte, ObjectIdWidth)
	binary.BigEndian.PutUint32(out[0:4], uint32(time.Now().Unix()))

	if _, err := rand.Read(out[4:9]); err != nil {
		return nil, err
	}

	count := atomic.AddUint32(&p.counter, 1)
	out[9] = byte(count >> 16)
	out[10] = byte(count >> 8)
	out[11] = byte(count)
	return out, nil
}

func (p *ObjectIdProvider) Validate(b []byte) bool {
	return len(b) == ObjectIdWidth
}

func (p *ObjectIdProvider) Serialize(b []byte) (string, error) {
	if !p.Validate(b) {
		return "", ecieserr.Wrap(ecieserr.KindIdProviderValidationFailed, "ObjectIdProvider.Serialize",
			map[string]any{"length": len(b), "expected": ObjectIdWidth})
	}
	return hex.EncodeToString(b), nil
}

func (p *ObjectIdProvider) Deserialize(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if !p.Validate(b) {
		return nil, ecieserr.Wrap(ecieserr.KindIdProviderValidationFailed, "ObjectIdProvider.Deserialize",
			map[string]any{"length": len(b), "expected": ObjectIdWidth})
	}
	return b, nil
}

func (p *ObjectIdProvider) ToBytes(b []byte) ([]byte, error) {
	return append([]byte(nil), b...), nil
}

func (p *ObjectIdProvider) FromBytes(b []byte) ([]byte, error) {
	return append([]byte(nil), b...), nil
}

var _ Provider = (*ObjectIdProvider)(nil)
