// Package uuid wraps github.com/gofrs/uuid with the byte-level round-trip
// helpers the GuidV4 ID provider needs: generating a fresh v4 UUID, validating
// the version/variant bits of an arbitrary 16-byte value, and converting
// between the canonical 8-4-4-4-12 string form and raw bytes.
package uuid

import (
	"github.com/gofrs/uuid"
)

// Size is the byte width of a UUID.
const Size = 16

// New returns a fresh random (v4) UUID.
func New() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

// NewString returns a fresh random (v4) UUID in canonical string form.
func NewString() string {
	return uuid.Must(uuid.NewV4()).String()
}

// IsValidV4 reports whether b is a well-formed 16-byte UUID with version
// nibble 4 and RFC 4122 variant bits (10xx in the high bits of byte 8).
func IsValidV4(b []byte) bool {
	if len(b) != Size {
		return false
	}
	if (b[6] & 0xf0) != 0x40 {
		return false
	}
	if (b[8] & 0xc0) != 0x80 {
		return false
	}
	return true
}

// Bytes returns the raw 16 bytes of a UUID.
func Bytes(u uuid.UUID) []byte {
	out := make([]byte, Size)
	copy(out, u[:])
	return out
}

// FromBytes parses a 16-byte slice into a UUID.
func FromBytes(b []byte) (uuid.UUID, error) {
	return uuid.FromBytes(b)
}

// FromString parses a canonical UUID string.
func FromString(s string) (uuid.UUID, error) {
	return uuid.FromString(s)
}

// IsUUID reports whether s parses as a UUID in any valid form.
func IsUUID(s string) bool {
	_, err := FromString(s)
	return err == nil
}
