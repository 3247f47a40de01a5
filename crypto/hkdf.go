package crypto

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

// DefaultDerivedKeyLength is the default HKDF output length (spec.md §4.3).
const DefaultDerivedKeyLength = 32

// HKDFOptions configures an HKDF-SHA256 extract-then-expand call. The zero
// value uses an empty salt, empty info, and the default 32-byte output.
type HKDFOptions struct {
	Salt   []byte
	Info   []byte
	Length int
}

// HKDF derives key material from ikm using HKDF-SHA256 (RFC 5869), the same
// golang.org/x/crypto/hkdf call an X25519-based crypto.go scheme uses for
// its key derivation (deriveAesKey).
func HKDF(ikm []byte, opts HKDFOptions) ([]byte, error) {
	length := opts.Length
	if length == 0 {
		length = DefaultDerivedKeyLength
	}
	r := hkdf.New(sha256.New, ikm, opts.Salt, opts.Info)
	out := make([]byte, length)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, err
	}
	return out, nil
}
