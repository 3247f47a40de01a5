// Package aead implements the AES-256-GCM authenticated encryption layer
// every codec in this module builds on. It mirrors the shape of the
// teacher's crypto.go (aes.NewCipher → cipher.NewGCM → Seal/Open) but splits
// the sealed output into its iv/ciphertext/tag components so callers can lay
// them out independently in the wire frames (spec.md §4.4).
package aead

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
)

const (
	KeySize       = 32
	IVSize        = 16
	TagSize       = 16
)

// ErrInvalidKeySize is returned when the supplied key is not exactly KeySize bytes.
var ErrInvalidKeySize = errors.New("aead: key must be 32 bytes")

// ErrDecryptionFailed collapses every AEAD integrity failure: a wrong key,
// a flipped bit in the ciphertext, iv, tag, or aad are all indistinguishable
// by design (spec.md §7 "AEAD integrity failures collapse to DecryptionFailed").
var ErrDecryptionFailed = errors.New("aead: decryption failed")

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeySize
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCMWithNonceSize(block, IVSize)
}

// Encrypt seals plaintext under key with an optional associated-data value,
// returning a fresh random IV, the raw ciphertext (same length as
// plaintext), and the 16-byte authentication tag.
func Encrypt(key, plaintext, aad []byte) (iv, ciphertext, tag []byte, err error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, nil, nil, err
	}

	iv = make([]byte, IVSize)
	if _, err := rand.Read(iv); err != nil {
		return nil, nil, nil, err
	}

	sealed := gcm.Seal(nil, iv, plaintext, aad)
	split := len(sealed) - TagSize
	ciphertext = sealed[:split]
	tag = sealed[split:]
	return iv, ciphertext, tag, nil
}

// Decrypt verifies tag and, on success, returns the plaintext recovered from
// ciphertext under key, iv, and aad. Any failure — wrong key, tampered
// ciphertext/iv/tag/aad — surfaces as ErrDecryptionFailed.
func Decrypt(key, iv, ciphertext, tag, aad []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(iv) != IVSize || len(tag) != TagSize {
		return nil, ErrDecryptionFailed
	}

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := gcm.Open(nil, iv, sealed, aad)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

// JoinIVCiphertextTag concatenates iv‖ciphertext‖tag into a single buffer.
func JoinIVCiphertextTag(iv, ciphertext, tag []byte) []byte {
	out := make([]byte, 0, len(iv)+len(ciphertext)+len(tag))
	out = append(out, iv...)
	out = append(out, ciphertext...)
	out = append(out, tag...)
	return out
}

// SplitIVCiphertextTag is the inverse of JoinIVCiphertextTag.
func SplitIVCiphertextTag(b []byte) (iv, ciphertext, tag []byte, err error) {
	if len(b) < IVSize+TagSize {
		return nil, nil, nil, errors.New("aead: buffer too short to contain iv and tag")
	}
	iv = b[:IVSize]
	tag = b[len(b)-TagSize:]
	ciphertext = b[IVSize : len(b)-TagSize]
	return iv, ciphertext, tag, nil
}

// JoinIVCiphertextWithTag concatenates iv with an already-combined
// ciphertext-with-tag blob, i.e. the layout crypto/cipher.AEAD.Seal itself
// produces (ciphertext followed by its trailing tag), prefixed by iv.
func JoinIVCiphertextWithTag(iv, ciphertextWithTag []byte) []byte {
	out := make([]byte, 0, len(iv)+len(ciphertextWithTag))
	out = append(out, iv...)
	out = append(out, ciphertextWithTag...)
	return out
}

// SplitIVCiphertextWithTag splits iv‖ciphertext_with_tag into iv and the
// combined ciphertext-with-tag blob (tag is the trailing TagSize bytes).
func SplitIVCiphertextWithTag(b []byte) (iv, ciphertextWithTag []byte, err error) {
	if len(b) < IVSize+TagSize {
		return nil, nil, errors.New("aead: buffer too short to contain iv and tag")
	}
	return b[:IVSize], b[IVSize:], nil
}
