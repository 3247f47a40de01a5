// Package sigcodec converts between the compact 64-byte r||s ECDSA
// signature format and its lowercase 128-hex-character string form
// (spec.md §6 "Signature format").
package sigcodec

import (
	"encoding/hex"
	"errors"

	"github.com/Digital-Defiance/ecies-lib-sub006/crypto"
)

// HexLength is the lowercase hex-string length of an encoded signature.
const HexLength = crypto.SignatureLength * 2

// ErrInvalidSignatureLength is returned when a signature is not exactly
// crypto.SignatureLength bytes.
var ErrInvalidSignatureLength = errors.New("sigcodec: signature must be 64 bytes")

// ErrInvalidHexLength is returned when an encoded signature string isn't
// exactly HexLength characters.
var ErrInvalidHexLength = errors.New("sigcodec: hex signature must be 128 characters")

// Encode renders a compact 64-byte signature as a lowercase hex string.
func Encode(sig []byte) (string, error) {
	if len(sig) != crypto.SignatureLength {
		return "", ErrInvalidSignatureLength
	}
	return hex.EncodeToString(sig), nil
}

// Decode parses a lowercase hex string back into a compact 64-byte signature.
func Decode(s string) ([]byte, error) {
	if len(s) != HexLength {
		return nil, ErrInvalidHexLength
	}
	sig, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return sig, nil
}

// MustDecodeHex is the panicking convenience form of Decode, for call sites
// (tests, fixture loading) that hold a hex literal known to be well formed.
func MustDecodeHex(s string) []byte {
	sig, err := Decode(s)
	if err != nil {
		panic(err)
	}
	return sig
}
