package crypto

import (
	"crypto/sha256"
	"errors"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// SignatureLength is the compact r||s signature size (spec.md §6).
const SignatureLength = 64

// ErrInvalidSignatureLength describes a signature that isn't exactly
// SignatureLength bytes. Verify does not return it: it reports such input
// as false and never panics (spec.md §4.3).
var ErrInvalidSignatureLength = errors.New("crypto: signature must be 64 bytes")

// Sign computes SHA-256(message) and signs it deterministically (RFC 6979)
// with the given private scalar, returning the compact 64-byte r||s form.
// Grounded on decred/dcrd's SignCompact, which produces a 65-byte
// [recovery||r||s] recoverable signature; the leading recovery byte is
// dropped since this format carries no recovery id (spec.md §4.3, §6).
func Sign(privateKey, message []byte) ([]byte, error) {
	if len(privateKey) != PrivateKeyLength {
		return nil, errors.New("crypto: private key must be 32 bytes")
	}
	priv := secp256k1.PrivKeyFromBytes(privateKey)
	defer priv.Zero()

	hash := sha256.Sum256(message)
	sig := ecdsa.SignCompact(priv, hash[:], true)
	if len(sig) != SignatureLength+1 {
		return nil, errors.New("crypto: unexpected signature length")
	}
	return sig[1:], nil
}

// Verify reports whether sig (64-byte compact r||s) is a valid signature by
// publicKey over SHA-256(message). It never returns an error: malformed
// input, an off-curve key, or any other verifier exception all yield false.
func Verify(publicKey, message, sig []byte) bool {
	if len(sig) != SignatureLength {
		return false
	}
	pub, err := secp256k1.ParsePubKey(publicKey)
	if err != nil {
		return false
	}

	var r, s secp256k1.ModNScalar
	if overflow := r.SetByteSlice(sig[:32]); overflow {
		return false
	}
	if overflow := s.SetByteSlice(sig[32:]); overflow {
		return false
	}

	hash := sha256.Sum256(message)
	signature := ecdsa.NewSignature(&r, &s)
	return signature.Verify(hash[:], pub)
}
