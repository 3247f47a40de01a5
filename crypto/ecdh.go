package crypto

import (
	"errors"
)

// ErrSecretComputationFailed is returned when ECDH yields the point at infinity.
var ErrSecretComputationFailed = errors.New("crypto: secret computation failed")

// ECDH performs elliptic-curve Diffie-Hellman between a local private scalar
// and a peer's public key (any of the three accepted forms), returning only
// the 32-byte big-endian x-coordinate of the shared point — matching classic
// Node.js ECDH behaviour (spec.md §4.3), grounded on
// wyf-ACCEPT-eth2030/pkg/crypto/ecies.go's ecdhAgreement.
func ECDH(privateKey, peerPublicKey []byte) ([]byte, error) {
	if len(privateKey) != PrivateKeyLength {
		return nil, errors.New("crypto: private key must be 32 bytes")
	}
	x, y, err := decodePoint(peerPublicKey)
	if err != nil {
		return nil, err
	}

	curve := Curve()
	sx, sy := curve.ScalarMult(x, y, privateKey)
	if sx.Sign() == 0 && sy.Sign() == 0 {
		return nil, ErrSecretComputationFailed
	}

	shared := make([]byte, PrivateKeyLength)
	sxBytes := sx.Bytes()
	copy(shared[PrivateKeyLength-len(sxBytes):], sxBytes)
	return shared, nil
}
