package crypto

import (
	"errors"

	"github.com/tyler-smith/go-bip39"
)

// ErrInvalidMnemonic is returned when a supplied phrase fails the BIP39 checksum.
var ErrInvalidMnemonic = errors.New("crypto: invalid mnemonic")

// Strength128 and Strength256 are the two mnemonic entropy strengths spec.md
// §3 allows (12-word and 24-word phrases respectively).
const (
	Strength128 = 128
	Strength256 = 256
)

// Mnemonic is a scoped secret owning a BIP39 English phrase. It is created by
// RNG or user supply, validated against the BIP39 checksum, used to derive a
// seed (Seed does not limit how many times it is called), and must be
// destroyed by zeroization on every exit path (spec.md §3).
type Mnemonic struct {
	phrase []byte // space-separated lowercase words; zeroized on Destroy
}

// NewMnemonic draws fresh entropy of the given strength (128 or 256 bits) and
// returns the resulting 12- or 24-word phrase.
func NewMnemonic(strengthBits int) (*Mnemonic, error) {
	if strengthBits != Strength128 && strengthBits != Strength256 {
		return nil, errors.New("crypto: mnemonic strength must be 128 or 256 bits")
	}
	entropy, err := bip39.NewEntropy(strengthBits)
	if err != nil {
		return nil, err
	}
	defer Zero(entropy)
	phrase, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, err
	}
	return &Mnemonic{phrase: []byte(phrase)}, nil
}

// MnemonicFromPhrase validates a caller-supplied phrase against the BIP39
// English wordlist checksum and wraps it as a scoped secret.
func MnemonicFromPhrase(phrase string) (*Mnemonic, error) {
	if !bip39.IsMnemonicValid(phrase) {
		return nil, ErrInvalidMnemonic
	}
	return &Mnemonic{phrase: []byte(phrase)}, nil
}

// Phrase returns the space-separated lowercase word phrase. The returned
// string is a copy of the Mnemonic's internal bytes, so Destroy does not
// scrub it.
func (m *Mnemonic) Phrase() string {
	return string(m.phrase)
}

// Seed derives the PBKDF2-HMAC-SHA512 seed for this mnemonic and passphrase.
func (m *Mnemonic) Seed(passphrase string) ([]byte, error) {
	return bip39.NewSeedWithErrorChecking(string(m.phrase), passphrase)
}

// Destroy zeroizes the phrase bytes. Safe to call more than once.
func (m *Mnemonic) Destroy() {
	Zero(m.phrase)
}
