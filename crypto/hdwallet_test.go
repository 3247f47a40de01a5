package crypto

import (
	"bytes"
	"testing"
)

func TestDeriveKeyPairDeterministic(t *testing.T) {
	seed := bytes.Repeat([]byte{0x07}, 32)

	a, err := DeriveKeyPair(seed)
	if err != nil {
		t.Fatalf("DeriveKeyPair() error = %v", err)
	}
	b, err := DeriveKeyPair(seed)
	if err != nil {
		t.Fatalf("DeriveKeyPair() error = %v", err)
	}
	if !bytes.Equal(a.PrivateKey, b.PrivateKey) || !bytes.Equal(a.PublicKey, b.PublicKey) {
		t.Error("DeriveKeyPair is not deterministic for the same seed")
	}
}

func TestDeriveKeyPairFromMnemonic(t *testing.T) {
	m, err := NewMnemonic(Strength128)
	if err != nil {
		t.Fatalf("NewMnemonic() error = %v", err)
	}
	defer m.Destroy()

	a, err := DeriveKeyPairFromMnemonic(m, "")
	if err != nil {
		t.Fatalf("DeriveKeyPairFromMnemonic() error = %v", err)
	}
	b, err := DeriveKeyPairFromMnemonic(m, "")
	if err != nil {
		t.Fatalf("DeriveKeyPairFromMnemonic() error = %v", err)
	}
	if !bytes.Equal(a.PrivateKey, b.PrivateKey) {
		t.Error("DeriveKeyPairFromMnemonic is not deterministic for the same mnemonic")
	}

	c, err := DeriveKeyPairFromMnemonic(m, "other-passphrase")
	if err != nil {
		t.Fatalf("DeriveKeyPairFromMnemonic() error = %v", err)
	}
	if bytes.Equal(a.PrivateKey, c.PrivateKey) {
		t.Error("DeriveKeyPairFromMnemonic produced identical keys for different passphrases")
	}
}

func TestExportExtendedPublicKeyHasNoPrivateMaterial(t *testing.T) {
	seed := bytes.Repeat([]byte{0x09}, 32)
	xpub, err := ExportExtendedPublicKey(seed)
	if err != nil {
		t.Fatalf("ExportExtendedPublicKey() error = %v", err)
	}
	if len(xpub.ChainCode) == 0 {
		t.Error("ExportExtendedPublicKey returned an empty chain code")
	}
	if len(xpub.PublicKey) == 0 {
		t.Error("ExportExtendedPublicKey returned an empty public key")
	}

	kp, err := DeriveKeyPair(seed)
	if err != nil {
		t.Fatalf("DeriveKeyPair() error = %v", err)
	}
	if !bytes.Equal(xpub.PublicKey, kp.PublicKey) {
		t.Error("ExportExtendedPublicKey public key does not match DeriveKeyPair's public key for the same seed")
	}
}
