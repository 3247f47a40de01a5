package crypto

import (
	"bytes"
	"testing"
)

func TestECDHAgreement(t *testing.T) {
	alice, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}
	bob, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}

	secretA, err := ECDH(alice.PrivateKey, bob.PublicKey)
	if err != nil {
		t.Fatalf("ECDH(alice, bob) error = %v", err)
	}
	secretB, err := ECDH(bob.PrivateKey, alice.PublicKey)
	if err != nil {
		t.Fatalf("ECDH(bob, alice) error = %v", err)
	}

	if !bytes.Equal(secretA, secretB) {
		t.Error("ECDH shared secrets do not match between the two parties")
	}
	if len(secretA) != PrivateKeyLength {
		t.Errorf("shared secret length = %d, want %d", len(secretA), PrivateKeyLength)
	}
}

func TestECDHRejectsInvalidPeerKey(t *testing.T) {
	kp, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}
	if _, err := ECDH(kp.PrivateKey, make([]byte, CompressedPublicKeyLength)); err == nil {
		t.Error("ECDH with an all-zero peer key: expected error, got nil")
	}
}

func TestECDHRejectsWrongPrivateKeyLength(t *testing.T) {
	kp, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}
	if _, err := ECDH(kp.PrivateKey[:16], kp.PublicKey); err == nil {
		t.Error("ECDH with a short private key: expected error, got nil")
	}
}
