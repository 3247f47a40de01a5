package ecies

import (
	"context"
	"testing"

	"github.com/Digital-Defiance/ecies-lib-sub006/config"
	cryptocore "github.com/Digital-Defiance/ecies-lib-sub006/crypto"
	"github.com/Digital-Defiance/ecies-lib-sub006/idprovider"
	"github.com/Digital-Defiance/ecies-lib-sub006/multi"
)

func newService(t *testing.T) *Service {
	t.Helper()
	s, err := New(Config{})
	if err != nil {
		t.Fatalf("New(Config{}) error = %v", err)
	}
	return s
}

func TestNewDefaultPasses(t *testing.T) {
	newService(t)
}

func TestNewRejectsMismatchedIdProviderWidth(t *testing.T) {
	provider, err := idprovider.NewCustomFixedWidthProvider(20, "mismatched")
	if err != nil {
		t.Fatalf("NewCustomFixedWidthProvider() error = %v", err)
	}
	full := config.Merge(config.NewDefault(), config.CryptoConfig{IdProvider: provider})
	// Corrupt the derived field after Merge to simulate a caller building a
	// Full record by hand with an inconsistent MemberIdLength.
	full.MemberIdLength = 99

	if _, err := New(Config{Full: full}); err == nil {
		t.Error("New(mismatched MemberIdLength): expected error, got nil")
	}
}

func TestEncryptSimpleRoundTrip(t *testing.T) {
	s := newService(t)
	kp, err := cryptocore.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}

	encrypted, err := s.EncryptSimple(kp.PublicKey, []byte("hello"), nil)
	if err != nil {
		t.Fatalf("EncryptSimple() error = %v", err)
	}
	plaintext, err := s.DecryptSimple(kp.PrivateKey, encrypted, 0)
	if err != nil {
		t.Fatalf("DecryptSimple() error = %v", err)
	}
	if string(plaintext) != "hello" {
		t.Errorf("plaintext = %q, want %q", plaintext, "hello")
	}
}

func TestEncryptSingleRoundTrip(t *testing.T) {
	s := newService(t)
	kp, err := cryptocore.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}

	encrypted, err := s.EncryptSingle(kp.PublicKey, []byte("single payload"), nil)
	if err != nil {
		t.Fatalf("EncryptSingle() error = %v", err)
	}
	plaintext, err := s.DecryptSingle(kp.PrivateKey, encrypted, 0)
	if err != nil {
		t.Fatalf("DecryptSingle() error = %v", err)
	}
	if string(plaintext) != "single payload" {
		t.Errorf("plaintext = %q, want %q", plaintext, "single payload")
	}
}

func TestEncryptMultipleRoundTrip(t *testing.T) {
	s := newService(t)

	kp1, err := cryptocore.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}
	kp2, err := cryptocore.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}

	id1, err := s.NewRecipientID()
	if err != nil {
		t.Fatalf("NewRecipientID() error = %v", err)
	}
	id2, err := s.NewRecipientID()
	if err != nil {
		t.Fatalf("NewRecipientID() error = %v", err)
	}

	recipients := []multi.Recipient{
		{ID: id1, PublicKey: kp1.PublicKey},
		{ID: id2, PublicKey: kp2.PublicKey},
	}

	encrypted, err := s.EncryptMultiple(context.Background(), recipients, []byte("broadcast"), nil)
	if err != nil {
		t.Fatalf("EncryptMultiple() error = %v", err)
	}

	got1, err := s.DecryptMultiple(id1, kp1.PrivateKey, encrypted, 0)
	if err != nil {
		t.Fatalf("DecryptMultiple(recipient 1) error = %v", err)
	}
	if string(got1) != "broadcast" {
		t.Errorf("got1 = %q, want %q", got1, "broadcast")
	}

	got2, err := s.DecryptMultiple(id2, kp2.PrivateKey, encrypted, 0)
	if err != nil {
		t.Fatalf("DecryptMultiple(recipient 2) error = %v", err)
	}
	if string(got2) != "broadcast" {
		t.Errorf("got2 = %q, want %q", got2, "broadcast")
	}
}

func TestEncryptMultipleRespectsCancelledContext(t *testing.T) {
	s := newService(t)
	kp, err := cryptocore.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}
	id, err := s.NewRecipientID()
	if err != nil {
		t.Fatalf("NewRecipientID() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = s.EncryptMultiple(ctx, []multi.Recipient{{ID: id, PublicKey: kp.PublicKey}}, []byte("msg"), nil)
	if err == nil {
		t.Error("EncryptMultiple(cancelled context): expected error, got nil")
	}
}

func TestGenerateIdentityDerivesConsistentKeyPair(t *testing.T) {
	s := newService(t)
	m, kp, err := s.GenerateIdentity(cryptocore.Strength128)
	if err != nil {
		t.Fatalf("GenerateIdentity() error = %v", err)
	}
	defer m.Destroy()

	seed, err := m.Seed("")
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	again, err := cryptocore.DeriveKeyPair(seed)
	if err != nil {
		t.Fatalf("DeriveKeyPair() error = %v", err)
	}
	if string(again.PrivateKey) != string(kp.PrivateKey) {
		t.Error("re-deriving from the same mnemonic's seed produced a different private key")
	}
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	s := newService(t)
	kp, err := cryptocore.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}
	pub, err := cryptocore.NormalizePublicKey(kp.PublicKey)
	if err != nil {
		t.Fatalf("NormalizePublicKey() error = %v", err)
	}

	message := []byte("sign me")
	sig, err := s.Sign(kp.PrivateKey, message)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}
	if !s.Verify(pub, message, sig) {
		t.Error("Verify(valid signature) = false, want true")
	}
	if s.Verify(pub, []byte("tampered"), sig) {
		t.Error("Verify(tampered message) = true, want false")
	}
}

func TestConfigReturnsCopy(t *testing.T) {
	s := newService(t)
	a := s.Config()
	a.MemberIdLength = 999
	b := s.Config()
	if b.MemberIdLength == 999 {
		t.Error("mutating a Config() result leaked into the Service's internal config")
	}
}
