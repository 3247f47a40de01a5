package config

import (
	"errors"
	"testing"

	"github.com/Digital-Defiance/ecies-lib-sub006/ecieserr"
	"github.com/Digital-Defiance/ecies-lib-sub006/idprovider"
)

func TestNewDefaultPassesValidate(t *testing.T) {
	cfg := NewDefault()
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate(NewDefault()) error = %v", err)
	}
}

func TestNewDefaultEncryptedKeySizeIs129(t *testing.T) {
	cfg := NewDefault()
	if cfg.Multiple.EncryptedKeySize != 129 {
		t.Errorf("Multiple.EncryptedKeySize = %d, want 129", cfg.Multiple.EncryptedKeySize)
	}
}

func TestMergeIdProviderOverridesMemberIdLength(t *testing.T) {
	base := NewDefault()
	custom, err := idprovider.NewCustomFixedWidthProvider(20, "Custom20")
	if err != nil {
		t.Fatalf("NewCustomFixedWidthProvider() error = %v", err)
	}

	merged := Merge(base, CryptoConfig{IdProvider: custom})
	if merged.MemberIdLength != 20 {
		t.Errorf("MemberIdLength = %d, want 20", merged.MemberIdLength)
	}
	if merged.Multiple.RecipientIdSize != 20 {
		t.Errorf("Multiple.RecipientIdSize = %d, want 20", merged.Multiple.RecipientIdSize)
	}
	if base.MemberIdLength == 20 {
		t.Error("Merge mutated the base configuration")
	}
	if err := Validate(merged); err != nil {
		t.Fatalf("Validate(merged) error = %v", err)
	}
}

func TestValidateFailsWithMismatchedRecipientIdSize(t *testing.T) {
	cfg := NewDefault()
	cfg.Multiple.RecipientIdSize = 999

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate(): expected error for mismatched RecipientIdSize, got nil")
	}
	var ecErr *ecieserr.Error
	if !errors.As(err, &ecErr) {
		t.Fatalf("Validate() error = %v, want *ecieserr.Error", err)
	}
	if ecErr.Kind != ecieserr.KindInvalidECIESMultipleRecipientIdSize {
		t.Errorf("Validate() Kind = %q, want %q", ecErr.Kind, ecieserr.KindInvalidECIESMultipleRecipientIdSize)
	}
	if !errors.Is(err, ecieserr.ErrInvalidECIESMultipleRecipientIdSize) {
		t.Error("errors.Is(err, ErrInvalidECIESMultipleRecipientIdSize) = false, want true")
	}
}

func TestRegisterRejectsDefaultKey(t *testing.T) {
	defer Clear()
	cfg := NewDefault()
	if _, err := Register(DefaultKey, cfg, "test", ""); err == nil {
		t.Error("Register(DefaultKey): expected error, got nil")
	}
}

func TestRegisterAndGetRoundTrip(t *testing.T) {
	defer Clear()
	cfg := NewDefault()
	prov, err := Register("custom-key", cfg, "unit-test", "a test configuration")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if prov.Source != "unit-test" {
		t.Errorf("Provenance.Source = %q, want %q", prov.Source, "unit-test")
	}

	got, gotProv, err := Get("custom-key")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.MemberIdLength != cfg.MemberIdLength {
		t.Error("Get() returned a configuration with a different MemberIdLength")
	}
	if gotProv.Checksum != prov.Checksum {
		t.Error("Get() returned different provenance checksum than Register() did")
	}
}

func TestGetUnknownKeyFails(t *testing.T) {
	if _, _, err := Get("does-not-exist"); err == nil {
		t.Error("Get(unknown key): expected error, got nil")
	}
}

func TestClearResetsToDefaultOnly(t *testing.T) {
	cfg := NewDefault()
	if _, err := Register("temp", cfg, "test", ""); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	Clear()
	if _, _, err := Get("temp"); err == nil {
		t.Error("Get(temp) after Clear(): expected error, got nil")
	}
	if _, _, err := Get(DefaultKey); err != nil {
		t.Errorf("Get(DefaultKey) after Clear() error = %v", err)
	}
}

func TestChecksumDeterministic(t *testing.T) {
	cfg := NewDefault()
	a := Checksum(cfg)
	b := Checksum(cfg)
	if a != b {
		t.Error("Checksum is not deterministic for an identical configuration")
	}
}

func TestMustInitPanicsOnDefaultKey(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustInit(DefaultKey): expected panic, got none")
		}
	}()
	MustInit(DefaultKey, NewDefault(), "test", "")
}
