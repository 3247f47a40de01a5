package crypto

import "testing"

func TestHKDFDeterministic(t *testing.T) {
	ikm := []byte("shared-secret-material")
	opts := HKDFOptions{Salt: []byte("salt"), Info: []byte("info")}

	a, err := HKDF(ikm, opts)
	if err != nil {
		t.Fatalf("HKDF() error = %v", err)
	}
	b, err := HKDF(ikm, opts)
	if err != nil {
		t.Fatalf("HKDF() error = %v", err)
	}
	if string(a) != string(b) {
		t.Error("HKDF is not deterministic for identical inputs")
	}
	if len(a) != DefaultDerivedKeyLength {
		t.Errorf("derived key length = %d, want %d", len(a), DefaultDerivedKeyLength)
	}
}

func TestHKDFDifferentInfoDiffers(t *testing.T) {
	ikm := []byte("shared-secret-material")
	a, err := HKDF(ikm, HKDFOptions{Info: []byte("a")})
	if err != nil {
		t.Fatalf("HKDF() error = %v", err)
	}
	b, err := HKDF(ikm, HKDFOptions{Info: []byte("b")})
	if err != nil {
		t.Fatalf("HKDF() error = %v", err)
	}
	if string(a) == string(b) {
		t.Error("HKDF with different info produced identical output")
	}
}

func TestHKDFCustomLength(t *testing.T) {
	out, err := HKDF([]byte("ikm"), HKDFOptions{Length: 48})
	if err != nil {
		t.Fatalf("HKDF() error = %v", err)
	}
	if len(out) != 48 {
		t.Errorf("derived key length = %d, want 48", len(out))
	}
}
