package crypto

import (
	"bytes"
	"testing"
)

func TestGenerateKeyPair(t *testing.T) {
	kp, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}
	if len(kp.PrivateKey) != PrivateKeyLength {
		t.Errorf("private key length = %d, want %d", len(kp.PrivateKey), PrivateKeyLength)
	}
	if len(kp.PublicKey) != CompressedPublicKeyLength {
		t.Errorf("public key length = %d, want %d", len(kp.PublicKey), CompressedPublicKeyLength)
	}
	if kp.PublicKey[0] != 0x02 && kp.PublicKey[0] != 0x03 {
		t.Errorf("public key prefix = 0x%02x, want 0x02 or 0x03", kp.PublicKey[0])
	}
}

func TestGenerateKeyPairDistinct(t *testing.T) {
	a, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}
	b, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}
	if bytes.Equal(a.PrivateKey, b.PrivateKey) {
		t.Error("two consecutive generated private keys were equal")
	}
}

func TestNormalizePublicKeyAcceptsAllForms(t *testing.T) {
	kp, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}

	x, y, err := decodePoint(kp.PublicKey)
	if err != nil {
		t.Fatalf("decodePoint(compressed) error = %v", err)
	}
	uncompressed := make([]byte, UncompressedPublicKeyLength)
	uncompressed[0] = 0x04
	xb, yb := x.Bytes(), y.Bytes()
	copy(uncompressed[1+32-len(xb):33], xb)
	copy(uncompressed[33+32-len(yb):65], yb)
	raw := uncompressed[1:]

	forms := map[string][]byte{
		"compressed":   kp.PublicKey,
		"uncompressed": uncompressed,
		"raw64":        raw,
	}

	var want []byte
	for name, form := range forms {
		got, err := NormalizePublicKey(form)
		if err != nil {
			t.Fatalf("NormalizePublicKey(%s) error = %v", name, err)
		}
		if want == nil {
			want = got
		} else if !bytes.Equal(got, want) {
			t.Errorf("NormalizePublicKey(%s) = %x, want %x", name, got, want)
		}
	}
}

func TestNormalizePublicKeyRejectsInvalid(t *testing.T) {
	cases := map[string][]byte{
		"empty":        {},
		"allZero":      make([]byte, CompressedPublicKeyLength),
		"badPrefix":    append([]byte{0x05}, make([]byte, 64)...),
		"wrongLength":  make([]byte, 10),
	}
	for name, b := range cases {
		if _, err := NormalizePublicKey(b); err == nil {
			t.Errorf("NormalizePublicKey(%s): expected error, got nil", name)
		}
	}
}

func TestPublicKeyFromPrivateDeterministic(t *testing.T) {
	priv, err := GeneratePrivateKey()
	if err != nil {
		t.Fatalf("GeneratePrivateKey() error = %v", err)
	}
	a, err := PublicKeyFromPrivate(priv)
	if err != nil {
		t.Fatalf("PublicKeyFromPrivate() error = %v", err)
	}
	b, err := PublicKeyFromPrivate(priv)
	if err != nil {
		t.Fatalf("PublicKeyFromPrivate() error = %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("PublicKeyFromPrivate is not deterministic for the same private key")
	}
}
