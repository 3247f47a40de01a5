package sigcodec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Digital-Defiance/ecies-lib-sub006/crypto"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	kp, err := crypto.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}
	sig, err := crypto.Sign(kp.PrivateKey, []byte("message"))
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	encoded, err := Encode(sig)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if len(encoded) != HexLength {
		t.Errorf("Encode() length = %d, want %d", len(encoded), HexLength)
	}
	if strings.ToLower(encoded) != encoded {
		t.Error("Encode() produced non-lowercase hex")
	}
	if strings.HasPrefix(encoded, "0x") {
		t.Error("Encode() must not include a 0x prefix")
	}

	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !bytes.Equal(decoded, sig) {
		t.Error("Decode(Encode(sig)) != sig")
	}
}

func TestEncodeRejectsWrongLength(t *testing.T) {
	if _, err := Encode(make([]byte, 63)); err != ErrInvalidSignatureLength {
		t.Errorf("Encode(63 bytes) error = %v, want ErrInvalidSignatureLength", err)
	}
}

func TestDecodeRejectsWrongLength(t *testing.T) {
	if _, err := Decode(strings.Repeat("a", 127)); err != ErrInvalidHexLength {
		t.Errorf("Decode(127 hex chars) error = %v, want ErrInvalidHexLength", err)
	}
}

func TestDecodeRejectsNonHex(t *testing.T) {
	if _, err := Decode(strings.Repeat("z", HexLength)); err == nil {
		t.Error("Decode(non-hex): expected error, got nil")
	}
}

func TestMustDecodeHexPanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustDecodeHex(invalid): expected panic, got none")
		}
	}()
	MustDecodeHex("not hex")
}
