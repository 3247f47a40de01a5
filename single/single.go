// Package single implements the SIMPLE and SINGLE single-recipient framed
// codecs (spec.md §4.5): an ephemeral-key ECDH handshake, an HKDF-derived
// content key, and an AES-256-GCM sealed payload, laid out in a
// versioned-header style (crypto/crypto.go) but generalized to secp256k1
// and to the two explicit wire variants the header layout defines.
package single

import (
	"github.com/Digital-Defiance/ecies-lib-sub006/aead"
	cryptocore "github.com/Digital-Defiance/ecies-lib-sub006/crypto"
	"github.com/Digital-Defiance/ecies-lib-sub006/ecieserr"
	"github.com/Digital-Defiance/ecies-lib-sub006/frame"
)

const (
	// SimpleOverhead is the fixed SIMPLE header size (spec.md §4.5): 3 +
	// 65 + 16 + 16 = 100 bytes.
	SimpleOverhead = frame.PrefixSize + cryptocore.UncompressedPublicKeyLength + ivSize + tagSize

	// SingleOverhead adds an 8-byte big-endian data length to SimpleOverhead.
	SingleOverhead = SimpleOverhead + dataLengthSize

	ivSize         = 16
	tagSize        = 16
	dataLengthSize = 8
)

// SimpleFrame is the parsed SIMPLE header plus trailing ciphertext.
type SimpleFrame struct {
	EphemeralPublicKey []byte // 65 bytes, uncompressed
	IV                 []byte // 16 bytes
	Tag                []byte // 16 bytes
	Ciphertext         []byte
}

// SingleFrame extends SimpleFrame with the explicit payload length SINGLE
// encodes in its header.
type SingleFrame struct {
	SimpleFrame
	DataLength uint64
}

func deriveSymmetricKey(ecdhSecret []byte) ([]byte, error) {
	return cryptocore.HKDF(ecdhSecret, cryptocore.HKDFOptions{})
}

// EncryptSimple produces a SIMPLE frame encrypting plaintext for
// recipientPublicKey. preamble, if non-empty, is opaque caller data
// prepended before the frame (spec.md §4.5 "optional caller-supplied
// preamble").
func EncryptSimple(recipientPublicKey, plaintext, preamble []byte) ([]byte, error) {
	return encrypt(recipientPublicKey, plaintext, preamble, false)
}

// EncryptSingle produces a SINGLE frame (SIMPLE header plus an explicit
// 8-byte big-endian data length).
func EncryptSingle(recipientPublicKey, plaintext, preamble []byte) ([]byte, error) {
	return encrypt(recipientPublicKey, plaintext, preamble, true)
}

func encrypt(recipientPublicKey, plaintext, preamble []byte, withLength bool) ([]byte, error) {
	normalizedRecipient, err := cryptocore.NormalizePublicKey(recipientPublicKey)
	if err != nil {
		return nil, ecieserr.Wrap(ecieserr.KindInvalidRecipientPublicKey, "single.encrypt", map[string]any{"error": err.Error()})
	}

	ephemeral, err := cryptocore.GenerateKeyPair()
	if err != nil {
		return nil, err
	}
	ephemeralPub, err := cryptocore.NormalizePublicKey(ephemeral.PublicKey)
	if err != nil {
		return nil, err
	}

	shared, err := cryptocore.ECDH(ephemeral.PrivateKey, normalizedRecipient)
	if err != nil {
		return nil, ecieserr.Wrap(ecieserr.KindSecretComputationFailed, "single.encrypt", nil)
	}
	key, err := deriveSymmetricKey(shared)
	if err != nil {
		return nil, err
	}

	iv, ciphertext, tag, err := aead.Encrypt(key, plaintext, nil)
	if err != nil {
		return nil, err
	}

	overhead := SimpleOverhead
	typ := frame.TypeSimple
	if withLength {
		overhead = SingleOverhead
		typ = frame.TypeSingle
	}

	out := make([]byte, len(preamble)+overhead+len(ciphertext))
	offset := copy(out, preamble)

	frame.WritePrefix(out[offset:], typ)
	offset += frame.PrefixSize
	offset += copy(out[offset:], ephemeralPub)
	offset += copy(out[offset:], iv)
	offset += copy(out[offset:], tag)

	if withLength {
		frame.PutUint64(out[offset:], uint64(len(plaintext)))
		offset += dataLengthSize
	}

	copy(out[offset:], ciphertext)
	return out, nil
}

// ParseSimple validates and extracts the fields of a SIMPLE frame. data is
// the full buffer including any preamble; preambleSize is how many leading
// bytes to skip before the frame begins.
func ParseSimple(data []byte, preambleSize int) (*SimpleFrame, error) {
	return parse(data, preambleSize, false)
}

// ParseSingle validates and extracts the fields of a SINGLE frame,
// including its declared data length, and verifies the remaining
// ciphertext is exactly that many bytes.
func ParseSingle(data []byte, preambleSize int) (*SingleFrame, error) {
	simple, err := parse(data, preambleSize, true)
	if err != nil {
		return nil, err
	}
	return parseSingle(data, preambleSize, simple)
}

func parse(data []byte, preambleSize int, withLength bool) (*SimpleFrame, error) {
	body := data[min(preambleSize, len(data)):]
	overhead := SimpleOverhead
	if withLength {
		overhead = SingleOverhead
	}
	if len(body) < overhead {
		return nil, ecieserr.Wrap(ecieserr.KindInvalidHeaderLength, "single.parse",
			map[string]any{"length": len(body), "minimum": overhead})
	}

	typ := frame.TypeSimple
	if withLength {
		typ = frame.TypeSingle
	}
	if err := frame.ReadPrefix(body, typ); err != nil {
		return nil, err
	}

	offset := frame.PrefixSize
	epk := append([]byte(nil), body[offset:offset+cryptocore.UncompressedPublicKeyLength]...)
	offset += cryptocore.UncompressedPublicKeyLength
	iv := append([]byte(nil), body[offset:offset+ivSize]...)
	offset += ivSize
	tag := append([]byte(nil), body[offset:offset+tagSize]...)
	offset += tagSize

	var ciphertext []byte
	if !withLength {
		ciphertext = append([]byte(nil), body[offset:]...)
	}

	return &SimpleFrame{EphemeralPublicKey: epk, IV: iv, Tag: tag, Ciphertext: ciphertext}, nil
}

func parseSingle(data []byte, preambleSize int, simple *SimpleFrame) (*SingleFrame, error) {
	body := data[min(preambleSize, len(data)):]
	offset := frame.PrefixSize + cryptocore.UncompressedPublicKeyLength + ivSize + tagSize
	dataLength := frame.Uint64(body[offset : offset+dataLengthSize])
	offset += dataLengthSize

	remaining := body[offset:]
	if uint64(len(remaining)) != dataLength {
		return nil, ecieserr.Wrap(ecieserr.KindDataLengthMismatch, "single.parseSingle",
			map[string]any{"declared": dataLength, "actual": len(remaining)})
	}
	simple.Ciphertext = append([]byte(nil), remaining...)

	return &SingleFrame{SimpleFrame: *simple, DataLength: dataLength}, nil
}

// DecryptSimple recovers the plaintext sealed in a parsed SIMPLE frame
// using the recipient's private key.
func DecryptSimple(recipientPrivateKey []byte, f *SimpleFrame) ([]byte, error) {
	return decrypt(recipientPrivateKey, f)
}

// DecryptSingle recovers the plaintext sealed in a parsed SINGLE frame
// using the recipient's private key.
func DecryptSingle(recipientPrivateKey []byte, f *SingleFrame) ([]byte, error) {
	return decrypt(recipientPrivateKey, &f.SimpleFrame)
}

func decrypt(recipientPrivateKey []byte, f *SimpleFrame) ([]byte, error) {
	shared, err := cryptocore.ECDH(recipientPrivateKey, f.EphemeralPublicKey)
	if err != nil {
		return nil, ecieserr.Wrap(ecieserr.KindDecryptionFailed, "single.decrypt", nil)
	}
	key, err := deriveSymmetricKey(shared)
	if err != nil {
		return nil, ecieserr.Wrap(ecieserr.KindDecryptionFailed, "single.decrypt", nil)
	}
	plaintext, err := aead.Decrypt(key, f.IV, f.Ciphertext, f.Tag, nil)
	if err != nil {
		return nil, ecieserr.Wrap(ecieserr.KindDecryptionFailed, "single.decrypt", nil)
	}
	return plaintext, nil
}
