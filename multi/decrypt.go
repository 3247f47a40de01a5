package multi

import (
	"bytes"

	"github.com/Digital-Defiance/ecies-lib-sub006/aead"
	cryptocore "github.com/Digital-Defiance/ecies-lib-sub006/crypto"
	"github.com/Digital-Defiance/ecies-lib-sub006/ecieserr"
)

// Decrypt recovers the plaintext for recipientID using recipientPrivateKey
// (spec.md §4.6 "Decrypt for recipient id r with key sk_r"). It locates the
// recipient's wrapped-key block by linear scan, unwraps the shared content
// key, then opens the payload ciphertext.
func Decrypt(f *Frame, recipientID, recipientPrivateKey []byte) ([]byte, error) {
	index := -1
	for i, id := range f.RecipientIDs {
		if bytes.Equal(id, recipientID) {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, ecieserr.Wrap(ecieserr.KindRecipientNotFound, "multi.Decrypt", map[string]any{"id": recipientID})
	}

	contentKey, err := unwrapContentKey(f.WrappedKeys[index], recipientID, recipientPrivateKey, f.EphemeralPublicKey)
	if err != nil {
		return nil, err
	}
	defer cryptocore.Zero(contentKey)

	plaintext, err := aead.Decrypt(contentKey, f.IV, f.Ciphertext, f.Tag, nil)
	if err != nil {
		return nil, ecieserr.Wrap(ecieserr.KindDecryptionFailed, "multi.Decrypt", nil)
	}
	return plaintext, nil
}

// unwrapContentKey splits wrappedKey into embedded_pk ‖ iv ‖ tag ‖
// wrapped_cipher, checks embedded_pk against the recipient's own public
// key, recomputes the per-recipient shared secret via
// recipientPrivateKey and the header's ephemeral public key, and opens the
// content key (spec.md §4.6).
func unwrapContentKey(wrappedKey, recipientID, recipientPrivateKey, ephemeralPublicKey []byte) ([]byte, error) {
	if len(wrappedKey) != WrappedKeySize {
		return nil, ecieserr.Wrap(ecieserr.KindInvalidEncryptedKeyLength, "multi.unwrapContentKey",
			map[string]any{"got": len(wrappedKey), "want": WrappedKeySize})
	}

	offset := 0
	// The embedded recipient pk must equal the public key of
	// recipientPrivateKey; any other value fails as FailedToDecryptKey.
	embeddedPK := wrappedKey[offset : offset+cryptocore.UncompressedPublicKeyLength]
	ownPK, err := cryptocore.PublicKeyFromPrivate(recipientPrivateKey)
	if err == nil {
		ownPK, err = cryptocore.NormalizePublicKey(ownPK)
	}
	if err != nil || !bytes.Equal(embeddedPK, ownPK) {
		return nil, ecieserr.Wrap(ecieserr.KindFailedToDecryptKey, "multi.unwrapContentKey", nil)
	}
	offset += cryptocore.UncompressedPublicKeyLength
	iv := wrappedKey[offset : offset+ivSize]
	offset += ivSize
	tag := wrappedKey[offset : offset+tagSize]
	offset += tagSize
	wrappedCipher := wrappedKey[offset:]

	shared, err := cryptocore.ECDH(recipientPrivateKey, ephemeralPublicKey)
	if err != nil {
		return nil, ecieserr.Wrap(ecieserr.KindFailedToDecryptKey, "multi.unwrapContentKey", nil)
	}
	key, err := cryptocore.HKDF(shared, cryptocore.HKDFOptions{})
	if err != nil {
		return nil, ecieserr.Wrap(ecieserr.KindFailedToDecryptKey, "multi.unwrapContentKey", nil)
	}

	contentKey, err := aead.Decrypt(key, iv, wrappedCipher, tag, recipientID)
	if err != nil {
		return nil, ecieserr.Wrap(ecieserr.KindFailedToDecryptKey, "multi.unwrapContentKey", nil)
	}
	return contentKey, nil
}
