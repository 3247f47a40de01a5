package multi

import (
	"context"
	"crypto/rand"

	"github.com/Digital-Defiance/ecies-lib-sub006/aead"
	cryptocore "github.com/Digital-Defiance/ecies-lib-sub006/crypto"
	"github.com/Digital-Defiance/ecies-lib-sub006/ecieserr"
	"github.com/Digital-Defiance/ecies-lib-sub006/frame"
)

// Encrypt builds a MULTIPLE frame sealing plaintext once under a fresh
// content key, then wraps that content key independently for every
// recipient (spec.md §4.6 "Encrypt"). recipientIDWidth must equal every
// id's byte width (the configured IdProvider's byte_width). The
// recipient-wrap loop is a cooperative cancellation boundary (spec.md §5):
// ctx is checked before wrapping each recipient's key, and a cancelled
// context aborts with ecieserr.KindEncryptionCancelled, leaving no partial
// frame behind.
func Encrypt(ctx context.Context, recipients []Recipient, plaintext, preamble []byte, recipientIDWidth int) ([]byte, error) {
	if len(recipients) == 0 {
		return nil, ecieserr.Wrap(ecieserr.KindInvalidRecipientCount, "multi.Encrypt", nil)
	}
	if len(recipients) > MaxRecipients {
		return nil, ecieserr.Wrap(ecieserr.KindTooManyRecipients, "multi.Encrypt",
			map[string]any{"count": len(recipients), "max": MaxRecipients})
	}
	if err := checkDistinctIDs(recipients); err != nil {
		return nil, err
	}
	for _, r := range recipients {
		if len(r.ID) != recipientIDWidth {
			return nil, ecieserr.Wrap(ecieserr.KindInvalidECIESMultipleRecipientIdSize, "multi.Encrypt",
				map[string]any{"got": len(r.ID), "want": recipientIDWidth})
		}
	}

	ephemeral, err := cryptocore.GenerateKeyPair()
	if err != nil {
		return nil, err
	}
	ephemeralPub, err := cryptocore.NormalizePublicKey(ephemeral.PublicKey)
	if err != nil {
		return nil, err
	}

	contentKey := make([]byte, cryptocore.PrivateKeyLength)
	if _, err := rand.Read(contentKey); err != nil {
		return nil, err
	}
	defer cryptocore.Zero(contentKey)

	iv, ciphertext, tag, err := aead.Encrypt(contentKey, plaintext, nil)
	if err != nil {
		return nil, err
	}

	wrappedKeys := make([][]byte, len(recipients))
	for i, r := range recipients {
		if err := ctx.Err(); err != nil {
			return nil, ecieserr.Wrap(ecieserr.KindEncryptionCancelled, "multi.Encrypt",
				map[string]any{"completed": i, "total": len(recipients)})
		}
		wrapped, err := wrapContentKey(ephemeral.PrivateKey, r, contentKey)
		if err != nil {
			return nil, err
		}
		wrappedKeys[i] = wrapped
	}

	n := len(recipients)
	headerSize := HeaderSize(n, recipientIDWidth)
	out := make([]byte, len(preamble)+headerSize+len(ciphertext))
	offset := copy(out, preamble)

	frame.WritePrefix(out[offset:], frame.TypeMultiple)
	offset += frame.PrefixSize
	offset += copy(out[offset:], ephemeralPub)
	offset += copy(out[offset:], iv)
	offset += copy(out[offset:], tag)

	frame.PutUint64(out[offset:], uint64(len(plaintext)))
	offset += dataLengthSize
	frame.PutUint16(out[offset:], uint16(n))
	offset += recipCountSize

	for _, r := range recipients {
		offset += copy(out[offset:], r.ID)
	}
	for _, w := range wrappedKeys {
		offset += copy(out[offset:], w)
	}

	copy(out[offset:], ciphertext)
	return out, nil
}

func checkDistinctIDs(recipients []Recipient) error {
	seen := make(map[string]struct{}, len(recipients))
	for _, r := range recipients {
		key := string(r.ID)
		if _, ok := seen[key]; ok {
			return ecieserr.Wrap(ecieserr.KindDuplicateRecipientId, "multi.Encrypt",
				map[string]any{"id": key})
		}
		seen[key] = struct{}{}
	}
	return nil
}

// wrapContentKey produces one ENCRYPTED_KEY_SIZE-byte wrapped_key block:
// recipient_public_key(65) ‖ iv(16) ‖ tag(16) ‖ wrapped_content_key(32)
// (spec.md §4.6 "Key wrap").
func wrapContentKey(ephemeralPrivateKey []byte, r Recipient, contentKey []byte) ([]byte, error) {
	normalizedRecipient, err := cryptocore.NormalizePublicKey(r.PublicKey)
	if err != nil {
		return nil, ecieserr.Wrap(ecieserr.KindInvalidRecipientPublicKey, "multi.wrapContentKey", map[string]any{"error": err.Error()})
	}

	shared, err := cryptocore.ECDH(ephemeralPrivateKey, normalizedRecipient)
	if err != nil {
		return nil, ecieserr.Wrap(ecieserr.KindSecretComputationFailed, "multi.wrapContentKey", nil)
	}
	key, err := cryptocore.HKDF(shared, cryptocore.HKDFOptions{})
	if err != nil {
		return nil, err
	}

	iv, wrappedCipher, tag, err := aead.Encrypt(key, contentKey, r.ID)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, WrappedKeySize)
	out = append(out, normalizedRecipient...)
	out = append(out, iv...)
	out = append(out, tag...)
	out = append(out, wrappedCipher...)
	return out, nil
}
