package multi

import (
	cryptocore "github.com/Digital-Defiance/ecies-lib-sub006/crypto"
	"github.com/Digital-Defiance/ecies-lib-sub006/ecieserr"
	"github.com/Digital-Defiance/ecies-lib-sub006/frame"
)

// Parse validates and extracts a MULTIPLE frame's fields. data is the full
// buffer including any preamble; preambleSize is how many leading bytes to
// skip; recipientIDWidth is the configured IdProvider's byte width.
func Parse(data []byte, preambleSize, recipientIDWidth int) (*Frame, error) {
	if preambleSize > len(data) {
		preambleSize = len(data)
	}
	body := data[preambleSize:]

	if len(body) < FixedOverhead {
		return nil, ecieserr.Wrap(ecieserr.KindDataTooShortForMultiRecipientHeader, "multi.Parse",
			map[string]any{"length": len(body), "minimum": FixedOverhead})
	}
	if err := frame.ReadPrefix(body, frame.TypeMultiple); err != nil {
		return nil, err
	}

	offset := frame.PrefixSize
	ephemeralPK := append([]byte(nil), body[offset:offset+cryptocore.UncompressedPublicKeyLength]...)
	offset += cryptocore.UncompressedPublicKeyLength
	iv := append([]byte(nil), body[offset:offset+ivSize]...)
	offset += ivSize
	tag := append([]byte(nil), body[offset:offset+tagSize]...)
	offset += tagSize

	dataLength := frame.Uint64(body[offset : offset+dataLengthSize])
	offset += dataLengthSize
	if dataLength == 0 {
		return nil, ecieserr.Wrap(ecieserr.KindDataLengthMismatch, "multi.Parse", map[string]any{"reason": "data_length must be > 0"})
	}

	recipientCount := int(frame.Uint16(body[offset : offset+recipCountSize]))
	offset += recipCountSize
	if recipientCount == 0 {
		return nil, ecieserr.Wrap(ecieserr.KindInvalidRecipientCount, "multi.Parse", nil)
	}
	if recipientCount > MaxRecipients {
		return nil, ecieserr.Wrap(ecieserr.KindTooManyRecipients, "multi.Parse",
			map[string]any{"count": recipientCount, "max": MaxRecipients})
	}

	headerSize := HeaderSize(recipientCount, recipientIDWidth)
	if len(body) < headerSize {
		return nil, ecieserr.Wrap(ecieserr.KindDataTooShortForMultiRecipientHeader, "multi.Parse",
			map[string]any{"length": len(body), "minimum": headerSize})
	}

	ids := make([][]byte, recipientCount)
	for i := 0; i < recipientCount; i++ {
		ids[i] = append([]byte(nil), body[offset:offset+recipientIDWidth]...)
		offset += recipientIDWidth
	}

	wrappedKeys := make([][]byte, recipientCount)
	for i := 0; i < recipientCount; i++ {
		wrappedKeys[i] = append([]byte(nil), body[offset:offset+WrappedKeySize]...)
		offset += WrappedKeySize
	}

	remaining := body[offset:]
	if uint64(len(remaining)) != dataLength {
		return nil, ecieserr.Wrap(ecieserr.KindMessageLengthMismatch, "multi.Parse",
			map[string]any{"declared": dataLength, "actual": len(remaining)})
	}

	return &Frame{
		EphemeralPublicKey: ephemeralPK,
		IV:                 iv,
		Tag:                tag,
		DataLength:         dataLength,
		RecipientIDs:       ids,
		WrappedKeys:        wrappedKeys,
		Ciphertext:         append([]byte(nil), remaining...),
	}, nil
}
