// Package frame holds the byte-level constants and header read/write
// helpers shared by the single- and multi-recipient codecs: the
// version/cipher-suite/encryption-type triple every frame begins with, and
// the offset arithmetic for laying out fixed-width fields in a big-endian
// buffer, the same length-prefixed-field style as the DigitalArsenal
// Serialize/DeserializeEncryptedMessage example and the
// wyf-ACCEPT-eth2030 ephemeral-pubkey‖iv‖ciphertext‖mac framing — here
// generalized to a structured header builder/reader, since this module's
// headers are fixed-width rather than length-prefixed.
package frame

import (
	"encoding/binary"

	"github.com/Digital-Defiance/ecies-lib-sub006/config"
	"github.com/Digital-Defiance/ecies-lib-sub006/ecieserr"
)

// EncryptionType is the one-byte frame-kind tag embedded right after the
// version and cipher-suite bytes (spec.md §3 "Encryption-type tag").
type EncryptionType byte

const (
	TypeSimple   EncryptionType = 33
	TypeSingle   EncryptionType = 66
	TypeMultiple EncryptionType = 99
)

// PrefixSize is the length of version‖cipher_suite‖encryption_type.
const PrefixSize = config.VersionByteSize + config.CipherSuiteByteSize + config.EncryptionTypeByteSize

// WritePrefix writes version, cipher suite, and typ into the first
// PrefixSize bytes of buf.
func WritePrefix(buf []byte, typ EncryptionType) {
	buf[0] = config.CurrentVersion
	buf[1] = config.CurrentCipherSuite
	buf[2] = byte(typ)
}

// ReadPrefix validates buf's leading version/cipher-suite bytes and that
// its encryption-type byte matches want, returning the canonical kinded
// error for whichever check fails first.
func ReadPrefix(buf []byte, want EncryptionType) error {
	if len(buf) < PrefixSize {
		return ecieserr.Wrap(ecieserr.KindInvalidHeaderLength, "frame.ReadPrefix",
			map[string]any{"length": len(buf), "minimum": PrefixSize})
	}
	if buf[0] != config.CurrentVersion {
		return ecieserr.Wrap(ecieserr.KindInvalidVersion, "frame.ReadPrefix",
			map[string]any{"got": buf[0], "want": config.CurrentVersion})
	}
	if buf[1] != config.CurrentCipherSuite {
		return ecieserr.Wrap(ecieserr.KindInvalidCipherSuite, "frame.ReadPrefix",
			map[string]any{"got": buf[1], "want": config.CurrentCipherSuite})
	}
	got := EncryptionType(buf[2])
	if got != want {
		return ecieserr.Wrap(ecieserr.KindInvalidEncryptionType, "frame.ReadPrefix",
			map[string]any{"got": got, "want": want})
	}
	return nil
}

// PutUint64 and PutUint16 are thin re-exports of encoding/binary's
// big-endian helpers, kept here so callers writing frame headers don't need
// a second import for two calls.
func PutUint64(buf []byte, v uint64) { binary.BigEndian.PutUint64(buf, v) }
func PutUint16(buf []byte, v uint16) { binary.BigEndian.PutUint16(buf, v) }
func Uint64(buf []byte) uint64       { return binary.BigEndian.Uint64(buf) }
func Uint16(buf []byte) uint16       { return binary.BigEndian.Uint16(buf) }
