// Package ecieserr is the kinded error taxonomy for the whole module
// (spec.md §7). Each failure mode is a sentinel error carrying a Kind, so
// callers match on errors.Is(err, ecieserr.ErrDecryptionFailed) the same way
// backkem-matter's pkg/im/errors.go matches its own sentinel Err* values;
// Wrap then attaches the operation name and free-form context that sentinel
// alone can't carry.
package ecieserr

import "errors"

// Kind is a canonical error category (spec.md §7's grouped kind list).
type Kind string

const (
	// Wire kinds.
	KindInvalidVersion                        Kind = "InvalidVersion"
	KindInvalidCipherSuite                    Kind = "InvalidCipherSuite"
	KindInvalidEncryptionType                 Kind = "InvalidEncryptionType"
	KindInvalidHeaderLength                   Kind = "InvalidHeaderLength"
	KindDataTooShortForMultiRecipientHeader   Kind = "DataTooShortForMultiRecipientHeader"
	KindDataLengthMismatch                    Kind = "DataLengthMismatch"
	KindMessageLengthMismatch                 Kind = "MessageLengthMismatch"
	KindEncryptedSizeExceedsExpected          Kind = "EncryptedSizeExceedsExpected"

	// Crypto kinds.
	KindInvalidPublicKeyFormatOrLength   Kind = "InvalidPublicKeyFormatOrLength"
	KindInvalidPublicKeyNotOnCurve       Kind = "InvalidPublicKeyNotOnCurve"
	KindReceivedNullOrUndefinedPublicKey Kind = "ReceivedNullOrUndefinedPublicKey"
	KindInvalidEphemeralPublicKey        Kind = "InvalidEphemeralPublicKey"
	KindInvalidSenderPublicKey           Kind = "InvalidSenderPublicKey"
	KindInvalidRecipientPublicKey        Kind = "InvalidRecipientPublicKey"
	KindInvalidIVLength                  Kind = "InvalidIVLength"
	KindInvalidAuthTagLength             Kind = "InvalidAuthTagLength"
	KindInvalidAESKeyLength              Kind = "InvalidAESKeyLength"
	KindSecretComputationFailed          Kind = "SecretComputationFailed"
	KindDecryptionFailed                 Kind = "DecryptionFailed"
	KindFailedToDecryptKey               Kind = "FailedToDecryptKey"
	KindCannotEncryptEmptyData           Kind = "CannotEncryptEmptyData"
	KindCannotDecryptEmptyData           Kind = "CannotDecryptEmptyData"
	KindMessageTooLarge                  Kind = "MessageTooLarge"

	// Multi-recipient kinds.
	KindRecipientNotFound                                         Kind = "RecipientNotFound"
	KindDuplicateRecipientId                                      Kind = "DuplicateRecipientId"
	KindTooManyRecipients                                         Kind = "TooManyRecipients"
	KindInvalidRecipientCount                                     Kind = "InvalidRecipientCount"
	KindRecipientCountMismatch                                    Kind = "RecipientCountMismatch"
	KindRecipientKeyCountMismatch                                 Kind = "RecipientKeyCountMismatch"
	KindAuthenticationTagIsRequiredForMultiRecipientECIESEncryption Kind = "AuthenticationTagIsRequiredForMultiRecipientECIESEncryption"
	KindInvalidEncryptedKeyLength                                 Kind = "InvalidEncryptedKeyLength"

	// Mnemonic/KDF kinds.
	KindInvalidMnemonic        Kind = "InvalidMnemonic"
	KindFailedToDeriveRootKey  Kind = "FailedToDeriveRootKey"

	// Config kinds.
	KindInvalidChecksumConstants                   Kind = "InvalidChecksumConstants"
	KindInvalidECIESMultipleEncryptedKeySize       Kind = "InvalidECIESMultipleEncryptedKeySize"
	KindInvalidECIESPublicKeyLength                Kind = "InvalidECIESPublicKeyLength"
	KindInvalidECIESMultipleRecipientCountSize     Kind = "InvalidECIESMultipleRecipientCountSize"
	KindInvalidECIESMultipleDataLengthSize         Kind = "InvalidECIESMultipleDataLengthSize"
	KindInvalidECIESMultipleRecipientIdSize        Kind = "InvalidECIESMultipleRecipientIdSize"
	KindCannotOverwriteDefaultConfiguration        Kind = "CannotOverwriteDefaultConfiguration"
	KindIdProviderValidationFailed                 Kind = "IdProviderValidationFailed"

	// Operational kinds.
	KindEncryptionCancelled Kind = "EncryptionCancelled"
	KindInvalidOperation    Kind = "InvalidOperation"
)

// sentinels maps every Kind to a package-level sentinel error so
// errors.Is(err, ecieserr.ErrDecryptionFailed) works whether err is the bare
// sentinel or an *Error wrapping it.
var sentinels = map[Kind]error{}

func sentinel(k Kind, message string) error {
	err := errors.New(message)
	sentinels[k] = err
	return err
}

var (
	ErrInvalidVersion                      = sentinel(KindInvalidVersion, "ecieserr: invalid version byte")
	ErrInvalidCipherSuite                  = sentinel(KindInvalidCipherSuite, "ecieserr: invalid cipher suite byte")
	ErrInvalidEncryptionType                = sentinel(KindInvalidEncryptionType, "ecieserr: invalid encryption type byte")
	ErrInvalidHeaderLength                  = sentinel(KindInvalidHeaderLength, "ecieserr: invalid header length")
	ErrDataTooShortForMultiRecipientHeader  = sentinel(KindDataTooShortForMultiRecipientHeader, "ecieserr: data too short for multi-recipient header")
	ErrDataLengthMismatch                   = sentinel(KindDataLengthMismatch, "ecieserr: data length mismatch")
	ErrMessageLengthMismatch                = sentinel(KindMessageLengthMismatch, "ecieserr: message length mismatch")
	ErrEncryptedSizeExceedsExpected         = sentinel(KindEncryptedSizeExceedsExpected, "ecieserr: encrypted size exceeds expected")

	ErrInvalidPublicKeyFormatOrLength   = sentinel(KindInvalidPublicKeyFormatOrLength, "ecieserr: invalid public key format or length")
	ErrInvalidPublicKeyNotOnCurve       = sentinel(KindInvalidPublicKeyNotOnCurve, "ecieserr: public key not on curve")
	ErrReceivedNullOrUndefinedPublicKey = sentinel(KindReceivedNullOrUndefinedPublicKey, "ecieserr: received null or undefined public key")
	ErrInvalidEphemeralPublicKey        = sentinel(KindInvalidEphemeralPublicKey, "ecieserr: invalid ephemeral public key")
	ErrInvalidSenderPublicKey           = sentinel(KindInvalidSenderPublicKey, "ecieserr: invalid sender public key")
	ErrInvalidRecipientPublicKey        = sentinel(KindInvalidRecipientPublicKey, "ecieserr: invalid recipient public key")
	ErrInvalidIVLength                  = sentinel(KindInvalidIVLength, "ecieserr: invalid iv length")
	ErrInvalidAuthTagLength             = sentinel(KindInvalidAuthTagLength, "ecieserr: invalid auth tag length")
	ErrInvalidAESKeyLength              = sentinel(KindInvalidAESKeyLength, "ecieserr: invalid aes key length")
	ErrSecretComputationFailed          = sentinel(KindSecretComputationFailed, "ecieserr: secret computation failed")
	ErrDecryptionFailed                 = sentinel(KindDecryptionFailed, "ecieserr: decryption failed")
	ErrFailedToDecryptKey               = sentinel(KindFailedToDecryptKey, "ecieserr: failed to decrypt key")
	ErrCannotEncryptEmptyData           = sentinel(KindCannotEncryptEmptyData, "ecieserr: cannot encrypt empty data")
	ErrCannotDecryptEmptyData           = sentinel(KindCannotDecryptEmptyData, "ecieserr: cannot decrypt empty data")
	ErrMessageTooLarge                  = sentinel(KindMessageTooLarge, "ecieserr: message too large")

	ErrRecipientNotFound                                           = sentinel(KindRecipientNotFound, "ecieserr: recipient not found")
	ErrDuplicateRecipientId                                        = sentinel(KindDuplicateRecipientId, "ecieserr: duplicate recipient id")
	ErrTooManyRecipients                                           = sentinel(KindTooManyRecipients, "ecieserr: too many recipients")
	ErrInvalidRecipientCount                                       = sentinel(KindInvalidRecipientCount, "ecieserr: invalid recipient count")
	ErrRecipientCountMismatch                                      = sentinel(KindRecipientCountMismatch, "ecieserr: recipient count mismatch")
	ErrRecipientKeyCountMismatch                                   = sentinel(KindRecipientKeyCountMismatch, "ecieserr: recipient key count mismatch")
	ErrAuthenticationTagIsRequiredForMultiRecipientECIESEncryption = sentinel(KindAuthenticationTagIsRequiredForMultiRecipientECIESEncryption, "ecieserr: authentication tag is required for multi-recipient ecies encryption")
	ErrInvalidEncryptedKeyLength                                   = sentinel(KindInvalidEncryptedKeyLength, "ecieserr: invalid encrypted key length")

	ErrInvalidMnemonic       = sentinel(KindInvalidMnemonic, "ecieserr: invalid mnemonic")
	ErrFailedToDeriveRootKey = sentinel(KindFailedToDeriveRootKey, "ecieserr: failed to derive root key")

	ErrInvalidChecksumConstants               = sentinel(KindInvalidChecksumConstants, "ecieserr: invalid checksum constants")
	ErrInvalidECIESMultipleEncryptedKeySize   = sentinel(KindInvalidECIESMultipleEncryptedKeySize, "ecieserr: invalid ecies multiple encrypted key size")
	ErrInvalidECIESPublicKeyLength            = sentinel(KindInvalidECIESPublicKeyLength, "ecieserr: invalid ecies public key length")
	ErrInvalidECIESMultipleRecipientCountSize = sentinel(KindInvalidECIESMultipleRecipientCountSize, "ecieserr: invalid ecies multiple recipient count size")
	ErrInvalidECIESMultipleDataLengthSize     = sentinel(KindInvalidECIESMultipleDataLengthSize, "ecieserr: invalid ecies multiple data length size")
	ErrInvalidECIESMultipleRecipientIdSize    = sentinel(KindInvalidECIESMultipleRecipientIdSize, "ecieserr: invalid ecies multiple recipient id size")
	ErrCannotOverwriteDefaultConfiguration    = sentinel(KindCannotOverwriteDefaultConfiguration, "ecieserr: cannot overwrite default configuration")
	ErrIdProviderValidationFailed             = sentinel(KindIdProviderValidationFailed, "ecieserr: id provider validation failed")

	ErrEncryptionCancelled = sentinel(KindEncryptionCancelled, "ecieserr: encryption cancelled")
	ErrInvalidOperation    = sentinel(KindInvalidOperation, "ecieserr: invalid operation")
)

// SentinelFor returns the package sentinel error registered for k, or nil if
// k is not a recognized kind.
func SentinelFor(k Kind) error {
	return sentinels[k]
}
