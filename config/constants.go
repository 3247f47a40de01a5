// Package config is the Constants & Invariant Validator component
// (spec.md §4.1): an immutable CryptoConfig record, a registry of named
// invariants that validates candidate configs, and a process-wide registry
// of frozen configurations with provenance, modeled on the
// model/store/store.go singleton (package-level default + Init/MustInit).
package config

import (
	"github.com/Digital-Defiance/ecies-lib-sub006/ecieserr"
	"github.com/Digital-Defiance/ecies-lib-sub006/idprovider"
)

// Frozen cryptographic parameters (spec.md §3 "CryptoConfig (frozen)").
const (
	Curve = "secp256k1"

	MnemonicStrength128 = 128
	MnemonicStrength256 = 256

	SymmetricKeySize = 32
	IVSize           = 16
	AuthTagSize      = 16

	RawPublicKeyLength        = 64
	PublicKeyLength           = RawPublicKeyLength + 1
	CompressedPublicKeyLength = 33

	VersionByteSize        = 1
	CipherSuiteByteSize    = 1
	EncryptionTypeByteSize = 1

	ChecksumSize = 64 // SHA3-512

	CurrentVersion     = 1
	CurrentCipherSuite = 1 // "secp256k1 + AES-256-GCM + HKDF-SHA256"
)

// HDPath is the frozen BIP32 derivation path (spec.md §3): m/44'/60'/0'/0/0.
var HDPath = "m/44'/60'/0'/0/0"

// MultipleConstants holds the MULTIPLE-frame field widths that are fixed by
// invariant (RecipientCountSize, DataLengthSize, EncryptedKeySize) alongside
// the one field (RecipientIdSize) derived from the configured IdProvider.
type MultipleConstants struct {
	RecipientCountSize int
	DataLengthSize     int
	RecipientIdSize    int
	EncryptedKeySize   int
}

// CryptoConfig is the immutable configuration record spec.md §4.1 describes.
// Use NewDefault or Merge to construct one; treat the result as read-only.
type CryptoConfig struct {
	Curve              string
	HDPath             string
	MnemonicStrengths  []int
	SymmetricKeySize   int
	IVSize             int
	AuthTagSize        int
	RawPublicKeyLength int
	PublicKeyLength    int
	ChecksumSize       int
	MemberIdLength     int
	Multiple           MultipleConstants
	IdProvider         idprovider.Provider
}

// NewDefault returns the default CryptoConfig, which always uses a GuidV4 id
// provider (16-byte ids); Merge swaps in a different provider.
func NewDefault() *CryptoConfig {
	provider := idprovider.NewGuidV4Provider()
	return build(provider)
}

// Merge deep-clones base and applies overrides, recomputing every derived
// field (MemberIdLength, Multiple.RecipientIdSize) from the resulting
// IdProvider (spec.md §4.1). If overrides leaves IdProvider nil, base's
// provider is kept.
func Merge(base *CryptoConfig, overrides CryptoConfig) *CryptoConfig {
	clone := *base
	clone.Multiple = base.Multiple
	clone.MnemonicStrengths = append([]int(nil), base.MnemonicStrengths...)

	if overrides.Curve != "" {
		clone.Curve = overrides.Curve
	}
	if overrides.HDPath != "" {
		clone.HDPath = overrides.HDPath
	}
	if overrides.MnemonicStrengths != nil {
		clone.MnemonicStrengths = append([]int(nil), overrides.MnemonicStrengths...)
	}
	if overrides.SymmetricKeySize != 0 {
		clone.SymmetricKeySize = overrides.SymmetricKeySize
	}
	if overrides.IVSize != 0 {
		clone.IVSize = overrides.IVSize
	}
	if overrides.AuthTagSize != 0 {
		clone.AuthTagSize = overrides.AuthTagSize
	}

	provider := clone.IdProvider
	if overrides.IdProvider != nil {
		// Tie-break (spec.md §4.1): an explicit IdProvider always wins over
		// any caller-supplied MemberIdLength, which is silently overwritten.
		provider = overrides.IdProvider
	}
	clone.IdProvider = provider
	clone.MemberIdLength = provider.ByteWidth()
	clone.Multiple.RecipientIdSize = provider.ByteWidth()
	clone.Multiple.EncryptedKeySize = clone.PublicKeyLength + clone.IVSize + clone.AuthTagSize + clone.SymmetricKeySize

	return &clone
}

func build(provider idprovider.Provider) *CryptoConfig {
	cfg := &CryptoConfig{
		Curve:              Curve,
		HDPath:             HDPath,
		MnemonicStrengths:  []int{MnemonicStrength128, MnemonicStrength256},
		SymmetricKeySize:   SymmetricKeySize,
		IVSize:             IVSize,
		AuthTagSize:        AuthTagSize,
		RawPublicKeyLength: RawPublicKeyLength,
		PublicKeyLength:    PublicKeyLength,
		ChecksumSize:       ChecksumSize,
		MemberIdLength:     provider.ByteWidth(),
		Multiple: MultipleConstants{
			RecipientCountSize: 2,
			DataLengthSize:     8,
			RecipientIdSize:    provider.ByteWidth(),
			EncryptedKeySize:   PublicKeyLength + IVSize + AuthTagSize + SymmetricKeySize,
		},
		IdProvider: provider,
	}
	return cfg
}

// invariant names a single cross-field check over a CryptoConfig and the
// specific ecieserr.Kind its failure is reported as. Kinds are per field
// group rather than one catch-all; related invariants (the two id-width
// checks, the two encrypted-key-size checks) share a kind.
type invariant struct {
	name  string
	kind  ecieserr.Kind
	check func(cfg *CryptoConfig) (ok bool, actual, expected any)
}

var invariants = []invariant{
	{
		name: "PUBLIC_KEY_LENGTH = RAW_PUBLIC_KEY_LENGTH + 1",
		kind: ecieserr.KindInvalidECIESPublicKeyLength,
		check: func(cfg *CryptoConfig) (bool, any, any) {
			return cfg.PublicKeyLength == cfg.RawPublicKeyLength+1, cfg.PublicKeyLength, cfg.RawPublicKeyLength + 1
		},
	},
	{
		name: "MULTIPLE.RECIPIENT_COUNT_SIZE = 2",
		kind: ecieserr.KindInvalidECIESMultipleRecipientCountSize,
		check: func(cfg *CryptoConfig) (bool, any, any) {
			return cfg.Multiple.RecipientCountSize == 2, cfg.Multiple.RecipientCountSize, 2
		},
	},
	{
		name: "MULTIPLE.DATA_LENGTH_SIZE = 8",
		kind: ecieserr.KindInvalidECIESMultipleDataLengthSize,
		check: func(cfg *CryptoConfig) (bool, any, any) {
			return cfg.Multiple.DataLengthSize == 8, cfg.Multiple.DataLengthSize, 8
		},
	},
	{
		name: "MULTIPLE.RECIPIENT_ID_SIZE = idProvider.byte_width",
		kind: ecieserr.KindInvalidECIESMultipleRecipientIdSize,
		check: func(cfg *CryptoConfig) (bool, any, any) {
			want := cfg.IdProvider.ByteWidth()
			return cfg.Multiple.RecipientIdSize == want, cfg.Multiple.RecipientIdSize, want
		},
	},
	{
		name: "MEMBER_ID_LENGTH = idProvider.byte_width",
		kind: ecieserr.KindInvalidECIESMultipleRecipientIdSize,
		check: func(cfg *CryptoConfig) (bool, any, any) {
			want := cfg.IdProvider.ByteWidth()
			return cfg.MemberIdLength == want, cfg.MemberIdLength, want
		},
	},
	{
		name: "MULTIPLE.ENCRYPTED_KEY_SIZE = PUBLIC_KEY_LENGTH + IV_SIZE + AUTH_TAG_SIZE + SYMMETRIC_KEY_SIZE",
		kind: ecieserr.KindInvalidECIESMultipleEncryptedKeySize,
		check: func(cfg *CryptoConfig) (bool, any, any) {
			want := cfg.PublicKeyLength + cfg.IVSize + cfg.AuthTagSize + cfg.SymmetricKeySize
			return cfg.Multiple.EncryptedKeySize == want, cfg.Multiple.EncryptedKeySize, want
		},
	},
	{
		name: "MULTIPLE.ENCRYPTED_KEY_SIZE = 129",
		kind: ecieserr.KindInvalidECIESMultipleEncryptedKeySize,
		check: func(cfg *CryptoConfig) (bool, any, any) {
			return cfg.Multiple.EncryptedKeySize == 129, cfg.Multiple.EncryptedKeySize, 129
		},
	},
	{
		name: "CHECKSUM_SIZE = 64",
		kind: ecieserr.KindInvalidChecksumConstants,
		check: func(cfg *CryptoConfig) (bool, any, any) {
			return cfg.ChecksumSize == 64, cfg.ChecksumSize, 64
		},
	},
}

// Validate runs every declared invariant against cfg, returning an
// *ecieserr.Error carrying the specific invariant's own Kind plus its name
// and actual/expected values (spec.md §4.1).
func Validate(cfg *CryptoConfig) error {
	if cfg.IdProvider == nil {
		return ecieserr.Wrap(ecieserr.KindIdProviderValidationFailed, "config.Validate",
			map[string]any{"reason": "IdProvider is nil"})
	}
	for _, inv := range invariants {
		ok, actual, expected := inv.check(cfg)
		if !ok {
			return ecieserr.Wrap(inv.kind, "config.Validate",
				map[string]any{"invariant": inv.name, "actual": actual, "expected": expected})
		}
	}
	return idprovider.EnsureValidated(cfg.IdProvider)
}
