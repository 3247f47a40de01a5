// Package ecies is the Service Facade spec.md §2 describes: a single entry
// point that validates a configuration once at construction time and
// dispatches every operation to the single/multi codecs, grounded on
// ai/ai.go's shape (a Config struct plus New(cfg) *Instant holding worker
// clients — here, codecs instead of provider SDK clients).
package ecies

import (
	"context"
	"log/slog"

	"github.com/Digital-Defiance/ecies-lib-sub006/config"
	cryptocore "github.com/Digital-Defiance/ecies-lib-sub006/crypto"
	"github.com/Digital-Defiance/ecies-lib-sub006/ecieserr"
	"github.com/Digital-Defiance/ecies-lib-sub006/idprovider"
	"github.com/Digital-Defiance/ecies-lib-sub006/multi"
	"github.com/Digital-Defiance/ecies-lib-sub006/single"
)

// Config is the caller-supplied construction input. A zero value selects
// config.NewDefault() outright; any non-zero field overrides the
// corresponding default field via config.Merge. Full specifies a complete
// record instead and takes precedence over every other field when set
// (spec.md §6 "accepts partial ECIES configuration or a full Constants
// record").
type Config struct {
	Full *config.CryptoConfig

	Curve             string
	HDPath            string
	MnemonicStrengths []int
	SymmetricKeySize  int
	IVSize            int
	AuthTagSize       int
	IdProvider        idprovider.Provider
}

// Service is the constructed facade: an immutable, validated CryptoConfig
// plus the methods that dispatch to the codec packages. Build one with New
// and reuse it; Service holds no mutable state of its own beyond the frozen
// config (spec.md §4.1's "treat the result as read-only").
type Service struct {
	cfg *config.CryptoConfig
}

// New validates cfg (merging partial overrides onto the default record when
// Full is unset) and returns a ready Service. Construction fails if
// idProvider.byte_width != MEMBER_ID_LENGTH, if any required Provider method
// is missing its contract (idprovider.EnsureValidated's self-check), or if
// any other declared invariant fails (spec.md §6 "Library surface").
func New(cfg Config) (*Service, error) {
	var resolved *config.CryptoConfig
	if cfg.Full != nil {
		resolved = cfg.Full
	} else {
		resolved = config.Merge(config.NewDefault(), config.CryptoConfig{
			Curve:             cfg.Curve,
			HDPath:            cfg.HDPath,
			MnemonicStrengths: cfg.MnemonicStrengths,
			SymmetricKeySize:  cfg.SymmetricKeySize,
			IVSize:            cfg.IVSize,
			AuthTagSize:       cfg.AuthTagSize,
			IdProvider:        cfg.IdProvider,
		})
	}

	if err := config.Validate(resolved); err != nil {
		slog.Warn("[ecies] construction failed invariant validation", "error", err)
		return nil, err
	}
	slog.Debug("[ecies] service constructed", "id_provider", resolved.IdProvider.Name(), "member_id_length", resolved.MemberIdLength)
	return &Service{cfg: resolved}, nil
}

// Config returns the Service's frozen, validated configuration.
func (s *Service) Config() *config.CryptoConfig {
	cfg := *s.cfg
	return &cfg
}

// recipientIDWidth is the configured IdProvider's byte width, the field
// MULTIPLE frames use for every recipient id (spec.md §4.1/§4.6).
func (s *Service) recipientIDWidth() int {
	return s.cfg.IdProvider.ByteWidth()
}

// EncryptSimple seals plaintext for a single recipient in SIMPLE form (no
// explicit length field).
func (s *Service) EncryptSimple(recipientPublicKey, plaintext, preamble []byte) ([]byte, error) {
	return single.EncryptSimple(recipientPublicKey, plaintext, preamble)
}

// EncryptSingle seals plaintext for a single recipient in SINGLE form (an
// explicit 8-byte big-endian length field follows the header).
func (s *Service) EncryptSingle(recipientPublicKey, plaintext, preamble []byte) ([]byte, error) {
	return single.EncryptSingle(recipientPublicKey, plaintext, preamble)
}

// DecryptSimple parses and opens a SIMPLE frame.
func (s *Service) DecryptSimple(recipientPrivateKey, data []byte, preambleSize int) ([]byte, error) {
	f, err := single.ParseSimple(data, preambleSize)
	if err != nil {
		return nil, err
	}
	return single.DecryptSimple(recipientPrivateKey, f)
}

// DecryptSingle parses and opens a SINGLE frame.
func (s *Service) DecryptSingle(recipientPrivateKey, data []byte, preambleSize int) ([]byte, error) {
	f, err := single.ParseSingle(data, preambleSize)
	if err != nil {
		return nil, err
	}
	return single.DecryptSingle(recipientPrivateKey, f)
}

// EncryptMultiple seals plaintext once and wraps the content key separately
// for every recipient (spec.md §4.6). Every recipient.ID must be exactly
// s.recipientIDWidth() bytes — the configured IdProvider's byte width. ctx
// is checked at each recipient-loop iteration (spec.md §5 "cooperatively
// cancellable at recipient-loop boundaries").
func (s *Service) EncryptMultiple(ctx context.Context, recipients []multi.Recipient, plaintext, preamble []byte) ([]byte, error) {
	return multi.Encrypt(ctx, recipients, plaintext, preamble, s.recipientIDWidth())
}

// DecryptMultiple parses a MULTIPLE frame and opens the plaintext for
// recipientID using recipientPrivateKey.
func (s *Service) DecryptMultiple(recipientID, recipientPrivateKey, data []byte, preambleSize int) ([]byte, error) {
	f, err := multi.Parse(data, preambleSize, s.recipientIDWidth())
	if err != nil {
		return nil, err
	}
	return multi.Decrypt(f, recipientID, recipientPrivateKey)
}

// GenerateIdentity creates a fresh secp256k1 key pair plus a mnemonic
// phrase that deterministically reproduces it via HD derivation, convenient
// for callers that want a single call to seed a new member record.
func (s *Service) GenerateIdentity(strengthBits int) (*cryptocore.Mnemonic, *cryptocore.KeyPair, error) {
	m, err := cryptocore.NewMnemonic(strengthBits)
	if err != nil {
		return nil, nil, err
	}
	seed, err := m.Seed("")
	if err != nil {
		m.Destroy()
		return nil, nil, err
	}
	defer cryptocore.Zero(seed)

	kp, err := cryptocore.DeriveKeyPair(seed)
	if err != nil {
		m.Destroy()
		return nil, nil, err
	}
	return m, kp, nil
}

// Sign and Verify expose the ECDSA layer directly; they don't depend on the
// Service's configuration beyond reusing its validated construction as a
// single entry point for callers that otherwise only import this package.
func (s *Service) Sign(privateKey, message []byte) ([]byte, error) {
	return cryptocore.Sign(privateKey, message)
}

func (s *Service) Verify(publicKey, message, sig []byte) bool {
	return cryptocore.Verify(publicKey, message, sig)
}

// NewRecipientID generates a fresh recipient identifier using the Service's
// configured IdProvider.
func (s *Service) NewRecipientID() ([]byte, error) {
	id, err := s.cfg.IdProvider.Generate()
	if err != nil {
		return nil, ecieserr.Wrap(ecieserr.KindIdProviderValidationFailed, "ecies.NewRecipientID", nil)
	}
	return id, nil
}
