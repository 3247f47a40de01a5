package config

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/crypto/sha3"

	"github.com/Digital-Defiance/ecies-lib-sub006/ecieserr"
)

// DefaultKey is the registry key reserved for the built-in default
// configuration; registering under it always fails (spec.md §4.1).
const DefaultKey = "default"

// Provenance records where a registered configuration came from and a
// checksum of its canonical serialization, for audit/debugging (spec.md
// §4.1 "source tag, timestamp, SHA3-512 checksum ... optional description").
type Provenance struct {
	Source      string
	Timestamp   time.Time
	Checksum    [ChecksumSize]byte
	Description string
}

type entry struct {
	config     *CryptoConfig
	provenance Provenance
}

var (
	registryMu sync.RWMutex
	registry   = map[string]*entry{}
)

func init() {
	resetLocked()
}

// Checksum computes the SHA3-512 digest of cfg's canonical serialization,
// the same hash golang.org/x/crypto already provides.
func Checksum(cfg *CryptoConfig) [ChecksumSize]byte {
	canonical := fmt.Sprintf(
		"curve=%s|hdpath=%s|strengths=%v|symkey=%d|iv=%d|tag=%d|rawpk=%d|pk=%d|checksum=%d|memberid=%d|recipcount=%d|datalen=%d|recipid=%d|enckey=%d|provider=%s",
		cfg.Curve, cfg.HDPath, cfg.MnemonicStrengths, cfg.SymmetricKeySize, cfg.IVSize, cfg.AuthTagSize,
		cfg.RawPublicKeyLength, cfg.PublicKeyLength, cfg.ChecksumSize, cfg.MemberIdLength,
		cfg.Multiple.RecipientCountSize, cfg.Multiple.DataLengthSize, cfg.Multiple.RecipientIdSize,
		cfg.Multiple.EncryptedKeySize, cfg.IdProvider.Name(),
	)
	return sha3.Sum512([]byte(canonical))
}

// Register validates cfg, then freezes it into the process-wide registry
// under key with the given provenance. Registering under DefaultKey always
// fails with CannotOverwriteDefaultConfiguration; re-registering any other
// key overwrites the prior entry without mutating the CryptoConfig value
// callers already hold (configs are never mutated in place).
func Register(key string, cfg *CryptoConfig, source, description string) (Provenance, error) {
	if key == DefaultKey {
		slog.Warn("[config] cannot overwrite default configuration", "key", key, "source", source)
		return Provenance{}, ecieserr.Wrap(ecieserr.KindCannotOverwriteDefaultConfiguration, "config.Register",
			map[string]any{"key": key})
	}
	if err := Validate(cfg); err != nil {
		slog.Warn("[config] registration failed invariant validation", "key", key, "source", source, "error", err)
		return Provenance{}, err
	}

	frozen := *cfg
	prov := Provenance{
		Source:      source,
		Timestamp:   time.Now(),
		Checksum:    Checksum(&frozen),
		Description: description,
	}

	registryMu.Lock()
	registry[key] = &entry{config: &frozen, provenance: prov}
	registryMu.Unlock()

	slog.Debug("[config] registered configuration", "key", key, "source", source)
	return prov, nil
}

// Get returns the frozen configuration registered under key and its
// provenance, failing if no such key was registered.
func Get(key string) (*CryptoConfig, Provenance, error) {
	registryMu.RLock()
	e, ok := registry[key]
	registryMu.RUnlock()
	if !ok {
		return nil, Provenance{}, ecieserr.Wrap(ecieserr.KindInvalidOperation, "config.Get",
			map[string]any{"reason": "no configuration registered under key", "key": key})
	}
	cfg := *e.config
	return &cfg, e.provenance, nil
}

// Clear resets the registry to hold only the default entry, the same
// "process-wide state ... cleared on explicit request" spec.md §6 describes.
func Clear() {
	registryMu.Lock()
	resetLocked()
	registryMu.Unlock()
	slog.Debug("[config] registry cleared to default-only state")
}

func resetLocked() {
	def := NewDefault()
	registry = map[string]*entry{
		DefaultKey: {
			config: def,
			provenance: Provenance{
				Source:    "config.NewDefault",
				Timestamp: time.Now(),
				Checksum:  Checksum(def),
			},
		},
	}
}

// MustInit registers cfg under key and panics on any validation or
// registry failure — the panicking counterpart to Register, mirroring the
// MustInit/Init pairing in model/store/store.go.
func MustInit(key string, cfg *CryptoConfig, source, description string) Provenance {
	prov, err := Register(key, cfg, source, description)
	if err != nil {
		panic(err)
	}
	return prov
}
