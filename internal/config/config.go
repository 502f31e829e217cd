// Package config loads kernel configuration. Tier ceilings are deployment
// configuration, not hardcoded constants: the governing policy documents
// leave the top tiers "unlimited but heavily audited".
package config

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/occkernel/internal/justify"
)

// RetryConfig bounds the audit-write retry loop on storage failure.
type RetryConfig struct {
	Attempts int           `yaml:"attempts"`
	Backoff  time.Duration `yaml:"backoff"`
}

// KernelConfig holds all configurable kernel parameters.
type KernelConfig struct {
	// QueueCapacity bounds non-emergency admissions.
	QueueCapacity int `yaml:"queue_capacity" env:"OCC_QUEUE_CAPACITY"`

	// EmergencyTier is the top ordinal: PDOs at or above it always admit,
	// and only this tier may exercise the self-override exception.
	EmergencyTier int `yaml:"emergency_tier" env:"OCC_EMERGENCY_TIER"`

	// KillSwitchTier is the minimum attested tier that may engage or
	// disengage the kill switch.
	KillSwitchTier int `yaml:"kill_switch_tier" env:"OCC_KILL_SWITCH_TIER"`

	// TierCeilings maps tier ordinal to the maximum value at risk (minor
	// currency units) that tier may commit. A ceiling <= 0 means unlimited.
	TierCeilings map[int]int64 `yaml:"tier_ceilings"`

	// DefaultTTL applies to PDOs submitted without an explicit TTL.
	DefaultTTL time.Duration `yaml:"default_ttl" env:"OCC_DEFAULT_TTL"`

	// SweepInterval is how often the TTL sweeper scans for expired PDOs.
	SweepInterval time.Duration `yaml:"sweep_interval" env:"OCC_SWEEP_INTERVAL"`

	// SelfCheckInterval is how often the running kernel verifies the audit
	// chain and replays it against live state. Zero disables the periodic
	// check.
	SelfCheckInterval time.Duration `yaml:"self_check_interval" env:"OCC_SELF_CHECK_INTERVAL"`

	Justification justify.Rules `yaml:"justification"`

	AuditDBPath    string `yaml:"audit_db_path" env:"OCC_AUDIT_DB"`
	SigningKeyPath string `yaml:"signing_key_path" env:"OCC_SIGNING_KEY"`
	SigningKeyID   string `yaml:"signing_key_id" env:"OCC_SIGNING_KEY_ID"`
	RosterPath     string `yaml:"roster_path" env:"OCC_ROSTER"`
	KillSwitchPath string `yaml:"kill_switch_path" env:"OCC_KILL_SWITCH"`

	Port int `yaml:"port" env:"OCC_PORT"`

	Retry RetryConfig `yaml:"retry"`
}

// DefaultConfig returns the built-in kernel configuration.
func DefaultConfig() *KernelConfig {
	return &KernelConfig{
		QueueCapacity:  256,
		EmergencyTier:  4,
		KillSwitchTier: 4,
		TierCeilings: map[int]int64{
			1: 100_000_00,    // $100k
			2: 1_000_000_00,  // $1M
			3: 10_000_000_00, // $10M
			4: 0,             // unlimited, heavily audited
		},
		DefaultTTL:        4 * time.Hour,
		SweepInterval:     30 * time.Second,
		SelfCheckInterval: time.Minute,
		Justification:     justify.DefaultRules(),
		AuditDBPath:       DefaultAuditDBPath(),
		KillSwitchPath:    DefaultKillSwitchPath(),
		Port:              50061,
		Retry: RetryConfig{
			Attempts: 3,
			Backoff:  100 * time.Millisecond,
		},
	}
}

// DefaultAuditDBPath returns the default audit database location.
func DefaultAuditDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "occkernel-audit.db")
	}
	return filepath.Join(home, ".occkernel", "audit.db")
}

// DefaultKillSwitchPath returns the default kill switch state location.
func DefaultKillSwitchPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "occkernel-killswitch.json")
	}
	return filepath.Join(home, ".occkernel", "killswitch.json")
}

// Load reads kernel configuration from a YAML file, overlaying defaults,
// then applies environment variable overrides. Empty path falls back to
// ~/.occkernel/kernel.yaml; a missing file returns defaults.
func Load(path string) (*KernelConfig, error) {
	cfg, _, err := LoadWithHash(path)
	return cfg, err
}

// LoadWithHash loads configuration and returns the SHA-256 of the raw YAML
// bytes on disk. The hash is stamped into every audit entry committed under
// this configuration, so forensics can tell which ceilings were in force.
// When no file exists (defaults used), the hash is the SHA-256 of empty
// input.
func LoadWithHash(path string) (*KernelConfig, string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return applyEnv(DefaultConfig(), hashBytes(nil))
		}
		path = filepath.Join(home, ".occkernel", "kernel.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return applyEnv(DefaultConfig(), hashBytes(nil))
		}
		return nil, "", fmt.Errorf("config: read kernel config: %w", err)
	}

	// Start with defaults, YAML overwrites only specified fields
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, "", fmt.Errorf("config: parse kernel config: %w", err)
	}

	return applyEnv(cfg, hashBytes(data))
}

// Validate rejects configurations the kernel cannot run with.
func (c *KernelConfig) Validate() error {
	if c.QueueCapacity <= 0 {
		return fmt.Errorf("config: queue_capacity must be positive")
	}
	if c.EmergencyTier <= 0 {
		return fmt.Errorf("config: emergency_tier must be positive")
	}
	if c.Retry.Attempts <= 0 {
		return fmt.Errorf("config: retry.attempts must be positive")
	}
	return nil
}

// CeilingFor returns the value ceiling for a tier. Unlisted tiers have a
// zero ceiling (nothing may be committed); a configured ceiling <= 0 means
// unlimited.
func (c *KernelConfig) CeilingFor(tier int) (ceiling int64, unlimited bool) {
	v, ok := c.TierCeilings[tier]
	if !ok {
		return 0, false
	}
	if v <= 0 {
		return 0, true
	}
	return v, false
}

func applyEnv(cfg *KernelConfig, hash string) (*KernelConfig, string, error) {
	if err := env.Parse(cfg); err != nil {
		return nil, "", fmt.Errorf("config: parse env: %w", err)
	}
	return cfg, hash, nil
}

func hashBytes(data []byte) string {
	h := sha256.Sum256(data)
	return "sha256:" + hex.EncodeToString(h[:])
}
