package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	if cfg.QueueCapacity != 256 {
		t.Errorf("queue_capacity = %d", cfg.QueueCapacity)
	}
	if cfg.EmergencyTier != 4 {
		t.Errorf("emergency_tier = %d", cfg.EmergencyTier)
	}
	if cfg.DefaultTTL != 4*time.Hour {
		t.Errorf("default_ttl = %s", cfg.DefaultTTL)
	}
	if cfg.Retry.Attempts != 3 {
		t.Errorf("retry.attempts = %d", cfg.Retry.Attempts)
	}
	if cfg.SelfCheckInterval != time.Minute {
		t.Errorf("self_check_interval = %s", cfg.SelfCheckInterval)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kernel.yaml")
	data := []byte("queue_capacity: 8\ntier_ceilings:\n  1: 5000\n  2: 0\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.QueueCapacity != 8 {
		t.Errorf("queue_capacity = %d", cfg.QueueCapacity)
	}
	// Unspecified fields keep defaults.
	if cfg.EmergencyTier != 4 {
		t.Errorf("emergency_tier = %d", cfg.EmergencyTier)
	}
	if cfg.SweepInterval != 30*time.Second {
		t.Errorf("sweep_interval = %s", cfg.SweepInterval)
	}

	if c, unlimited := cfg.CeilingFor(1); c != 5000 || unlimited {
		t.Errorf("tier 1 ceiling = %d, unlimited = %v", c, unlimited)
	}
	if _, unlimited := cfg.CeilingFor(2); !unlimited {
		t.Error("tier 2 zero ceiling should mean unlimited")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.QueueCapacity != DefaultConfig().QueueCapacity {
		t.Errorf("queue_capacity = %d", cfg.QueueCapacity)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kernel.yaml")
	if err := os.WriteFile(path, []byte("queue_capacity: [not a number"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("malformed yaml accepted")
	}
}

func TestLoadWithHashStable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kernel.yaml")
	if err := os.WriteFile(path, []byte("queue_capacity: 8\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, h1, err := LoadWithHash(path)
	if err != nil {
		t.Fatal(err)
	}
	_, h2, err := LoadWithHash(path)
	if err != nil {
		t.Fatal(err)
	}
	if h1 != h2 {
		t.Errorf("hash unstable: %s vs %s", h1, h2)
	}
	if len(h1) != len("sha256:")+64 {
		t.Errorf("hash format %q", h1)
	}

	if err := os.WriteFile(path, []byte("queue_capacity: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, h3, err := LoadWithHash(path)
	if err != nil {
		t.Fatal(err)
	}
	if h3 == h1 {
		t.Error("hash unchanged after config edit")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("OCC_QUEUE_CAPACITY", "99")
	t.Setenv("OCC_PORT", "55555")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.QueueCapacity != 99 {
		t.Errorf("queue_capacity = %d", cfg.QueueCapacity)
	}
	if cfg.Port != 55555 {
		t.Errorf("port = %d", cfg.Port)
	}
}

func TestCeilingFor(t *testing.T) {
	cfg := DefaultConfig()

	if c, unlimited := cfg.CeilingFor(3); c != 10_000_000_00 || unlimited {
		t.Errorf("tier 3 = %d, unlimited = %v", c, unlimited)
	}
	if _, unlimited := cfg.CeilingFor(4); !unlimited {
		t.Error("tier 4 should be unlimited")
	}
	if c, unlimited := cfg.CeilingFor(7); c != 0 || unlimited {
		t.Error("unlisted tier should have zero committable ceiling")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*KernelConfig)
	}{
		{"zero queue capacity", func(c *KernelConfig) { c.QueueCapacity = 0 }},
		{"zero emergency tier", func(c *KernelConfig) { c.EmergencyTier = 0 }},
		{"zero retry attempts", func(c *KernelConfig) { c.Retry.Attempts = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("invalid config accepted")
			}
		})
	}
}
