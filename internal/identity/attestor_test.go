package identity

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestRosterAttest(t *testing.T) {
	r := NewRoster(map[string]int{"op-alice": 3, "op-bob": 1})

	att, err := r.Attest(context.Background(), "op-alice", "cred")
	if err != nil {
		t.Fatal(err)
	}
	if att.OperatorID != "op-alice" || att.Tier != 3 {
		t.Errorf("attestation = %+v", att)
	}

	// Surrounding whitespace is not a different operator.
	att, err = r.Attest(context.Background(), "  op-bob  ", "cred")
	if err != nil {
		t.Fatal(err)
	}
	if att.OperatorID != "op-bob" || att.Tier != 1 {
		t.Errorf("attestation = %+v", att)
	}
}

func TestRosterUnknownOperator(t *testing.T) {
	r := NewRoster(map[string]int{"op-alice": 3})
	if _, err := r.Attest(context.Background(), "op-mallory", "cred"); err == nil {
		t.Fatal("unknown operator attested")
	}
}

func TestRosterNilMap(t *testing.T) {
	r := NewRoster(nil)
	if _, err := r.Attest(context.Background(), "anyone", "cred"); err == nil {
		t.Fatal("empty roster attested an operator")
	}
}

func TestRosterCancelledContext(t *testing.T) {
	r := NewRoster(map[string]int{"op-alice": 3})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Attest(ctx, "op-alice", "cred"); err == nil {
		t.Fatal("cancelled context ignored")
	}
}

func TestLoadRoster(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	if err := os.WriteFile(path, []byte("op-alice: 3\nop-root: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	r, err := LoadRoster(path)
	if err != nil {
		t.Fatal(err)
	}
	att, err := r.Attest(context.Background(), "op-root", "cred")
	if err != nil {
		t.Fatal(err)
	}
	if att.Tier != 4 {
		t.Errorf("tier = %d", att.Tier)
	}
}

func TestLoadRosterMissingFile(t *testing.T) {
	if _, err := LoadRoster(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("missing roster file accepted")
	}
}
