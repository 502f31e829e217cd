package model

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func validSpec() Spec {
	return Spec{
		TierRequired:          2,
		OriginatingDecisionID: "dec-001",
		OriginatingActorID:    "agent-7",
		ValueAtRisk:           50_000_00,
		Payload:               json.RawMessage(`{"action":"refund"}`),
		TTL:                   time.Hour,
	}
}

func TestSpecValidateAccepts(t *testing.T) {
	if err := validSpec().Validate(); err != nil {
		t.Fatalf("valid spec rejected: %v", err)
	}
}

func TestSpecValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Spec)
		field  string
	}{
		{"negative tier", func(s *Spec) { s.TierRequired = -1 }, "tier_required"},
		{"missing decision id", func(s *Spec) { s.OriginatingDecisionID = "  " }, "originating_decision_id"},
		{"missing actor id", func(s *Spec) { s.OriginatingActorID = "" }, "originating_actor_id"},
		{"negative value", func(s *Spec) { s.ValueAtRisk = -5 }, "value_at_risk"},
		{"negative ttl", func(s *Spec) { s.TTL = -time.Second }, "ttl"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spec := validSpec()
			tc.mutate(&spec)

			err := spec.Validate()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tc.field {
				t.Errorf("expected field %s, got %s", tc.field, verr.Field)
			}
		})
	}
}

func TestTerminalStates(t *testing.T) {
	terminal := []State{StateRejected, StateExecuted, StateExpired, StateWithdrawn}
	for _, s := range terminal {
		if !s.Terminal() {
			t.Errorf("expected %s to be terminal", s)
		}
	}

	live := []State{StatePending, StateQueued, StateUnderReview, StateApproved, StateOverridden}
	for _, s := range live {
		if s.Terminal() {
			t.Errorf("expected %s to be non-terminal", s)
		}
	}
}

func TestOutcomeStateFor(t *testing.T) {
	cases := map[Outcome]State{
		OutcomeApproved:   StateApproved,
		OutcomeRejected:   StateRejected,
		OutcomeOverridden: StateOverridden,
	}
	for outcome, want := range cases {
		got, ok := outcome.StateFor()
		if !ok || got != want {
			t.Errorf("outcome %s: got (%s, %v), want (%s, true)", outcome, got, ok, want)
		}
	}

	if _, ok := Outcome("garbage").StateFor(); ok {
		t.Error("unknown outcome must not map to a state")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	p := &PDO{
		ID:      "pdo-abc",
		State:   StateQueued,
		Payload: json.RawMessage(`{"k":"v"}`),
	}
	cp := p.Clone()

	cp.State = StateExecuted
	cp.Payload[2] = 'x'

	if p.State != StateQueued {
		t.Error("clone mutation leaked into original state")
	}
	if string(p.Payload) != `{"k":"v"}` {
		t.Error("clone mutation leaked into original payload")
	}
}

func TestNewPdoIDFormat(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewPdoID()
		if !strings.HasPrefix(id, "pdo-") {
			t.Fatalf("expected pdo- prefix, got %s", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}
