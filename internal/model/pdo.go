package model

import (
	"encoding/json"
	"strings"
	"time"
)

// State is the lifecycle state of a pending decision object.
type State string

const (
	StatePending     State = "pending"
	StateQueued      State = "queued"
	StateUnderReview State = "under_review"
	StateApproved    State = "approved"
	StateRejected    State = "rejected"
	StateOverridden  State = "overridden"
	StateExecuted    State = "executed"
	StateExpired     State = "expired"
	StateWithdrawn   State = "withdrawn"
)

// Terminal reports whether no further transition is permitted from s.
// Approved and Overridden still have an execution step ahead of them;
// everything past that point is final.
func (s State) Terminal() bool {
	switch s {
	case StateRejected, StateExecuted, StateExpired, StateWithdrawn:
		return true
	}
	return false
}

// Outcome is the disposition an operator recorded for a PDO.
type Outcome string

const (
	OutcomeApproved   Outcome = "approved"
	OutcomeRejected   Outcome = "rejected"
	OutcomeOverridden Outcome = "overridden"
)

// StateFor maps a decision outcome to the PDO state it produces.
func (o Outcome) StateFor() (State, bool) {
	switch o {
	case OutcomeApproved:
		return StateApproved, true
	case OutcomeRejected:
		return StateRejected, true
	case OutcomeOverridden:
		return StateOverridden, true
	}
	return "", false
}

// PDO is a pending decision object: one AI-originated decision awaiting
// (or having received) human disposition. The kernel owns these records
// exclusively; they are mutated only through state machine transitions.
type PDO struct {
	ID                    string          `json:"pdo_id"`
	TierRequired          int             `json:"tier_required"`
	State                 State           `json:"state"`
	OriginatingDecisionID string          `json:"originating_decision_id"`
	OriginatingActorID    string          `json:"originating_actor_id"`
	ValueAtRisk           int64           `json:"value_at_risk"`
	Payload               json.RawMessage `json:"payload,omitempty"`
	EnqueuedSequence      uint64          `json:"enqueued_sequence"`
	ClaimedBy             string          `json:"claimed_by,omitempty"`
	Outcome               Outcome         `json:"outcome,omitempty"`
	TTLDeadline           time.Time       `json:"ttl_deadline"`
	CreatedAt             time.Time       `json:"created_at"`
}

// Clone returns a deep copy so callers cannot mutate stored records.
func (p *PDO) Clone() *PDO {
	cp := *p
	if p.Payload != nil {
		cp.Payload = make(json.RawMessage, len(p.Payload))
		copy(cp.Payload, p.Payload)
	}
	return &cp
}

// Spec is what an upstream decision system submits to create a PDO.
type Spec struct {
	TierRequired          int             `json:"tier_required"`
	OriginatingDecisionID string          `json:"originating_decision_id"`
	OriginatingActorID    string          `json:"originating_actor_id"`
	ValueAtRisk           int64           `json:"value_at_risk"`
	Payload               json.RawMessage `json:"payload,omitempty"`
	TTL                   time.Duration   `json:"ttl,omitempty"`
}

// Validate checks a submitted spec before any trusted action is attempted.
// Failures here are ValidationErrors: rejected at admission and never chained
// into the audit log.
func (s Spec) Validate() error {
	if s.TierRequired < 0 {
		return &ValidationError{Field: "tier_required", Reason: "must not be negative"}
	}
	if strings.TrimSpace(s.OriginatingDecisionID) == "" {
		return &ValidationError{Field: "originating_decision_id", Reason: "is required"}
	}
	if strings.TrimSpace(s.OriginatingActorID) == "" {
		return &ValidationError{Field: "originating_actor_id", Reason: "is required"}
	}
	if s.ValueAtRisk < 0 {
		return &ValidationError{Field: "value_at_risk", Reason: "must not be negative"}
	}
	if s.TTL < 0 {
		return &ValidationError{Field: "ttl", Reason: "must not be negative"}
	}
	return nil
}

// OverrideDecision is a human disposition submitted against a claimed PDO.
type OverrideDecision struct {
	PdoID         string  `json:"pdo_id"`
	OperatorID    string  `json:"operator_id"`
	TierUsed      int     `json:"tier_used"`
	Justification string  `json:"justification"`
	IncidentID    string  `json:"incident_id,omitempty"`
	Outcome       Outcome `json:"outcome"`
}

// Attestation is the identity provider's statement about an operator.
// The kernel never re-derives tier; it trusts and logs the attestation.
type Attestation struct {
	OperatorID string `json:"operator_id"`
	Tier       int    `json:"tier"`
}
