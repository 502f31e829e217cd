// Package pdo defines the PDO lifecycle state machine. Every mutation of a
// live PDO record goes through one of the transition functions here; illegal
// attempts fail with InvalidTransitionError and leave the record untouched.
package pdo

import (
	"time"

	"github.com/ppiankov/occkernel/internal/model"
)

// Action type names recorded in audit entries for each transition. The
// replay engine folds over these to reconstruct state.
const (
	ActionCreated   = "pdo.created"
	ActionEnqueued  = "pdo.enqueued"
	ActionClaimed   = "pdo.claimed"
	ActionDecided   = "pdo.decided"
	ActionExecuted  = "pdo.executed"
	ActionExpired   = "pdo.expired"
	ActionWithdrawn = "pdo.withdrawn"
)

// Create builds a Pending PDO from a validated spec.
func Create(spec model.Spec, id string, now time.Time) *model.PDO {
	deadline := time.Time{}
	if spec.TTL > 0 {
		deadline = now.Add(spec.TTL)
	}
	return &model.PDO{
		ID:                    id,
		TierRequired:          spec.TierRequired,
		State:                 model.StatePending,
		OriginatingDecisionID: spec.OriginatingDecisionID,
		OriginatingActorID:    spec.OriginatingActorID,
		ValueAtRisk:           spec.ValueAtRisk,
		Payload:               spec.Payload,
		TTLDeadline:           deadline,
		CreatedAt:             now.UTC(),
	}
}

// Enqueue moves a Pending PDO into the queue, stamping its admission sequence.
func Enqueue(p *model.PDO, sequence uint64) error {
	if p.State != model.StatePending {
		return &model.InvalidTransitionError{PdoID: p.ID, From: p.State, Op: "enqueue"}
	}
	p.State = model.StateQueued
	p.EnqueuedSequence = sequence
	return nil
}

// Claim takes exclusive review ownership of a Queued PDO. A repeat claim by
// the current owner is an idempotent no-op; a claim against another owner
// fails with ClaimConflictError.
func Claim(p *model.PDO, operatorID string) error {
	switch p.State {
	case model.StateQueued:
		p.State = model.StateUnderReview
		p.ClaimedBy = operatorID
		return nil
	case model.StateUnderReview:
		if p.ClaimedBy == operatorID {
			return nil
		}
		return &model.ClaimConflictError{PdoID: p.ID, Owner: p.ClaimedBy, Claimant: operatorID}
	}
	return &model.InvalidTransitionError{PdoID: p.ID, From: p.State, Op: "claim"}
}

// Decide records an operator outcome on an UnderReview PDO.
func Decide(p *model.PDO, outcome model.Outcome) error {
	next, ok := outcome.StateFor()
	if !ok {
		return &model.InvalidTransitionError{PdoID: p.ID, From: p.State, Op: "decide"}
	}
	if p.State != model.StateUnderReview {
		return &model.InvalidTransitionError{PdoID: p.ID, From: p.State, Op: "decide"}
	}
	p.State = next
	p.Outcome = outcome
	return nil
}

// Execute marks a decided PDO as executed downstream. Only Approved and
// Overridden PDOs reach the execution target.
func Execute(p *model.PDO) error {
	if p.State != model.StateApproved && p.State != model.StateOverridden {
		return &model.InvalidTransitionError{PdoID: p.ID, From: p.State, Op: "execute"}
	}
	p.State = model.StateExecuted
	return nil
}

// Expire transitions a PDO whose TTL deadline passed. Legal only from
// Queued and UnderReview.
func Expire(p *model.PDO) error {
	if p.State != model.StateQueued && p.State != model.StateUnderReview {
		return &model.InvalidTransitionError{PdoID: p.ID, From: p.State, Op: "expire"}
	}
	p.State = model.StateExpired
	return nil
}

// Withdraw cancels a PDO at its originator's request. Legal only while
// Queued: once a reviewer owns the PDO it can only resolve via decide or
// TTL expiry, so a reviewer cannot evade accountability.
func Withdraw(p *model.PDO) error {
	if p.State != model.StateQueued {
		return &model.InvalidTransitionError{PdoID: p.ID, From: p.State, Op: "withdraw"}
	}
	p.State = model.StateWithdrawn
	return nil
}
