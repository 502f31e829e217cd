package pdo

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ppiankov/occkernel/internal/model"
)

func newSpec() model.Spec {
	return model.Spec{
		TierRequired:          2,
		OriginatingDecisionID: "dec-100",
		OriginatingActorID:    "agent-1",
		ValueAtRisk:           1000,
		Payload:               json.RawMessage(`{}`),
		TTL:                   time.Hour,
	}
}

func TestCreateSetsDeadlineAndState(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	p := Create(newSpec(), "pdo-1", now)

	if p.State != model.StatePending {
		t.Errorf("expected pending, got %s", p.State)
	}
	if !p.TTLDeadline.Equal(now.Add(time.Hour)) {
		t.Errorf("unexpected deadline %s", p.TTLDeadline)
	}
	if !p.CreatedAt.Equal(now) {
		t.Errorf("unexpected created_at %s", p.CreatedAt)
	}
}

func TestCreateWithoutTTLHasNoDeadline(t *testing.T) {
	spec := newSpec()
	spec.TTL = 0
	p := Create(spec, "pdo-1", time.Now())

	if !p.TTLDeadline.IsZero() {
		t.Errorf("expected zero deadline, got %s", p.TTLDeadline)
	}
}

func TestFullApprovalLifecycle(t *testing.T) {
	p := Create(newSpec(), "pdo-1", time.Now())

	if err := Enqueue(p, 7); err != nil {
		t.Fatal(err)
	}
	if p.State != model.StateQueued || p.EnqueuedSequence != 7 {
		t.Fatalf("after enqueue: state=%s seq=%d", p.State, p.EnqueuedSequence)
	}

	if err := Claim(p, "op-alice"); err != nil {
		t.Fatal(err)
	}
	if p.State != model.StateUnderReview || p.ClaimedBy != "op-alice" {
		t.Fatalf("after claim: state=%s claimed_by=%s", p.State, p.ClaimedBy)
	}

	if err := Decide(p, model.OutcomeApproved); err != nil {
		t.Fatal(err)
	}
	if p.State != model.StateApproved {
		t.Fatalf("after decide: state=%s", p.State)
	}

	if err := Execute(p); err != nil {
		t.Fatal(err)
	}
	if p.State != model.StateExecuted {
		t.Fatalf("after execute: state=%s", p.State)
	}
}

func TestClaimIsIdempotentForOwner(t *testing.T) {
	p := Create(newSpec(), "pdo-1", time.Now())
	Enqueue(p, 1)
	Claim(p, "op-alice")

	if err := Claim(p, "op-alice"); err != nil {
		t.Fatalf("repeat claim by owner must succeed: %v", err)
	}
	if p.ClaimedBy != "op-alice" {
		t.Errorf("owner changed to %s", p.ClaimedBy)
	}
}

func TestClaimConflict(t *testing.T) {
	p := Create(newSpec(), "pdo-1", time.Now())
	Enqueue(p, 1)
	Claim(p, "op-alice")

	err := Claim(p, "op-bob")
	var conflict *model.ClaimConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ClaimConflictError, got %v", err)
	}
	if conflict.Owner != "op-alice" || conflict.Claimant != "op-bob" {
		t.Errorf("conflict owner=%s claimant=%s", conflict.Owner, conflict.Claimant)
	}
	if p.ClaimedBy != "op-alice" {
		t.Errorf("conflict must not change owner, got %s", p.ClaimedBy)
	}
}

func TestDecideRequiresUnderReview(t *testing.T) {
	p := Create(newSpec(), "pdo-1", time.Now())
	Enqueue(p, 1)

	err := Decide(p, model.OutcomeApproved)
	var inv *model.InvalidTransitionError
	if !errors.As(err, &inv) {
		t.Fatalf("expected InvalidTransitionError, got %v", err)
	}
	if p.State != model.StateQueued {
		t.Errorf("failed decide must not move state, got %s", p.State)
	}
}

func TestDecideRejectsUnknownOutcome(t *testing.T) {
	p := Create(newSpec(), "pdo-1", time.Now())
	Enqueue(p, 1)
	Claim(p, "op-alice")

	if err := Decide(p, model.Outcome("maybe")); err == nil {
		t.Fatal("expected error for unknown outcome")
	}
}

func TestExecuteOnlyFromDecidedStates(t *testing.T) {
	p := Create(newSpec(), "pdo-1", time.Now())
	Enqueue(p, 1)

	if err := Execute(p); err == nil {
		t.Fatal("expected error executing a queued pdo")
	}

	Claim(p, "op-alice")
	Decide(p, model.OutcomeRejected)
	if err := Execute(p); err == nil {
		t.Fatal("rejected pdo must never execute")
	}
}

func TestExpireFromQueuedAndUnderReview(t *testing.T) {
	p := Create(newSpec(), "pdo-1", time.Now())
	Enqueue(p, 1)
	if err := Expire(p); err != nil {
		t.Fatalf("expire from queued: %v", err)
	}

	q := Create(newSpec(), "pdo-2", time.Now())
	Enqueue(q, 2)
	Claim(q, "op-alice")
	if err := Expire(q); err != nil {
		t.Fatalf("expire from under_review: %v", err)
	}

	r := Create(newSpec(), "pdo-3", time.Now())
	Enqueue(r, 3)
	Claim(r, "op-alice")
	Decide(r, model.OutcomeApproved)
	if err := Expire(r); err == nil {
		t.Fatal("approved pdo must not expire")
	}
}

func TestWithdrawOnlyBeforeClaim(t *testing.T) {
	p := Create(newSpec(), "pdo-1", time.Now())
	Enqueue(p, 1)
	if err := Withdraw(p); err != nil {
		t.Fatalf("withdraw from queued: %v", err)
	}
	if p.State != model.StateWithdrawn {
		t.Errorf("state=%s", p.State)
	}

	q := Create(newSpec(), "pdo-2", time.Now())
	Enqueue(q, 2)
	Claim(q, "op-alice")
	if err := Withdraw(q); err == nil {
		t.Fatal("claimed pdo must not be withdrawable")
	}
}

func TestTerminalStatesRejectAllTransitions(t *testing.T) {
	p := Create(newSpec(), "pdo-1", time.Now())
	Enqueue(p, 1)
	Claim(p, "op-alice")
	Decide(p, model.OutcomeApproved)
	Execute(p)

	if err := Claim(p, "op-bob"); err == nil {
		t.Error("claim after execute must fail")
	}
	if err := Decide(p, model.OutcomeRejected); err == nil {
		t.Error("decide after execute must fail")
	}
	if err := Expire(p); err == nil {
		t.Error("expire after execute must fail")
	}
	if err := Withdraw(p); err == nil {
		t.Error("withdraw after execute must fail")
	}
}
