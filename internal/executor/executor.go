// Package executor enforces tier, value, self-override, and justification
// policy on operator decisions, and performs the audit-then-transition
// commit protocol. Authorization outcomes are an explicit two-variant
// result: Allowed, or Denied with a reason the caller must handle — and
// every denial is itself chained into the audit log before it is returned.
package executor

import (
	"context"
	"fmt"
	"sync"

	"github.com/ppiankov/occkernel/internal/audit"
	"github.com/ppiankov/occkernel/internal/config"
	"github.com/ppiankov/occkernel/internal/justify"
	"github.com/ppiankov/occkernel/internal/killswitch"
	"github.com/ppiankov/occkernel/internal/model"
	"github.com/ppiankov/occkernel/internal/pdo"
	"github.com/ppiankov/occkernel/internal/store"
)

// Denial explains why a decision was refused.
type Denial struct {
	Code   string `json:"code"`
	Reason string `json:"reason"`
}

// CommitResult is the two-variant outcome of a commit attempt.
type CommitResult struct {
	Allowed bool
	Denial  *Denial
	PDO     *model.PDO
	Entry   audit.Entry
}

// Executor validates and commits operator decisions.
type Executor struct {
	store store.Store
	log   *audit.Log
	kill  *killswitch.Switch

	mu         sync.RWMutex
	cfg        *config.KernelConfig
	configHash string

	// onAuditFailure is called after a sustained audit write failure, so
	// the owner can escalate toward engaging the kill switch.
	onAuditFailure func(error)
}

// New creates an Executor over the given collaborators.
func New(st store.Store, log *audit.Log, kill *killswitch.Switch, cfg *config.KernelConfig, configHash string) *Executor {
	return &Executor{
		store:      st,
		log:        log,
		kill:       kill,
		cfg:        cfg,
		configHash: configHash,
	}
}

// SetConfig atomically swaps the policy configuration (hot reload).
func (e *Executor) SetConfig(cfg *config.KernelConfig, hash string) {
	e.mu.Lock()
	e.cfg = cfg
	e.configHash = hash
	e.mu.Unlock()
}

// OnAuditFailure registers the sustained-failure escalation hook.
func (e *Executor) OnAuditFailure(fn func(error)) {
	e.onAuditFailure = fn
}

// Commit validates an operator decision against a claimed PDO and, if every
// check passes, writes the audit entry and applies the transition. All
// validation failures are written as denied entries before the result is
// returned; the PDO state is unchanged on any denial.
func (e *Executor) Commit(ctx context.Context, decision model.OverrideDecision, att model.Attestation) (CommitResult, error) {
	e.mu.RLock()
	cfg := e.cfg
	configHash := e.configHash
	e.mu.RUnlock()

	p, err := e.store.Get(decision.PdoID)
	if err != nil {
		// No trusted action was attempted against a real PDO; nothing to chain.
		return CommitResult{}, err
	}

	if d := e.validate(cfg, p, decision, att); d != nil {
		return e.deny(ctx, cfg, configHash, decision, att, d)
	}

	entry := audit.Entry{
		ActorID:    att.OperatorID,
		ActorTier:  decision.TierUsed,
		ActionType: pdo.ActionDecided,
		PdoID:      decision.PdoID,
		Outcome:    string(decision.Outcome),
		Reason:     decision.Justification,
		IncidentID: decision.IncidentID,
		ConfigHash: configHash,
	}

	committed, committedEntry, err := AuditedTransition(ctx, e.store, e.log, cfg.Retry, decision.PdoID, entry,
		func(p *model.PDO) error {
			// Re-checked under the store lock: the claim may have changed
			// hands or expired since validation.
			if p.ClaimedBy != att.OperatorID {
				return &model.ClaimConflictError{PdoID: p.ID, Owner: p.ClaimedBy, Claimant: att.OperatorID}
			}
			return pdo.Decide(p, decision.Outcome)
		})
	if err != nil {
		switch v := err.(type) {
		case *model.ClaimConflictError:
			return e.deny(ctx, cfg, configHash, decision, att,
				&Denial{Code: audit.DenialNotClaimOwner, Reason: v.Error()})
		case *model.InvalidTransitionError:
			return e.deny(ctx, cfg, configHash, decision, att,
				&Denial{Code: audit.DenialInvalidTransition, Reason: v.Error()})
		case *model.AuditWriteError:
			e.escalate(v)
			return CommitResult{}, v
		}
		return CommitResult{}, err
	}

	return CommitResult{Allowed: true, PDO: committed, Entry: committedEntry}, nil
}

// validate runs the short-circuiting policy sequence. A nil return means
// the decision is allowed to proceed to the commit protocol.
func (e *Executor) validate(cfg *config.KernelConfig, p *model.PDO, decision model.OverrideDecision, att model.Attestation) *Denial {
	if e.kill != nil && e.kill.Engaged() {
		return &Denial{Code: audit.DenialKillSwitch, Reason: model.ErrKillSwitchEngaged.Error()}
	}

	if decision.TierUsed > att.Tier {
		return &Denial{
			Code:   audit.DenialTierInsufficient,
			Reason: fmt.Sprintf("decision claims tier %d but attestation grants tier %d", decision.TierUsed, att.Tier),
		}
	}

	if att.Tier < p.TierRequired {
		err := &model.TierInsufficientError{Required: p.TierRequired, Got: att.Tier}
		return &Denial{Code: audit.DenialTierInsufficient, Reason: err.Error()}
	}

	if ceiling, unlimited := cfg.CeilingFor(att.Tier); !unlimited && p.ValueAtRisk > ceiling {
		err := &model.ValueLimitExceededError{Value: p.ValueAtRisk, Ceiling: ceiling, Tier: att.Tier}
		return &Denial{Code: audit.DenialValueLimitExceeded, Reason: err.Error()}
	}

	if att.OperatorID == p.OriginatingActorID {
		if decision.TierUsed < cfg.EmergencyTier || decision.IncidentID == "" {
			err := &model.SelfOverrideError{OperatorID: att.OperatorID, PdoID: p.ID}
			return &Denial{Code: audit.DenialSelfOverride, Reason: err.Error()}
		}
	}

	if err := justifyRules(cfg).Check(decision.Justification); err != nil {
		return &Denial{Code: audit.DenialJustificationRejected, Reason: err.Error()}
	}

	return nil
}

// deny chains a denied entry, then returns the denial. If even the denial
// cannot be proven in the audit trail, the whole attempt fails closed.
func (e *Executor) deny(ctx context.Context, cfg *config.KernelConfig, configHash string, decision model.OverrideDecision, att model.Attestation, d *Denial) (CommitResult, error) {
	entry := audit.Entry{
		ActorID:    att.OperatorID,
		ActorTier:  att.Tier,
		ActionType: audit.ActionDecisionDenied,
		PdoID:      decision.PdoID,
		Outcome:    d.Code,
		Reason:     d.Reason,
		IncidentID: decision.IncidentID,
		ConfigHash: configHash,
	}

	committed, err := AppendWithRetry(ctx, e.log, cfg.Retry, entry)
	if err != nil {
		werr := &model.AuditWriteError{Err: err}
		e.escalate(werr)
		return CommitResult{}, werr
	}

	return CommitResult{Allowed: false, Denial: d, Entry: committed}, nil
}

func (e *Executor) escalate(err error) {
	if e.onAuditFailure != nil {
		e.onAuditFailure(err)
	}
}

func justifyRules(cfg *config.KernelConfig) justify.Rules {
	return cfg.Justification
}
