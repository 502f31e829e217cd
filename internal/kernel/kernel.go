// Package kernel wires the PDO store, admission queue, audit log, executor,
// and kill switch into the control surface the server, CLI, and MCP layers
// call. Every trusted action goes through here; every refusal leaves a
// chained audit entry behind it.
package kernel

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ppiankov/occkernel/internal/audit"
	"github.com/ppiankov/occkernel/internal/config"
	"github.com/ppiankov/occkernel/internal/executor"
	"github.com/ppiankov/occkernel/internal/killswitch"
	"github.com/ppiankov/occkernel/internal/model"
	"github.com/ppiankov/occkernel/internal/pdo"
	"github.com/ppiankov/occkernel/internal/queue"
	"github.com/ppiankov/occkernel/internal/replay"
	"github.com/ppiankov/occkernel/internal/store"
)

// ExecutionTarget receives approved and overridden PDOs for downstream
// execution. The kernel records the release before invoking the target and
// records the acknowledgment after.
type ExecutionTarget interface {
	Execute(ctx context.Context, p *model.PDO) error
}

// Kernel is the operator control kernel: the single authority through which
// AI-originated decisions are held, reviewed, and released.
type Kernel struct {
	store store.Store
	queue *queue.Queue
	log   *audit.Log
	exec  *executor.Executor
	kill  *killswitch.Switch

	mu         sync.RWMutex
	cfg        *config.KernelConfig
	configHash string

	// opMu serializes the self-check against mutating operations: the chain
	// read and the store snapshot must describe the same moment, or a
	// half-committed creation reads as corruption.
	opMu sync.RWMutex

	degraded atomic.Bool

	target     ExecutionTarget
	onTerminal func(model.PDO)

	now func() time.Time
}

// Option configures a Kernel at construction time.
type Option func(*Kernel)

// WithExecutionTarget sets the downstream sink for released PDOs.
func WithExecutionTarget(t ExecutionTarget) Option {
	return func(k *Kernel) { k.target = t }
}

// WithTerminalHook registers a callback invoked after a PDO reaches a
// terminal state. Used for notification fanout; failures there never affect
// kernel state.
func WithTerminalHook(fn func(model.PDO)) Option {
	return func(k *Kernel) { k.onTerminal = fn }
}

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(k *Kernel) { k.now = now }
}

// New assembles a kernel over the given audit log and kill switch.
func New(log *audit.Log, kill *killswitch.Switch, cfg *config.KernelConfig, configHash string, opts ...Option) *Kernel {
	st := store.NewMemoryStore()
	k := &Kernel{
		store:      st,
		queue:      queue.New(cfg.QueueCapacity, cfg.EmergencyTier),
		log:        log,
		kill:       kill,
		cfg:        cfg,
		configHash: configHash,
		now:        time.Now,
	}
	k.exec = executor.New(st, log, kill, cfg, configHash)
	k.exec.OnAuditFailure(k.escalateAuditFailure)

	for _, o := range opts {
		o(k)
	}
	return k
}

// SetConfig swaps the kernel configuration (hot reload). Queue capacity
// applies to future admissions only; already-queued PDOs are never evicted.
func (k *Kernel) SetConfig(cfg *config.KernelConfig, hash string) {
	k.mu.Lock()
	k.cfg = cfg
	k.configHash = hash
	k.mu.Unlock()
	k.exec.SetConfig(cfg, hash)
}

func (k *Kernel) snapshotConfig() (*config.KernelConfig, string) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.cfg, k.configHash
}

// Config returns the configuration currently in force.
func (k *Kernel) Config() *config.KernelConfig {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.cfg
}

// ConfigHash returns the hash of the configuration currently in force.
func (k *Kernel) ConfigHash() string {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.configHash
}

// Degraded reports whether a self-check divergence has forced the kernel
// read-only.
func (k *Kernel) Degraded() bool {
	return k.degraded.Load()
}

// AuditLog exposes the audit log for verification, export, and replay.
func (k *Kernel) AuditLog() *audit.Log {
	return k.log
}

// KillSwitch exposes the kill switch state for status reporting.
func (k *Kernel) KillSwitch() killswitch.State {
	return k.kill.Current()
}

// CreatePdo validates a submitted spec, admits it to the queue, and chains
// its creation and enqueue entries before the PDO becomes visible. A
// capacity rejection is itself audited: the system refusing to hold a
// decision is part of its permanent accountability record.
func (k *Kernel) CreatePdo(ctx context.Context, spec model.Spec) (*model.PDO, error) {
	k.opMu.RLock()
	defer k.opMu.RUnlock()
	if err := k.gate(); err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	cfg, configHash := k.snapshotConfig()
	if spec.TTL == 0 {
		spec.TTL = cfg.DefaultTTL
	}

	now := k.now().UTC()
	p := pdo.Create(spec, model.NewPdoID(), now)

	if k.kill.Engaged() {
		entry := audit.Entry{
			ActorID:    spec.OriginatingActorID,
			ActionType: audit.ActionAdmissionDropped,
			PdoID:      p.ID,
			Outcome:    audit.DenialKillSwitch,
			Reason:     model.ErrKillSwitchEngaged.Error(),
			ConfigHash: configHash,
		}
		if _, err := k.appendEntry(ctx, cfg, entry); err != nil {
			return nil, err
		}
		return nil, model.ErrKillSwitchEngaged
	}

	seq, err := k.queue.Admit(p)
	if err != nil {
		var full *model.QueueFullError
		if errors.As(err, &full) {
			entry := audit.Entry{
				ActorID:    spec.OriginatingActorID,
				ActionType: audit.ActionAdmissionDropped,
				PdoID:      p.ID,
				Outcome:    audit.DenialQueueFull,
				Reason:     full.Error(),
				ConfigHash: configHash,
			}
			if _, aerr := k.appendEntry(ctx, cfg, entry); aerr != nil {
				return nil, aerr
			}
		}
		return nil, err
	}

	created := audit.Entry{
		ActorID:       spec.OriginatingActorID,
		ActionType:    pdo.ActionCreated,
		PdoID:         p.ID,
		PayloadDigest: audit.DigestPayload(p.Payload),
		ConfigHash:    configHash,
	}
	if _, err := k.appendEntry(ctx, cfg, created); err != nil {
		k.queue.Withdraw(p.ID)
		return nil, err
	}

	if err := pdo.Enqueue(p, seq); err != nil {
		k.queue.Withdraw(p.ID)
		return nil, err
	}
	enqueued := audit.Entry{
		ActorID:    model.ActorSystem,
		ActionType: pdo.ActionEnqueued,
		PdoID:      p.ID,
		Outcome:    fmt.Sprintf("sequence=%d", seq),
		ConfigHash: configHash,
	}
	if _, err := k.appendEntry(ctx, cfg, enqueued); err != nil {
		k.queue.Withdraw(p.ID)
		return nil, err
	}

	if err := k.store.Insert(p); err != nil {
		k.queue.Withdraw(p.ID)
		return nil, err
	}
	return p.Clone(), nil
}

var errAlreadyOwner = errors.New("kernel: already claim owner")

// Claim takes exclusive review ownership of a queued PDO. Exactly one of
// racing claimants wins; losers get ClaimConflictError and a chained denial
// entry. A repeat claim by the current owner is an idempotent success and
// is never audited twice.
func (k *Kernel) Claim(ctx context.Context, pdoID string, att model.Attestation) (*model.PDO, error) {
	k.opMu.RLock()
	defer k.opMu.RUnlock()
	if err := k.gate(); err != nil {
		return nil, err
	}
	cfg, configHash := k.snapshotConfig()

	if k.kill.Engaged() {
		if err := k.denyClaim(ctx, cfg, configHash, pdoID, att, audit.DenialKillSwitch, model.ErrKillSwitchEngaged.Error()); err != nil {
			return nil, err
		}
		return nil, model.ErrKillSwitchEngaged
	}

	p, err := k.store.Get(pdoID)
	if err != nil {
		return nil, err
	}
	if att.Tier < p.TierRequired {
		terr := &model.TierInsufficientError{Required: p.TierRequired, Got: att.Tier}
		if err := k.denyClaim(ctx, cfg, configHash, pdoID, att, audit.DenialTierInsufficient, terr.Error()); err != nil {
			return nil, err
		}
		return nil, terr
	}

	entry := audit.Entry{
		ActorID:    att.OperatorID,
		ActorTier:  att.Tier,
		ActionType: pdo.ActionClaimed,
		PdoID:      pdoID,
		ConfigHash: configHash,
	}
	claimed, _, err := executor.AuditedTransition(ctx, k.store, k.log, cfg.Retry, pdoID, entry,
		func(p *model.PDO) error {
			if p.State == model.StateUnderReview && p.ClaimedBy == att.OperatorID {
				return errAlreadyOwner
			}
			return pdo.Claim(p, att.OperatorID)
		})
	if errors.Is(err, errAlreadyOwner) {
		return k.store.Get(pdoID)
	}
	if err != nil {
		var conflict *model.ClaimConflictError
		if errors.As(err, &conflict) {
			if derr := k.denyClaim(ctx, cfg, configHash, pdoID, att, audit.DenialClaimConflict, conflict.Error()); derr != nil {
				return nil, derr
			}
		}
		var invalid *model.InvalidTransitionError
		if errors.As(err, &invalid) {
			if derr := k.denyClaim(ctx, cfg, configHash, pdoID, att, audit.DenialInvalidTransition, invalid.Error()); derr != nil {
				return nil, derr
			}
		}
		var werr *model.AuditWriteError
		if errors.As(err, &werr) {
			k.escalateAuditFailure(werr)
		}
		return nil, err
	}

	k.queue.Take(pdoID)
	return claimed, nil
}

// Commit validates and applies an operator decision via the executor. A
// denial is a normal result, not an error: the caller must branch on it.
func (k *Kernel) Commit(ctx context.Context, decision model.OverrideDecision, att model.Attestation) (executor.CommitResult, error) {
	k.opMu.RLock()
	defer k.opMu.RUnlock()
	if err := k.gate(); err != nil {
		return executor.CommitResult{}, err
	}

	res, err := k.exec.Commit(ctx, decision, att)
	if err != nil {
		return executor.CommitResult{}, err
	}
	if res.Allowed && res.PDO != nil && res.PDO.State.Terminal() {
		k.notifyTerminal(*res.PDO)
	}
	return res, nil
}

// Withdraw cancels a queued PDO at its originator's request. Once claimed,
// a PDO can only resolve through a decision or TTL expiry; the refused
// attempt is itself chained as a denial.
func (k *Kernel) Withdraw(ctx context.Context, pdoID, actorID string) (*model.PDO, error) {
	k.opMu.RLock()
	defer k.opMu.RUnlock()
	if err := k.gate(); err != nil {
		return nil, err
	}
	if k.kill.Engaged() {
		return nil, model.ErrKillSwitchEngaged
	}
	cfg, configHash := k.snapshotConfig()

	p, err := k.store.Get(pdoID)
	if err != nil {
		return nil, err
	}
	if p.OriginatingActorID != actorID {
		return nil, &model.ValidationError{Field: "actor_id", Reason: "only the originating actor may withdraw"}
	}

	entry := audit.Entry{
		ActorID:    actorID,
		ActionType: pdo.ActionWithdrawn,
		PdoID:      pdoID,
		ConfigHash: configHash,
	}
	withdrawn, _, err := executor.AuditedTransition(ctx, k.store, k.log, cfg.Retry, pdoID, entry, pdo.Withdraw)
	if err != nil {
		var invalid *model.InvalidTransitionError
		if errors.As(err, &invalid) {
			if derr := k.denyAttempt(ctx, cfg, configHash, actorID, audit.ActionWithdrawDenied, pdoID, audit.DenialInvalidTransition, invalid.Error()); derr != nil {
				return nil, derr
			}
		}
		var werr *model.AuditWriteError
		if errors.As(err, &werr) {
			k.escalateAuditFailure(werr)
		}
		return nil, err
	}

	k.queue.Withdraw(pdoID)
	k.notifyTerminal(*withdrawn)
	return withdrawn, nil
}

// Execute releases an approved or overridden PDO to the execution target.
// The release entry is chained before the target is invoked; the target's
// acknowledgment (or failure) is chained after.
func (k *Kernel) Execute(ctx context.Context, pdoID string) (*model.PDO, error) {
	k.opMu.RLock()
	defer k.opMu.RUnlock()
	if err := k.gate(); err != nil {
		return nil, err
	}
	if k.kill.Engaged() {
		return nil, model.ErrKillSwitchEngaged
	}
	cfg, configHash := k.snapshotConfig()

	entry := audit.Entry{
		ActorID:    model.ActorSystem,
		ActionType: pdo.ActionExecuted,
		PdoID:      pdoID,
		ConfigHash: configHash,
	}
	executed, _, err := executor.AuditedTransition(ctx, k.store, k.log, cfg.Retry, pdoID, entry, pdo.Execute)
	if err != nil {
		var invalid *model.InvalidTransitionError
		if errors.As(err, &invalid) {
			if derr := k.denyAttempt(ctx, cfg, configHash, model.ActorSystem, audit.ActionExecutionDenied, pdoID, audit.DenialInvalidTransition, invalid.Error()); derr != nil {
				return nil, derr
			}
		}
		var werr *model.AuditWriteError
		if errors.As(err, &werr) {
			k.escalateAuditFailure(werr)
		}
		return nil, err
	}

	var targetErr error
	if k.target != nil {
		targetErr = k.target.Execute(ctx, executed.Clone())
	}

	ack := audit.Entry{
		ActorID:    model.ActorSystem,
		ActionType: audit.ActionExecutionAcked,
		PdoID:      pdoID,
		Outcome:    "acked",
		ConfigHash: configHash,
	}
	if targetErr != nil {
		ack.Outcome = "failed"
		ack.Reason = targetErr.Error()
	}
	if _, aerr := k.appendEntry(ctx, cfg, ack); aerr != nil {
		return executed, aerr
	}

	k.notifyTerminal(*executed)
	if targetErr != nil {
		return executed, fmt.Errorf("kernel: execution target: %w", targetErr)
	}
	return executed, nil
}

// ExpireDue transitions every live PDO whose TTL deadline has passed.
// Expiry entries are attributed to the SYSTEM actor. Returns how many PDOs
// expired.
func (k *Kernel) ExpireDue(ctx context.Context, now time.Time) (int, error) {
	k.opMu.RLock()
	defer k.opMu.RUnlock()
	if k.degraded.Load() {
		return 0, model.ErrDegraded
	}
	cfg, configHash := k.snapshotConfig()

	var expired int
	var firstErr error
	for _, p := range k.store.Snapshot() {
		if p.State != model.StateQueued && p.State != model.StateUnderReview {
			continue
		}
		if p.TTLDeadline.IsZero() || now.Before(p.TTLDeadline) {
			continue
		}

		entry := audit.Entry{
			ActorID:    model.ActorSystem,
			ActionType: pdo.ActionExpired,
			PdoID:      p.ID,
			Reason:     fmt.Sprintf("ttl deadline %s passed", p.TTLDeadline.Format(audit.TimestampFormat)),
			ConfigHash: configHash,
		}
		done, _, err := executor.AuditedTransition(ctx, k.store, k.log, cfg.Retry, p.ID, entry, pdo.Expire)
		if err != nil {
			// A racing claim or decision between snapshot and update is
			// fine; sustained audit failure is not.
			var werr *model.AuditWriteError
			if errors.As(err, &werr) {
				k.escalateAuditFailure(werr)
				if firstErr == nil {
					firstErr = werr
				}
			}
			continue
		}

		k.queue.Withdraw(p.ID)
		k.notifyTerminal(*done)
		expired++
	}
	return expired, firstErr
}

// EngageKillSwitch puts the kernel in fail-closed mode. The engagement is
// chained before the mode change takes effect.
func (k *Kernel) EngageKillSwitch(ctx context.Context, att model.Attestation, reason string) error {
	return k.setKillSwitch(ctx, att, reason, true)
}

// DisengageKillSwitch clears fail-closed mode, with the same privilege and
// audit requirements as engaging it.
func (k *Kernel) DisengageKillSwitch(ctx context.Context, att model.Attestation, reason string) error {
	return k.setKillSwitch(ctx, att, reason, false)
}

func (k *Kernel) setKillSwitch(ctx context.Context, att model.Attestation, reason string, engage bool) error {
	k.opMu.RLock()
	defer k.opMu.RUnlock()
	cfg, configHash := k.snapshotConfig()
	if att.Tier < cfg.KillSwitchTier {
		return &model.TierInsufficientError{Required: cfg.KillSwitchTier, Got: att.Tier}
	}

	action := audit.ActionKillEngaged
	if !engage {
		action = audit.ActionKillDisengaged
	}
	entry := audit.Entry{
		ActorID:    att.OperatorID,
		ActorTier:  att.Tier,
		ActionType: action,
		Reason:     reason,
		ConfigHash: configHash,
	}
	if _, err := k.appendEntry(ctx, cfg, entry); err != nil {
		return err
	}

	if engage {
		return k.kill.Engage(att.OperatorID, reason)
	}
	return k.kill.Disengage(att.OperatorID, reason)
}

// GetPdo returns the live record for a PDO. Reads work even while degraded.
func (k *Kernel) GetPdo(pdoID string) (*model.PDO, error) {
	return k.store.Get(pdoID)
}

// ListQueue returns queued PDOs in claim-priority order.
func (k *Kernel) ListQueue() []queue.Item {
	return k.queue.List()
}

// Snapshot returns copies of every live PDO record.
func (k *Kernel) Snapshot() []model.PDO {
	return k.store.Snapshot()
}

// SelfCheck verifies the audit chain, replays it, and compares the
// reconstructed table to live state. Any mismatch forces the kernel into
// degraded read-only mode until an operator intervenes. In-flight mutations
// are drained first so the chain and the snapshot agree on a moment.
func (k *Kernel) SelfCheck() error {
	k.opMu.Lock()
	defer k.opMu.Unlock()
	if err := replay.SelfCheck(k.log.Storage(), k.store.Snapshot()); err != nil {
		k.degraded.Store(true)
		return err
	}
	return nil
}

// RunSelfCheck runs SelfCheck on a fixed interval until ctx is canceled. The
// first failure degrades the kernel and stops the loop; repeating the check
// against a degraded kernel adds nothing. A non-positive interval disables
// the loop.
func (k *Kernel) RunSelfCheck(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := k.SelfCheck(); err != nil {
				fmt.Fprintf(os.Stderr, "self-check: %v\n", err)
				return
			}
		}
	}
}

// ClearDegraded lifts degraded mode after operator investigation.
func (k *Kernel) ClearDegraded() {
	k.degraded.Store(false)
}

// gate rejects mutating operations while the kernel is degraded.
func (k *Kernel) gate() error {
	if k.degraded.Load() {
		return model.ErrDegraded
	}
	return nil
}

func (k *Kernel) denyClaim(ctx context.Context, cfg *config.KernelConfig, configHash, pdoID string, att model.Attestation, code, reason string) error {
	entry := audit.Entry{
		ActorID:    att.OperatorID,
		ActorTier:  att.Tier,
		ActionType: audit.ActionClaimDenied,
		PdoID:      pdoID,
		Outcome:    code,
		Reason:     reason,
		ConfigHash: configHash,
	}
	_, err := k.appendEntry(ctx, cfg, entry)
	return err
}

// denyAttempt chains a denial entry for a refused withdraw or execute
// attempt. A refusal leaves the same permanent trace a grant does.
func (k *Kernel) denyAttempt(ctx context.Context, cfg *config.KernelConfig, configHash, actorID, action, pdoID, code, reason string) error {
	entry := audit.Entry{
		ActorID:    actorID,
		ActionType: action,
		PdoID:      pdoID,
		Outcome:    code,
		Reason:     reason,
		ConfigHash: configHash,
	}
	_, err := k.appendEntry(ctx, cfg, entry)
	return err
}

// appendEntry chains a non-transition entry with the configured retry
// policy. Failure here is an AuditWriteError: the attempted action must not
// proceed unrecorded.
func (k *Kernel) appendEntry(ctx context.Context, cfg *config.KernelConfig, entry audit.Entry) (audit.Entry, error) {
	committed, err := executor.AppendWithRetry(ctx, k.log, cfg.Retry, entry)
	if err != nil {
		werr := &model.AuditWriteError{Err: err}
		k.escalateAuditFailure(werr)
		return audit.Entry{}, werr
	}
	return committed, nil
}

// escalateAuditFailure engages the kill switch after a sustained audit
// write failure. If it is already engaged the error is ignored.
func (k *Kernel) escalateAuditFailure(err error) {
	_ = k.kill.Engage(model.ActorSystem, fmt.Sprintf("sustained audit write failure: %v", err))
}

func (k *Kernel) notifyTerminal(p model.PDO) {
	if k.onTerminal != nil {
		k.onTerminal(p)
	}
}
