package model

import (
	"errors"
	"fmt"
)

// ErrKillSwitchEngaged is returned for any new claim or transition while the
// kernel-wide kill switch is engaged.
var ErrKillSwitchEngaged = errors.New("occkernel: kill switch engaged, new transitions rejected")

// ErrDegraded is returned while the kernel is in read-only degraded mode
// after a chain integrity failure, pending manual forensic unlock.
var ErrDegraded = errors.New("occkernel: kernel is in read-only degraded mode")

// ErrNotFound is returned when a PDO id does not exist in the live table.
var ErrNotFound = errors.New("occkernel: pdo not found")

// ValidationError rejects a malformed PDO spec at admission. It is not
// chained into the audit log: no trusted action was attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid pdo spec: %s %s", e.Field, e.Reason)
}

// InvalidTransitionError reports an illegal state machine transition.
// The PDO is left unmodified; the attempt itself is still recorded as a
// denied audit entry.
type InvalidTransitionError struct {
	PdoID string
	From  State
	Op    string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("pdo %s: cannot %s from state %q", e.PdoID, e.Op, e.From)
}

// ClaimConflictError reports a claim attempt on a PDO already owned by a
// different operator. Exactly one of two racing claimants observes success.
type ClaimConflictError struct {
	PdoID    string
	Owner    string
	Claimant string
}

func (e *ClaimConflictError) Error() string {
	return fmt.Sprintf("pdo %s: already claimed by %s, rejected claimant %s", e.PdoID, e.Owner, e.Claimant)
}

// QueueFullError rejects a non-emergency admission once capacity is reached.
type QueueFullError struct {
	Capacity int
}

func (e *QueueFullError) Error() string {
	return fmt.Sprintf("queue at capacity %d, non-emergency admission rejected", e.Capacity)
}

// TierInsufficientError denies a decision from an operator whose attested
// tier is below the PDO's required tier.
type TierInsufficientError struct {
	Required int
	Got      int
}

func (e *TierInsufficientError) Error() string {
	return fmt.Sprintf("operator tier %d below required tier %d", e.Got, e.Required)
}

// ValueLimitExceededError denies a decision whose value at risk exceeds the
// configured ceiling for the tier used.
type ValueLimitExceededError struct {
	Value   int64
	Ceiling int64
	Tier    int
}

func (e *ValueLimitExceededError) Error() string {
	return fmt.Sprintf("value at risk %d exceeds tier %d ceiling %d", e.Value, e.Tier, e.Ceiling)
}

// SelfOverrideError denies an operator deciding on a PDO that originated
// from their own decision, absent the emergency-tier exception.
type SelfOverrideError struct {
	OperatorID string
	PdoID      string
}

func (e *SelfOverrideError) Error() string {
	return fmt.Sprintf("operator %s cannot decide own decision on pdo %s without emergency tier and incident id", e.OperatorID, e.PdoID)
}

// JustificationRejectedError denies a decision whose free-text justification
// failed the minimum-length or anti-boilerplate check.
type JustificationRejectedError struct {
	Reason string
}

func (e *JustificationRejectedError) Error() string {
	return fmt.Sprintf("justification rejected: %s", e.Reason)
}

// AuditWriteError surfaces a failed audit append. The in-flight transition
// is aborted entirely: the kernel never applies an effect it cannot prove.
type AuditWriteError struct {
	Err error
}

func (e *AuditWriteError) Error() string {
	return fmt.Sprintf("audit write failed, transition aborted: %v", e.Err)
}

func (e *AuditWriteError) Unwrap() error { return e.Err }

// IntegrityError reports a hash chain mismatch detected by verification or
// replay. Fatal: the kernel enters read-only degraded mode.
type IntegrityError struct {
	Sequence uint64
	Reason   string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("audit chain integrity failure at sequence %d: %s", e.Sequence, e.Reason)
}
