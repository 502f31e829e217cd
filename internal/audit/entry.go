// Package audit implements the append-only, hash-chained audit log. Every
// kernel state change writes exactly one entry here before the change
// becomes visible, and the chain is verifiable by a third party without
// trusting the kernel that produced it.
package audit

// TimestampFormat is the layout used in audit entry timestamps.
const TimestampFormat = "2006-01-02T15:04:05.000Z"

// GenesisHash is the prev_hash of the first entry in a new chain.
const GenesisHash = "sha256:0000000000000000000000000000000000000000000000000000000000000000"

// Entry is one record in the hash-chained audit log.
//
// All fields are scalars (no map[string]any) so json.Marshal field order is
// deterministic and the canonical serialization used for hashing is
// reproducible: the same logical entry always hashes identically.
type Entry struct {
	Sequence      uint64 `json:"seq"`
	LogicalTime   uint64 `json:"logical_time"`
	Timestamp     string `json:"ts"`
	ActorID       string `json:"actor_id"`
	ActorTier     int    `json:"actor_tier,omitempty"`
	ActionType    string `json:"action_type"`
	PdoID         string `json:"pdo_id,omitempty"`
	Outcome       string `json:"outcome,omitempty"`
	Reason        string `json:"reason,omitempty"`
	PayloadDigest string `json:"payload_digest,omitempty"`
	IncidentID    string `json:"incident_id,omitempty"`
	ConfigHash    string `json:"config_hash,omitempty"`
	PrevHash      string `json:"prev_hash"`
	EntryHash     string `json:"entry_hash"`
	Signature     string `json:"signature,omitempty"`
	SigningKeyID  string `json:"signing_key_id,omitempty"`
}

// Denial action types. Denied attempts are permanent audit history: every
// authorization attempt, granted or refused, stays visible in the chain.
const (
	ActionDecisionDenied   = "decision.denied"
	ActionClaimDenied      = "claim.denied"
	ActionAdmissionDropped = "admission.rejected"
	ActionWithdrawDenied   = "withdraw.denied"
	ActionExecutionDenied  = "execution.denied"
)

// Kill switch and execution acknowledgment action types.
const (
	ActionKillEngaged    = "killswitch.engaged"
	ActionKillDisengaged = "killswitch.disengaged"
	ActionExecutionAcked = "execution.acked"
)

// Denial codes recorded in the Outcome field of denied entries.
const (
	DenialTierInsufficient      = "tier_insufficient"
	DenialValueLimitExceeded    = "value_limit_exceeded"
	DenialSelfOverride          = "self_override"
	DenialJustificationRejected = "justification_rejected"
	DenialKillSwitch            = "kill_switch_engaged"
	DenialClaimConflict         = "claim_conflict"
	DenialInvalidTransition     = "invalid_transition"
	DenialNotClaimOwner         = "not_claim_owner"
	DenialQueueFull             = "queue_full"
)
