package audit

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// canonicalEntry is the hashed portion of an Entry: everything except the
// chain pointers and signature, in fixed field order. Integers marshal with
// a single canonical JSON representation, so numeric formatting is stable.
type canonicalEntry struct {
	Sequence      uint64 `json:"seq"`
	LogicalTime   uint64 `json:"logical_time"`
	Timestamp     string `json:"ts"`
	ActorID       string `json:"actor_id"`
	ActorTier     int    `json:"actor_tier"`
	ActionType    string `json:"action_type"`
	PdoID         string `json:"pdo_id"`
	Outcome       string `json:"outcome"`
	Reason        string `json:"reason"`
	PayloadDigest string `json:"payload_digest"`
	IncidentID    string `json:"incident_id"`
	ConfigHash    string `json:"config_hash"`
}

// CanonicalBytes returns the deterministic serialization of the hashed
// entry fields.
func CanonicalBytes(e Entry) []byte {
	c := canonicalEntry{
		Sequence:      e.Sequence,
		LogicalTime:   e.LogicalTime,
		Timestamp:     e.Timestamp,
		ActorID:       e.ActorID,
		ActorTier:     e.ActorTier,
		ActionType:    e.ActionType,
		PdoID:         e.PdoID,
		Outcome:       e.Outcome,
		Reason:        e.Reason,
		PayloadDigest: e.PayloadDigest,
		IncidentID:    e.IncidentID,
		ConfigHash:    e.ConfigHash,
	}
	// Marshal of a flat struct with scalar fields cannot fail.
	b, _ := json.Marshal(c)
	return b
}

// ComputeEntryHash returns "sha256:<hex>" of prevHash concatenated with the
// canonical serialization of e's hashed fields.
func ComputeEntryHash(prevHash string, e Entry) string {
	h := sha256.New()
	h.Write([]byte(prevHash))
	h.Write(CanonicalBytes(e))
	return "sha256:" + hex.EncodeToString(h.Sum(nil))
}

// DigestPayload returns "sha256:<hex>" of an opaque PDO payload. Empty
// payloads digest to the empty string so the field stays omitted.
func DigestPayload(payload []byte) string {
	if len(payload) == 0 {
		return ""
	}
	h := sha256.Sum256(payload)
	return "sha256:" + hex.EncodeToString(h[:])
}
