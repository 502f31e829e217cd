package audit

import (
	"encoding/json"
	"fmt"
	"io"
)

// Export is a verifiable slice of the audit chain for forensic handoff. A
// third party can check it with Export.Verify alone, without access to the
// kernel or its storage.
type Export struct {
	From       uint64  `json:"from"`
	To         uint64  `json:"to"`
	AnchorHash string  `json:"anchor_hash"` // prev_hash of the first exported entry
	TailHash   string  `json:"tail_hash"`   // entry_hash of the last exported entry
	Entries    []Entry `json:"entries"`
}

// BuildExport reads [from, to] (to == 0 means the tail) and packages the
// range with its chain anchors. The range is verified before export: the
// kernel never hands out a proof it cannot itself check.
func BuildExport(storage Storage, from, to uint64) (*Export, error) {
	if from == 0 {
		from = 1
	}
	entries, err := storage.Read(from, to)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("audit: export range [%d, %d] is empty", from, to)
	}

	if res := verifyEntries(entries, from); !res.Valid {
		return nil, &rangeIntegrityError{seq: res.BadSequence, reason: res.Reason}
	}

	return &Export{
		From:       entries[0].Sequence,
		To:         entries[len(entries)-1].Sequence,
		AnchorHash: entries[0].PrevHash,
		TailHash:   entries[len(entries)-1].EntryHash,
		Entries:    entries,
	}, nil
}

// Verify re-checks the exported range offline: hash recomputation, linkage,
// and agreement with the declared anchors.
func (x *Export) Verify() error {
	if len(x.Entries) == 0 {
		return fmt.Errorf("audit: export contains no entries")
	}
	if x.Entries[0].PrevHash != x.AnchorHash {
		return fmt.Errorf("audit: export anchor mismatch")
	}
	if x.Entries[len(x.Entries)-1].EntryHash != x.TailHash {
		return fmt.Errorf("audit: export tail mismatch")
	}
	if res := verifyEntries(x.Entries, x.From); !res.Valid {
		return &rangeIntegrityError{seq: res.BadSequence, reason: res.Reason}
	}
	return nil
}

// WriteJSON renders the export as indented JSON.
func (x *Export) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(x)
}

// ReadExport decodes an export previously written with WriteJSON.
func ReadExport(r io.Reader) (*Export, error) {
	var x Export
	if err := json.NewDecoder(r).Decode(&x); err != nil {
		return nil, fmt.Errorf("audit: decode export: %w", err)
	}
	return &x, nil
}

type rangeIntegrityError struct {
	seq    uint64
	reason string
}

func (e *rangeIntegrityError) Error() string {
	return fmt.Sprintf("audit: chain integrity failure at sequence %d: %s", e.seq, e.reason)
}
