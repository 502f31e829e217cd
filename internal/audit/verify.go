package audit

import (
	"fmt"
)

// VerifyResult holds the outcome of a hash chain verification. Verification
// is all-or-nothing over the requested range: either the whole range checks
// out, or BadSequence points at the first divergence.
type VerifyResult struct {
	Valid       bool   `json:"valid"`
	Entries     uint64 `json:"entries"`
	BadSequence uint64 `json:"bad_sequence,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

// VerifyChain walks entries in [from, to] (to == 0 means the tail),
// recomputing each entry_hash from its stored fields and checking the
// prev_hash linkage. When from > 1 the first entry's prev_hash cannot be
// cross-checked against a predecessor and is taken as the range anchor.
func VerifyChain(storage Storage, from, to uint64) (VerifyResult, error) {
	if from == 0 {
		from = 1
	}
	entries, err := storage.Read(from, to)
	if err != nil {
		return VerifyResult{}, err
	}
	return verifyEntries(entries, from), nil
}

func verifyEntries(entries []Entry, from uint64, keys ...Keyring) VerifyResult {
	prevHash := ""
	expectSeq := from

	for _, e := range entries {
		if e.Sequence != expectSeq {
			return VerifyResult{
				BadSequence: e.Sequence,
				Reason:      fmt.Sprintf("sequence gap: expected %d, got %d", expectSeq, e.Sequence),
			}
		}

		if e.Sequence == 1 && e.PrevHash != GenesisHash {
			return VerifyResult{
				BadSequence: e.Sequence,
				Reason:      fmt.Sprintf("first entry prev_hash is %q, expected genesis hash", e.PrevHash),
			}
		}
		if prevHash != "" && e.PrevHash != prevHash {
			return VerifyResult{
				BadSequence: e.Sequence,
				Reason:      fmt.Sprintf("prev_hash mismatch: expected %s, got %s", prevHash, e.PrevHash),
			}
		}

		recomputed := ComputeEntryHash(e.PrevHash, e)
		if recomputed != e.EntryHash {
			return VerifyResult{
				BadSequence: e.Sequence,
				Reason:      fmt.Sprintf("entry_hash mismatch: recomputed %s, stored %s", recomputed, e.EntryHash),
			}
		}

		for _, kr := range keys {
			if err := VerifySignature(e, kr); err != nil {
				return VerifyResult{
					BadSequence: e.Sequence,
					Reason:      err.Error(),
				}
			}
		}

		prevHash = e.EntryHash
		expectSeq++
	}

	return VerifyResult{Valid: true, Entries: uint64(len(entries))}
}

// VerifyChainSigned is VerifyChain plus signature verification against a
// keyring of current and rotated public keys.
func VerifyChainSigned(storage Storage, from, to uint64, keys Keyring) (VerifyResult, error) {
	if from == 0 {
		from = 1
	}
	entries, err := storage.Read(from, to)
	if err != nil {
		return VerifyResult{}, err
	}
	return verifyEntries(entries, from, keys), nil
}
