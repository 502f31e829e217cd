// Package replay deterministically rebuilds PDO state from the audit log.
// Reconstruction is a pure function of the log prefix: no wall-clock reads,
// no external I/O, no randomness, so the same prefix always yields the same
// state table.
package replay

import (
	"fmt"

	"github.com/ppiankov/occkernel/internal/audit"
	"github.com/ppiankov/occkernel/internal/model"
	"github.com/ppiankov/occkernel/internal/pdo"
)

// ReconstructedPDO is the state a PDO must have been in at the replayed
// sequence number, as documented by the chain.
type ReconstructedPDO struct {
	ID           string        `json:"pdo_id"`
	State        model.State   `json:"state"`
	ClaimedBy    string        `json:"claimed_by,omitempty"`
	Outcome      model.Outcome `json:"outcome,omitempty"`
	LastSequence uint64        `json:"last_sequence"`
}

// Table maps PDO id to its reconstructed state.
type Table map[string]*ReconstructedPDO

// Reconstruct folds transition entries, in strict sequence order, into an
// initially-empty state table. Denied attempts, kill switch events, and
// execution acknowledgments are accountability records, not transitions,
// and do not move state. A transition the state machine would not permit
// means the log documents an impossible history: that is an IntegrityError,
// not a skippable entry.
func Reconstruct(entries []audit.Entry) (Table, error) {
	table := make(Table)

	for _, e := range entries {
		if err := apply(table, e); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// UpTo reads the log prefix ending at upTo (0 means the tail) and
// reconstructs the state table at that point.
func UpTo(storage audit.Storage, upTo uint64) (Table, error) {
	entries, err := storage.Read(1, upTo)
	if err != nil {
		return nil, err
	}
	return Reconstruct(entries)
}

func apply(table Table, e audit.Entry) error {
	switch e.ActionType {
	case pdo.ActionCreated:
		if _, ok := table[e.PdoID]; ok {
			return &model.IntegrityError{Sequence: e.Sequence, Reason: fmt.Sprintf("pdo %s created twice", e.PdoID)}
		}
		table[e.PdoID] = &ReconstructedPDO{
			ID:           e.PdoID,
			State:        model.StatePending,
			LastSequence: e.Sequence,
		}
		return nil

	case pdo.ActionEnqueued:
		return transition(table, e, model.StatePending, model.StateQueued)

	case pdo.ActionClaimed:
		r, err := lookup(table, e)
		if err != nil {
			return err
		}
		// Repeat claim by the owner is an idempotent no-op in the live
		// kernel and never audited twice, so replay requires Queued here.
		if r.State != model.StateQueued {
			return illegal(e, r.State)
		}
		r.State = model.StateUnderReview
		r.ClaimedBy = e.ActorID
		r.LastSequence = e.Sequence
		return nil

	case pdo.ActionDecided:
		r, err := lookup(table, e)
		if err != nil {
			return err
		}
		if r.State != model.StateUnderReview {
			return illegal(e, r.State)
		}
		outcome := model.Outcome(e.Outcome)
		next, ok := outcome.StateFor()
		if !ok {
			return &model.IntegrityError{Sequence: e.Sequence, Reason: fmt.Sprintf("unknown decision outcome %q", e.Outcome)}
		}
		r.State = next
		r.Outcome = outcome
		r.LastSequence = e.Sequence
		return nil

	case pdo.ActionExecuted:
		r, err := lookup(table, e)
		if err != nil {
			return err
		}
		if r.State != model.StateApproved && r.State != model.StateOverridden {
			return illegal(e, r.State)
		}
		r.State = model.StateExecuted
		r.LastSequence = e.Sequence
		return nil

	case pdo.ActionExpired:
		r, err := lookup(table, e)
		if err != nil {
			return err
		}
		if r.State != model.StateQueued && r.State != model.StateUnderReview {
			return illegal(e, r.State)
		}
		r.State = model.StateExpired
		r.LastSequence = e.Sequence
		return nil

	case pdo.ActionWithdrawn:
		return transition(table, e, model.StateQueued, model.StateWithdrawn)
	}

	// Non-transition entry: accountability only.
	return nil
}

func transition(table Table, e audit.Entry, from, to model.State) error {
	r, err := lookup(table, e)
	if err != nil {
		return err
	}
	if r.State != from {
		return illegal(e, r.State)
	}
	r.State = to
	r.LastSequence = e.Sequence
	return nil
}

func lookup(table Table, e audit.Entry) (*ReconstructedPDO, error) {
	r, ok := table[e.PdoID]
	if !ok {
		return nil, &model.IntegrityError{
			Sequence: e.Sequence,
			Reason:   fmt.Sprintf("%s references unknown pdo %s", e.ActionType, e.PdoID),
		}
	}
	return r, nil
}

func illegal(e audit.Entry, from model.State) error {
	return &model.IntegrityError{
		Sequence: e.Sequence,
		Reason:   fmt.Sprintf("%s recorded against pdo %s in state %q", e.ActionType, e.PdoID, from),
	}
}
