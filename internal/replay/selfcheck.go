package replay

import (
	"fmt"

	"github.com/ppiankov/occkernel/internal/audit"
	"github.com/ppiankov/occkernel/internal/model"
)

// Divergence describes the first disagreement between the live state table
// and the state documented by the audit chain.
type Divergence struct {
	PdoID    string      `json:"pdo_id"`
	Live     model.State `json:"live_state"`
	Replayed model.State `json:"replayed_state"`
	Detail   string      `json:"detail"`
}

func (d *Divergence) Error() string {
	return fmt.Sprintf("self-check divergence on pdo %s: live %q, replayed %q (%s)", d.PdoID, d.Live, d.Replayed, d.Detail)
}

// SelfCheck verifies the hash chain, replays it, and compares the result
// against the live PDO table to detect out-of-band corruption. A rewritten
// entry can replay to a consistent table, so the hashes are checked before
// the fold. A nil return means the live state matches the documented
// history exactly.
func SelfCheck(storage audit.Storage, live []model.PDO) error {
	vr, err := audit.VerifyChain(storage, 1, 0)
	if err != nil {
		return err
	}
	if !vr.Valid {
		return &model.IntegrityError{Sequence: vr.BadSequence, Reason: vr.Reason}
	}

	table, err := UpTo(storage, 0)
	if err != nil {
		return err
	}

	byID := make(map[string]model.PDO, len(live))
	for _, p := range live {
		byID[p.ID] = p
	}

	for id, r := range table {
		p, ok := byID[id]
		if !ok {
			return &Divergence{PdoID: id, Replayed: r.State, Detail: "pdo missing from live table"}
		}
		if p.State != r.State {
			return &Divergence{PdoID: id, Live: p.State, Replayed: r.State, Detail: "state mismatch"}
		}
		if r.State == model.StateUnderReview && p.ClaimedBy != r.ClaimedBy {
			return &Divergence{PdoID: id, Live: p.State, Replayed: r.State,
				Detail: fmt.Sprintf("claim owner mismatch: live %q, replayed %q", p.ClaimedBy, r.ClaimedBy)}
		}
		delete(byID, id)
	}

	for id, p := range byID {
		return &Divergence{PdoID: id, Live: p.State, Detail: "pdo absent from audit history"}
	}
	return nil
}
