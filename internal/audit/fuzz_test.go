package audit

import (
	"bytes"
	"testing"
)

func FuzzCanonicalBytesDeterministic(f *testing.F) {
	f.Add("op-alice", 3, "pdo.decided", "pdo-1", "approved", "customer confirmed duplicate charge on invoice 4411")
	f.Add("", 0, "", "", "", "")
	f.Add("SYSTEM", -1, "pdo.expired", "pdo-\x00", "weird\nvalue", "üñíçødé")

	f.Fuzz(func(t *testing.T, actor string, tier int, action, pdoID, outcome, reason string) {
		e := Entry{
			Sequence:    1,
			LogicalTime: 1,
			Timestamp:   "2026-03-01T12:00:00.000Z",
			ActorID:     actor,
			ActorTier:   tier,
			ActionType:  action,
			PdoID:       pdoID,
			Outcome:     outcome,
			Reason:      reason,
		}

		b1 := CanonicalBytes(e)
		b2 := CanonicalBytes(e)
		if !bytes.Equal(b1, b2) {
			t.Fatal("canonical serialization is not deterministic")
		}

		h1 := ComputeEntryHash(GenesisHash, e)
		h2 := ComputeEntryHash(GenesisHash, e)
		if h1 != h2 {
			t.Fatal("entry hash is not deterministic")
		}

		mutated := e
		mutated.Reason = reason + "x"
		if ComputeEntryHash(GenesisHash, mutated) == h1 {
			t.Fatal("mutated entry hashed identically")
		}
	})
}
