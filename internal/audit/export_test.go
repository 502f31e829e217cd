package audit

import (
	"bytes"
	"testing"
)

func TestBuildExportAndVerify(t *testing.T) {
	_, storage := buildChain(t, 10)

	export, err := BuildExport(storage, 3, 7)
	if err != nil {
		t.Fatal(err)
	}
	if export.From != 3 || export.To != 7 {
		t.Errorf("range [%d, %d]", export.From, export.To)
	}
	if len(export.Entries) != 5 {
		t.Errorf("%d entries", len(export.Entries))
	}
	if export.AnchorHash != export.Entries[0].PrevHash {
		t.Error("anchor does not match first entry")
	}
	if export.TailHash != export.Entries[4].EntryHash {
		t.Error("tail does not match last entry")
	}

	if err := export.Verify(); err != nil {
		t.Fatalf("export failed its own verification: %v", err)
	}
}

func TestExportRoundTrip(t *testing.T) {
	_, storage := buildChain(t, 5)

	export, err := BuildExport(storage, 1, 0)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := export.WriteJSON(&buf); err != nil {
		t.Fatal(err)
	}

	decoded, err := ReadExport(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if err := decoded.Verify(); err != nil {
		t.Fatalf("decoded export invalid: %v", err)
	}
	if decoded.TailHash != export.TailHash {
		t.Error("tail hash changed in round trip")
	}
}

func TestTamperedExportFailsVerify(t *testing.T) {
	_, storage := buildChain(t, 5)

	export, err := BuildExport(storage, 1, 0)
	if err != nil {
		t.Fatal(err)
	}

	export.Entries[1].ActorID = "someone-else"
	if err := export.Verify(); err == nil {
		t.Fatal("tampered export passed verification")
	}
}

func TestExportEmptyRangeFails(t *testing.T) {
	_, storage := buildChain(t, 3)

	if _, err := BuildExport(storage, 10, 20); err == nil {
		t.Fatal("expected error for empty range")
	}
}

func TestExportRefusesBrokenRange(t *testing.T) {
	storage := NewMemoryStorage()
	log, _ := Open(storage, nil)
	log.Append(testEntry("pdo.created", "pdo-1"))

	// Persist a forged second entry directly, bypassing the log.
	forged := testEntry("pdo.created", "pdo-2")
	forged.Sequence = 2
	forged.PrevHash = "sha256:ffff"
	forged.EntryHash = ComputeEntryHash(forged.PrevHash, forged)
	if err := storage.Append(forged); err != nil {
		t.Fatal(err)
	}

	if _, err := BuildExport(storage, 1, 0); err == nil {
		t.Fatal("export must refuse a range it cannot verify")
	}
}
