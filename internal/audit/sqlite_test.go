package audit

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
)

func openTestDB(t *testing.T) (*SQLiteStorage, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "audit.db")
	storage, err := OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { storage.Close() })
	return storage, path
}

func TestSQLiteAppendAndRead(t *testing.T) {
	storage, _ := openTestDB(t)
	log, err := Open(storage, nil)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 5; i++ {
		if _, err := log.Append(testEntry("pdo.created", fmt.Sprintf("pdo-%d", i))); err != nil {
			t.Fatal(err)
		}
	}

	count, err := storage.Count()
	if err != nil {
		t.Fatal(err)
	}
	if count != 5 {
		t.Fatalf("count = %d", count)
	}

	entries, err := storage.Read(2, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 || entries[0].Sequence != 2 {
		t.Fatalf("read returned %d entries starting at %d", len(entries), entries[0].Sequence)
	}

	res, err := VerifyChain(storage, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Valid {
		t.Fatalf("chain invalid: %s", res.Reason)
	}
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.db")

	storage, err := OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	log, _ := Open(storage, nil)
	log.Append(testEntry("pdo.created", "pdo-1"))
	log.Append(testEntry("pdo.created", "pdo-2"))
	if err := log.Close(); err != nil {
		t.Fatal(err)
	}

	storage, err = OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	defer storage.Close()

	log, err = Open(storage, nil)
	if err != nil {
		t.Fatal(err)
	}
	e, err := log.Append(testEntry("pdo.created", "pdo-3"))
	if err != nil {
		t.Fatal(err)
	}
	if e.Sequence != 3 {
		t.Errorf("sequence after reopen = %d", e.Sequence)
	}

	res, _ := VerifyChain(storage, 1, 0)
	if !res.Valid {
		t.Fatalf("chain invalid after reopen: %s", res.Reason)
	}
}

func TestSQLitePragmasApplied(t *testing.T) {
	storage, _ := openTestDB(t)

	var mode string
	if err := storage.db.QueryRow(`PRAGMA journal_mode`).Scan(&mode); err != nil {
		t.Fatal(err)
	}
	if !strings.EqualFold(mode, "wal") {
		t.Errorf("journal_mode = %s", mode)
	}

	var timeout int
	if err := storage.db.QueryRow(`PRAGMA busy_timeout`).Scan(&timeout); err != nil {
		t.Fatal(err)
	}
	if timeout != 5000 {
		t.Errorf("busy_timeout = %d", timeout)
	}
}

func TestSQLiteRejectsUpdateAndDelete(t *testing.T) {
	storage, path := openTestDB(t)
	log, _ := Open(storage, nil)
	log.Append(testEntry("pdo.created", "pdo-1"))

	// Separate handle, as an attacker with direct database access would use.
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	_, err = db.Exec(`UPDATE audit_entries SET entry = '{}' WHERE seq = 1`)
	if err == nil || !strings.Contains(err.Error(), "immutable") {
		t.Fatalf("update not blocked by trigger: %v", err)
	}

	_, err = db.Exec(`DELETE FROM audit_entries WHERE seq = 1`)
	if err == nil || !strings.Contains(err.Error(), "immutable") {
		t.Fatalf("delete not blocked by trigger: %v", err)
	}

	count, _ := storage.Count()
	if count != 1 {
		t.Errorf("count changed to %d", count)
	}
}

func TestSQLiteRejectsDuplicateSequence(t *testing.T) {
	storage, _ := openTestDB(t)

	e := testEntry("pdo.created", "pdo-1")
	e.Sequence = 1
	e.PrevHash = GenesisHash
	e.EntryHash = ComputeEntryHash(e.PrevHash, e)

	if err := storage.Append(e); err != nil {
		t.Fatal(err)
	}
	if err := storage.Append(e); err == nil {
		t.Fatal("duplicate sequence accepted")
	}
}
