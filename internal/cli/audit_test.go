package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ppiankov/occkernel/internal/audit"
)

// seedChain writes a small valid chain into a sqlite database.
func seedChain(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "audit.db")
	storage, err := audit.OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	log, err := audit.Open(storage, nil)
	if err != nil {
		storage.Close()
		t.Fatal(err)
	}

	entries := []audit.Entry{
		{ActorID: "agent-1", ActionType: "pdo.created", PdoID: "pdo-1"},
		{ActorID: "SYSTEM", ActionType: "pdo.enqueued", PdoID: "pdo-1"},
		{ActorID: "op-alice", ActionType: "pdo.claimed", PdoID: "pdo-1"},
		{ActorID: "op-alice", ActionType: "pdo.decided", PdoID: "pdo-1", Outcome: "approved"},
	}
	for _, e := range entries {
		if _, err := log.Append(e); err != nil {
			t.Fatal(err)
		}
	}
	if err := log.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestAuditVerifyValidChain(t *testing.T) {
	path := seedChain(t)
	if err := runAuditVerify(auditVerifyCmd, []string{path}); err != nil {
		t.Fatalf("verify: %v", err)
	}
}

func TestAuditTail(t *testing.T) {
	path := seedChain(t)
	tailEntries = 2
	if err := runAuditTail(auditTailCmd, []string{path}); err != nil {
		t.Fatalf("tail: %v", err)
	}
}

func TestAuditExportCheckRoundTrip(t *testing.T) {
	dbPath := seedChain(t)
	outPath := filepath.Join(t.TempDir(), "export.json")

	exportFrom = 2
	exportTo = 4
	exportOut = outPath
	if err := runAuditExport(auditExportCmd, []string{dbPath}); err != nil {
		t.Fatalf("export: %v", err)
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Fatalf("export file: %v", err)
	}

	if err := runAuditCheckExport(auditCheckExportCmd, []string{outPath}); err != nil {
		t.Fatalf("check-export: %v", err)
	}
}

func TestReplayCommand(t *testing.T) {
	path := seedChain(t)

	replayUpTo = 0
	replayFormat = "text"
	if err := runReplay(replayCmd, []string{path}); err != nil {
		t.Fatalf("replay: %v", err)
	}

	replayFormat = "json"
	if err := runReplay(replayCmd, []string{path}); err != nil {
		t.Fatalf("replay json: %v", err)
	}
}

func TestReplayFailsOnImpossibleHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.db")
	storage, err := audit.OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	log, err := audit.Open(storage, nil)
	if err != nil {
		storage.Close()
		t.Fatal(err)
	}
	// Claim without a create: the log documents an impossible history.
	if _, err := log.Append(audit.Entry{ActorID: "op-alice", ActionType: "pdo.claimed", PdoID: "pdo-ghost"}); err != nil {
		t.Fatal(err)
	}
	if err := log.Close(); err != nil {
		t.Fatal(err)
	}

	replayUpTo = 0
	replayFormat = "text"
	if err := runReplay(replayCmd, []string{path}); err == nil {
		t.Fatal("impossible history replayed without error")
	}
}

func TestKeygenProducesLoadableKey(t *testing.T) {
	keygenOut = filepath.Join(t.TempDir(), "signing.key")
	if err := runKeygen(keygenCmd, nil); err != nil {
		t.Fatalf("keygen: %v", err)
	}

	signer, err := audit.LoadSigner("key-1", keygenOut)
	if err != nil {
		t.Fatalf("generated key does not load: %v", err)
	}
	if signer.KeyID() != "key-1" {
		t.Errorf("key id = %s", signer.KeyID())
	}

	info, err := os.Stat(keygenOut)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("key file mode = %v", info.Mode().Perm())
	}
}
