package client

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ppiankov/occkernel/internal/model"
	"github.com/ppiankov/occkernel/internal/server"
)

// startTestServer brings up a kernel server and returns its address.
func startTestServer(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	rosterPath := filepath.Join(dir, "roster.yaml")
	if err := os.WriteFile(rosterPath, []byte("op-alice: 3\nop-root: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	configPath := filepath.Join(dir, "kernel.yaml")
	cfgYAML := fmt.Sprintf("audit_db_path: %s\nkill_switch_path: %s\n",
		filepath.Join(dir, "audit.db"), filepath.Join(dir, "killswitch.json"))
	if err := os.WriteFile(configPath, []byte(cfgYAML), 0o600); err != nil {
		t.Fatal(err)
	}

	srv, err := server.New(server.Config{ConfigPath: configPath, RosterPath: rosterPath})
	if err != nil {
		t.Fatalf("server.New: %v", err)
	}

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		srv.Close()
		t.Fatalf("listen: %v", err)
	}
	go srv.ServeOn(lis)

	t.Cleanup(func() {
		srv.GracefulStop()
		srv.Close()
	})
	return lis.Addr().String()
}

func testClient(t *testing.T) *Client {
	t.Helper()
	c, err := New(startTestServer(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestClientLifecycle(t *testing.T) {
	c := testClient(t)

	p, err := c.CreatePdo(model.Spec{
		TierRequired:          2,
		OriginatingDecisionID: "dec-1",
		OriginatingActorID:    "agent-1",
		ValueAtRisk:           50_000_00,
		TTL:                   time.Hour,
	})
	if err != nil {
		t.Fatalf("CreatePdo: %v", err)
	}
	if p.State != model.StateQueued || p.ID == "" {
		t.Fatalf("created pdo: %+v", p)
	}
	if p.TTLDeadline.IsZero() {
		t.Error("ttl deadline not round-tripped")
	}

	claimed, err := c.Claim(p.ID, "op-alice", "cred")
	if err != nil {
		t.Fatalf("Claim: %v", err)
	}
	if claimed.ClaimedBy != "op-alice" {
		t.Fatalf("claimed by %s", claimed.ClaimedBy)
	}

	res, err := c.Commit(model.OverrideDecision{
		PdoID:         p.ID,
		OperatorID:    "op-alice",
		TierUsed:      3,
		Outcome:       model.OutcomeApproved,
		Justification: "verified batch totals against the reconciliation report before release",
	}, "cred")
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if !res.Allowed {
		t.Fatalf("denied: %s %s", res.DenialCode, res.DenialReason)
	}
	if res.PDO.State != model.StateApproved {
		t.Errorf("state = %s", res.PDO.State)
	}

	executed, err := c.Execute(p.ID)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if executed.State != model.StateExecuted {
		t.Errorf("state = %s", executed.State)
	}
}

func TestClientDenialResult(t *testing.T) {
	c := testClient(t)

	p, err := c.CreatePdo(model.Spec{
		TierRequired:          2,
		OriginatingDecisionID: "dec-1",
		OriginatingActorID:    "agent-1",
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Claim(p.ID, "op-alice", "cred"); err != nil {
		t.Fatal(err)
	}

	res, err := c.Commit(model.OverrideDecision{
		PdoID:         p.ID,
		OperatorID:    "op-alice",
		TierUsed:      3,
		Outcome:       model.OutcomeApproved,
		Justification: "lgtm",
	}, "cred")
	if err != nil {
		t.Fatalf("denial surfaced as error: %v", err)
	}
	if res.Allowed {
		t.Fatal("boilerplate justification allowed")
	}
	if res.DenialCode != "justification_rejected" {
		t.Errorf("denial code = %s", res.DenialCode)
	}
}

func TestClientQueueAndStatus(t *testing.T) {
	c := testClient(t)

	if _, err := c.CreatePdo(model.Spec{
		TierRequired:          1,
		OriginatingDecisionID: "dec-1",
		OriginatingActorID:    "agent-1",
	}); err != nil {
		t.Fatal(err)
	}

	items, err := c.ListQueue()
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 {
		t.Fatalf("queue depth = %d", len(items))
	}

	status, err := c.Status()
	if err != nil {
		t.Fatal(err)
	}
	if status.QueueDepth != 1 || status.ChainHeadSequence != 2 {
		t.Errorf("status = %+v", status)
	}
}

func TestClientWithdraw(t *testing.T) {
	c := testClient(t)

	p, err := c.CreatePdo(model.Spec{
		TierRequired:          1,
		OriginatingDecisionID: "dec-1",
		OriginatingActorID:    "agent-1",
	})
	if err != nil {
		t.Fatal(err)
	}

	withdrawn, err := c.Withdraw(p.ID, "agent-1")
	if err != nil {
		t.Fatalf("Withdraw: %v", err)
	}
	if withdrawn.State != model.StateWithdrawn {
		t.Errorf("state = %s", withdrawn.State)
	}
}

func TestClientKillSwitch(t *testing.T) {
	c := testClient(t)

	if err := c.KillSwitch("op-root", "cred", true, "containment drill"); err != nil {
		t.Fatalf("engage: %v", err)
	}
	status, err := c.Status()
	if err != nil {
		t.Fatal(err)
	}
	if !status.KillSwitchEngaged {
		t.Error("status does not report engaged kill switch")
	}
	if err := c.KillSwitch("op-root", "cred", false, "drill complete"); err != nil {
		t.Fatalf("disengage: %v", err)
	}
}
