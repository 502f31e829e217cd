package server

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/ppiankov/occkernel/api/proto/occkernel/v1"
	"github.com/ppiankov/occkernel/internal/audit"
)

// testServer spins up an in-process gRPC server on a random port and returns
// a client against it.
func testServer(t *testing.T) (pb.OcckernelServiceClient, func()) {
	t.Helper()

	dir := t.TempDir()
	rosterPath := filepath.Join(dir, "roster.yaml")
	if err := os.WriteFile(rosterPath, []byte("op-alice: 3\nop-root: 4\nop-junior: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	configPath := filepath.Join(dir, "kernel.yaml")
	cfgYAML := fmt.Sprintf("audit_db_path: %s\nkill_switch_path: %s\n",
		filepath.Join(dir, "audit.db"), filepath.Join(dir, "killswitch.json"))
	if err := os.WriteFile(configPath, []byte(cfgYAML), 0o600); err != nil {
		t.Fatal(err)
	}

	srv, err := New(Config{ConfigPath: configPath, RosterPath: rosterPath})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		srv.Close()
		t.Fatalf("listen: %v", err)
	}
	go srv.ServeOn(lis)

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		srv.GracefulStop()
		t.Fatalf("dial: %v", err)
	}

	cleanup := func() {
		conn.Close()
		srv.GracefulStop()
		srv.Close()
	}
	return pb.NewOcckernelServiceClient(conn), cleanup
}

func createPdo(t *testing.T, c pb.OcckernelServiceClient, tier int32, value int64) *pb.Pdo {
	t.Helper()
	resp, err := c.CreatePdo(context.Background(), &pb.CreatePdoRequest{
		TierRequired:          tier,
		OriginatingDecisionId: "dec-1",
		OriginatingActorId:    "agent-1",
		ValueAtRisk:           value,
		Ttl:                   "1h",
	})
	if err != nil {
		t.Fatalf("CreatePdo: %v", err)
	}
	return resp.Pdo
}

func TestLifecycleOverRPC(t *testing.T) {
	c, cleanup := testServer(t)
	defer cleanup()
	ctx := context.Background()

	p := createPdo(t, c, 2, 50_000_00)
	if p.State != "queued" {
		t.Fatalf("state after create = %s", p.State)
	}

	claim, err := c.Claim(ctx, &pb.ClaimRequest{PdoId: p.PdoId, OperatorId: "op-alice", Credential: "cred"})
	if err != nil {
		t.Fatalf("Claim: %v", err)
	}
	if claim.Pdo.State != "under_review" || claim.Pdo.ClaimedBy != "op-alice" {
		t.Fatalf("after claim: %+v", claim.Pdo)
	}

	commit, err := c.Commit(ctx, &pb.CommitRequest{
		PdoId:         p.PdoId,
		OperatorId:    "op-alice",
		Credential:    "cred",
		TierUsed:      3,
		Outcome:       "approved",
		Justification: "verified batch totals against the reconciliation report before release",
	})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if !commit.Allowed {
		t.Fatalf("denied: %s %s", commit.DenialCode, commit.DenialReason)
	}
	if commit.EntryHash == "" || commit.EntrySequence == 0 {
		t.Errorf("commit entry not reported: %+v", commit)
	}

	exec, err := c.Execute(ctx, &pb.ExecuteRequest{PdoId: p.PdoId})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if exec.Pdo.State != "executed" {
		t.Errorf("state after execute = %s", exec.Pdo.State)
	}
}

func TestCommitDenialIsResponseNotError(t *testing.T) {
	c, cleanup := testServer(t)
	defer cleanup()
	ctx := context.Background()

	p := createPdo(t, c, 2, 50_000_00)
	if _, err := c.Claim(ctx, &pb.ClaimRequest{PdoId: p.PdoId, OperatorId: "op-alice", Credential: "cred"}); err != nil {
		t.Fatal(err)
	}

	// Claims tier 4 but op-alice attests at 3.
	commit, err := c.Commit(ctx, &pb.CommitRequest{
		PdoId:         p.PdoId,
		OperatorId:    "op-alice",
		Credential:    "cred",
		TierUsed:      4,
		Outcome:       "approved",
		Justification: "verified batch totals against the reconciliation report before release",
	})
	if err != nil {
		t.Fatalf("denial surfaced as RPC error: %v", err)
	}
	if commit.Allowed {
		t.Fatal("over-tier decision allowed")
	}
	if commit.DenialCode != "tier_insufficient" {
		t.Errorf("denial code = %s", commit.DenialCode)
	}

	status, err := c.GetPdo(ctx, &pb.GetPdoRequest{PdoId: p.PdoId})
	if err != nil {
		t.Fatal(err)
	}
	if status.Pdo.State != "under_review" {
		t.Errorf("denial changed state to %s", status.Pdo.State)
	}
}

func TestUnknownOperatorRejected(t *testing.T) {
	c, cleanup := testServer(t)
	defer cleanup()

	p := createPdo(t, c, 1, 0)
	_, err := c.Claim(context.Background(), &pb.ClaimRequest{PdoId: p.PdoId, OperatorId: "op-ghost", Credential: "cred"})
	if err == nil {
		t.Fatal("unknown operator claimed a pdo")
	}
}

func TestListQueueRPC(t *testing.T) {
	c, cleanup := testServer(t)
	defer cleanup()

	createPdo(t, c, 1, 0)
	high := createPdo(t, c, 3, 0)

	resp, err := c.ListQueue(context.Background(), &pb.ListQueueRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Items) != 2 {
		t.Fatalf("queue depth = %d", len(resp.Items))
	}
	if resp.Items[0].PdoId != high.PdoId {
		t.Errorf("higher tier not first: %+v", resp.Items)
	}
}

func TestKillSwitchRPC(t *testing.T) {
	c, cleanup := testServer(t)
	defer cleanup()
	ctx := context.Background()

	// Under-tier operators cannot engage.
	_, err := c.KillSwitch(ctx, &pb.KillSwitchRequest{
		OperatorId: "op-junior", Credential: "cred", Engage: true, Reason: "drill",
	})
	if err == nil {
		t.Fatal("tier 1 operator engaged the kill switch")
	}

	resp, err := c.KillSwitch(ctx, &pb.KillSwitchRequest{
		OperatorId: "op-root", Credential: "cred", Engage: true, Reason: "containment drill",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !resp.Engaged || resp.Actor != "op-root" {
		t.Fatalf("kill switch state: %+v", resp)
	}

	if _, err := c.CreatePdo(ctx, &pb.CreatePdoRequest{
		TierRequired:          1,
		OriginatingDecisionId: "dec-2",
		OriginatingActorId:    "agent-1",
	}); err == nil {
		t.Fatal("create accepted while kill switch engaged")
	}

	status, err := c.Status(ctx, &pb.StatusRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if !status.KillSwitchEngaged {
		t.Error("status does not report engaged kill switch")
	}
}

func TestStatusReportsChainHead(t *testing.T) {
	c, cleanup := testServer(t)
	defer cleanup()
	ctx := context.Background()

	createPdo(t, c, 1, 0)

	status, err := c.Status(ctx, &pb.StatusRequest{})
	if err != nil {
		t.Fatal(err)
	}
	// Create chains two entries: pdo.created and pdo.enqueued.
	if status.ChainHeadSequence != 2 {
		t.Errorf("chain head = %d", status.ChainHeadSequence)
	}
	if status.ChainHeadHash == "" || status.ConfigHash == "" {
		t.Errorf("status missing hashes: %+v", status)
	}
	if status.Degraded {
		t.Error("fresh kernel reports degraded")
	}
	if status.QueueDepth != 1 {
		t.Errorf("queue depth = %d", status.QueueDepth)
	}
}

func TestExportAuditRPC(t *testing.T) {
	c, cleanup := testServer(t)
	defer cleanup()
	ctx := context.Background()

	createPdo(t, c, 1, 0)

	resp, err := c.ExportAudit(ctx, &pb.ExportAuditRequest{From: 1, To: 0})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Entries != 2 {
		t.Fatalf("exported %d entries", resp.Entries)
	}

	export, err := audit.ReadExport(bytes.NewReader(resp.ExportJson))
	if err != nil {
		t.Fatal(err)
	}
	if err := export.Verify(); err != nil {
		t.Errorf("export does not verify offline: %v", err)
	}
	if export.AnchorHash != resp.AnchorHash || export.TailHash != resp.TailHash {
		t.Error("export hashes disagree with response fields")
	}
}
