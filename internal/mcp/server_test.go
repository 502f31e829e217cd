package mcp

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ppiankov/occkernel/internal/server"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	dir := t.TempDir()
	configPath := filepath.Join(dir, "kernel.yaml")
	cfgYAML := fmt.Sprintf("audit_db_path: %s\nkill_switch_path: %s\n",
		filepath.Join(dir, "audit.db"), filepath.Join(dir, "killswitch.json"))
	if err := os.WriteFile(configPath, []byte(cfgYAML), 0o600); err != nil {
		t.Fatal(err)
	}

	srv, err := server.New(server.Config{ConfigPath: configPath})
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

	s, err := New(Config{KernelAddr: lis.Addr().String(), ActorID: "agent-mcp"})
	if err != nil {
		t.Fatalf("mcp.New: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestActorIDRequired(t *testing.T) {
	if _, err := New(Config{KernelAddr: "localhost:1"}); err == nil {
		t.Fatal("missing actor id accepted")
	}
}

func TestCreateAndStatus(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, created, err := s.handleCreatePdo(ctx, &mcpsdk.CallToolRequest{}, CreatePdoInput{
		TierRequired: 2,
		DecisionID:   "dec-1",
		ValueAtRisk:  50_000_00,
		TTL:          "2h",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.PdoID == "" || created.State != "queued" {
		t.Fatalf("created = %+v", created)
	}
	if created.TTLDeadline == "" {
		t.Error("ttl deadline not reported")
	}

	_, status, err := s.handlePdoStatus(ctx, &mcpsdk.CallToolRequest{}, PdoStatusInput{PdoID: created.PdoID})
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status.State != "queued" || status.Terminal {
		t.Errorf("status = %+v", status)
	}
}

func TestCreateRejectsBadTTL(t *testing.T) {
	s := newTestServer(t)

	_, _, err := s.handleCreatePdo(context.Background(), &mcpsdk.CallToolRequest{}, CreatePdoInput{
		TierRequired: 1,
		DecisionID:   "dec-1",
		TTL:          "soon",
	})
	if err == nil {
		t.Fatal("malformed ttl accepted")
	}
}

func TestWithdrawOwnSubmission(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, created, err := s.handleCreatePdo(ctx, &mcpsdk.CallToolRequest{}, CreatePdoInput{
		TierRequired: 1,
		DecisionID:   "dec-1",
	})
	if err != nil {
		t.Fatal(err)
	}

	_, withdrawn, err := s.handleWithdraw(ctx, &mcpsdk.CallToolRequest{}, WithdrawInput{PdoID: created.PdoID})
	if err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if withdrawn.State != "withdrawn" {
		t.Errorf("state = %s", withdrawn.State)
	}

	_, status, err := s.handlePdoStatus(ctx, &mcpsdk.CallToolRequest{}, PdoStatusInput{PdoID: created.PdoID})
	if err != nil {
		t.Fatal(err)
	}
	if !status.Terminal {
		t.Error("withdrawn pdo not terminal")
	}
}

func TestQueueListsSubmissions(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, _, err := s.handleCreatePdo(ctx, &mcpsdk.CallToolRequest{}, CreatePdoInput{
			TierRequired: i + 1,
			DecisionID:   fmt.Sprintf("dec-%d", i),
		}); err != nil {
			t.Fatal(err)
		}
	}

	_, out, err := s.handleQueue(ctx, &mcpsdk.CallToolRequest{}, QueueInput{})
	if err != nil {
		t.Fatalf("queue: %v", err)
	}
	if len(out.Items) != 3 {
		t.Fatalf("queue depth = %d", len(out.Items))
	}
	if out.Items[0].Tier != 3 {
		t.Errorf("highest tier not first: %+v", out.Items)
	}
}
