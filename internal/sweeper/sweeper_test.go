package sweeper

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/ppiankov/occkernel/internal/audit"
	"github.com/ppiankov/occkernel/internal/config"
	"github.com/ppiankov/occkernel/internal/kernel"
	"github.com/ppiankov/occkernel/internal/killswitch"
	"github.com/ppiankov/occkernel/internal/model"
)

func newKernel(t *testing.T) *kernel.Kernel {
	t.Helper()
	log, err := audit.Open(audit.NewMemoryStorage(), nil)
	if err != nil {
		t.Fatal(err)
	}
	kill, err := killswitch.Open(filepath.Join(t.TempDir(), "killswitch.json"))
	if err != nil {
		t.Fatal(err)
	}
	return kernel.New(log, kill, config.DefaultConfig(), "sha256:test")
}

func TestSweepExpiresOverduePdos(t *testing.T) {
	k := newKernel(t)
	ctx := context.Background()

	p, err := k.CreatePdo(ctx, model.Spec{
		TierRequired:          1,
		OriginatingDecisionID: "dec-1",
		OriginatingActorID:    "agent-1",
		TTL:                   time.Millisecond,
	})
	if err != nil {
		t.Fatal(err)
	}

	s := New(k, time.Second)
	s.now = func() time.Time { return time.Now().Add(time.Minute) }

	n, err := s.Sweep(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("expired %d", n)
	}

	stored, err := k.GetPdo(p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.State != model.StateExpired {
		t.Errorf("state = %s", stored.State)
	}
}

func TestSweepNothingDue(t *testing.T) {
	k := newKernel(t)
	ctx := context.Background()

	if _, err := k.CreatePdo(ctx, model.Spec{
		TierRequired:          1,
		OriginatingDecisionID: "dec-1",
		OriginatingActorID:    "agent-1",
		TTL:                   time.Hour,
	}); err != nil {
		t.Fatal(err)
	}

	n, err := New(k, time.Second).Sweep(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("expired %d", n)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	k := newKernel(t)
	s := New(k, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("run did not stop on cancel")
	}
}
