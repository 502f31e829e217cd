package store

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/ppiankov/occkernel/internal/model"
)

func newPdo(id string) *model.PDO {
	return &model.PDO{ID: id, State: model.StateQueued, EnqueuedSequence: 1}
}

func TestInsertAndGet(t *testing.T) {
	s := NewMemoryStore()
	if err := s.Insert(newPdo("pdo-1")); err != nil {
		t.Fatal(err)
	}

	p, err := s.Get("pdo-1")
	if err != nil {
		t.Fatal(err)
	}
	if p.ID != "pdo-1" {
		t.Errorf("got id %s", p.ID)
	}

	if err := s.Insert(newPdo("pdo-1")); err == nil {
		t.Error("duplicate insert must fail")
	}

	if _, err := s.Get("pdo-missing"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	s.Insert(newPdo("pdo-1"))

	p, _ := s.Get("pdo-1")
	p.State = model.StateExecuted

	again, _ := s.Get("pdo-1")
	if again.State != model.StateQueued {
		t.Error("mutating a returned copy must not affect the store")
	}
}

func TestUpdateRollsBackOnError(t *testing.T) {
	s := NewMemoryStore()
	s.Insert(newPdo("pdo-1"))

	boom := errors.New("boom")
	_, err := s.Update("pdo-1", func(p *model.PDO) error {
		p.State = model.StateExecuted
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected fn error, got %v", err)
	}

	p, _ := s.Get("pdo-1")
	if p.State != model.StateQueued {
		t.Errorf("failed update leaked, state=%s", p.State)
	}
}

func TestUpdateCommitsOnSuccess(t *testing.T) {
	s := NewMemoryStore()
	s.Insert(newPdo("pdo-1"))

	updated, err := s.Update("pdo-1", func(p *model.PDO) error {
		p.State = model.StateUnderReview
		p.ClaimedBy = "op-alice"
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if updated.State != model.StateUnderReview {
		t.Errorf("returned state=%s", updated.State)
	}

	p, _ := s.Get("pdo-1")
	if p.ClaimedBy != "op-alice" {
		t.Errorf("stored claimed_by=%s", p.ClaimedBy)
	}
}

func TestConcurrentUpdatesSerialize(t *testing.T) {
	s := NewMemoryStore()
	p := newPdo("pdo-1")
	p.ValueAtRisk = 0
	s.Insert(p)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Update("pdo-1", func(p *model.PDO) error {
				p.ValueAtRisk++
				return nil
			})
		}()
	}
	wg.Wait()

	got, _ := s.Get("pdo-1")
	if got.ValueAtRisk != 50 {
		t.Errorf("expected 50 increments, got %d", got.ValueAtRisk)
	}
}

func TestSnapshotOrderedBySequence(t *testing.T) {
	s := NewMemoryStore()
	for i := 5; i >= 1; i-- {
		p := newPdo(fmt.Sprintf("pdo-%d", i))
		p.EnqueuedSequence = uint64(i)
		s.Insert(p)
	}

	snap := s.Snapshot()
	if len(snap) != 5 {
		t.Fatalf("expected 5 records, got %d", len(snap))
	}
	for i := 1; i < len(snap); i++ {
		if snap[i].EnqueuedSequence < snap[i-1].EnqueuedSequence {
			t.Fatal("snapshot not ordered by admission sequence")
		}
	}
}
