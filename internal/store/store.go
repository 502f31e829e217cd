// Package store holds the live PDO table. The audit log is the system of
// record; this table is the kernel's working state and is continuously
// cross-checked against replay.
package store

import (
	"sort"
	"sync"

	"github.com/ppiankov/occkernel/internal/model"
)

// Store is the live PDO table consumed by the queue, executor, and sweeper.
// Update is the single mutation path: it holds the table's write lock while
// the caller validates, audits, and applies a transition, so no reader can
// observe a state change before its audit entry is durable.
type Store interface {
	// Insert adds a new PDO. Fails if the id already exists.
	Insert(p *model.PDO) error

	// Get returns a copy of the PDO, or ErrNotFound.
	Get(id string) (*model.PDO, error)

	// Update runs fn against the live record under the write lock. If fn
	// returns an error, the record is left exactly as it was. On success the
	// committed copy is returned.
	Update(id string, fn func(p *model.PDO) error) (*model.PDO, error)

	// Snapshot returns copies of all live records, ordered by admission
	// sequence, for sweeping and self-check.
	Snapshot() []model.PDO
}

// MemoryStore is an in-memory Store implementation, safe for concurrent use.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]*model.PDO
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]*model.PDO)}
}

// Insert adds a new PDO. Fails if the id already exists.
func (s *MemoryStore) Insert(p *model.PDO) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[p.ID]; ok {
		return &model.ValidationError{Field: "pdo_id", Reason: "already exists"}
	}
	s.data[p.ID] = p.Clone()
	return nil
}

// Get returns a copy of the PDO, or ErrNotFound.
func (s *MemoryStore) Get(id string) (*model.PDO, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.data[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return p.Clone(), nil
}

// Update runs fn under the write lock. fn receives a scratch copy; the live
// record is replaced only if fn succeeds, so a failed transition attempt
// leaves the PDO unmodified.
func (s *MemoryStore) Update(id string, fn func(p *model.PDO) error) (*model.PDO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	live, ok := s.data[id]
	if !ok {
		return nil, model.ErrNotFound
	}

	scratch := live.Clone()
	if err := fn(scratch); err != nil {
		return nil, err
	}

	s.data[id] = scratch
	return scratch.Clone(), nil
}

// Snapshot returns copies of all live records ordered by admission sequence.
func (s *MemoryStore) Snapshot() []model.PDO {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.PDO, 0, len(s.data))
	for _, p := range s.data {
		out = append(out, *p.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].EnqueuedSequence != out[j].EnqueuedSequence {
			return out[i].EnqueuedSequence < out[j].EnqueuedSequence
		}
		return out[i].ID < out[j].ID
	})
	return out
}
