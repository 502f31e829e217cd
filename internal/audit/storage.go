package audit

import (
	"fmt"
	"sync"
)

// Storage persists chained entries. Implementations are insert-only: the
// interface exposes no update or delete, and database backends enforce
// immutability at the storage layer (triggers), not by convention, so a
// compromised caller with lower-level access still cannot mutate history.
type Storage interface {
	// Append persists one committed entry. Sequence numbers arrive in strict
	// order from the single log writer; a gap or duplicate is an error.
	Append(e Entry) error

	// Read returns entries with from <= seq <= to, in sequence order.
	// to == 0 means the current tail.
	Read(from, to uint64) ([]Entry, error)

	// Last returns the highest-sequence entry, if any.
	Last() (Entry, bool, error)

	// Count returns the number of persisted entries.
	Count() (uint64, error)

	Close() error
}

// MemoryStorage is an in-memory Storage used by tests and ephemeral kernels.
type MemoryStorage struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewMemoryStorage creates an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// Append persists one committed entry.
func (m *MemoryStorage) Append(e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	want := uint64(len(m.entries)) + 1
	if e.Sequence != want {
		return &SequenceError{Got: e.Sequence, Want: want}
	}
	m.entries = append(m.entries, e)
	return nil
}

// Read returns entries with from <= seq <= to. to == 0 means the tail.
func (m *MemoryStorage) Read(from, to uint64) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := uint64(len(m.entries))
	if from == 0 {
		from = 1
	}
	if to == 0 || to > n {
		to = n
	}
	if from > to {
		return nil, nil
	}
	out := make([]Entry, to-from+1)
	copy(out, m.entries[from-1:to])
	return out, nil
}

// Last returns the highest-sequence entry, if any.
func (m *MemoryStorage) Last() (Entry, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.entries) == 0 {
		return Entry{}, false, nil
	}
	return m.entries[len(m.entries)-1], true, nil
}

// Count returns the number of persisted entries.
func (m *MemoryStorage) Count() (uint64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return uint64(len(m.entries)), nil
}

// Close is a no-op for memory storage.
func (m *MemoryStorage) Close() error { return nil }

// SequenceError reports an out-of-order append, which would mean two writers
// bypassed the sequencer.
type SequenceError struct {
	Got  uint64
	Want uint64
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("audit: out-of-order append: got sequence %d, want %d", e.Got, e.Want)
}
