package audit

import (
	"fmt"
	"sync"
	"time"
)

// Log assigns sequence numbers and chains entry hashes over a Storage
// backend. One Log instance is the single writer for its chain: the
// sequencer (next sequence + tail hash) is the most contended shared
// resource in the kernel and is protected by a single mutex, so no entry is
// ever visible before its predecessor.
type Log struct {
	mu       sync.Mutex
	storage  Storage
	signer   *Signer // nil when signing is disabled
	nextSeq  uint64
	logical  uint64
	prevHash string
}

// Open wraps a storage backend, recovering the chain tail from the last
// persisted entry. signer may be nil.
func Open(storage Storage, signer *Signer) (*Log, error) {
	last, ok, err := storage.Last()
	if err != nil {
		return nil, fmt.Errorf("audit: recover chain tail: %w", err)
	}

	l := &Log{
		storage:  storage,
		signer:   signer,
		nextSeq:  1,
		logical:  0,
		prevHash: GenesisHash,
	}
	if ok {
		l.nextSeq = last.Sequence + 1
		l.logical = last.LogicalTime
		l.prevHash = last.EntryHash
	}
	return l, nil
}

// Append commits one entry: it reserves the next sequence number and the
// current tail hash, computes entry_hash over the canonical serialization,
// persists, and returns the committed entry. On persistence failure the
// reservation is rolled back and the chain tail is unchanged.
func (l *Log) Append(e Entry) (Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e.Sequence = l.nextSeq
	l.logical++
	e.LogicalTime = l.logical
	if e.Timestamp == "" {
		e.Timestamp = time.Now().UTC().Format(TimestampFormat)
	}
	e.PrevHash = l.prevHash
	e.EntryHash = ComputeEntryHash(e.PrevHash, e)

	if l.signer != nil {
		e.SigningKeyID = l.signer.KeyID()
		e.Signature = l.signer.Sign(e.EntryHash)
	}

	if err := l.storage.Append(e); err != nil {
		l.logical--
		return Entry{}, err
	}

	l.nextSeq++
	l.prevHash = e.EntryHash
	return e, nil
}

// Head returns the current chain tail: last committed sequence and hash.
func (l *Log) Head() (uint64, string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.nextSeq - 1, l.prevHash
}

// Storage exposes the underlying backend for read-side consumers
// (verification, replay, export).
func (l *Log) Storage() Storage {
	return l.storage
}

// Close closes the underlying storage.
func (l *Log) Close() error {
	return l.storage.Close()
}
