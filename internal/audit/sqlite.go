package audit

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// schemaSQL creates the insert-only entry table. The BEFORE UPDATE and
// BEFORE DELETE triggers abort any mutation attempt inside the database
// engine itself, so the append-only guarantee does not depend on callers
// using this package's API.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS audit_entries (
    seq        INTEGER PRIMARY KEY,
    entry_hash TEXT NOT NULL,
    prev_hash  TEXT NOT NULL,
    entry      TEXT NOT NULL
);

CREATE TRIGGER IF NOT EXISTS audit_entries_no_update
BEFORE UPDATE ON audit_entries
BEGIN
    SELECT RAISE(ABORT, 'audit entries are immutable');
END;

CREATE TRIGGER IF NOT EXISTS audit_entries_no_delete
BEFORE DELETE ON audit_entries
BEGIN
    SELECT RAISE(ABORT, 'audit entries are immutable');
END;
`

// SQLiteStorage persists entries in an insert-only SQLite table.
type SQLiteStorage struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the audit database and installs the
// insert-only schema.
func OpenSQLite(path string) (*SQLiteStorage, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("audit: create directory: %w", err)
	}

	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(FULL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("audit: open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("audit: ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("audit: install schema: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

// Append persists one committed entry.
func (s *SQLiteStorage) Append(e Entry) error {
	line, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("audit: marshal entry: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO audit_entries (seq, entry_hash, prev_hash, entry) VALUES (?, ?, ?, ?)`,
		int64(e.Sequence), e.EntryHash, e.PrevHash, string(line),
	)
	if err != nil {
		return fmt.Errorf("audit: persist entry %d: %w", e.Sequence, err)
	}
	return nil
}

// Read returns entries with from <= seq <= to. to == 0 means the tail.
func (s *SQLiteStorage) Read(from, to uint64) ([]Entry, error) {
	if from == 0 {
		from = 1
	}

	var rows *sql.Rows
	var err error
	if to == 0 {
		rows, err = s.db.Query(
			`SELECT entry FROM audit_entries WHERE seq >= ? ORDER BY seq`, int64(from))
	} else {
		rows, err = s.db.Query(
			`SELECT entry FROM audit_entries WHERE seq >= ? AND seq <= ? ORDER BY seq`,
			int64(from), int64(to))
	}
	if err != nil {
		return nil, fmt.Errorf("audit: read entries: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, fmt.Errorf("audit: scan entry: %w", err)
		}
		var e Entry
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			return nil, fmt.Errorf("audit: decode entry: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("audit: read entries: %w", err)
	}
	return out, nil
}

// Last returns the highest-sequence entry, if any.
func (s *SQLiteStorage) Last() (Entry, bool, error) {
	var line string
	err := s.db.QueryRow(
		`SELECT entry FROM audit_entries ORDER BY seq DESC LIMIT 1`).Scan(&line)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("audit: read tail: %w", err)
	}

	var e Entry
	if err := json.Unmarshal([]byte(line), &e); err != nil {
		return Entry{}, false, fmt.Errorf("audit: decode tail: %w", err)
	}
	return e, true, nil
}

// Count returns the number of persisted entries.
func (s *SQLiteStorage) Count() (uint64, error) {
	var n int64
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM audit_entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("audit: count entries: %w", err)
	}
	return uint64(n), nil
}

// Close closes the database handle.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
