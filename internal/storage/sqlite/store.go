// Package sqlite provides a SQLite-backed shelf store.
//
// The database lives in memory by default: poemlens keeps nothing across
// process restarts, this backend exists for callers that want SQL ordering
// semantics over the shelf rather than durability.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"poemlens/internal/domain"
	"poemlens/internal/logging"
)

// MemoryDSN is the default in-memory database location.
const MemoryDSN = ":memory:"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS entries (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	verse       TEXT NOT NULL DEFAULT '',
	mood        TEXT NOT NULL,
	captured_at TEXT NOT NULL
);
`

// Store implements gallery.Store on top of SQLite. Identity order is the
// primary-key order of the id column.
type Store struct {
	db *sql.DB
}

// New opens a SQLite-backed store at the provided DSN.
// An empty DSN selects the in-memory database.
func New(dsn string) (*Store, error) {
	if strings.TrimSpace(dsn) == "" {
		dsn = MemoryDSN
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite store: open db: %w", err)
	}
	// An in-memory database exists per connection; pin the pool to one so
	// every statement sees the same database.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) init() error {
	if _, err := s.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("sqlite store: set busy timeout: %w", err)
	}
	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("sqlite store: create schema: %w", err)
	}
	return nil
}

// Insert adds an entry; an existing ID is replaced, never duplicated.
// The store interface has no error surface, so failures are logged and the
// insert is dropped.
func (s *Store) Insert(e domain.Entry) {
	_, err := s.db.Exec(
		`INSERT INTO entries (id, title, verse, mood, captured_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   title = excluded.title,
		   verse = excluded.verse,
		   mood = excluded.mood,
		   captured_at = excluded.captured_at`,
		string(e.ID), e.Title, e.Verse, string(e.Mood), e.CapturedAt,
	)
	if err != nil {
		logging.Error("sqlite store: insert entry failed", "id", e.ID, "error", err)
	}
}

// Remove removes the entry with the given ID and returns it.
func (s *Store) Remove(id domain.EntryID) (domain.Entry, bool) {
	e, ok := s.Get(id)
	if !ok {
		return domain.Entry{}, false
	}
	if _, err := s.db.Exec(`DELETE FROM entries WHERE id = ?`, string(id)); err != nil {
		logging.Error("sqlite store: delete entry failed", "id", id, "error", err)
		return domain.Entry{}, false
	}
	return e, true
}

// Get returns the entry with the given ID.
func (s *Store) Get(id domain.EntryID) (domain.Entry, bool) {
	row := s.db.QueryRow(
		`SELECT id, title, verse, mood, captured_at FROM entries WHERE id = ?`,
		string(id),
	)
	e, err := scanEntry(row)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logging.Error("sqlite store: get entry failed", "id", id, "error", err)
		}
		return domain.Entry{}, false
	}
	return e, true
}

// All returns the entries in ID order.
func (s *Store) All() []domain.Entry {
	rows, err := s.db.Query(
		`SELECT id, title, verse, mood, captured_at FROM entries ORDER BY id`,
	)
	if err != nil {
		logging.Error("sqlite store: list entries failed", "error", err)
		return nil
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			logging.Error("sqlite store: scan entry failed", "error", err)
			continue
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		logging.Error("sqlite store: iterate entries failed", "error", err)
	}
	return entries
}

// Len returns the number of entries.
func (s *Store) Len() int {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM entries`).Scan(&n); err != nil {
		logging.Error("sqlite store: count entries failed", "error", err)
		return 0
	}
	return n
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (domain.Entry, error) {
	var id, title, verse, mood, capturedAt string
	if err := row.Scan(&id, &title, &verse, &mood, &capturedAt); err != nil {
		return domain.Entry{}, err
	}
	return domain.Entry{
		ID:         domain.EntryID(id),
		Title:      title,
		Verse:      verse,
		Mood:       domain.Mood(mood),
		CapturedAt: capturedAt,
	}, nil
}
