// Package history persists executed queries to a local SQLite database.
// Recording is best effort; a failing history store must never break the
// query path.
package history

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/RavuAlHemio/icingcake/internal/domain"
)

//go:embed schema.sql
var schemaSQL string

// Entry represents a single query history entry
type Entry struct {
	ID         int
	ObjType    domain.ObjectType
	Filter     string
	ExecutedAt time.Time
	Duration   time.Duration
	RowCount   int
	Success    bool
	ErrorMsg   string
}

// Store manages query history persistence
type Store struct {
	db *sql.DB
}

// NewStore opens (creating if necessary) the history database at path
func NewStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Add records one executed query
func (s *Store) Add(entry Entry) error {
	_, err := s.db.Exec(`
		INSERT INTO query_history
		(objtype, filter, duration_ms, row_count, success, error_message)
		VALUES (?, ?, ?, ?, ?, ?)`,
		string(entry.ObjType),
		entry.Filter,
		entry.Duration.Milliseconds(),
		entry.RowCount,
		entry.Success,
		entry.ErrorMsg,
	)
	return err
}

// Recent retrieves the most recent history entries, newest first
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, objtype, filter, executed_at, duration_ms, row_count, success, error_message
		FROM query_history
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var objType string
		var durationMS int64
		if err := rows.Scan(&e.ID, &objType, &e.Filter, &e.ExecutedAt, &durationMS, &e.RowCount, &e.Success, &e.ErrorMsg); err != nil {
			return nil, err
		}
		e.ObjType = domain.ObjectType(objType)
		e.Duration = time.Duration(durationMS) * time.Millisecond
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}
