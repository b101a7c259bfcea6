// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps a SQLite log of conversion runs and their per-item
// results.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/pdf-toolkit/internal/convert"
)

const defaultLimit = 20

// Run is one recorded conversion run.
type Run struct {
	ID          int64     `json:"id"`
	Mode        string    `json:"mode"`
	Source      string    `json:"source"`
	Destination string    `json:"destination"`
	StartedAt   time.Time `json:"started_at"`
	Converted   int       `json:"converted"`
	Skipped     int       `json:"skipped"`
	Failed      int       `json:"failed"`
}

// Item is the recorded outcome of one source file within a run.
type Item struct {
	Source  string   `json:"source"`
	Status  string   `json:"status"`
	Outputs []string `json:"outputs"`
	Error   string   `json:"error,omitempty"`
}

// Store manages the history database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at path, creating its parent
// folder and schema when missing.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			source TEXT NOT NULL,
			destination TEXT NOT NULL,
			started_at TEXT NOT NULL,
			converted INTEGER NOT NULL,
			skipped INTEGER NOT NULL,
			failed INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS items (
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			source TEXT NOT NULL,
			status TEXT NOT NULL,
			outputs TEXT,
			error TEXT,
			PRIMARY KEY (run_id, position)
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores a finished batch started at startedAt and returns the new
// run ID. The run and its items are written in one transaction.
func (s *Store) Record(ctx context.Context, b convert.BatchResult, startedAt time.Time) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (mode, source, destination, started_at, converted, skipped, failed)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		string(b.Mode), b.Source, b.Destination,
		startedAt.UTC().Format(time.RFC3339Nano),
		b.Converted, b.Skipped, b.Failed,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	for i, item := range b.Items {
		outputs, err := json.Marshal(item.Outputs)
		if err != nil {
			return 0, fmt.Errorf("marshaling outputs: %w", err)
		}
		var errText sql.NullString
		if item.Err != nil {
			errText = sql.NullString{String: item.Err.Error(), Valid: true}
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO items (run_id, position, source, status, outputs, error)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			runID, i, item.Source, string(item.Status), string(outputs), errText,
		); err != nil {
			return 0, fmt.Errorf("inserting item %s: %w", item.Source, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// Recent returns up to limit runs, newest first. A limit of zero or less
// uses the default of 20.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, mode, source, destination, started_at, converted, skipped, failed
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var started string
		if err := rows.Scan(&r.ID, &r.Mode, &r.Source, &r.Destination, &started,
			&r.Converted, &r.Skipped, &r.Failed); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if r.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
			return nil, fmt.Errorf("parsing start time of run %d: %w", r.ID, err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Items returns the recorded items of a run in processing order.
func (s *Store) Items(ctx context.Context, runID int64) ([]Item, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT source, status, outputs, error FROM items
		 WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying items: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		var outputs, errText sql.NullString
		if err := rows.Scan(&it.Source, &it.Status, &outputs, &errText); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		if outputs.Valid && outputs.String != "" {
			if err := json.Unmarshal([]byte(outputs.String), &it.Outputs); err != nil {
				return nil, fmt.Errorf("decoding outputs of %s: %w", it.Source, err)
			}
		}
		it.Error = errText.String
		items = append(items, it)
	}
	return items, rows.Err()
}
