// Package history records consolidation runs in a local SQLite database,
// so `solidify history` can answer "what did I merge last week, and with
// which key columns?".
//
// Recording is best effort: a failure to write history is logged by the
// caller and never fails the run that produced the output.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Run is one recorded consolidation.
type Run struct {
	ID          uuid.UUID
	StartedAt   time.Time
	Inputs      []string
	Output      string
	KeyColumns  []int
	RowsWritten int
	Warnings    int
}

// Store persists runs. Safe for use from a single process; the schema is
// created on open.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id           TEXT PRIMARY KEY,
	started_at   TEXT NOT NULL,
	inputs       TEXT NOT NULL,
	output       TEXT NOT NULL,
	key_columns  TEXT NOT NULL,
	rows_written INTEGER NOT NULL,
	warnings     INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
`

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("could not create history directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("could not open history database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not initialize history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts one run.
func (s *Store) Record(ctx context.Context, run Run) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, inputs, output, key_columns, rows_written, warnings)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID.String(),
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		strings.Join(run.Inputs, "\n"),
		run.Output,
		joinInts(run.KeyColumns),
		run.RowsWritten,
		run.Warnings,
	)
	if err != nil {
		return fmt.Errorf("could not record run: %w", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, inputs, output, key_columns, rows_written, warnings
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("could not query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run               Run
			id, at, in, specs string
		)
		if err := rows.Scan(&id, &at, &in, &run.Output, &specs, &run.RowsWritten, &run.Warnings); err != nil {
			return nil, fmt.Errorf("could not scan run: %w", err)
		}
		run.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("corrupt run id %q: %w", id, err)
		}
		run.StartedAt, err = time.Parse(time.RFC3339Nano, at)
		if err != nil {
			return nil, fmt.Errorf("corrupt run timestamp %q: %w", at, err)
		}
		if in != "" {
			run.Inputs = strings.Split(in, "\n")
		}
		run.KeyColumns, err = splitInts(specs)
		if err != nil {
			return nil, fmt.Errorf("corrupt key columns %q: %w", specs, err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func splitInts(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	values := make([]int, len(parts))
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}
