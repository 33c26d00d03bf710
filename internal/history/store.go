// Package history persists a log of completed reconciliation passes.
//
// The reconciler never reads this data: every pass recomputes its matches
// from scratch. The log exists for operators, surfaced by the history
// subcommand.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id          TEXT NOT NULL,
	started_at      TIMESTAMP NOT NULL,
	finished_at     TIMESTAMP NOT NULL,
	updated         INTEGER NOT NULL,
	unmatched       INTEGER NOT NULL,
	already_correct INTEGER NOT NULL,
	error           TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
`

// Run is one recorded reconciliation pass. Error is empty for passes that
// completed; a non-empty Error means the pass aborted and the counters are
// zero work done.
type Run struct {
	ID             int64
	RunID          string
	StartedAt      time.Time
	FinishedAt     time.Time
	Updated        int
	Unmatched      int
	AlreadyCorrect int
	Error          string
}

// Store provides access to the pass log.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the pass log at the given path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record appends a completed pass to the log.
func (s *Store) Record(run Run) error {
	_, err := s.db.Exec(`
		INSERT INTO runs (run_id, started_at, finished_at, updated, unmatched, already_correct, error)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.RunID, run.StartedAt, run.FinishedAt,
		run.Updated, run.Unmatched, run.AlreadyCorrect, run.Error,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// Recent returns the most recent passes, newest first.
func (s *Store) Recent(limit int) ([]Run, error) {
	rows, err := s.db.Query(`
		SELECT id, run_id, started_at, finished_at, updated, unmatched, already_correct, error
		FROM runs ORDER BY started_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.RunID, &r.StartedAt, &r.FinishedAt,
			&r.Updated, &r.Unmatched, &r.AlreadyCorrect, &r.Error); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}
