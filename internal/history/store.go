package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"strmsync/internal/config"
	"strmsync/internal/engine"
)

// Record is one persisted run summary.
type Record struct {
	ID             int64
	RunID          string
	StartedAt      time.Time
	Duration       time.Duration
	Movies         int
	Series         int
	LiveTV         int
	Added          int
	Updated        int
	Unchanged      int
	Skipped        int
	Deferred       int
	OrphansRemoved int
	GuardTriggered bool
	Outcome        string
	Error          string
}

const (
	// OutcomeOK marks a completed run.
	OutcomeOK = "ok"
	// OutcomeFailed marks a run aborted by a fetch failure.
	OutcomeFailed = "failed"
)

// Store persists run summaries in SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.HistoryDBPath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.applySchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) applySchema(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id TEXT NOT NULL,
    started_at TEXT NOT NULL,
    duration_ms INTEGER NOT NULL DEFAULT 0,
    movies INTEGER NOT NULL DEFAULT 0,
    series INTEGER NOT NULL DEFAULT 0,
    livetv INTEGER NOT NULL DEFAULT 0,
    added INTEGER NOT NULL DEFAULT 0,
    updated INTEGER NOT NULL DEFAULT 0,
    unchanged INTEGER NOT NULL DEFAULT 0,
    skipped INTEGER NOT NULL DEFAULT 0,
    deferred INTEGER NOT NULL DEFAULT 0,
    orphans_removed INTEGER NOT NULL DEFAULT 0,
    guard_triggered INTEGER NOT NULL DEFAULT 0,
    outcome TEXT NOT NULL,
    error TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// RecordRun persists one completed run summary.
func (s *Store) RecordRun(ctx context.Context, summary *engine.Summary) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (
            run_id, started_at, duration_ms, movies, series, livetv,
            added, updated, unchanged, skipped, deferred,
            orphans_removed, guard_triggered, outcome
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		summary.RunID,
		summary.StartedAt.UTC().Format(time.RFC3339Nano),
		summary.Duration.Milliseconds(),
		summary.Movies,
		summary.Series,
		summary.LiveTV,
		summary.Added,
		summary.Updated,
		summary.Unchanged,
		summary.ParseSkipped+summary.TitleSkipped+summary.IOSkipped,
		summary.Deferred(),
		summary.OrphansRemoved,
		boolToInt(summary.GuardTriggered),
		OutcomeOK,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// RecordFailure persists a run aborted before reconciliation.
func (s *Store) RecordFailure(ctx context.Context, runErr error) error {
	message := ""
	if runErr != nil {
		message = runErr.Error()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (run_id, started_at, outcome, error) VALUES ('', ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339Nano),
		OutcomeFailed,
		message,
	)
	if err != nil {
		return fmt.Errorf("insert failed run: %w", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, run_id, started_at, duration_ms, movies, series, livetv,
                added, updated, unchanged, skipped, deferred,
                orphans_removed, guard_triggered, outcome, error
           FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var startedAt string
		var durationMS int64
		var guard int
		if err := rows.Scan(
			&rec.ID, &rec.RunID, &startedAt, &durationMS,
			&rec.Movies, &rec.Series, &rec.LiveTV,
			&rec.Added, &rec.Updated, &rec.Unchanged, &rec.Skipped, &rec.Deferred,
			&rec.OrphansRemoved, &guard, &rec.Outcome, &rec.Error,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if parsed, parseErr := time.Parse(time.RFC3339Nano, startedAt); parseErr == nil {
			rec.StartedAt = parsed
		}
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		rec.GuardTriggered = guard != 0
		records = append(records, rec)
	}
	return records, rows.Err()
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
