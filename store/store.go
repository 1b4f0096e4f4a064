package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/lovantir/qwedge/scenario"
)

// Sentinel errors for store operations.
var (
	// ErrNilReport indicates SaveReport was called without a report.
	ErrNilReport = errors.New("store: report must not be nil")
	// ErrRunNotFound indicates a run id with no stored row.
	ErrRunNotFound = errors.New("store: run not found")
)

// Run summarizes one archived RunAll invocation.
type Run struct {
	ID            int64
	CreatedAt     time.Time
	ScenarioCount int
	FailureCount  int
}

// Store is a SQLite-backed archive of scenario reports.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the archive at path and applies the
// schema. Use ":memory:" for an ephemeral archive.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %q: %w", path, err)
	}
	for _, ddl := range []string{createRuns, createScenarioResults, createScenarioFailures} {
		if _, err = db.Exec(ddl); err != nil {
			db.Close()

			return nil, fmt.Errorf("store: apply schema: %w", err)
		}
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveReport archives one report as a new run and returns its id.
// The whole report is written in a single transaction.
func (s *Store) SaveReport(ctx context.Context, report *scenario.Report) (int64, error) {
	if report == nil {
		return 0, ErrNilReport
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("store: begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (created_at, scenario_count, failure_count) VALUES (?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), len(report.Results), len(report.Failures))
	if err != nil {
		return 0, fmt.Errorf("store: insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("store: run id: %w", err)
	}

	for _, r := range report.Results {
		payload, merr := json.Marshal(r)
		if merr != nil {
			return 0, fmt.Errorf("store: marshal %q: %w", r.Label, merr)
		}
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO scenario_results (run_id, label, bulk_target, total_information, payload) VALUES (?, ?, ?, ?, ?)`,
			runID, r.Label, r.BulkTarget, r.TotalInformation, string(payload)); err != nil {
			return 0, fmt.Errorf("store: insert result %q: %w", r.Label, err)
		}
	}
	for _, f := range report.Failures {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO scenario_failures (run_id, label, cause) VALUES (?, ?, ?)`,
			runID, f.Label, f.Cause); err != nil {
			return 0, fmt.Errorf("store: insert failure %q: %w", f.Label, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("store: commit: %w", err)
	}

	return runID, nil
}

// Runs lists archived runs, newest first.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, created_at, scenario_count, failure_count FROM runs ORDER BY run_id DESC`)
	if err != nil {
		return nil, fmt.Errorf("store: list runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var created string
		if err = rows.Scan(&r.ID, &created, &r.ScenarioCount, &r.FailureCount); err != nil {
			return nil, fmt.Errorf("store: scan run: %w", err)
		}
		if r.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
			return nil, fmt.Errorf("store: parse created_at: %w", err)
		}
		out = append(out, r)
	}

	return out, rows.Err()
}

// Report reconstructs the archived report of one run.
func (s *Store) Report(ctx context.Context, runID int64) (*scenario.Report, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs WHERE run_id = ?`, runID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("store: lookup run %d: %w", runID, err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("%w: %d", ErrRunNotFound, runID)
	}

	report := &scenario.Report{}
	rows, err := s.db.QueryContext(ctx,
		`SELECT payload FROM scenario_results WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("store: load results: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var payload string
		if err = rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("store: scan payload: %w", err)
		}
		var res scenario.Result
		if err = json.Unmarshal([]byte(payload), &res); err != nil {
			return nil, fmt.Errorf("store: decode payload: %w", err)
		}
		report.Results = append(report.Results, &res)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	frows, err := s.db.QueryContext(ctx,
		`SELECT label, cause FROM scenario_failures WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("store: load failures: %w", err)
	}
	defer frows.Close()
	for frows.Next() {
		var f scenario.Failure
		if err = frows.Scan(&f.Label, &f.Cause); err != nil {
			return nil, fmt.Errorf("store: scan failure: %w", err)
		}
		report.Failures = append(report.Failures, f)
	}

	return report, frows.Err()
}
