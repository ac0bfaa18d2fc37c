package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// RunNotFoundError is returned when no run matches the requested ID.
type RunNotFoundError struct {
	ID string
}

func (e *RunNotFoundError) Error() string {
	return fmt.Sprintf("run %q not found", e.ID)
}

// RunRepository stores and queries recorded resolutions.
type RunRepository interface {
	// Save persists a run. Runs are append-only, Save inserts a new row.
	Save(run *Run) error

	// FindByID retrieves a run by its ID.
	// Returns RunNotFoundError if no matching run exists.
	FindByID(id string) (*Run, error)

	// List retrieves runs ordered newest first. A limit of 0 or less
	// returns all runs.
	List(limit int) ([]*Run, error)

	// DeleteOlderThan removes runs created strictly before cutoff and
	// reports how many rows were deleted.
	DeleteOlderThan(cutoff time.Time) (int64, error)

	// Close releases any resources held by the repository.
	Close() error
}

// runColumns is the list of columns to select for run queries.
const runColumns = `id, descriptor, status, error, node_count, duration_ms, snapshot, created_at, trace_id`

// runRepository implements RunRepository using SQLite.
type runRepository struct {
	db *sql.DB
}

// newRunRepository creates a new runRepository instance.
func newRunRepository(db *sql.DB) *runRepository {
	return &runRepository{db: db}
}

var _ RunRepository = (*runRepository)(nil)

// scanRun scans a row into a Run.
func scanRun(scanner interface{ Scan(...any) error }) (*Run, error) {
	var (
		run       Run
		createdAt int64
	)
	err := scanner.Scan(
		&run.ID, &run.Descriptor, &run.Status, &run.Error,
		&run.NodeCount, &run.DurationMS, &run.Snapshot,
		&createdAt, &run.TraceID,
	)
	if err != nil {
		return nil, err
	}
	run.CreatedAt = time.Unix(createdAt, 0)
	return &run, nil
}

// Save persists a run to the database.
func (r *runRepository) Save(run *Run) error {
	_, err := r.db.Exec(
		`INSERT INTO runs (id, descriptor, status, error, node_count, duration_ms, snapshot, created_at, trace_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Descriptor, run.Status, run.Error,
		run.NodeCount, run.DurationMS, run.Snapshot,
		run.CreatedAt.Unix(), run.TraceID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}
	return nil
}

// FindByID retrieves a run by its ID.
// Returns RunNotFoundError if no matching run exists.
func (r *runRepository) FindByID(id string) (*Run, error) {
	row := r.db.QueryRow(
		`SELECT `+runColumns+` FROM runs WHERE id = ?`,
		id,
	)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &RunNotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find run by id: %w", err)
	}
	return run, nil
}

// List retrieves runs ordered by created_at descending, newest first. Rows
// created in the same second keep insertion order via the rowid tiebreak.
func (r *runRepository) List(limit int) ([]*Run, error) {
	query := `SELECT ` + runColumns + ` FROM runs ORDER BY created_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run row: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating run rows: %w", err)
	}

	return runs, nil
}

// DeleteOlderThan removes runs created strictly before cutoff.
func (r *runRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result, err := r.db.Exec(
		`DELETE FROM runs WHERE created_at < ?`,
		cutoff.Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete runs: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return deleted, nil
}

// Close releases any resources held by the repository.
// This is a no-op because the connection is owned by the DB struct.
func (r *runRepository) Close() error {
	return nil
}
