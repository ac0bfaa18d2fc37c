package testutil

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
)

// Builder accumulates run history rows and inserts them in order.
type Builder struct {
	t    *testing.T
	db   *sql.DB
	runs []runData
}

// NewBuilder creates a builder for the given test database.
func NewBuilder(t *testing.T, db *sql.DB) *Builder {
	t.Helper()
	return &Builder{t: t, db: db}
}

// WithRun adds a run with optional configuration.
func (b *Builder) WithRun(id string, opts ...RunOption) *Builder {
	run := defaultRun(id)
	for _, opt := range opts {
		opt(&run)
	}
	b.runs = append(b.runs, run)
	return b
}

// Build inserts all accumulated data into the database.
func (b *Builder) Build() {
	b.t.Helper()
	for _, run := range b.runs {
		b.insertRun(run)
	}
}

func (b *Builder) insertRun(run runData) {
	b.t.Helper()
	_, err := b.db.Exec(
		`INSERT INTO runs (id, descriptor, status, error, node_count, duration_ms, snapshot, created_at, trace_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.id, run.descriptor, run.status, run.errMsg,
		run.nodeCount, run.durationMS, run.snapshot,
		run.createdAt.Unix(), run.traceID,
	)
	require.NoError(b.t, err)
}
