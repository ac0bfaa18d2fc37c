// Package testutil provides test utilities for database setup and tree
// construction.
package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/stretchr/testify/require"
)

// Schema contains the run history schema with every migration applied.
// Keep in sync with internal/infrastructure/sqlite/migrations.
const Schema = `
CREATE TABLE runs (
	id TEXT PRIMARY KEY,
	descriptor TEXT NOT NULL,
	status TEXT NOT NULL,
	error TEXT,
	node_count INTEGER NOT NULL DEFAULT 0,
	duration_ms INTEGER NOT NULL DEFAULT 0,
	snapshot TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL,
	trace_id TEXT
);

CREATE INDEX idx_runs_created_at ON runs (created_at);
CREATE INDEX idx_runs_descriptor ON runs (descriptor);
`

// NewTestDB creates an in-memory SQLite database with the run history schema.
// The caller is responsible for closing the database.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// One shared connection keeps the in-memory database visible across
	// statements; each new pool connection would otherwise get its own.
	db.SetMaxOpenConns(1)
	_, err = db.Exec(Schema)
	require.NoError(t, err)
	return db
}
