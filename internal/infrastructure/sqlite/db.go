// Package sqlite provides the resolution history store backed by SQLite.
package sqlite

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// DB wraps the SQLite connection for the run history database.
type DB struct {
	conn *sql.DB
	path string
}

// NewDB opens the history database at path, creating it if needed, and
// brings its schema up to date. The parent directory is created with 0700
// permissions. When an existing database file is present it is copied to
// <path>.bak before migrations run.
func NewDB(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	if err := backupExisting(path); err != nil {
		return nil, fmt.Errorf("failed to back up database: %w", err)
	}

	// Pragmas go through the DSN so every pooled connection gets them.
	// journal_mode is persistent but WAL in the DSN keeps reopens cheap.
	dsn := fmt.Sprintf(
		"file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)",
		path,
	)
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(conn); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &DB{conn: conn, path: path}, nil
}

// RunRepository returns the run history repository backed by this database.
func (db *DB) RunRepository() RunRepository {
	return newRunRepository(db.conn)
}

// Connection returns the underlying *sql.DB.
func (db *DB) Connection() *sql.DB {
	return db.conn
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// backupExisting copies an existing database file to <path>.bak so a bad
// migration never eats the only copy of the history. Missing files are fine,
// that is just the first run.
func backupExisting(path string) error {
	src, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	dst, err := os.Create(path + ".bak")
	if err != nil {
		return err
	}
	defer func() { _ = dst.Close() }()

	_, err = io.Copy(dst, src)
	return err
}

// runMigrations applies the embedded migrations through golang-migrate.
func runMigrations(conn *sql.DB) error {
	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "runs", &migrationDriver{conn: conn})
	if err != nil {
		return fmt.Errorf("failed to prepare migrations: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
