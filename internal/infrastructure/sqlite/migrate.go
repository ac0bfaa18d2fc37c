package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/golang-migrate/migrate/v4/database"
)

// migrationDriver adapts an open *sql.DB to golang-migrate's database.Driver
// so migrations run over the same ncruces connection the rest of the package
// uses. The stock migrate drivers each pin their own SQLite implementation.
type migrationDriver struct {
	conn *sql.DB
}

var _ database.Driver = (*migrationDriver)(nil)

// Open is only called for URL-based construction, which this driver does not
// support. Use migrate.NewWithInstance.
func (d *migrationDriver) Open(string) (database.Driver, error) {
	return nil, errors.New("sqlite migration driver must be constructed with an open connection")
}

// Close releases nothing. The connection is owned by the DB struct.
func (d *migrationDriver) Close() error {
	return nil
}

// Lock is a no-op. SQLite's busy_timeout already serializes writers, and the
// history database is only ever opened by one process per command.
func (d *migrationDriver) Lock() error {
	return nil
}

// Unlock is a no-op, see Lock.
func (d *migrationDriver) Unlock() error {
	return nil
}

// Run executes a single migration file as one script.
func (d *migrationDriver) Run(migration io.Reader) error {
	stmts, err := io.ReadAll(migration)
	if err != nil {
		return fmt.Errorf("failed to read migration: %w", err)
	}
	if _, err := d.conn.Exec(string(stmts)); err != nil {
		return fmt.Errorf("failed to execute migration: %w", err)
	}
	return nil
}

// SetVersion records the current schema version in schema_migrations.
func (d *migrationDriver) SetVersion(version int, dirty bool) error {
	if err := d.ensureVersionTable(); err != nil {
		return err
	}

	tx, err := d.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin version transaction: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM schema_migrations`); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to clear schema version: %w", err)
	}
	if version >= 0 || (version == database.NilVersion && dirty) {
		if _, err := tx.Exec(
			`INSERT INTO schema_migrations (version, dirty) VALUES (?, ?)`,
			version, dirty,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to write schema version: %w", err)
		}
	}
	return tx.Commit()
}

// Version reports the current schema version, or database.NilVersion for a
// fresh database.
func (d *migrationDriver) Version() (int, bool, error) {
	if err := d.ensureVersionTable(); err != nil {
		return 0, false, err
	}

	var (
		version int
		dirty   bool
	)
	err := d.conn.QueryRow(`SELECT version, dirty FROM schema_migrations LIMIT 1`).Scan(&version, &dirty)
	if errors.Is(err, sql.ErrNoRows) {
		return database.NilVersion, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, dirty, nil
}

// Drop removes every table except SQLite's own bookkeeping tables.
func (d *migrationDriver) Drop() error {
	rows, err := d.conn.Query(
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'`,
	)
	if err != nil {
		return fmt.Errorf("failed to list tables: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("failed to scan table name: %w", err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating tables: %w", err)
	}

	for _, table := range tables {
		if _, err := d.conn.Exec(`DROP TABLE IF EXISTS ` + quoteIdentifier(table)); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}
	return nil
}

// ensureVersionTable creates schema_migrations on first contact.
func (d *migrationDriver) ensureVersionTable() error {
	_, err := d.conn.Exec(
		`CREATE TABLE IF NOT EXISTS schema_migrations (version BIGINT NOT NULL, dirty BOOLEAN NOT NULL)`,
	)
	if err != nil {
		return fmt.Errorf("failed to create schema_migrations: %w", err)
	}
	return nil
}

func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
