// Package storage persists the accepted-violation baseline in a SQLite
// database under .tailcheck/, so known failures can be parked while new
// regressions still fail the audit.
package storage

import (
	"database/sql"
	"fmt"
	"time"
)

const createBaselineTable = `
CREATE TABLE IF NOT EXISTS baseline_entries (
	fingerprint TEXT PRIMARY KEY,
	file TEXT NOT NULL,
	bg_class TEXT NOT NULL,
	text_class TEXT NOT NULL,
	pair_type TEXT NOT NULL,
	interactive_state TEXT NOT NULL DEFAULT '',
	level TEXT NOT NULL,
	ratio REAL NOT NULL,
	accepted_at TEXT NOT NULL
)`

const createMetadataTable = `
CREATE TABLE IF NOT EXISTS baseline_metadata (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at TEXT NOT NULL
)`

const schemaVersion = "1.0"

// CreateSchema creates all tables and indexes for the baseline store.
// All schema creation succeeds or fails together.
func CreateSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin schema transaction: %w", err)
	}
	defer tx.Rollback() // Safe to call even after commit

	tables := []struct {
		name string
		ddl  string
	}{
		{"baseline_entries", createBaselineTable},
		{"baseline_metadata", createMetadataTable},
	}

	for _, table := range tables {
		if _, err := tx.Exec(table.ddl); err != nil {
			return fmt.Errorf("failed to create %s table: %w", table.name, err)
		}
	}

	if _, err := tx.Exec(
		"CREATE INDEX IF NOT EXISTS idx_baseline_file ON baseline_entries(file)",
	); err != nil {
		return fmt.Errorf("failed to create file index: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := tx.Exec(
		"INSERT OR IGNORE INTO baseline_metadata (key, value, updated_at) VALUES ('schema_version', ?, ?)",
		schemaVersion, now,
	); err != nil {
		return fmt.Errorf("failed to bootstrap baseline_metadata: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit schema transaction: %w", err)
	}

	return nil
}
