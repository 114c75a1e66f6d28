package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/tailcheck/tailcheck/internal/checker"
)

// BaselineStore holds accepted violations. Entries are keyed by a
// line-independent fingerprint so a baseline survives unrelated edits
// that shift line numbers.
type BaselineStore struct {
	db *sql.DB
}

// DefaultPath returns the baseline database location under the project's
// .tailcheck directory.
func DefaultPath(rootDir string) string {
	return filepath.Join(rootDir, ".tailcheck", "baseline.db")
}

// Open opens (creating if necessary) the baseline database at path.
func Open(path string) (*BaselineStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create baseline directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open baseline database: %w", err)
	}

	if err := CreateSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &BaselineStore{db: db}, nil
}

// Close closes the underlying database.
func (s *BaselineStore) Close() error {
	return s.db.Close()
}

// Fingerprint identifies a violation independent of its line number.
func Fingerprint(result checker.ContrastResult) string {
	return strings.Join([]string{
		result.File,
		result.BGClass,
		result.TextClass,
		result.PairType,
		result.InteractiveState,
	}, "|")
}

// Accept records the given violations as baselined, replacing existing
// entries with the same fingerprint. Returns the number written.
func (s *BaselineStore) Accept(results []checker.ContrastResult, level checker.Level) (int, error) {
	if len(results) == 0 {
		return 0, nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin baseline transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, result := range results {
		_, err := sq.Insert("baseline_entries").
			Columns(
				"fingerprint", "file", "bg_class", "text_class",
				"pair_type", "interactive_state", "level", "ratio", "accepted_at",
			).
			Values(
				Fingerprint(result),
				result.File,
				result.BGClass,
				result.TextClass,
				result.PairType,
				result.InteractiveState,
				string(level),
				result.Ratio,
				now,
			).
			Options("OR REPLACE").
			RunWith(tx).
			Exec()
		if err != nil {
			return 0, fmt.Errorf("failed to write baseline entry for %s: %w", result.File, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit baseline transaction: %w", err)
	}
	return len(results), nil
}

// Filter splits violations into new ones and ones already baselined.
func (s *BaselineStore) Filter(results []checker.ContrastResult) (fresh, baselined []checker.ContrastResult, err error) {
	accepted, err := s.fingerprints()
	if err != nil {
		return nil, nil, err
	}

	fresh = []checker.ContrastResult{}
	baselined = []checker.ContrastResult{}
	for _, result := range results {
		if accepted[Fingerprint(result)] {
			baselined = append(baselined, result)
		} else {
			fresh = append(fresh, result)
		}
	}
	return fresh, baselined, nil
}

// Count returns the number of baselined violations.
func (s *BaselineStore) Count() (int, error) {
	var count int
	err := sq.Select("COUNT(*)").
		From("baseline_entries").
		RunWith(s.db).
		QueryRow().
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count baseline entries: %w", err)
	}
	return count, nil
}

// Clear removes every baseline entry.
func (s *BaselineStore) Clear() error {
	if _, err := sq.Delete("baseline_entries").RunWith(s.db).Exec(); err != nil {
		return fmt.Errorf("failed to clear baseline: %w", err)
	}
	return nil
}

func (s *BaselineStore) fingerprints() (map[string]bool, error) {
	rows, err := sq.Select("fingerprint").
		From("baseline_entries").
		RunWith(s.db).
		Query()
	if err != nil {
		return nil, fmt.Errorf("failed to read baseline entries: %w", err)
	}
	defer rows.Close()

	accepted := make(map[string]bool)
	for rows.Next() {
		var fp string
		if err := rows.Scan(&fp); err != nil {
			return nil, fmt.Errorf("failed to scan baseline entry: %w", err)
		}
		accepted[fp] = true
	}
	return accepted, rows.Err()
}
