package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
	"github.com/gost-tex/lint-gost-tex/internal/core/ports/driven"
)

// baselineStore implements driven.BaselineStore.
type baselineStore struct {
	store *Store
}

var _ driven.BaselineStore = (*baselineStore)(nil)

// Replace swaps all entries in a single transaction.
func (s *baselineStore) Replace(ctx context.Context, entries []domain.BaselineEntry) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM baseline_entries"); err != nil {
		return fmt.Errorf("clearing baseline: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO baseline_entries (id, fingerprint, rule_id, path, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, entry := range entries {
		if entry.ID == "" || entry.Fingerprint == "" {
			return fmt.Errorf("%w: baseline entry without id or fingerprint", domain.ErrInvalidInput)
		}
		createdAt := entry.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now()
		}
		if _, err := stmt.ExecContext(ctx, entry.ID, entry.Fingerprint, entry.RuleID,
			entry.Path, entry.Message, createdAt.UTC()); err != nil {
			return fmt.Errorf("saving baseline entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing baseline: %w", err)
	}
	return nil
}

// List returns all entries ordered by path and rule.
func (s *baselineStore) List(ctx context.Context) ([]domain.BaselineEntry, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, fingerprint, rule_id, path, message, created_at
		FROM baseline_entries
		ORDER BY path, rule_id, message, id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying baseline: %w", err)
	}
	defer rows.Close()

	var entries []domain.BaselineEntry //nolint:prealloc // size unknown from query
	for rows.Next() {
		var entry domain.BaselineEntry
		var createdAt sql.NullTime
		if err := rows.Scan(&entry.ID, &entry.Fingerprint, &entry.RuleID,
			&entry.Path, &entry.Message, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning baseline entry: %w", err)
		}
		if createdAt.Valid {
			entry.CreatedAt = createdAt.Time
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating baseline: %w", err)
	}
	return entries, nil
}

// Fingerprints returns the set of stored fingerprints.
func (s *baselineStore) Fingerprints(ctx context.Context) (map[string]bool, error) {
	rows, err := s.store.db.QueryContext(ctx, "SELECT DISTINCT fingerprint FROM baseline_entries")
	if err != nil {
		return nil, fmt.Errorf("querying fingerprints: %w", err)
	}
	defer rows.Close()

	fingerprints := make(map[string]bool)
	for rows.Next() {
		var fingerprint string
		if err := rows.Scan(&fingerprint); err != nil {
			return nil, fmt.Errorf("scanning fingerprint: %w", err)
		}
		fingerprints[fingerprint] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating fingerprints: %w", err)
	}
	return fingerprints, nil
}

// Clear removes all entries.
func (s *baselineStore) Clear(ctx context.Context) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM baseline_entries"); err != nil {
		return fmt.Errorf("clearing baseline: %w", err)
	}
	return nil
}

// Close closes the underlying store.
func (s *baselineStore) Close() error {
	return s.store.Close()
}
