package driven

import (
	"context"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
)

// BaselineStore persists accepted issues.
type BaselineStore interface {
	// Replace atomically swaps all entries for the given ones.
	Replace(ctx context.Context, entries []domain.BaselineEntry) error

	// List returns all entries ordered by path and rule.
	List(ctx context.Context) ([]domain.BaselineEntry, error)

	// Fingerprints returns the set of stored fingerprints.
	Fingerprints(ctx context.Context) (map[string]bool, error)

	// Clear removes all entries.
	Clear(ctx context.Context) error

	// Close releases the underlying resources.
	Close() error
}

// BaselineStoreFactory opens the baseline store kept in a directory.
type BaselineStoreFactory interface {
	// Open returns the store for dir, creating it if needed. Callers must
	// Close the returned store.
	Open(ctx context.Context, dir string) (BaselineStore, error)
}
