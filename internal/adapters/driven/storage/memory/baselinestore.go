// Package memory provides in-memory baseline stores for tests and for runs
// that must not touch the working tree.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
	"github.com/gost-tex/lint-gost-tex/internal/core/ports/driven"
)

// Ensure BaselineStore implements the interface.
var _ driven.BaselineStore = (*BaselineStore)(nil)

// BaselineStore is an in-memory implementation of driven.BaselineStore.
type BaselineStore struct {
	mu      sync.RWMutex
	entries []domain.BaselineEntry
	closed  bool
}

// NewBaselineStore creates a new in-memory baseline store.
func NewBaselineStore() *BaselineStore {
	return &BaselineStore{}
}

// Replace swaps all entries for the given ones.
func (s *BaselineStore) Replace(_ context.Context, entries []domain.BaselineEntry) error {
	for _, entry := range entries {
		if entry.ID == "" || entry.Fingerprint == "" {
			return fmt.Errorf("%w: baseline entry needs an ID and a fingerprint", domain.ErrInvalidInput)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append([]domain.BaselineEntry(nil), entries...)
	return nil
}

// List returns all entries ordered by path, rule and message.
func (s *BaselineStore) List(_ context.Context) ([]domain.BaselineEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := append(make([]domain.BaselineEntry, 0, len(s.entries)), s.entries...)
	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		if a.RuleID != b.RuleID {
			return a.RuleID < b.RuleID
		}
		if a.Message != b.Message {
			return a.Message < b.Message
		}
		return a.ID < b.ID
	})
	return result, nil
}

// Fingerprints returns the set of stored fingerprints.
func (s *BaselineStore) Fingerprints(_ context.Context) (map[string]bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make(map[string]bool, len(s.entries))
	for _, entry := range s.entries {
		result[entry.Fingerprint] = true
	}
	return result, nil
}

// Clear removes all entries.
func (s *BaselineStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	return nil
}

// Close marks the store closed. Entries are kept so a Factory can hand the
// same store out again.
func (s *BaselineStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Closed reports whether Close was called since the store was last opened.
func (s *BaselineStore) Closed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

// Ensure Factory implements the interface.
var _ driven.BaselineStoreFactory = (*Factory)(nil)

// Factory hands out one BaselineStore per directory.
type Factory struct {
	mu     sync.Mutex
	stores map[string]*BaselineStore
}

// NewFactory creates an in-memory baseline store factory.
func NewFactory() *Factory {
	return &Factory{stores: make(map[string]*BaselineStore)}
}

// Open returns the store for dir, creating it on first use.
func (f *Factory) Open(_ context.Context, dir string) (driven.BaselineStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: baseline directory not set", domain.ErrInvalidInput)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	store, ok := f.stores[dir]
	if !ok {
		store = NewBaselineStore()
		f.stores[dir] = store
	}
	store.mu.Lock()
	store.closed = false
	store.mu.Unlock()
	return store, nil
}

// Store returns the store opened for dir, or nil.
func (f *Factory) Store(dir string) *BaselineStore {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stores[dir]
}
