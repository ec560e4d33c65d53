package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
	"github.com/gost-tex/lint-gost-tex/internal/core/ports/driven"
	"github.com/gost-tex/lint-gost-tex/internal/core/ports/driving"
	"github.com/gost-tex/lint-gost-tex/internal/logger"
)

// Ensure BaselineService implements the interface.
var _ driving.BaselineService = (*BaselineService)(nil)

// BaselineService records the current issues as accepted.
type BaselineService struct {
	lint   *LintService
	stores driven.BaselineStoreFactory
	now    func() time.Time
}

// NewBaselineService creates a new baseline service.
func NewBaselineService(lint *LintService, stores driven.BaselineStoreFactory) *BaselineService {
	return &BaselineService{
		lint:   lint,
		stores: stores,
		now:    time.Now,
	}
}

// Save lints without the baseline and replaces the stored entries with
// one entry per issue.
func (s *BaselineService) Save(ctx context.Context, opts domain.LintOptions) (int, error) {
	run, err := s.lint.run(ctx, opts)
	if err != nil {
		return 0, err
	}

	created := s.now()
	entries := make([]domain.BaselineEntry, 0, len(run.issues))
	for _, issue := range run.issues {
		entries = append(entries, domain.BaselineEntry{
			ID:          uuid.NewString(),
			Fingerprint: issue.Fingerprint(run.baseDir),
			RuleID:      issue.RuleID,
			Path:        domain.RelPath(issue.Path, run.baseDir),
			Message:     issue.Message,
			CreatedAt:   created,
		})
	}

	err = s.withStore(ctx, run.cfg, func(store driven.BaselineStore) error {
		return store.Replace(ctx, entries)
	})
	if err != nil {
		return 0, err
	}
	logger.Info("baseline saved with %d entries", len(entries))
	return len(entries), nil
}

// List returns the stored entries.
func (s *BaselineService) List(ctx context.Context, opts domain.LintOptions) ([]domain.BaselineEntry, error) {
	cfg, _, _, err := s.lint.loadConfig(ctx, opts)
	if err != nil {
		return nil, err
	}

	var entries []domain.BaselineEntry
	err = s.withStore(ctx, cfg, func(store driven.BaselineStore) error {
		var listErr error
		entries, listErr = store.List(ctx)
		return listErr
	})
	return entries, err
}

// Clear removes all stored entries.
func (s *BaselineService) Clear(ctx context.Context, opts domain.LintOptions) error {
	cfg, _, _, err := s.lint.loadConfig(ctx, opts)
	if err != nil {
		return err
	}
	return s.withStore(ctx, cfg, func(store driven.BaselineStore) error {
		return store.Clear(ctx)
	})
}

func (s *BaselineService) withStore(ctx context.Context, cfg *domain.Config, fn func(driven.BaselineStore) error) error {
	if s.stores == nil {
		return fmt.Errorf("%w: baseline storage not configured", domain.ErrInvalidInput)
	}
	store, err := s.stores.Open(ctx, cfg.Baseline.Dir)
	if err != nil {
		return fmt.Errorf("opening baseline: %w", err)
	}
	defer store.Close()

	if err := fn(store); err != nil {
		return fmt.Errorf("baseline: %w", err)
	}
	return nil
}
