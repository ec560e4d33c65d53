package driving

import (
	"context"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
)

// BaselineService records and inspects accepted issues.
type BaselineService interface {
	// Save lints and records every current issue as accepted.
	// Returns the number of recorded entries.
	Save(ctx context.Context, opts domain.LintOptions) (int, error)

	// List returns the recorded entries.
	List(ctx context.Context, opts domain.LintOptions) ([]domain.BaselineEntry, error)

	// Clear removes all recorded entries.
	Clear(ctx context.Context, opts domain.LintOptions) error
}
