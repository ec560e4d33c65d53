package driving

import (
	"context"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
)

// WatchService re-lints when document files change.
type WatchService interface {
	// Run lints once, then again after every relevant change until ctx is
	// cancelled. onReport receives each report.
	Run(ctx context.Context, opts domain.LintOptions, onReport func(*domain.Report, error)) error
}
