package driving

import (
	"context"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
)

// LintService runs the rules over a document.
type LintService interface {
	// Lint loads configuration and document, runs every rule and returns
	// the sorted report.
	Lint(ctx context.Context, opts domain.LintOptions) (*domain.Report, error)
}

// RuleCatalog lists the available rules.
type RuleCatalog interface {
	// List returns the rules built from the default configuration.
	List() ([]domain.RuleInfo, error)
}
