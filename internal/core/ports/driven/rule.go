package driven

import (
	"context"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
)

// Rule checks a document and reports issues.
type Rule interface {
	// Name returns the registry name (e.g., "images").
	Name() string

	// IDs returns every rule ID the rule may report.
	IDs() []string

	// Description returns a one-line summary for listings.
	Description() string

	// Check inspects the document and returns the issues found.
	Check(ctx context.Context, lc *domain.LintContext) ([]domain.Issue, error)
}

// RuleSet runs built rules in order.
type RuleSet interface {
	// Check runs every rule and concatenates their issues.
	Check(ctx context.Context, lc *domain.LintContext) ([]domain.Issue, error)

	// Catalog describes the rules of the set.
	Catalog() []domain.RuleInfo
}

// RuleFactory builds rules from configuration.
type RuleFactory interface {
	// BuildAll creates every registered rule in registration order.
	BuildAll(cfg *domain.Config) ([]Rule, error)

	// BuildSet creates every registered rule as a RuleSet.
	BuildSet(cfg *domain.Config) (RuleSet, error)
}
