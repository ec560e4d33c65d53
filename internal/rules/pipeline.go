// Package rules provides the registry of lint rules and runs them.
package rules

import (
	"context"
	"fmt"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
	"github.com/gost-tex/lint-gost-tex/internal/core/ports/driven"
)

var _ driven.RuleSet = (*Pipeline)(nil)

// Pipeline runs a set of rules in order and concatenates their issues.
type Pipeline struct {
	rules []driven.Rule
}

// NewPipeline creates a pipeline running the given rules in order.
func NewPipeline(rules ...driven.Rule) *Pipeline {
	return &Pipeline{
		rules: rules,
	}
}

// Check runs every rule against lc. It stops at the first rule error or
// when ctx is cancelled.
func (p *Pipeline) Check(ctx context.Context, lc *domain.LintContext) ([]domain.Issue, error) {
	if lc == nil || lc.Document == nil {
		return nil, fmt.Errorf("%w: no document to check", domain.ErrInvalidInput)
	}

	var issues []domain.Issue
	for _, rule := range p.rules {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		found, err := rule.Check(ctx, lc)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", rule.Name(), err)
		}
		issues = append(issues, found...)
	}
	return issues, nil
}

// Catalog describes every rule in the pipeline.
func (p *Pipeline) Catalog() []domain.RuleInfo {
	infos := make([]domain.RuleInfo, 0, len(p.rules))
	for _, rule := range p.rules {
		infos = append(infos, domain.RuleInfo{
			Name:        rule.Name(),
			IDs:         rule.IDs(),
			Description: rule.Description(),
		})
	}
	return infos
}
