package mcp

import (
	"context"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
)

// mockLintService is a mock implementation of driving.LintService.
type mockLintService struct {
	report *domain.Report
	err    error
	opts   domain.LintOptions
}

func (m *mockLintService) Lint(_ context.Context, opts domain.LintOptions) (*domain.Report, error) {
	m.opts = opts
	return m.report, m.err
}

// mockRuleCatalog is a mock implementation of driving.RuleCatalog.
type mockRuleCatalog struct {
	rules []domain.RuleInfo
	err   error
}

func (m *mockRuleCatalog) List() ([]domain.RuleInfo, error) {
	return m.rules, m.err
}

// mockBaselineService is a mock implementation of driving.BaselineService.
type mockBaselineService struct {
	entries []domain.BaselineEntry
	err     error
	opts    domain.LintOptions
}

func (m *mockBaselineService) Save(_ context.Context, _ domain.LintOptions) (int, error) {
	return len(m.entries), m.err
}

func (m *mockBaselineService) List(_ context.Context, opts domain.LintOptions) ([]domain.BaselineEntry, error) {
	m.opts = opts
	return m.entries, m.err
}

func (m *mockBaselineService) Clear(_ context.Context, _ domain.LintOptions) error {
	return m.err
}
