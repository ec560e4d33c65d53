package cli

import (
	"bytes"
	"context"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
)

// mockLintService returns a fixed report and records options.
type mockLintService struct {
	report *domain.Report
	err    error
	opts   domain.LintOptions
}

func (m *mockLintService) Lint(_ context.Context, opts domain.LintOptions) (*domain.Report, error) {
	m.opts = opts
	return m.report, m.err
}

type mockBaselineService struct {
	entries []domain.BaselineEntry
	saved   int
	cleared bool
	err     error
	opts    domain.LintOptions
}

func (m *mockBaselineService) Save(_ context.Context, opts domain.LintOptions) (int, error) {
	m.opts = opts
	return m.saved, m.err
}

func (m *mockBaselineService) List(_ context.Context, opts domain.LintOptions) ([]domain.BaselineEntry, error) {
	m.opts = opts
	return m.entries, m.err
}

func (m *mockBaselineService) Clear(_ context.Context, opts domain.LintOptions) error {
	m.opts = opts
	m.cleared = true
	return m.err
}

// mockWatchService delivers the given reports and returns.
type mockWatchService struct {
	reports []*domain.Report
	errs    []error
	opts    domain.LintOptions
}

func (m *mockWatchService) Run(_ context.Context, opts domain.LintOptions, onReport func(*domain.Report, error)) error {
	m.opts = opts
	for i, report := range m.reports {
		var err error
		if i < len(m.errs) {
			err = m.errs[i]
		}
		onReport(report, err)
	}
	return nil
}

type mockReleaseService struct {
	buildOpts   domain.BuildOptions
	publishOpts domain.PublishOptions
	artifacts   []domain.Artifact
	removed     []string
	err         error
}

func (m *mockReleaseService) Build(_ context.Context, opts domain.BuildOptions) ([]domain.Artifact, error) {
	m.buildOpts = opts
	return m.artifacts, m.err
}

func (m *mockReleaseService) Publish(_ context.Context, opts domain.PublishOptions) ([]domain.Artifact, error) {
	m.publishOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	return m.artifacts, nil
}

func (m *mockReleaseService) Clean(_ context.Context, _ string) ([]string, error) {
	return m.removed, m.err
}

type mockRuleCatalog struct {
	rules []domain.RuleInfo
	err   error
}

func (m *mockRuleCatalog) List() ([]domain.RuleInfo, error) {
	return m.rules, m.err
}

// testServices holds the mocks installed by setupTestServices.
type testServices struct {
	lint     *mockLintService
	baseline *mockBaselineService
	watch    *mockWatchService
	release  *mockReleaseService
	rules    *mockRuleCatalog
}

// setupTestServices installs fresh mocks, resets flag values and returns
// a cleanup function restoring the previous services.
func setupTestServices() (*testServices, func()) {
	old := Services{
		Lint:     lintService,
		Baseline: baselineService,
		Watch:    watchService,
		Release:  releaseService,
		Rules:    ruleCatalog,
	}

	mocks := &testServices{
		lint:     &mockLintService{report: &domain.Report{}},
		baseline: &mockBaselineService{},
		watch:    &mockWatchService{},
		release:  &mockReleaseService{},
		rules:    &mockRuleCatalog{},
	}
	SetServices(Services{
		Lint:     mocks.lint,
		Baseline: mocks.baseline,
		Watch:    mocks.watch,
		Release:  mocks.release,
		Rules:    mocks.rules,
	})
	resetFlags()

	return mocks, func() {
		SetServices(old)
		resetFlags()
	}
}

func resetFlags() {
	configPath = ""
	rootPath = ""
	outputFormat = formatText
	useBaseline = false
	verbose = false
	noColor = false
	buildVersion = ""
	buildTargets = nil
	buildPackage = "./cmd/lint-gost-tex"
	buildBinary = "lint-gost-tex"
	publishTag = ""
}

// execute runs the root command with args and returns its output.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}
