package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
	"github.com/gost-tex/lint-gost-tex/internal/core/ports/driven"
	"github.com/gost-tex/lint-gost-tex/internal/core/ports/driving"
	"github.com/gost-tex/lint-gost-tex/internal/logger"
)

// Ensure LintService implements the interface.
var _ driving.LintService = (*LintService)(nil)

// LintService loads a document and runs the configured rules over it.
type LintService struct {
	configLoader driven.ConfigLoader
	documents    driven.DocumentLoader
	rules        driven.RuleFactory
	baselines    driven.BaselineStoreFactory
	now          func() time.Time
}

// NewLintService creates a new lint service.
func NewLintService(
	configLoader driven.ConfigLoader,
	documents driven.DocumentLoader,
	rules driven.RuleFactory,
) *LintService {
	return &LintService{
		configLoader: configLoader,
		documents:    documents,
		rules:        rules,
		now:          time.Now,
	}
}

// SetBaselineStores enables baseline filtering. Without it, lint runs that
// request the baseline fail with ErrInvalidInput.
func (s *LintService) SetBaselineStores(stores driven.BaselineStoreFactory) {
	s.baselines = stores
}

// lintRun is the outcome of a run before the baseline is applied.
type lintRun struct {
	cfg     *domain.Config
	doc     *domain.Document
	baseDir string
	issues  []domain.Issue
}

// Lint runs every rule and returns the sorted report.
func (s *LintService) Lint(ctx context.Context, opts domain.LintOptions) (*domain.Report, error) {
	run, err := s.run(ctx, opts)
	if err != nil {
		return nil, err
	}

	report := &domain.Report{
		Issues:  run.issues,
		Files:   run.doc.Paths(),
		BaseDir: run.baseDir,
	}

	if opts.ApplyBaseline {
		kept, suppressed, err := s.applyBaseline(ctx, run)
		if err != nil {
			return nil, err
		}
		report.Issues = kept
		report.Suppressed = suppressed
	}

	if report.Issues == nil {
		report.Issues = []domain.Issue{}
	}
	report.FinishedAt = s.now()
	logger.Info("%d issue(s), %d suppressed", len(report.Issues), report.Suppressed)
	return report, nil
}

// run loads config and document, checks the document and drops issues of
// disabled rules.
func (s *LintService) run(ctx context.Context, opts domain.LintOptions) (*lintRun, error) {
	logger.Section("Lint")

	cfg, source, baseDir, err := s.loadConfig(ctx, opts)
	if err != nil {
		return nil, err
	}

	doc, err := s.documents.Load(ctx, cfg.Document, baseDir)
	if err != nil {
		return nil, fmt.Errorf("loading document: %w", err)
	}
	logger.Debug("Loaded %d file(s) from %s", len(doc.Files), cfg.Document.Root)
	for _, file := range doc.Files {
		logger.Debug("  %s: %d line(s)", file.Path, file.LineCount())
	}

	set, err := s.rules.BuildSet(cfg)
	if err != nil {
		return nil, fmt.Errorf("building rules: %w", err)
	}

	lc := &domain.LintContext{
		Document: doc,
		Config:   cfg,
		BaseDir:  baseDir,
		Source:   source,
	}

	done := logger.Timed("rules")
	issues, err := set.Check(ctx, lc)
	done()
	if err != nil {
		return nil, err
	}

	kept := make([]domain.Issue, 0, len(issues))
	for _, issue := range issues {
		if cfg.Rules.IsDisabled(issue.RuleID) {
			continue
		}
		kept = append(kept, issue)
	}
	domain.SortIssues(kept, doc.PathIndex())

	return &lintRun{cfg: cfg, doc: doc, baseDir: baseDir, issues: kept}, nil
}

// loadConfig reads the configuration and applies the root override.
func (s *LintService) loadConfig(
	ctx context.Context, opts domain.LintOptions,
) (*domain.Config, domain.ConfigSource, string, error) {
	baseDir, err := resolveBaseDir(opts.BaseDir)
	if err != nil {
		return nil, domain.ConfigSource{}, "", err
	}

	cfg, source, err := s.configLoader.Load(ctx, opts.ConfigPath, baseDir)
	if err != nil {
		return nil, domain.ConfigSource{}, "", fmt.Errorf("loading config: %w", err)
	}
	if source.Exists {
		logger.Debug("Config: %s", source.Path)
	} else {
		logger.Debug("Config %s not found, using defaults", source.Path)
	}

	if opts.Root != "" {
		cfg.Document.Root = absPath(opts.Root, baseDir)
	}
	return cfg, source, baseDir, nil
}

func (s *LintService) applyBaseline(ctx context.Context, run *lintRun) ([]domain.Issue, int, error) {
	if s.baselines == nil {
		return nil, 0, fmt.Errorf("%w: baseline storage not configured", domain.ErrInvalidInput)
	}

	store, err := s.baselines.Open(ctx, run.cfg.Baseline.Dir)
	if err != nil {
		return nil, 0, fmt.Errorf("opening baseline: %w", err)
	}
	defer store.Close()

	fingerprints, err := store.Fingerprints(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("reading baseline: %w", err)
	}

	kept := make([]domain.Issue, 0, len(run.issues))
	suppressed := 0
	for _, issue := range run.issues {
		if fingerprints[issue.Fingerprint(run.baseDir)] {
			suppressed++
			continue
		}
		kept = append(kept, issue)
	}
	return kept, suppressed, nil
}

func resolveBaseDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidInput, dir)
	}
	return abs, nil
}

func absPath(path, baseDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
