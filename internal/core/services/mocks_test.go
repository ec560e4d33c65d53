package services

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
	"github.com/gost-tex/lint-gost-tex/internal/core/ports/driven"
)

// --- Mock implementations ---

// stubConfigLoader returns the defaults with paths under baseDir.
type stubConfigLoader struct {
	err    error
	mutate func(*domain.Config)
	paths  []string
}

func (m *stubConfigLoader) Load(_ context.Context, path, baseDir string) (*domain.Config, domain.ConfigSource, error) {
	m.paths = append(m.paths, path)
	if m.err != nil {
		return nil, domain.ConfigSource{}, m.err
	}
	cfg := domain.DefaultConfig()
	cfg.ResolvePaths(baseDir)
	cfg.Watch.IntervalMS = 1
	if m.mutate != nil {
		m.mutate(&cfg)
	}
	source := domain.ConfigSource{Path: filepath.Join(baseDir, domain.DefaultConfigFilename)}
	if path != "" {
		source.Path = absPath(path, baseDir)
	}
	return &cfg, source, nil
}

// stubDocuments returns a two-file document rooted at the configured root.
type stubDocuments struct {
	err   error
	roots []string
}

func (m *stubDocuments) Load(_ context.Context, cfg domain.DocumentConfig, baseDir string) (*domain.Document, error) {
	m.roots = append(m.roots, cfg.Root)
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Document{
		Files: []*domain.TexFile{
			domain.NewTexFile(cfg.Root, "\\input{chapter}\n"),
			domain.NewTexFile(filepath.Join(baseDir, "chapter.tex"), "text\n"),
		},
		BaseDir: baseDir,
	}, nil
}

// stubRules builds a rule set reporting fixed issues.
type stubRules struct {
	mu       sync.Mutex
	issues   []domain.Issue
	buildErr error
	checkErr error
}

func (m *stubRules) setIssues(issues ...domain.Issue) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.issues = issues
}

func (m *stubRules) BuildAll(_ *domain.Config) ([]driven.Rule, error) {
	return nil, m.buildErr
}

func (m *stubRules) BuildSet(_ *domain.Config) (driven.RuleSet, error) {
	if m.buildErr != nil {
		return nil, m.buildErr
	}
	return &stubSet{rules: m}, nil
}

type stubSet struct {
	rules *stubRules
}

func (s *stubSet) Check(_ context.Context, _ *domain.LintContext) ([]domain.Issue, error) {
	s.rules.mu.Lock()
	defer s.rules.mu.Unlock()
	if s.rules.checkErr != nil {
		return nil, s.rules.checkErr
	}
	return append([]domain.Issue(nil), s.rules.issues...), nil
}

func (s *stubSet) Catalog() []domain.RuleInfo {
	return []domain.RuleInfo{
		{Name: "images", IDs: []string{"IMG001"}, Description: "image width"},
		{Name: "styles", IDs: []string{"TXT001"}, Description: "text style"},
	}
}

// fakeWatcher hands out a channel the test feeds.
type fakeWatcher struct {
	events chan domain.FileEvent
	dirs   []string
	err    error
}

func (w *fakeWatcher) Watch(_ context.Context, dirs []string) (<-chan domain.FileEvent, error) {
	w.dirs = dirs
	if w.err != nil {
		return nil, w.err
	}
	return w.events, nil
}

// fakeBuilder records build requests.
type fakeBuilder struct {
	distDir string
	opts    domain.BuildOptions
	err     error
}

func (b *fakeBuilder) Build(_ context.Context, opts domain.BuildOptions, distDir string) ([]domain.Artifact, error) {
	b.opts = opts
	b.distDir = distDir
	if b.err != nil {
		return nil, b.err
	}
	return []domain.Artifact{{Name: "tool.tar.gz", Path: filepath.Join(distDir, "tool.tar.gz")}}, nil
}

// fakePublisher records published artifacts.
type fakePublisher struct {
	artifacts []domain.Artifact
	opts      domain.PublishOptions
	err       error
}

func (p *fakePublisher) Publish(_ context.Context, opts domain.PublishOptions, artifacts []domain.Artifact) error {
	p.opts = opts
	p.artifacts = artifacts
	return p.err
}

// issueAt builds an issue in file of baseDir.
func issueAt(baseDir, file, ruleID string, line, col int) domain.Issue {
	return domain.Issue{
		RuleID:  ruleID,
		Message: ruleID + " message",
		Path:    filepath.Join(baseDir, file),
		Line:    line,
		Col:     col,
		Snippet: fmt.Sprintf("%s line %d", file, line),
	}
}
