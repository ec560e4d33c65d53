package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
	"github.com/gost-tex/lint-gost-tex/internal/core/ports/driven"
	"github.com/gost-tex/lint-gost-tex/internal/core/ports/driving"
	"github.com/gost-tex/lint-gost-tex/internal/logger"
)

// Ensure ReleaseService implements the interface.
var _ driving.ReleaseService = (*ReleaseService)(nil)

// ReleaseService implements the build, publish and clean tasks.
type ReleaseService struct {
	builder   driven.ArtifactBuilder
	publisher driven.Publisher
}

// NewReleaseService creates a new release service. Either adapter may be
// nil, in which case the matching task fails.
func NewReleaseService(builder driven.ArtifactBuilder, publisher driven.Publisher) *ReleaseService {
	return &ReleaseService{builder: builder, publisher: publisher}
}

// Build writes the artifacts to <Dir>/dist.
func (s *ReleaseService) Build(ctx context.Context, opts domain.BuildOptions) ([]domain.Artifact, error) {
	if s.builder == nil {
		return nil, fmt.Errorf("%w: no artifact builder configured", domain.ErrInvalidInput)
	}
	dir, err := resolveBaseDir(opts.Dir)
	if err != nil {
		return nil, err
	}
	opts.Dir = dir

	logger.Section("Build")
	artifacts, err := s.builder.Build(ctx, opts, filepath.Join(dir, domain.DefaultDistDir))
	if err != nil {
		return artifacts, fmt.Errorf("build: %w", err)
	}
	return artifacts, nil
}

// Publish uploads every regular file in <Dir>/dist.
func (s *ReleaseService) Publish(ctx context.Context, opts domain.PublishOptions) ([]domain.Artifact, error) {
	if err := opts.Credentials.Validate(); err != nil {
		return nil, err
	}
	if s.publisher == nil {
		return nil, fmt.Errorf("%w: no publisher configured", domain.ErrInvalidInput)
	}
	dir, err := resolveBaseDir(opts.Dir)
	if err != nil {
		return nil, err
	}
	opts.Dir = dir

	logger.Section("Publish")
	artifacts, err := distArtifacts(filepath.Join(dir, domain.DefaultDistDir))
	if err != nil {
		return nil, err
	}
	if err := s.publisher.Publish(ctx, opts, artifacts); err != nil {
		return nil, fmt.Errorf("publish: %w", err)
	}
	return artifacts, nil
}

// Clean removes dist, build and *.egg-info entries from dir. Missing
// paths are not an error.
func (s *ReleaseService) Clean(_ context.Context, dir string) ([]string, error) {
	dir, err := resolveBaseDir(dir)
	if err != nil {
		return nil, err
	}

	candidates := []string{
		filepath.Join(dir, domain.DefaultDistDir),
		filepath.Join(dir, domain.DefaultBuildDir),
	}
	eggInfo, err := filepath.Glob(filepath.Join(dir, "*.egg-info"))
	if err != nil {
		return nil, fmt.Errorf("matching egg-info: %w", err)
	}
	candidates = append(candidates, eggInfo...)

	var removed []string
	for _, path := range candidates {
		if _, err := os.Lstat(path); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := os.RemoveAll(path); err != nil {
			return removed, fmt.Errorf("removing %s: %w", path, err)
		}
		logger.Debug("removed %s", path)
		removed = append(removed, path)
	}
	return removed, nil
}

// distArtifacts lists the regular files of distDir by name.
func distArtifacts(distDir string) ([]domain.Artifact, error) {
	entries, err := os.ReadDir(distDir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, domain.ErrNoArtifacts
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", distDir, err)
	}

	var artifacts []domain.Artifact
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", entry.Name(), err)
		}
		artifacts = append(artifacts, domain.Artifact{
			Name: entry.Name(),
			Path: filepath.Join(distDir, entry.Name()),
			Size: info.Size(),
		})
	}
	if len(artifacts) == 0 {
		return nil, domain.ErrNoArtifacts
	}
	sort.Slice(artifacts, func(i, j int) bool { return artifacts[i].Name < artifacts[j].Name })
	return artifacts, nil
}
