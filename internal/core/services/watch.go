package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
	"github.com/gost-tex/lint-gost-tex/internal/core/ports/driven"
	"github.com/gost-tex/lint-gost-tex/internal/core/ports/driving"
	"github.com/gost-tex/lint-gost-tex/internal/logger"
)

// DefaultWatchInterval is the minimum time between two runs when the
// config sets none.
const DefaultWatchInterval = 500 * time.Millisecond

// Ensure WatchService implements the interface.
var _ driving.WatchService = (*WatchService)(nil)

// WatchService re-lints a document whenever one of its files changes.
type WatchService struct {
	lint    *LintService
	watcher driven.Watcher
}

// NewWatchService creates a new watch service.
func NewWatchService(lint *LintService, watcher driven.Watcher) *WatchService {
	return &WatchService{lint: lint, watcher: watcher}
}

// Run lints once and then after every change to a file with a watched
// extension. Bursts of changes are collapsed into a single run, and runs
// are spaced by the configured interval. Returns nil when ctx is cancelled.
func (s *WatchService) Run(ctx context.Context, opts domain.LintOptions, onReport func(*domain.Report, error)) error {
	if s.watcher == nil {
		return fmt.Errorf("%w: file watching not available", domain.ErrInvalidInput)
	}

	cfg, source, baseDir, err := s.lint.loadConfig(ctx, opts)
	if err != nil {
		return err
	}

	report, lintErr := s.lint.Lint(ctx, opts)
	onReport(report, lintErr)

	dirs := watchDirs(baseDir, cfg, source, report)
	events, err := s.watcher.Watch(ctx, dirs)
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	logger.Debug("Watching %s", strings.Join(dirs, ", "))

	interval := time.Duration(cfg.Watch.IntervalMS) * time.Millisecond
	if interval <= 0 {
		interval = DefaultWatchInterval
	}
	limiter := rate.NewLimiter(rate.Every(interval), 1)
	// the initial run consumed the first slot
	limiter.Allow()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			if !hasExtension(event.Path, cfg.Watch.Extensions) {
				continue
			}
			logger.Debug("%s %s", event.Type, event.Path)

			if err := limiter.Wait(ctx); err != nil {
				return nil
			}
			if !drain(events) {
				return nil
			}

			report, lintErr := s.lint.Lint(ctx, opts)
			if ctx.Err() != nil {
				return nil
			}
			onReport(report, lintErr)
		}
	}
}

// drain discards queued events. Returns false if the channel was closed.
func drain(events <-chan domain.FileEvent) bool {
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return false
			}
		default:
			return true
		}
	}
}

// watchDirs returns the base directory plus the existing directories of
// the root, the config file, the dictionaries and every linted file,
// deduplicated and sorted. Watching is not recursive, so each of them has
// to be listed.
func watchDirs(baseDir string, cfg *domain.Config, source domain.ConfigSource, report *domain.Report) []string {
	paths := []string{source.Path}
	if cfg != nil {
		paths = append(paths, cfg.Document.Root, cfg.Spellcheck.CustomDict)
		paths = append(paths, cfg.Spellcheck.ExtraRuDicts...)
		paths = append(paths, cfg.Spellcheck.ExtraEnDicts...)
	}
	if report != nil {
		paths = append(paths, report.Files...)
	}

	seen := map[string]bool{baseDir: true}
	for _, path := range paths {
		if path == "" {
			continue
		}
		dir := filepath.Dir(path)
		if seen[dir] || !isDir(dir) {
			continue
		}
		seen[dir] = true
	}

	dirs := make([]string, 0, len(seen))
	for dir := range seen {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func hasExtension(path string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range extensions {
		if strings.ToLower(want) == ext {
			return true
		}
	}
	return false
}
