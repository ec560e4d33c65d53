package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
)

func TestWatchService_Run(t *testing.T) {
	base := t.TempDir()
	lint, _, _, _ := newTestLint(issueAt(base, "main.tex", "TXT001", 1, 1))
	watcher := &fakeWatcher{events: make(chan domain.FileEvent, 8)}
	svc := NewWatchService(lint, watcher)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reports := make(chan *domain.Report, 8)
	done := make(chan error, 1)
	go func() {
		done <- svc.Run(ctx, domain.LintOptions{BaseDir: base}, func(report *domain.Report, err error) {
			assert.NoError(t, err)
			reports <- report
		})
	}()

	select {
	case report := <-reports:
		assert.Len(t, report.Issues, 1)
	case <-time.After(5 * time.Second):
		t.Fatal("no initial report")
	}

	watcher.events <- domain.FileEvent{Path: filepath.Join(base, "figure.png"), Type: domain.ChangeUpdated}
	watcher.events <- domain.FileEvent{Path: filepath.Join(base, "chapter.tex"), Type: domain.ChangeUpdated}

	select {
	case report := <-reports:
		assert.Len(t, report.Issues, 1)
	case <-time.After(5 * time.Second):
		t.Fatal("no report after change")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
	assert.Empty(t, reports)
	assert.Equal(t, []string{base}, watcher.dirs)
}

func TestWatchService_RunStopsWhenEventsClose(t *testing.T) {
	lint, _, _, _ := newTestLint()
	watcher := &fakeWatcher{events: make(chan domain.FileEvent)}
	close(watcher.events)

	calls := 0
	err := NewWatchService(lint, watcher).Run(context.Background(), domain.LintOptions{BaseDir: t.TempDir()},
		func(*domain.Report, error) { calls++ })
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestWatchService_RunReportsLintErrors(t *testing.T) {
	lint, _, docs, _ := newTestLint()
	docs.err = domain.ErrRootNotFound
	watcher := &fakeWatcher{events: make(chan domain.FileEvent)}
	close(watcher.events)

	var got error
	err := NewWatchService(lint, watcher).Run(context.Background(), domain.LintOptions{BaseDir: t.TempDir()},
		func(_ *domain.Report, err error) { got = err })
	require.NoError(t, err)
	assert.ErrorIs(t, got, domain.ErrRootNotFound)
}

func TestWatchService_RunErrors(t *testing.T) {
	lint, _, _, _ := newTestLint()
	noop := func(*domain.Report, error) {}

	err := NewWatchService(lint, nil).Run(context.Background(), domain.LintOptions{}, noop)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	boom := errors.New("boom")
	err = NewWatchService(lint, &fakeWatcher{err: boom}).Run(context.Background(), domain.LintOptions{BaseDir: t.TempDir()}, noop)
	assert.ErrorIs(t, err, boom)
}

func TestWatchDirs(t *testing.T) {
	base := t.TempDir()
	chapters := filepath.Join(base, "chapters")
	require.NoError(t, os.Mkdir(chapters, 0o755))

	cfg := domain.DefaultConfig()
	cfg.ResolvePaths(base)
	report := &domain.Report{Files: []string{filepath.Join(base, "main.tex"), filepath.Join(chapters, "one.tex")}}
	source := domain.ConfigSource{Path: filepath.Join(base, domain.DefaultConfigFilename)}

	// dictionaries/ does not exist yet
	assert.Equal(t, []string{base, chapters}, watchDirs(base, &cfg, source, report))
	assert.Equal(t, []string{base}, watchDirs(base, nil, domain.ConfigSource{}, nil))
}

func TestWatchDirs_DictionariesAndConfig(t *testing.T) {
	base := t.TempDir()
	dicts := filepath.Join(base, "dictionaries")
	require.NoError(t, os.Mkdir(dicts, 0o755))
	external := t.TempDir()
	settings := t.TempDir()

	cfg := domain.DefaultConfig()
	cfg.ResolvePaths(base)
	cfg.Spellcheck.ExtraEnDicts = []string{filepath.Join(external, "en.txt")}
	source := domain.ConfigSource{Path: filepath.Join(settings, "lint.toml")}

	got := watchDirs(base, &cfg, source, nil)
	assert.ElementsMatch(t, []string{base, dicts, external, settings}, got)
	assert.IsIncreasing(t, got)
}

func TestWatchService_RunWatchesDictionaryDirs(t *testing.T) {
	base := t.TempDir()
	dicts := filepath.Join(base, "dictionaries")
	require.NoError(t, os.Mkdir(dicts, 0o755))
	settings := t.TempDir()

	lint, _, _, _ := newTestLint()
	watcher := &fakeWatcher{events: make(chan domain.FileEvent)}
	close(watcher.events)

	opts := domain.LintOptions{BaseDir: base, ConfigPath: filepath.Join(settings, "lint.toml")}
	err := NewWatchService(lint, watcher).Run(context.Background(), opts, func(*domain.Report, error) {})
	require.NoError(t, err)
	assert.Contains(t, watcher.dirs, dicts)
	assert.Contains(t, watcher.dirs, settings)
}

func TestHasExtension(t *testing.T) {
	exts := []string{".tex", ".TOML"}
	assert.True(t, hasExtension("/a/main.TEX", exts))
	assert.True(t, hasExtension("/a/lint-gost-tex.toml", exts))
	assert.False(t, hasExtension("/a/figure.png", exts))
	assert.True(t, hasExtension("/a/anything", nil))
}
