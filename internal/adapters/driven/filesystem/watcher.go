package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
	"github.com/gost-tex/lint-gost-tex/internal/core/ports/driven"
	"github.com/gost-tex/lint-gost-tex/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.Watcher = (*Watcher)(nil)

// Watcher reports file changes in a set of directories using fsnotify.
// Directories are not watched recursively; hidden files are ignored.
type Watcher struct {
	buffer int
}

// NewWatcher creates an fsnotify based watcher.
func NewWatcher() *Watcher {
	return &Watcher{buffer: 16}
}

// Watch starts watching dirs. The returned channel is closed when ctx is
// cancelled or the underlying watcher fails.
func (w *Watcher) Watch(ctx context.Context, dirs []string) (<-chan domain.FileEvent, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	added := make(map[string]bool, len(dirs))
	for _, dir := range dirs {
		dir = filepath.Clean(dir)
		if added[dir] {
			continue
		}
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
		added[dir] = true
		logger.Debug("watching %s", dir)
	}

	events := make(chan domain.FileEvent, w.buffer)
	go func() {
		defer close(events)
		defer fw.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-fw.Events:
				if !ok {
					return
				}
				change := handleFsEvent(event)
				if change == nil {
					continue
				}
				select {
				case events <- *change:
				case <-ctx.Done():
					return
				}
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				logger.Warn("watch error: %v", err)
			}
		}
	}()

	return events, nil
}

// handleFsEvent converts an fsnotify event into a FileEvent.
// Returns nil for directories, hidden files and chmod-only events.
func handleFsEvent(event fsnotify.Event) *domain.FileEvent {
	if strings.HasPrefix(filepath.Base(event.Name), ".") {
		return nil
	}

	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return &domain.FileEvent{Path: event.Name, Type: domain.ChangeDeleted}
	case event.Has(fsnotify.Create):
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			return nil
		}
		return &domain.FileEvent{Path: event.Name, Type: domain.ChangeCreated}
	case event.Has(fsnotify.Write):
		return &domain.FileEvent{Path: event.Name, Type: domain.ChangeUpdated}
	}
	return nil
}
