package driven

import (
	"context"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
)

// Watcher reports file system changes.
type Watcher interface {
	// Watch starts watching the given directories. The channel is closed
	// when ctx is cancelled.
	Watch(ctx context.Context, dirs []string) (<-chan domain.FileEvent, error)
}
