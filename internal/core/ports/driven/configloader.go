package driven

import (
	"context"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
)

// ConfigLoader reads the lint configuration.
type ConfigLoader interface {
	// Load merges the file at path over the defaults and resolves relative
	// paths against baseDir. A missing file yields the defaults.
	Load(ctx context.Context, path, baseDir string) (*domain.Config, domain.ConfigSource, error)
}
