package driving

import (
	"context"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
)

// ReleaseService implements the packaging tasks.
type ReleaseService interface {
	// Build produces distributable artifacts in dist/.
	Build(ctx context.Context, opts domain.BuildOptions) ([]domain.Artifact, error)

	// Publish uploads the artifacts in dist/ to the package index.
	Publish(ctx context.Context, opts domain.PublishOptions) ([]domain.Artifact, error)

	// Clean removes dist/, build/ and *.egg-info paths from dir.
	// Returns the removed paths.
	Clean(ctx context.Context, dir string) ([]string, error)
}
