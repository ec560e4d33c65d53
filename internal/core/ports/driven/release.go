package driven

import (
	"context"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
)

// ArtifactBuilder compiles and packages distributable artifacts.
type ArtifactBuilder interface {
	// Build produces one artifact per target in distDir.
	Build(ctx context.Context, opts domain.BuildOptions, distDir string) ([]domain.Artifact, error)
}

// Publisher uploads artifacts to a package index.
type Publisher interface {
	// Publish uploads artifacts to the release named by opts.Tag.
	Publish(ctx context.Context, opts domain.PublishOptions, artifacts []domain.Artifact) error
}
