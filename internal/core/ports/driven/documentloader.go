package driven

import (
	"context"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
)

// DocumentLoader loads the files that make up a LaTeX document.
type DocumentLoader interface {
	// Load reads the root file and the files it includes, skipping excluded
	// and missing includes. Returns domain.ErrRootNotFound if the root is missing.
	Load(ctx context.Context, cfg domain.DocumentConfig, baseDir string) (*domain.Document, error)
}
