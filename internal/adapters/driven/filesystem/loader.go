package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
	"github.com/gost-tex/lint-gost-tex/internal/core/ports/driven"
	"github.com/gost-tex/lint-gost-tex/internal/logger"
	"github.com/gost-tex/lint-gost-tex/internal/tex"
)

var includeRE = regexp.MustCompile(`\\(?:include|input)\s*\{([^}]+)\}`)

// Ensure DocumentLoader implements the interface.
var _ driven.DocumentLoader = (*DocumentLoader)(nil)

// DocumentLoader reads a root .tex file and the files it includes
// directly through \include or \input.
type DocumentLoader struct{}

// NewDocumentLoader creates a filesystem document loader.
func NewDocumentLoader() *DocumentLoader {
	return &DocumentLoader{}
}

// Load returns the root file followed by its includes in order of
// appearance. Includes without an extension get ".tex". Duplicates,
// excluded files and missing includes are skipped.
func (l *DocumentLoader) Load(ctx context.Context, cfg domain.DocumentConfig, baseDir string) (*domain.Document, error) {
	root := cfg.Root
	if root == "" {
		root = domain.DefaultDocumentRoot
	}
	if !filepath.IsAbs(root) {
		root = filepath.Join(baseDir, root)
	}

	rootText, err := readTex(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrRootNotFound, root)
		}
		return nil, err
	}

	paths := append([]string{root}, includes(root, rootText)...)
	doc := &domain.Document{BaseDir: baseDir}
	seen := make(map[string]bool, len(paths))
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		key := resolvedKey(path)
		if seen[key] {
			continue
		}
		seen[key] = true
		if cfg.IsExcluded(path) {
			logger.Debug("excluded %s", path)
			continue
		}

		text := rootText
		if i > 0 {
			text, err = readTex(path)
			if errors.Is(err, fs.ErrNotExist) {
				logger.Warn("included file not found: %s", path)
				continue
			}
			if err != nil {
				return nil, err
			}
		}
		doc.Files = append(doc.Files, domain.NewTexFile(path, text))
	}
	return doc, nil
}

// includes lists the files included by the root, resolved against the
// root's directory. Commented out includes are ignored.
func includes(root, text string) []string {
	dir := filepath.Dir(root)
	var paths []string
	for _, m := range includeRE.FindAllStringSubmatch(tex.StripComments(text), -1) {
		raw := strings.TrimSpace(m[1])
		if raw == "" {
			continue
		}
		if filepath.Ext(raw) == "" {
			raw += ".tex"
		}
		if !filepath.IsAbs(raw) {
			raw = filepath.Join(dir, raw)
		}
		paths = append(paths, raw)
	}
	return paths
}

// resolvedKey identifies a file independently of the path spelling.
func resolvedKey(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}

func readTex(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s is not valid UTF-8", domain.ErrInvalidInput, path)
	}
	return string(data), nil
}
