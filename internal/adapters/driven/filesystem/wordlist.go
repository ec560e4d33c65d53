package filesystem

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/gost-tex/lint-gost-tex/internal/core/ports/driven"
	"github.com/gost-tex/lint-gost-tex/internal/logger"
)

// Ensure WordlistLoader implements the interface.
var _ driven.WordlistLoader = (*WordlistLoader)(nil)

// WordlistLoader reads plain text dictionaries with one word per line.
type WordlistLoader struct{}

// NewWordlistLoader creates a filesystem wordlist loader.
func NewWordlistLoader() *WordlistLoader {
	return &WordlistLoader{}
}

// Load returns the trimmed entries of every existing file in paths.
// Blank lines and lines starting with # are skipped, as are unreadable
// files. Invalid UTF-8 sequences are dropped.
func (l *WordlistLoader) Load(ctx context.Context, paths []string) ([]string, error) {
	var entries []string
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			logger.Warn("skipping wordlist %s: %v", path, err)
			continue
		}
		entries = appendEntries(entries, bytes.ToValidUTF8(data, nil))
	}
	return entries, nil
}

// appendEntries splits data on newlines. The file is already in memory, so
// lines of any length are kept.
func appendEntries(entries []string, data []byte) []string {
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	return entries
}
