package driven

import "context"

// WordlistLoader reads dictionary files.
type WordlistLoader interface {
	// Load returns the entries of every existing file in paths: trimmed,
	// non-empty lines that are not # comments. Missing files are skipped.
	Load(ctx context.Context, paths []string) ([]string, error)
}
