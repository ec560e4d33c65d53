package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
	"github.com/gost-tex/lint-gost-tex/internal/core/ports/driven"
)

// Ensure ConfigLoader implements the interface.
var _ driven.ConfigLoader = (*ConfigLoader)(nil)

// ConfigLoader reads lint-gost-tex.toml files.
// Values from the file are deep-merged over the built-in defaults, so a
// file only needs the keys it changes. Unknown keys are ignored.
type ConfigLoader struct{}

// NewConfigLoader creates a TOML config loader.
func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{}
}

// Load reads the config at path, or lint-gost-tex.toml when path is empty.
// Relative paths are resolved against baseDir. A missing file yields the
// defaults.
func (l *ConfigLoader) Load(_ context.Context, path, baseDir string) (*domain.Config, domain.ConfigSource, error) {
	if path == "" {
		path = domain.DefaultConfigFilename
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	source := domain.ConfigSource{Path: path}

	merged, err := defaultsMap()
	if err != nil {
		return nil, source, err
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// No config file - defaults apply
	case err != nil:
		return nil, source, fmt.Errorf("read config %s: %w", path, err)
	default:
		source.Exists = true
		source.FirstLine = firstLine(string(data))

		var override map[string]any
		if err := toml.Unmarshal(data, &override); err != nil {
			return nil, source, fmt.Errorf("%w: %s: %v", domain.ErrConfigInvalid, path, err)
		}
		deepMerge(merged, override)
	}

	cfg, err := decode(merged)
	if err != nil {
		return nil, source, fmt.Errorf("%w: %s: %v", domain.ErrConfigInvalid, path, err)
	}
	cfg.ResolvePaths(baseDir)
	return cfg, source, nil
}

// defaultsMap renders the default config as a generic TOML map.
func defaultsMap() (map[string]any, error) {
	data, err := toml.Marshal(domain.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("encode defaults: %w", err)
	}
	var defaults map[string]any
	if err := toml.Unmarshal(data, &defaults); err != nil {
		return nil, fmt.Errorf("decode defaults: %w", err)
	}
	return defaults, nil
}

// decode converts a merged generic map into the typed config.
func decode(merged map[string]any) (*domain.Config, error) {
	data, err := toml.Marshal(merged)
	if err != nil {
		return nil, err
	}
	var cfg domain.Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// deepMerge copies override into base. Tables present on both sides are
// merged recursively; any other value replaces the base value.
func deepMerge(base, override map[string]any) {
	for key, value := range override {
		nested, ok := value.(map[string]any)
		if existing, isMap := base[key].(map[string]any); ok && isMap {
			deepMerge(existing, nested)
			continue
		}
		base[key] = value
	}
}

func firstLine(text string) string {
	line, _, _ := strings.Cut(text, "\n")
	return strings.TrimRight(line, "\r")
}
