package domain

import (
	"path/filepath"
	"strings"
)

// DefaultConfigFilename is the config file looked up in the working directory.
const DefaultConfigFilename = "lint-gost-tex.toml"

// DefaultDocumentRoot is the root .tex file used when none is configured.
const DefaultDocumentRoot = "main.tex"

// Config is the complete lint configuration. Field tags name the keys of
// the TOML config file.
type Config struct {
	Document   DocumentConfig   `toml:"document"`
	Rules      RulesConfig      `toml:"rules"`
	Spellcheck SpellcheckConfig `toml:"spellcheck"`
	Baseline   BaselineConfig   `toml:"baseline"`
	Watch      WatchConfig      `toml:"watch"`
}

// DocumentConfig selects the files to lint.
type DocumentConfig struct {
	// Root is the root .tex file. Relative paths are resolved against the
	// working directory when the config is loaded.
	Root string `toml:"root"`

	// Exclude lists file names or path patterns to skip.
	Exclude []string `toml:"exclude"`
}

// IsExcluded reports whether path matches one of the exclude patterns.
// A bare file name matches by name; other patterns match the trailing
// path components, or the whole path when absolute.
func (c DocumentConfig) IsExcluded(path string) bool {
	name := filepath.Base(path)
	for _, pattern := range c.Exclude {
		if pattern == "" {
			continue
		}
		if filepath.Base(pattern) == pattern && name == pattern {
			return true
		}
		if matchTrailing(path, pattern) {
			return true
		}
	}
	return false
}

func matchTrailing(path, pattern string) bool {
	pathParts := splitPath(path)
	patternParts := splitPath(pattern)
	if len(patternParts) == 0 || len(patternParts) > len(pathParts) {
		return false
	}
	if filepath.IsAbs(pattern) && len(patternParts) != len(pathParts) {
		return false
	}
	offset := len(pathParts) - len(patternParts)
	for i, part := range patternParts {
		ok, err := filepath.Match(part, pathParts[offset+i])
		if err != nil || !ok {
			return false
		}
	}
	return true
}

func splitPath(path string) []string {
	parts := strings.Split(filepath.ToSlash(filepath.Clean(path)), "/")
	kept := parts[:0]
	for _, part := range parts {
		if part != "" && part != "." {
			kept = append(kept, part)
		}
	}
	return kept
}

// RulesConfig holds per-rule settings.
type RulesConfig struct {
	// Disabled lists rule IDs whose issues are dropped from reports.
	Disabled []string `toml:"disabled"`

	Images        ImagesRuleConfig        `toml:"images"`
	Refs          CommandsRuleConfig      `toml:"refs"`
	Links         CommandsRuleConfig      `toml:"links"`
	Styles        CommandsRuleConfig      `toml:"styles"`
	Lists         ListsRuleConfig         `toml:"lists"`
	Captions      CaptionsRuleConfig      `toml:"captions"`
	Illustrations IllustrationsRuleConfig `toml:"illustrations"`
	Abbrev        AbbrevRuleConfig        `toml:"abbrev"`
	Unicode       UnicodeRuleConfig       `toml:"unicode"`
	ListItems     ListItemsRuleConfig     `toml:"list_items"`
}

// IsDisabled reports whether issues with the given rule ID are dropped.
func (c RulesConfig) IsDisabled(ruleID string) bool {
	for _, id := range c.Disabled {
		if strings.EqualFold(id, ruleID) {
			return true
		}
	}
	return false
}

type ImagesRuleConfig struct {
	RequiredWidth string `toml:"required_width"`
}

// CommandsRuleConfig configures rules that only need a command list.
type CommandsRuleConfig struct {
	Commands []string `toml:"commands"`
}

type ListsRuleConfig struct {
	AllowedEnvs           []string `toml:"allowed_envs"`
	ListEnvs              []string `toml:"list_envs"`
	DisallowBeginOptional bool     `toml:"disallow_begin_optional"`
	DisallowItemOptional  bool     `toml:"disallow_item_optional"`
}

type CaptionsRuleConfig struct {
	Commands       []string `toml:"commands"`
	ForbidTrailing []string `toml:"forbid_trailing"`
}

type IllustrationsRuleConfig struct {
	Envs        []string `toml:"envs"`
	RefCommands []string `toml:"ref_commands"`
}

type AbbrevRuleConfig struct {
	BannedWords    []string `toml:"banned_words"`
	BannedPatterns []string `toml:"banned_patterns"`
	AllowWords     []string `toml:"allow_words"`
	SkipCommands   []string `toml:"skip_commands"`
	TwoArgCommands []string `toml:"two_arg_commands"`
}

type UnicodeRuleConfig struct {
	AllowedExtra []string `toml:"allowed_extra"`
}

type ListItemsRuleConfig struct {
	SkipCommands    []string `toml:"skip_commands"`
	TwoArgCommands  []string `toml:"two_arg_commands"`
	SentenceEndings []string `toml:"sentence_endings"`
	LastEnd         string   `toml:"last_end"`
	NonLastEnd      string   `toml:"non_last_end"`
}

// SpellcheckConfig configures the dictionary based spell checker.
type SpellcheckConfig struct {
	CustomDict              string   `toml:"custom_dict"`
	ExtraRuDicts            []string `toml:"extra_ru_dicts"`
	ExtraEnDicts            []string `toml:"extra_en_dicts"`
	SystemEnDicts           []string `toml:"system_en_dicts"`
	IgnoreEnvs              []string `toml:"ignore_envs"`
	SkipCommands            []string `toml:"skip_commands"`
	KeepCommands            []string `toml:"keep_commands"`
	MinWordLength           int      `toml:"min_word_length"`
	IgnoreUppercaseAcronyms bool     `toml:"ignore_uppercase_acronyms"`
}

// BaselineConfig locates the baseline database.
type BaselineConfig struct {
	Dir string `toml:"dir"`
}

// WatchConfig tunes the watch command.
type WatchConfig struct {
	// IntervalMS is the minimum time between two lint runs.
	IntervalMS int `toml:"interval_ms"`

	// Extensions lists the file extensions that trigger a run.
	Extensions []string `toml:"extensions"`
}

// ResolvePaths makes relative file paths absolute against baseDir.
func (c *Config) ResolvePaths(baseDir string) {
	resolve := func(value string) string {
		if value == "" || filepath.IsAbs(value) {
			return value
		}
		return filepath.Join(baseDir, value)
	}
	c.Document.Root = resolve(c.Document.Root)
	c.Spellcheck.CustomDict = resolve(c.Spellcheck.CustomDict)
	for i, path := range c.Spellcheck.ExtraRuDicts {
		c.Spellcheck.ExtraRuDicts[i] = resolve(path)
	}
	for i, path := range c.Spellcheck.ExtraEnDicts {
		c.Spellcheck.ExtraEnDicts[i] = resolve(path)
	}
	c.Baseline.Dir = resolve(c.Baseline.Dir)
}
