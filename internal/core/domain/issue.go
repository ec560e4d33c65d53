package domain

import (
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Issue is a single rule violation.
type Issue struct {
	// RuleID identifies the rule that produced the issue (e.g., "REF001").
	RuleID string `json:"rule_id"`

	// Message describes the violation.
	Message string `json:"message"`

	// Path is the file the issue was found in.
	Path string `json:"path"`

	// Line is the 1-based line number.
	Line int `json:"line"`

	// Col is the 1-based column, counted in characters.
	Col int `json:"col"`

	// Snippet is the full text of the offending line.
	Snippet string `json:"snippet,omitempty"`
}

// Fingerprint identifies an issue independently of its line number so a
// baseline survives edits elsewhere in the file.
func (i Issue) Fingerprint(baseDir string) string {
	return strings.Join([]string{
		i.RuleID,
		RelPath(i.Path, baseDir),
		strings.TrimSpace(i.Snippet),
		i.Message,
	}, "\x1f")
}

// SortIssues orders issues by document position of their file, then line,
// column and rule ID. Files missing from the index sort last.
func SortIssues(issues []Issue, pathIndex map[string]int) {
	position := func(path string) int {
		if idx, ok := pathIndex[path]; ok {
			return idx
		}
		return len(pathIndex) + 1
	}
	sort.SliceStable(issues, func(a, b int) bool {
		ia, ib := issues[a], issues[b]
		if pa, pb := position(ia.Path), position(ib.Path); pa != pb {
			return pa < pb
		}
		if ia.Line != ib.Line {
			return ia.Line < ib.Line
		}
		if ia.Col != ib.Col {
			return ia.Col < ib.Col
		}
		return ia.RuleID < ib.RuleID
	})
}

// RelPath returns path relative to baseDir, or path unchanged when no
// relative form exists.
func RelPath(path, baseDir string) string {
	if baseDir == "" {
		return path
	}
	rel, err := filepath.Rel(baseDir, path)
	if err != nil {
		return path
	}
	return rel
}

// Report is the outcome of a lint run.
type Report struct {
	// Issues are the reported issues in output order.
	Issues []Issue `json:"issues"`

	// Suppressed counts issues hidden by the baseline.
	Suppressed int `json:"suppressed"`

	// Files lists the checked files in document order.
	Files []string `json:"files"`

	// BaseDir is the directory paths are reported relative to.
	BaseDir string `json:"-"`

	// FinishedAt is when the run completed.
	FinishedAt time.Time `json:"finished_at"`
}

// HasIssues returns true if the report contains at least one issue.
func (r *Report) HasIssues() bool {
	return r != nil && len(r.Issues) > 0
}

// LintOptions parameterise a lint run.
type LintOptions struct {
	// BaseDir is the working directory relative paths resolve against.
	BaseDir string

	// ConfigPath is the config file; empty means DefaultConfigFilename.
	ConfigPath string

	// Root overrides the configured root .tex file.
	Root string

	// ApplyBaseline hides issues recorded in the baseline.
	ApplyBaseline bool
}

// RuleInfo describes a registered rule for listings.
type RuleInfo struct {
	Name        string   `json:"name"`
	IDs         []string `json:"ids"`
	Description string   `json:"description"`
}
