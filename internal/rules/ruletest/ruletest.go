// Package ruletest provides helpers for testing lint rules.
package ruletest

import (
	"fmt"
	"path/filepath"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
)

// BaseDir is the directory test documents live in.
const BaseDir = "/doc"

// Path returns the path of the i-th file created by Context.
func Path(i int) string {
	return filepath.Join(BaseDir, fmt.Sprintf("f%d.tex", i))
}

// Context builds a lint context for a document made of texts, in order,
// using the default configuration.
func Context(texts ...string) *domain.LintContext {
	doc := &domain.Document{BaseDir: BaseDir}
	for i, text := range texts {
		doc.Files = append(doc.Files, domain.NewTexFile(Path(i), text))
	}
	cfg := domain.DefaultConfig()
	return &domain.LintContext{
		Document: doc,
		Config:   &cfg,
		BaseDir:  BaseDir,
		Source:   domain.ConfigSource{Path: filepath.Join(BaseDir, domain.DefaultConfigFilename)},
	}
}

// Locations renders issues as "RULE:line:col" for compact assertions.
// Issues from files other than the first are prefixed with the file name.
func Locations(issues []domain.Issue) []string {
	locations := make([]string, 0, len(issues))
	for _, issue := range issues {
		location := fmt.Sprintf("%s:%d:%d", issue.RuleID, issue.Line, issue.Col)
		if issue.Path != Path(0) {
			location = filepath.Base(issue.Path) + ":" + location
		}
		locations = append(locations, location)
	}
	return locations
}
