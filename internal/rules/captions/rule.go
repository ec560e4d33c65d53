// Package captions checks the trailing punctuation of figure and table
// captions.
package captions

import (
	"context"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
	"github.com/gost-tex/lint-gost-tex/internal/core/ports/driven"
	"github.com/gost-tex/lint-gost-tex/internal/tex"
)

const RuleID = "CAP001"

var labelRE = regexp.MustCompile(`\\label\s*\{[^}]*\}`)

var _ driven.Rule = (*Rule)(nil)

// Rule reports captions whose last visible character is forbidden.
type Rule struct {
	commands  []string
	forbidden map[string]bool
}

// New creates the rule. forbidTrailing lists the forbidden last characters.
func New(commands, forbidTrailing []string) *Rule {
	forbidden := make(map[string]bool, len(forbidTrailing))
	for _, value := range forbidTrailing {
		forbidden[value] = true
	}
	return &Rule{commands: commands, forbidden: forbidden}
}

func (r *Rule) Name() string        { return "captions" }
func (r *Rule) IDs() []string       { return []string{RuleID} }
func (r *Rule) Description() string { return "Captions must not end with punctuation." }

func (r *Rule) Check(_ context.Context, lc *domain.LintContext) ([]domain.Issue, error) {
	var issues []domain.Issue
	for _, file := range lc.Document.Files {
		masked := tex.MaskCommentsAndMath(file.Text)
		for _, command := range r.commands {
			if command == "" {
				continue
			}
			for _, span := range tex.CommandSpans(masked, command) {
				if !span.HasArgument {
					continue
				}
				last := lastVisibleChar(span.Argument)
				if last != "" && r.forbidden[last] {
					issues = append(issues, file.IssueAt(span.Start, RuleID, "caption ends with punctuation"))
				}
			}
		}
	}
	return issues, nil
}

// lastVisibleChar returns the last character of a caption ignoring labels,
// braces and trailing spaces.
func lastVisibleChar(caption string) string {
	cleaned := strings.TrimRightFunc(labelRE.ReplaceAllString(caption, ""), unicode.IsSpace)
	cleaned = strings.TrimRight(cleaned, "{} ")
	if cleaned == "" {
		return ""
	}
	r, _ := utf8.DecodeLastRuneInString(cleaned)
	return string(r)
}
