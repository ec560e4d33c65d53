// Package refs checks how references and links are attached to the
// surrounding text.
package refs

import (
	"context"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
	"github.com/gost-tex/lint-gost-tex/internal/core/ports/driven"
	"github.com/gost-tex/lint-gost-tex/internal/tex"
)

const (
	// SpacingRuleID is reported for references not tied with one '~'.
	SpacingRuleID = "REF001"

	// LinkRuleID is reported for links placed after the end of a sentence.
	LinkRuleID = "REF002"
)

var (
	_ driven.Rule = (*SpacingRule)(nil)
	_ driven.Rule = (*LinkRule)(nil)
)

// SpacingRule requires exactly one non-breaking space before each
// reference command.
type SpacingRule struct {
	commands []string
}

// NewSpacingRule creates the rule for the given reference commands.
func NewSpacingRule(commands []string) *SpacingRule {
	return &SpacingRule{commands: commands}
}

func (r *SpacingRule) Name() string  { return "ref_spacing" }
func (r *SpacingRule) IDs() []string { return []string{SpacingRuleID} }
func (r *SpacingRule) Description() string {
	return "References must use a single non-breaking space."
}

func (r *SpacingRule) Check(_ context.Context, lc *domain.LintContext) ([]domain.Issue, error) {
	var issues []domain.Issue
	pattern := tex.CommandPattern(r.commands)
	for _, file := range lc.Document.Files {
		masked := tex.MaskCommentsAndMath(file.Text)
		for _, m := range pattern.FindAllStringIndex(masked, -1) {
			index := m[0]
			switch {
			case index == 0 || masked[index-1] != '~':
				issues = append(issues, file.IssueAt(index, SpacingRuleID, "missing '~' before reference"))
			case index >= 2 && masked[index-2] == '~':
				issues = append(issues, file.IssueAt(index-1, SpacingRuleID, "use exactly one '~'"))
			}
		}
	}
	return issues, nil
}

// LinkRule reports link commands that follow sentence-ending punctuation.
type LinkRule struct {
	commands []string
}

// NewLinkRule creates the rule for the given link commands.
func NewLinkRule(commands []string) *LinkRule {
	return &LinkRule{commands: commands}
}

func (r *LinkRule) Name() string  { return "link_punctuation" }
func (r *LinkRule) IDs() []string { return []string{LinkRuleID} }
func (r *LinkRule) Description() string {
	return "Links must appear before sentence-ending punctuation."
}

func (r *LinkRule) Check(_ context.Context, lc *domain.LintContext) ([]domain.Issue, error) {
	var issues []domain.Issue
	pattern := tex.CommandPattern(r.commands)
	for _, file := range lc.Document.Files {
		masked := tex.MaskCommentsAndMath(file.Text)
		for _, m := range pattern.FindAllStringIndex(masked, -1) {
			switch precedingChar(masked, m[0]) {
			case '.', '!', '?':
				issues = append(issues, file.IssueAt(m[0], LinkRuleID, "link follows sentence-ending punctuation"))
			}
		}
	}
	return issues, nil
}

// precedingChar returns the last non-space byte before index, looking
// through closing brackets and quotes. It returns 0 at the start of text.
func precedingChar(text string, index int) byte {
	prev := tex.PrevNonSpace(text, index)
	for prev >= 0 && isCloser(text[prev]) {
		prev = tex.PrevNonSpace(text, prev)
	}
	if prev < 0 {
		return 0
	}
	return text[prev]
}

func isCloser(char byte) bool {
	switch char {
	case ')', ']', '}', '"', '\'':
		return true
	}
	return false
}
