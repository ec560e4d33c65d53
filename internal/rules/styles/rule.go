// Package styles reports underline and italic commands.
package styles

import (
	"context"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
	"github.com/gost-tex/lint-gost-tex/internal/core/ports/driven"
	"github.com/gost-tex/lint-gost-tex/internal/tex"
)

const RuleID = "TXT001"

var _ driven.Rule = (*Rule)(nil)

// Rule flags every use of a forbidden text style command.
type Rule struct {
	commands []string
}

func New(commands []string) *Rule {
	return &Rule{commands: commands}
}

func (r *Rule) Name() string        { return "styles" }
func (r *Rule) IDs() []string       { return []string{RuleID} }
func (r *Rule) Description() string { return "Underline and italics are not allowed." }

func (r *Rule) Check(_ context.Context, lc *domain.LintContext) ([]domain.Issue, error) {
	var issues []domain.Issue
	for _, file := range lc.Document.Files {
		masked := tex.MaskCommentsAndMath(file.Text)
		for _, offset := range tex.CommandOffsets(masked, r.commands) {
			issues = append(issues, file.IssueAt(offset, RuleID, "underline/italic command used"))
		}
	}
	return issues, nil
}
