package lists

import (
	"context"
	"unicode"
	"unicode/utf8"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
	"github.com/gost-tex/lint-gost-tex/internal/core/ports/driven"
	"github.com/gost-tex/lint-gost-tex/internal/tex"
)

const CaseRuleID = "LST005"

var _ driven.Rule = (*CaseRule)(nil)

// CaseRule reports list items whose first word is capitalised.
type CaseRule struct {
	listEnvs map[string]bool
	scanner  *tex.WordScanner
}

func NewCaseRule(listEnvs []string, cfg domain.ListItemsRuleConfig) *CaseRule {
	return &CaseRule{
		listEnvs: envSet(listEnvs),
		scanner: &tex.WordScanner{
			SkipCommands: stringSet(cfg.SkipCommands),
			SkipTwoArgs:  stringSet(cfg.TwoArgCommands),
		},
	}
}

func (r *CaseRule) Name() string  { return "list_item_case" }
func (r *CaseRule) IDs() []string { return []string{CaseRuleID} }
func (r *CaseRule) Description() string {
	return "List items must not start with uppercase letters."
}

func (r *CaseRule) Check(_ context.Context, lc *domain.LintContext) ([]domain.Issue, error) {
	var issues []domain.Issue
	for _, file := range lc.Document.Files {
		masked := tex.MaskCommentsAndMath(file.Text)
		for _, items := range collectItems(masked, r.listEnvs) {
			for _, it := range items {
				if it.End < 0 {
					continue
				}
				word, ok := r.scanner.FirstWord(file.Text[it.ContentStart:it.End])
				if !ok {
					continue
				}
				if first, _ := utf8.DecodeRuneInString(word.Text); unicode.IsUpper(first) {
					issues = append(issues, file.IssueAt(it.ContentStart+word.Offset, CaseRuleID,
						"list item starts with uppercase letter"))
				}
			}
		}
	}
	return issues, nil
}
