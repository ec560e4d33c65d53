package lists

import (
	"context"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
	"github.com/gost-tex/lint-gost-tex/internal/core/ports/driven"
	"github.com/gost-tex/lint-gost-tex/internal/tex"
)

const (
	EndingRuleID   = "LST003"
	SentenceRuleID = "LST004"
)

var _ driven.Rule = (*PunctuationRule)(nil)

// PunctuationRule checks the closing punctuation of list items and that
// every item holds a single sentence.
type PunctuationRule struct {
	listEnvs     map[string]bool
	skipCommands []string
	twoArg       map[string]bool
	endings      map[rune]bool
	lastEnd      string
	nonLastEnd   string
}

func NewPunctuationRule(listEnvs []string, cfg domain.ListItemsRuleConfig) *PunctuationRule {
	endings := make(map[rune]bool)
	for _, ending := range cfg.SentenceEndings {
		for _, r := range ending {
			endings[r] = true
		}
	}
	return &PunctuationRule{
		listEnvs:     envSet(listEnvs),
		skipCommands: cfg.SkipCommands,
		twoArg:       stringSet(cfg.TwoArgCommands),
		endings:      endings,
		lastEnd:      cfg.LastEnd,
		nonLastEnd:   cfg.NonLastEnd,
	}
}

func (r *PunctuationRule) Name() string  { return "list_item_punctuation" }
func (r *PunctuationRule) IDs() []string { return []string{EndingRuleID, SentenceRuleID} }
func (r *PunctuationRule) Description() string {
	return "List items must use semicolons and single sentences."
}

func (r *PunctuationRule) Check(_ context.Context, lc *domain.LintContext) ([]domain.Issue, error) {
	var issues []domain.Issue
	for _, file := range lc.Document.Files {
		masked := tex.MaskCommandArguments(tex.MaskCommentsAndMath(file.Text), r.skipCommands, r.twoArg)
		for _, items := range collectItems(masked, r.listEnvs) {
			for i, it := range items {
				if it.End < 0 {
					continue
				}
				last := tex.LastNonSpace(masked, it.ContentStart, it.End)
				if last < it.ContentStart {
					continue
				}
				expected := r.nonLastEnd
				if i == len(items)-1 {
					expected = r.lastEnd
				}
				char, _ := utf8.DecodeRuneInString(masked[last:])
				if string(char) != expected {
					issues = append(issues, file.IssueAt(last, EndingRuleID,
						fmt.Sprintf("list item must end with '%s'", expected)))
				}
				ends := r.sentenceEnds(masked, it.ContentStart, it.End)
				if len(ends) > 0 && ends[0] < last {
					issues = append(issues, file.IssueAt(ends[0], SentenceRuleID, "list item contains multiple sentences"))
				}
			}
		}
	}
	return issues, nil
}

// sentenceEnds returns the offsets of sentence-ending characters in
// text[start:end]. Decimal points between two digits are skipped.
func (r *PunctuationRule) sentenceEnds(text string, start, end int) []int {
	var positions []int
	for offset, char := range text[start:end] {
		index := start + offset
		if !r.endings[char] {
			continue
		}
		if char == '.' && isDecimalPoint(text, index, start, end) {
			continue
		}
		positions = append(positions, index)
	}
	return positions
}

func isDecimalPoint(text string, index, start, end int) bool {
	if index <= start || index+1 >= end {
		return false
	}
	before, _ := utf8.DecodeLastRuneInString(text[:index])
	after, _ := utf8.DecodeRuneInString(text[index+1:])
	return unicode.IsDigit(before) && unicode.IsDigit(after)
}

func stringSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, value := range values {
		set[value] = true
	}
	return set
}
