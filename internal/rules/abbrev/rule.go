// Package abbrev reports abbreviations such as "рис." and "т.д." in prose.
package abbrev

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
	"github.com/gost-tex/lint-gost-tex/internal/core/ports/driven"
	"github.com/gost-tex/lint-gost-tex/internal/tex"
)

const RuleID = "ABBR001"

var _ driven.Rule = (*Rule)(nil)

type pattern struct {
	re        *regexp.Regexp
	wordStart bool
}

// Rule reports banned abbreviated words and banned patterns outside of
// comments, math and the arguments of skipped commands.
type Rule struct {
	patterns     []pattern
	skipCommands []string
	twoArg       map[string]bool
}

// New compiles the banned words and patterns. A banned word matches when
// followed by a dot; words listed in allow are ignored.
func New(cfg domain.AbbrevRuleConfig) (*Rule, error) {
	fold := cases.Fold()
	allow := make(map[string]bool, len(cfg.AllowWords))
	for _, word := range cfg.AllowWords {
		allow[fold.String(word)] = true
	}

	r := &Rule{skipCommands: cfg.SkipCommands, twoArg: make(map[string]bool)}
	for _, command := range cfg.TwoArgCommands {
		r.twoArg[command] = true
	}
	for _, word := range cfg.BannedWords {
		normalized := strings.TrimRight(strings.TrimSpace(word), ".")
		if normalized == "" || allow[fold.String(normalized)] {
			continue
		}
		re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(normalized) + `\.`)
		if err != nil {
			return nil, fmt.Errorf("banned word %q: %w", word, err)
		}
		r.patterns = append(r.patterns, pattern{re: re, wordStart: true})
	}
	for _, value := range cfg.BannedPatterns {
		re, wordStart, err := tex.CompileUserPattern(value, true)
		if err != nil {
			return nil, fmt.Errorf("%w: banned pattern %q: %v", domain.ErrConfigInvalid, value, err)
		}
		r.patterns = append(r.patterns, pattern{re: re, wordStart: wordStart})
	}
	return r, nil
}

func (r *Rule) Name() string        { return "abbrev" }
func (r *Rule) IDs() []string       { return []string{RuleID} }
func (r *Rule) Description() string { return "Abbreviations are not allowed." }

// Check reports at most one issue per start offset. Banned words are
// matched before banned patterns.
func (r *Rule) Check(_ context.Context, lc *domain.LintContext) ([]domain.Issue, error) {
	var issues []domain.Issue
	for _, file := range lc.Document.Files {
		masked := tex.MaskCommandArguments(tex.MaskCommentsAndMath(file.Text), r.skipCommands, r.twoArg)
		seen := make(map[int]bool)
		for _, p := range r.patterns {
			for _, m := range tex.FindAllAtWordStart(p.re, masked, p.wordStart) {
				if seen[m[0]] {
					continue
				}
				seen[m[0]] = true
				message := fmt.Sprintf("abbreviation '%s' is not allowed", masked[m[0]:m[1]])
				issues = append(issues, file.IssueAt(m[0], RuleID, message))
			}
		}
	}
	return issues, nil
}
