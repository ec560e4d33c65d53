// Package images checks \includegraphics widths.
package images

import (
	"context"
	"strings"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
	"github.com/gost-tex/lint-gost-tex/internal/core/ports/driven"
	"github.com/gost-tex/lint-gost-tex/internal/tex"
)

// RuleID is reported for images without the required width.
const RuleID = "IMG001"

var _ driven.Rule = (*Rule)(nil)

// Rule requires every included graphic to use one fixed width.
type Rule struct {
	requiredWidth string
}

// New creates the rule. requiredWidth is compared whitespace-insensitively.
func New(requiredWidth string) *Rule {
	return &Rule{requiredWidth: normalize(requiredWidth)}
}

func (r *Rule) Name() string        { return "images" }
func (r *Rule) IDs() []string       { return []string{RuleID} }
func (r *Rule) Description() string { return "Images must use a fixed width." }

// Check reports \includegraphics commands whose width option is missing or
// differs from the required width.
func (r *Rule) Check(_ context.Context, lc *domain.LintContext) ([]domain.Issue, error) {
	var issues []domain.Issue
	message := "includegraphics width must be " + r.requiredWidth
	for _, file := range lc.Document.Files {
		masked := tex.MaskCommentsAndMath(file.Text)
		for _, span := range tex.CommandSpans(masked, "includegraphics") {
			if !span.HasOptional {
				issues = append(issues, file.IssueAt(span.Start, RuleID, message))
				continue
			}
			width, ok := parseOptions(span.Optional)["width"]
			if !ok || normalize(width) != r.requiredWidth {
				issues = append(issues, file.IssueAt(span.Start, RuleID, message))
			}
		}
	}
	return issues, nil
}

func parseOptions(optional string) map[string]string {
	options := make(map[string]string)
	for _, item := range tex.SplitOptions(optional) {
		key, value, ok := strings.Cut(item, "=")
		if !ok {
			continue
		}
		options[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return options
}

// normalize drops all whitespace and one pair of enclosing braces.
func normalize(value string) string {
	normalized := strings.Join(strings.Fields(value), "")
	if len(normalized) >= 2 && strings.HasPrefix(normalized, "{") && strings.HasSuffix(normalized, "}") {
		return normalized[1 : len(normalized)-1]
	}
	return normalized
}
