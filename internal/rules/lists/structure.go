package lists

import (
	"context"
	"regexp"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
	"github.com/gost-tex/lint-gost-tex/internal/core/ports/driven"
	"github.com/gost-tex/lint-gost-tex/internal/tex"
)

const (
	CustomRuleID = "LST001"
	NestedRuleID = "LST002"
)

var (
	beginOptionalRE = regexp.MustCompile(`\\begin\s*\{(itemize|enumerate)\}\s*\[`)
	itemOptionalRE  = regexp.MustCompile(`\\item\s*\[`)
)

var (
	_ driven.Rule = (*CustomRule)(nil)
	_ driven.Rule = (*NestedRule)(nil)
)

// CustomRule allows only the default list environments, without options.
type CustomRule struct {
	allowed               map[string]bool
	listEnvs              map[string]bool
	disallowBeginOptional bool
	disallowItemOptional  bool
}

func NewCustomRule(cfg domain.ListsRuleConfig) *CustomRule {
	allowed := make(map[string]bool, len(cfg.AllowedEnvs))
	for _, env := range cfg.AllowedEnvs {
		allowed[env] = true
	}
	return &CustomRule{
		allowed:               allowed,
		listEnvs:              envSet(cfg.ListEnvs),
		disallowBeginOptional: cfg.DisallowBeginOptional,
		disallowItemOptional:  cfg.DisallowItemOptional,
	}
}

func (r *CustomRule) Name() string  { return "custom_lists" }
func (r *CustomRule) IDs() []string { return []string{CustomRuleID} }
func (r *CustomRule) Description() string {
	return "Only default itemize/enumerate lists are allowed."
}

func (r *CustomRule) Check(_ context.Context, lc *domain.LintContext) ([]domain.Issue, error) {
	var issues []domain.Issue
	for _, file := range lc.Document.Files {
		masked := tex.MaskCommentsAndMath(file.Text)
		for _, token := range tex.EnvTokens(masked) {
			if token.Kind == "begin" && r.listEnvs[baseEnv(token.Name)] && !r.allowed[token.Name] {
				issues = append(issues, file.IssueAt(token.Offset, CustomRuleID, "custom list environment used"))
			}
		}
		if r.disallowBeginOptional {
			for _, m := range beginOptionalRE.FindAllStringIndex(masked, -1) {
				issues = append(issues, file.IssueAt(m[0], CustomRuleID, "list has custom begin options"))
			}
		}
		if r.disallowItemOptional {
			for _, m := range itemOptionalRE.FindAllStringIndex(masked, -1) {
				issues = append(issues, file.IssueAt(m[0], CustomRuleID, "list item uses custom label"))
			}
		}
	}
	return issues, nil
}

// NestedRule reports lists opened inside another list.
type NestedRule struct {
	listEnvs map[string]bool
}

func NewNestedRule(listEnvs []string) *NestedRule {
	return &NestedRule{listEnvs: envSet(listEnvs)}
}

func (r *NestedRule) Name() string        { return "nested_lists" }
func (r *NestedRule) IDs() []string       { return []string{NestedRuleID} }
func (r *NestedRule) Description() string { return "Nested lists are not allowed." }

func (r *NestedRule) Check(_ context.Context, lc *domain.LintContext) ([]domain.Issue, error) {
	var issues []domain.Issue
	for _, file := range lc.Document.Files {
		masked := tex.MaskCommentsAndMath(file.Text)
		var stack []string
		for _, token := range tex.EnvTokens(masked) {
			env := baseEnv(token.Name)
			if !r.listEnvs[env] {
				continue
			}
			if token.Kind == "begin" {
				if len(stack) > 0 {
					issues = append(issues, file.IssueAt(token.Offset, NestedRuleID, "nested list detected"))
				}
				stack = append(stack, env)
				continue
			}
			if len(stack) > 0 && stack[len(stack)-1] == env {
				stack = stack[:len(stack)-1]
			}
		}
	}
	return issues, nil
}
