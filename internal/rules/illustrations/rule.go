// Package illustrations checks that figures and tables are placed after
// the first reference to them.
package illustrations

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
	"github.com/gost-tex/lint-gost-tex/internal/core/ports/driven"
	"github.com/gost-tex/lint-gost-tex/internal/tex"
)

const (
	// OrderRuleID is reported for illustrations placed before their first reference.
	OrderRuleID = "ILL001"

	// MissingRuleID is reported for labels that are never referenced.
	MissingRuleID = "ILL002"
)

var labelRE = regexp.MustCompile(`\\label\s*\{([^}]+)\}`)

var _ driven.Rule = (*Rule)(nil)

// position orders locations across the files of a document.
type position struct {
	file   int
	offset int
}

func (p position) before(other position) bool {
	if p.file != other.file {
		return p.file < other.file
	}
	return p.offset < other.offset
}

type block struct {
	env        string
	start, end int
}

// Rule reports labelled illustration environments that are referenced
// only after them, or not at all.
type Rule struct {
	envs        map[string]bool
	refCommands []string
}

func New(envs, refCommands []string) *Rule {
	set := make(map[string]bool, len(envs))
	for _, env := range envs {
		set[env] = true
	}
	return &Rule{envs: set, refCommands: refCommands}
}

func (r *Rule) Name() string  { return "illustrations" }
func (r *Rule) IDs() []string { return []string{OrderRuleID, MissingRuleID} }
func (r *Rule) Description() string {
	return "Illustrations must appear after their first reference."
}

func (r *Rule) Check(_ context.Context, lc *domain.LintContext) ([]domain.Issue, error) {
	files := lc.Document.Files
	masked := make([]string, len(files))
	for i, file := range files {
		masked[i] = tex.MaskCommentsAndMath(file.Text)
	}
	refs := r.firstReferences(masked)

	var issues []domain.Issue
	for i, file := range files {
		for _, b := range r.blocks(masked[i]) {
			here := position{file: i, offset: b.start}
			for _, label := range labels(masked[i][b.start:b.end]) {
				ref, ok := refs[label]
				switch {
				case !ok:
					issues = append(issues, file.IssueAt(b.start, MissingRuleID,
						fmt.Sprintf("no reference found for label '%s'", label)))
				case !ref.before(here):
					issues = append(issues, file.IssueAt(b.start, OrderRuleID,
						fmt.Sprintf("illustration appears before first reference to '%s'", label)))
				}
			}
		}
	}
	return issues, nil
}

// blocks pairs begin and end tokens of the tracked environments. An end
// closes the innermost open block of the same name.
func (r *Rule) blocks(text string) []block {
	var blocks []block
	var stack []block
	for _, token := range tex.EnvTokens(text) {
		if !r.envs[token.Name] {
			continue
		}
		if token.Kind == "begin" {
			stack = append(stack, block{env: token.Name, start: token.Offset})
			continue
		}
		for i := len(stack) - 1; i >= 0; i-- {
			if stack[i].env == token.Name {
				open := stack[i]
				stack = append(stack[:i], stack[i+1:]...)
				open.end = token.Offset
				blocks = append(blocks, open)
				break
			}
		}
	}
	return blocks
}

func (r *Rule) firstReferences(masked []string) map[string]position {
	refs := make(map[string]position)
	for i, text := range masked {
		for _, command := range r.refCommands {
			if command == "" {
				continue
			}
			for _, span := range tex.CommandSpans(text, command) {
				if !span.HasArgument {
					continue
				}
				here := position{file: i, offset: span.Start}
				for _, label := range strings.Split(span.Argument, ",") {
					label = strings.TrimSpace(label)
					if label == "" {
						continue
					}
					if first, ok := refs[label]; !ok || here.before(first) {
						refs[label] = here
					}
				}
			}
		}
	}
	return refs
}

func labels(text string) []string {
	var found []string
	for _, m := range labelRE.FindAllStringSubmatch(text, -1) {
		if label := strings.TrimSpace(m[1]); label != "" {
			found = append(found, label)
		}
	}
	return found
}
