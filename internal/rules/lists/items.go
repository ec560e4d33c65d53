// Package lists checks list environments and the items inside them.
package lists

import (
	"sort"
	"strings"

	"github.com/gost-tex/lint-gost-tex/internal/tex"
)

// item is one \item of a top-level list. End is -1 while the item is open.
type item struct {
	Start        int
	ContentStart int
	End          int
}

type listEvent struct {
	offset int
	kind   string // "begin", "end" or "item"
	env    string
}

// baseEnv strips the starred form of an environment name.
func baseEnv(env string) string {
	return strings.TrimRight(env, "*")
}

func envSet(envs []string) map[string]bool {
	set := make(map[string]bool, len(envs))
	for _, env := range envs {
		set[baseEnv(env)] = true
	}
	return set
}

// collectItems returns the items of every top-level list in text. Items of
// nested lists are not collected; they stay part of the enclosing item.
func collectItems(text string, listEnvs map[string]bool) [][]*item {
	var events []listEvent
	for _, token := range tex.EnvTokens(text) {
		if listEnvs[baseEnv(token.Name)] {
			events = append(events, listEvent{offset: token.Offset, kind: token.Kind, env: token.Name})
		}
	}
	for _, offset := range tex.CommandOffsets(text, []string{"item"}) {
		events = append(events, listEvent{offset: offset, kind: "item"})
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].offset < events[j].offset })

	var (
		stack   []string
		lists   [][]*item
		current []*item
		open    bool
		last    *item
	)
	for _, ev := range events {
		switch ev.kind {
		case "begin":
			stack = append(stack, baseEnv(ev.env))
			if len(stack) == 1 {
				lists = append(lists, nil)
				current, open, last = nil, true, nil
			}
		case "end":
			stack = popEnv(stack, baseEnv(ev.env))
			if len(stack) == 0 && open {
				if last != nil && last.End < 0 {
					last.End = ev.offset
				}
				lists[len(lists)-1] = current
				current, open, last = nil, false, nil
			}
		case "item":
			if len(stack) != 1 || !open {
				continue
			}
			if last != nil && last.End < 0 {
				last.End = ev.offset
			}
			last = &item{Start: ev.offset, ContentStart: contentStart(text, ev.offset), End: -1}
			current = append(current, last)
		}
	}
	if open {
		if last != nil && last.End < 0 {
			last.End = len(text)
		}
		lists[len(lists)-1] = current
	}
	return lists
}

// popEnv closes env, discarding any blocks left open inside it. Unknown
// ends leave the stack untouched.
func popEnv(stack []string, env string) []string {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == env {
			return stack[:i]
		}
	}
	return stack
}

// contentStart skips "\item", spaces and an optional [label].
func contentStart(text string, offset int) int {
	index := tex.SkipSpace(text, offset+len(`\item`))
	if index < len(text) && text[index] == '[' {
		if end := tex.MatchingBracket(text, index); end >= 0 {
			index = end + 1
		}
	}
	return index
}
