package tex

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

var envTokenRE = regexp.MustCompile(`\\(begin|end)\s*\{([^}]+)\}`)

// neverRE matches nothing. It stands in for patterns built from empty
// command lists.
var neverRE = regexp.MustCompile(`a^`)

// EnvToken is a single \begin{name} or \end{name} occurrence.
type EnvToken struct {
	Kind   string // "begin" or "end"
	Name   string
	Offset int
}

// CommandSpan describes one occurrence of a command together with its
// optional [..] argument and its first braced argument.
type CommandSpan struct {
	Name  string
	Start int
	End   int

	Optional    string
	HasOptional bool

	Argument      string
	HasArgument   bool
	ArgumentStart int
	ArgumentEnd   int
}

// MatchingBrace returns the index of the } closing the { at start, or -1.
func MatchingBrace(text string, start int) int {
	return matching(text, start, '{', '}')
}

// MatchingBracket returns the index of the ] closing the [ at start, or -1.
func MatchingBracket(text string, start int) int {
	return matching(text, start, '[', ']')
}

func matching(text string, start int, open, closing byte) int {
	if start < 0 || start >= len(text) || text[start] != open {
		return -1
	}
	depth := 0
	for index := start; index < len(text); index++ {
		switch text[index] {
		case open:
			if !IsEscaped(text, index) {
				depth++
			}
		case closing:
			if !IsEscaped(text, index) {
				depth--
				if depth == 0 {
					return index
				}
			}
		}
	}
	return -1
}

// SplitOptions splits a key=value option list on top-level commas.
// Parts are trimmed and empty parts are dropped.
func SplitOptions(options string) []string {
	var parts []string
	var current strings.Builder
	depth := 0
	flush := func() {
		if part := strings.TrimSpace(current.String()); part != "" {
			parts = append(parts, part)
		}
		current.Reset()
	}
	for _, char := range options {
		switch {
		case char == '{':
			depth++
		case char == '}' && depth > 0:
			depth--
		case char == ',' && depth == 0:
			flush()
			continue
		}
		current.WriteRune(char)
	}
	flush()
	return parts
}

// EnvTokens returns every environment begin/end token in text order.
func EnvTokens(text string) []EnvToken {
	matches := envTokenRE.FindAllStringSubmatchIndex(text, -1)
	tokens := make([]EnvToken, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, EnvToken{
			Kind:   text[m[2]:m[3]],
			Name:   strings.TrimSpace(text[m[4]:m[5]]),
			Offset: m[0],
		})
	}
	return tokens
}

// CommandPattern matches \cmd{ for any of the given commands.
func CommandPattern(commands []string) *regexp.Regexp {
	escaped := make([]string, 0, len(commands))
	for _, command := range commands {
		if command != "" {
			escaped = append(escaped, regexp.QuoteMeta(command))
		}
	}
	if len(escaped) == 0 {
		return neverRE
	}
	return regexp.MustCompile(`\\(?:` + strings.Join(escaped, "|") + `)\s*\{`)
}

// CommandSpans returns every occurrence of \command that ends on a word
// boundary, with its optional and first braced arguments parsed.
func CommandSpans(text, command string) []CommandSpan {
	re := regexp.MustCompile(`\\` + regexp.QuoteMeta(command))
	var spans []CommandSpan
	for _, m := range re.FindAllStringIndex(text, -1) {
		if !IsWordBoundary(text, m[1]) {
			continue
		}
		span := CommandSpan{Name: command, Start: m[0]}
		index := m[1]
		span.Optional, span.HasOptional, index = parseOptional(text, index)
		span.Argument, span.HasArgument, span.ArgumentStart, span.ArgumentEnd = parseBraced(text, index)
		if span.HasArgument {
			span.End = span.ArgumentEnd + 1
		} else {
			span.End = index
		}
		spans = append(spans, span)
	}
	return spans
}

// CommandOffsets returns the sorted start offsets of every \cmd in text
// that ends on a word boundary, for any of the given commands.
func CommandOffsets(text string, commands []string) []int {
	seen := make(map[int]bool)
	var offsets []int
	for _, command := range commands {
		if command == "" {
			continue
		}
		needle := `\` + command
		for index := indexFrom(text, needle, 0); index >= 0; index = indexFrom(text, needle, index+1) {
			if seen[index] || !IsWordBoundary(text, index+len(needle)) {
				continue
			}
			seen[index] = true
			offsets = append(offsets, index)
		}
	}
	sort.Ints(offsets)
	return offsets
}

// IsWordRune reports whether r counts as a word character for boundary
// checks. Unlike RE2's \b this includes non-ASCII letters.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsWordBoundary reports whether index sits between a word and a non-word
// rune (in either order).
func IsWordBoundary(text string, index int) bool {
	before, after := false, false
	if index > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:index])
		before = IsWordRune(r)
	}
	if index < len(text) {
		r, _ := utf8.DecodeRuneInString(text[index:])
		after = IsWordRune(r)
	}
	return before != after
}

func parseOptional(text string, index int) (string, bool, int) {
	index = SkipSpace(text, index)
	if index < len(text) && text[index] == '[' {
		end := MatchingBracket(text, index)
		if end < 0 {
			return "", false, index
		}
		return text[index+1 : end], true, end + 1
	}
	return "", false, index
}

func parseBraced(text string, index int) (string, bool, int, int) {
	index = SkipSpace(text, index)
	if index < len(text) && text[index] == '{' {
		end := MatchingBrace(text, index)
		if end < 0 {
			return "", false, 0, 0
		}
		return text[index+1 : end], true, index + 1, end
	}
	return "", false, 0, 0
}
