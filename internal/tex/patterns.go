package tex

import (
	"regexp"
	"strconv"
	"strings"
)

var unicodeEscapeRE = regexp.MustCompile(`\\u([0-9A-Fa-f]{4})`)

// CompileUserPattern compiles a user supplied regular expression.
//
// Patterns may use \uXXXX escapes, which are rewritten to RE2's \x{XXXX}.
// A leading \b is removed and reported through the second return value so
// callers can apply a Unicode-aware word start check; RE2 only knows ASCII
// word boundaries.
func CompileUserPattern(pattern string, caseInsensitive bool) (*regexp.Regexp, bool, error) {
	pattern = unicodeEscapeRE.ReplaceAllStringFunc(pattern, func(m string) string {
		code, err := strconv.ParseUint(m[2:], 16, 32)
		if err != nil {
			return m
		}
		return `\x{` + strconv.FormatUint(code, 16) + `}`
	})
	wordStart := false
	if strings.HasPrefix(pattern, `\b`) {
		pattern = pattern[2:]
		wordStart = true
	}
	if caseInsensitive {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, false, err
	}
	return re, wordStart, nil
}

// FindAllAtWordStart returns the matches of re in text, keeping only those
// starting on a word boundary when wordStart is set.
func FindAllAtWordStart(re *regexp.Regexp, text string, wordStart bool) [][]int {
	matches := re.FindAllStringIndex(text, -1)
	if !wordStart {
		return matches
	}
	kept := matches[:0]
	for _, m := range matches {
		if IsWordBoundary(text, m[0]) {
			kept = append(kept, m)
		}
	}
	return kept
}
