// Package unicodechars reports characters that cannot be typed on a
// Russian/English keyboard layout.
package unicodechars

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/runenames"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
	"github.com/gost-tex/lint-gost-tex/internal/core/ports/driven"
)

const RuleID = "UNIC001"

var _ driven.Rule = (*Rule)(nil)

// Rule allows printable ASCII, Russian letters and a configurable set of
// extra characters.
type Rule struct {
	extra map[rune]bool
}

// New creates the rule. Every character of every allowedExtra entry is
// allowed.
func New(allowedExtra []string) *Rule {
	extra := make(map[rune]bool)
	for _, value := range allowedExtra {
		for _, r := range value {
			extra[r] = true
		}
	}
	return &Rule{extra: extra}
}

func (r *Rule) Name() string        { return "unicode" }
func (r *Rule) IDs() []string       { return []string{RuleID} }
func (r *Rule) Description() string { return "Non-keyboard characters are not allowed." }

func (r *Rule) Check(_ context.Context, lc *domain.LintContext) ([]domain.Issue, error) {
	var issues []domain.Issue
	for _, file := range lc.Document.Files {
		for offset, char := range file.Text {
			if r.allowed(char) {
				continue
			}
			message := fmt.Sprintf("non-keyboard character U+%04X (%s)", char, CharName(char))
			issues = append(issues, file.IssueAt(offset, RuleID, message))
		}
	}
	return issues, nil
}

func (r *Rule) allowed(char rune) bool {
	switch {
	case char == '\n' || char == '\r' || char == '\t':
		return true
	case char < 0x80:
		return char >= 32 && char <= 126
	case r.extra[char]:
		return true
	}
	return isRussianLetter(char)
}

func isRussianLetter(char rune) bool {
	return char == 'Ё' || char == 'ё' || (char >= 'А' && char <= 'я')
}

// CharName returns the Unicode name of char, or UNKNOWN for characters
// without a proper name. Names of ideographs and Hangul syllables are
// derived from the code point, as the character database defines them.
func CharName(char rune) string {
	if char >= hangulBase && char < hangulBase+hangulCount {
		return hangulName(char)
	}
	name := runenames.Name(char)
	switch {
	case strings.HasPrefix(name, "<CJK Ideograph"):
		return fmt.Sprintf("CJK UNIFIED IDEOGRAPH-%04X", char)
	case strings.HasPrefix(name, "<Tangut Ideograph"):
		return fmt.Sprintf("TANGUT IDEOGRAPH-%04X", char)
	case name == "" || strings.HasPrefix(name, "<"):
		return "UNKNOWN"
	}
	return name
}

const (
	hangulBase   = 0xAC00
	hangulCount  = 11172
	hangulTCount = 28
	hangulNCount = 21 * hangulTCount
)

var (
	jamoLeading = []string{
		"G", "GG", "N", "D", "DD", "R", "M", "B", "BB", "S",
		"SS", "", "J", "JJ", "C", "K", "T", "P", "H",
	}
	jamoVowel = []string{
		"A", "AE", "YA", "YAE", "EO", "E", "YEO", "YE", "O", "WA", "WAE",
		"OE", "YO", "U", "WEO", "WE", "WI", "YU", "EU", "YI", "I",
	}
	jamoTrailing = []string{
		"", "G", "GG", "GS", "N", "NJ", "NH", "D", "L", "LG", "LM", "LB", "LS", "LT",
		"LP", "LH", "M", "B", "BS", "S", "SS", "NG", "J", "C", "K", "T", "P", "H",
	}
)

func hangulName(char rune) string {
	index := int(char - hangulBase)
	return "HANGUL SYLLABLE " +
		jamoLeading[index/hangulNCount] +
		jamoVowel[(index%hangulNCount)/hangulTCount] +
		jamoTrailing[index%hangulTCount]
}
