// Package spelling checks Russian and English words against dictionaries.
//
// Words are taken from prose only: comments, math, ignored environments
// and the arguments of skipped commands are not checked. Hyphenated words
// are checked part by part.
package spelling

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
	"github.com/gost-tex/lint-gost-tex/internal/core/ports/driven"
	"github.com/gost-tex/lint-gost-tex/internal/tex"
)

const (
	DictionaryRuleID = "SPELL000"
	UnknownRuleID    = "SPELL001"
	BannedRuleID     = "SPELL002"
	YoRuleID         = "SPELL003"
)

// maxYoVariants bounds the number of е/ё substitutions tried per word.
const maxYoVariants = 128

var (
	pixelForms = set(
		"пиксель", "пикселя", "пикселю", "пикселем", "пикселе",
		"пиксели", "пикселей", "пикселям", "пикселями", "пикселях",
	)
	pixelAllowedForms = set(
		"пиксел", "пиксела", "пикселу", "пикселом", "пикселе",
		"пикселы", "пикселов", "пикселам", "пикселами", "пикселах",
	)
)

var _ driven.Rule = (*Rule)(nil)

// Rule reports unknown words, banned word forms and words that need ё.
type Rule struct {
	cfg     domain.SpellcheckConfig
	words   driven.WordlistLoader
	scanner *tex.WordScanner
	fold    cases.Caser
}

// New creates the rule. Dictionaries are read through words on every
// check so edits to them are picked up by long running sessions.
func New(cfg domain.SpellcheckConfig, words driven.WordlistLoader) *Rule {
	return &Rule{
		cfg:   cfg,
		words: words,
		scanner: &tex.WordScanner{
			IgnoreEnvs:        set(cfg.IgnoreEnvs...),
			SkipCommands:      set(cfg.SkipCommands...),
			KeepCommands:      set(cfg.KeepCommands...),
			SkipTwoArgs:       set("href", "hyperref"),
			SecondArgCommands: set("captionof"),
		},
		fold: cases.Fold(),
	}
}

func (r *Rule) Name() string { return "spelling" }
func (r *Rule) IDs() []string {
	return []string{DictionaryRuleID, UnknownRuleID, BannedRuleID, YoRuleID}
}
func (r *Rule) Description() string { return "Words must be spelled correctly." }

type dictionaries struct {
	custom map[string]bool
	ru     map[string]bool
	en     map[string]bool
	// yo is the union of ru and custom, used for ё lookups.
	yo map[string]bool
}

func (r *Rule) Check(ctx context.Context, lc *domain.LintContext) ([]domain.Issue, error) {
	dicts, err := r.loadDictionaries(ctx)
	if err != nil {
		return nil, err
	}

	var issues []domain.Issue
	if len(dicts.ru) == 0 {
		issues = append(issues, lc.ConfigIssue(DictionaryRuleID, "missing Russian dictionary"))
	}
	if len(dicts.en) == 0 {
		issues = append(issues, lc.ConfigIssue(DictionaryRuleID, "missing English dictionary"))
	}

	for _, file := range lc.Document.Files {
		for _, word := range r.scanner.Words(file.Text) {
			for _, part := range splitHyphenated(word) {
				if issue, ok := r.checkWord(part, dicts); ok {
					issues = append(issues, file.IssueAt(part.Offset, issue.id, issue.message))
				}
			}
		}
	}
	return issues, nil
}

func (r *Rule) loadDictionaries(ctx context.Context) (*dictionaries, error) {
	var customPaths []string
	if r.cfg.CustomDict != "" {
		customPaths = []string{r.cfg.CustomDict}
	}
	enPaths := append(append([]string{}, r.cfg.ExtraEnDicts...), r.cfg.SystemEnDicts...)

	d := &dictionaries{}
	for _, load := range []struct {
		paths []string
		dst   *map[string]bool
	}{
		{customPaths, &d.custom},
		{r.cfg.ExtraRuDicts, &d.ru},
		{enPaths, &d.en},
	} {
		entries, err := r.words.Load(ctx, load.paths)
		if err != nil {
			return nil, fmt.Errorf("load dictionaries: %w", err)
		}
		*load.dst = r.normalize(entries)
	}
	d.yo = make(map[string]bool, len(d.ru)+len(d.custom))
	for word := range d.ru {
		d.yo[word] = true
	}
	for word := range d.custom {
		d.yo[word] = true
	}
	return d, nil
}

// normalize case-folds entries and keeps only well-formed words.
func (r *Rule) normalize(entries []string) map[string]bool {
	words := make(map[string]bool, len(entries))
	for _, entry := range entries {
		folded := r.fold.String(entry)
		if loc := tex.WordRE.FindStringIndex(folded); loc != nil && loc[0] == 0 && loc[1] == len(folded) {
			words[folded] = true
		}
	}
	return words
}

type finding struct {
	id      string
	message string
}

func (r *Rule) checkWord(word tex.Word, d *dictionaries) (finding, bool) {
	text := word.Text
	if utf8.RuneCountInString(text) < r.cfg.MinWordLength {
		return finding{}, false
	}
	if r.cfg.IgnoreUppercaseAcronyms && isUpper(text) && utf8.RuneCountInString(text) <= 5 {
		return finding{}, false
	}
	if strings.IndexFunc(text, unicode.IsDigit) >= 0 || isMixedScript(text) {
		return finding{}, false
	}

	lowered := r.fold.String(text)
	if pixelForms[lowered] {
		return finding{BannedRuleID, "use 'пиксел' without soft sign"}, true
	}
	if pixelAllowedForms[lowered] {
		return finding{}, false
	}

	switch {
	case isCyrillic(text):
		if len(d.ru) == 0 {
			return finding{}, false
		}
		if d.custom[lowered] || d.ru[lowered] {
			if requiresYo(lowered, d.yo) {
				return finding{YoRuleID, "use 'ё' instead of 'е'"}, true
			}
			return finding{}, false
		}
		return finding{UnknownRuleID, fmt.Sprintf("unknown word '%s'", text)}, true
	case isLatin(text):
		if len(d.en) == 0 || d.custom[lowered] || d.en[lowered] {
			return finding{}, false
		}
		return finding{UnknownRuleID, fmt.Sprintf("unknown word '%s'", text)}, true
	}
	return finding{}, false
}

// splitHyphenated splits a word on hyphens, keeping each part's offset.
func splitHyphenated(word tex.Word) []tex.Word {
	if !strings.Contains(word.Text, "-") {
		return []tex.Word{word}
	}
	var parts []tex.Word
	offset := word.Offset
	for _, part := range strings.Split(word.Text, "-") {
		if part != "" {
			parts = append(parts, tex.Word{Text: part, Offset: offset})
		}
		offset += len(part) + 1
	}
	return parts
}

// requiresYo reports whether replacing some е with ё yields a dictionary
// word. Words already containing ё never require it.
func requiresYo(word string, dictionary map[string]bool) bool {
	if !strings.ContainsRune(word, 'е') || strings.ContainsRune(word, 'ё') {
		return false
	}
	chars := []rune(word)
	var positions []int
	for i, char := range chars {
		if char == 'е' {
			positions = append(positions, i)
		}
	}

	found := false
	checked := 0
	var visit func(pos int, replaced bool)
	visit = func(pos int, replaced bool) {
		if found || checked >= maxYoVariants {
			return
		}
		if pos == len(positions) {
			if replaced {
				checked++
				found = dictionary[string(chars)]
			}
			return
		}
		visit(pos+1, replaced)
		chars[positions[pos]] = 'ё'
		visit(pos+1, true)
		chars[positions[pos]] = 'е'
	}
	visit(0, false)
	return found
}

func isUpper(word string) bool {
	cased := false
	for _, char := range word {
		if unicode.IsLower(char) {
			return false
		}
		if unicode.IsUpper(char) {
			cased = true
		}
	}
	return cased
}

func isCyrillicLetter(char rune) bool {
	lower := unicode.ToLower(char)
	return (lower >= 'а' && lower <= 'я') || lower == 'ё'
}

func isLatinLetter(char rune) bool {
	lower := unicode.ToLower(char)
	return lower >= 'a' && lower <= 'z'
}

func isCyrillic(word string) bool {
	for _, char := range word {
		if char != '-' && !isCyrillicLetter(char) {
			return false
		}
	}
	return true
}

func isLatin(word string) bool {
	for _, char := range word {
		if char != '-' && !isLatinLetter(char) {
			return false
		}
	}
	return true
}

func isMixedScript(word string) bool {
	return strings.IndexFunc(word, isCyrillicLetter) >= 0 && strings.IndexFunc(word, isLatinLetter) >= 0
}

func set(values ...string) map[string]bool {
	m := make(map[string]bool, len(values))
	for _, value := range values {
		m[value] = true
	}
	return m
}
