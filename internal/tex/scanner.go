package tex

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// WordRE matches a Latin or Cyrillic word, optionally hyphenated.
var WordRE = regexp.MustCompile(`[A-Za-zА-Яа-яЁё]+(?:-[A-Za-zА-Яа-яЁё]+)*`)

// Word is a word found by WordScanner with its offset in the scanned text.
type Word struct {
	Text   string
	Offset int
}

// WordScanner walks LaTeX source and yields the prose words in it. It
// skips comments, math, ignored environments and the arguments of skipped
// commands, and descends into the arguments of every other command.
type WordScanner struct {
	IgnoreEnvs map[string]bool
	// SkipCommands have their arguments skipped unless also listed in KeepCommands.
	SkipCommands map[string]bool
	KeepCommands map[string]bool
	// SkipTwoArgs are skipped commands whose first two arguments are skipped.
	SkipTwoArgs map[string]bool
	// SecondArgCommands only have their second argument scanned.
	SecondArgCommands map[string]bool
}

// Words returns every word in text in order.
func (s *WordScanner) Words(text string) []Word {
	var words []Word
	s.scan(text, 0, len(text), &words)
	return words
}

// FirstWord returns the first word in text, if any.
func (s *WordScanner) FirstWord(text string) (Word, bool) {
	words := s.Words(text)
	if len(words) == 0 {
		return Word{}, false
	}
	return words[0], true
}

func (s *WordScanner) scan(text string, start, end int, out *[]Word) {
	index := start
	for index < end {
		char := text[index]
		if char == '%' && !IsEscaped(text, index) {
			index = skipComment(text, index)
			continue
		}
		if isMathStart(text, index) {
			index = skipMath(text, index)
			continue
		}
		if strings.HasPrefix(text[index:], `\begin`) {
			if next := s.handleBegin(text, index); next != index {
				index = next
				continue
			}
		}
		if char == '\\' {
			cmd, next := parseCommand(text, index)
			index = next
			if cmd == "" {
				continue
			}
			if cmd == "begin" || cmd == "end" {
				index = skipCommandArgs(text, index, cmd, s.SkipTwoArgs)
				continue
			}
			if s.SkipCommands[cmd] && !s.KeepCommands[cmd] {
				index = skipCommandArgs(text, index, cmd, s.SkipTwoArgs)
				continue
			}
			if s.SecondArgCommands[cmd] {
				index = skipOptional(text, index)
				index = skipFirstBraced(text, index)
				if index < end && text[index] == '{' {
					argEnd := MatchingBrace(text, index)
					if argEnd < 0 {
						index++
						continue
					}
					s.scan(text, index+1, argEnd, out)
					index = argEnd + 1
				}
				continue
			}
			index = skipOptional(text, index)
			if index < end && text[index] == '{' {
				argEnd := MatchingBrace(text, index)
				if argEnd < 0 {
					index++
					continue
				}
				s.scan(text, index+1, argEnd, out)
				index = argEnd + 1
			}
			continue
		}

		nextSpecial := nextSpecialIndex(text, index, end)
		if nextSpecial == index {
			// escaped % or $ reached without its backslash
			index++
			continue
		}
		segment := text[index:nextSpecial]
		for _, m := range WordRE.FindAllStringIndex(segment, -1) {
			*out = append(*out, Word{Text: segment[m[0]:m[1]], Offset: index + m[0]})
		}
		index = nextSpecial
	}
}

func (s *WordScanner) handleBegin(text string, index int) int {
	cmd, next := parseCommand(text, index)
	if cmd != "begin" {
		return index
	}
	next = skipOptional(text, next)
	if next >= len(text) || text[next] != '{' {
		return next
	}
	envEnd := MatchingBrace(text, next)
	if envEnd < 0 {
		return next + 1
	}
	envName := strings.TrimSpace(text[next+1 : envEnd])
	if s.IgnoreEnvs[envName] {
		return skipEnvironment(text, envName, envEnd+1)
	}
	return envEnd + 1
}

// parseCommand reads the command name after the backslash at index. Names
// are a run of letters or a single non-letter character.
func parseCommand(text string, index int) (string, int) {
	if index >= len(text) || text[index] != '\\' {
		return "", index
	}
	index++
	if index >= len(text) {
		return "", index
	}
	r, size := utf8.DecodeRuneInString(text[index:])
	if !unicode.IsLetter(r) {
		return text[index : index+size], index + size
	}
	start := index
	for index < len(text) {
		r, size = utf8.DecodeRuneInString(text[index:])
		if !unicode.IsLetter(r) {
			break
		}
		index += size
	}
	return text[start:index], index
}

func skipOptional(text string, index int) int {
	index = SkipSpace(text, index)
	if index < len(text) && text[index] == '[' {
		end := MatchingBracket(text, index)
		if end < 0 {
			return index
		}
		return end + 1
	}
	return index
}

func skipCommandArgs(text string, index int, command string, skipTwoArgs map[string]bool) int {
	index = skipOptional(text, index)
	args := 1
	if skipTwoArgs[command] {
		args = 2
	}
	for i := 0; i < args; i++ {
		index = SkipSpace(text, index)
		if index >= len(text) || text[index] != '{' {
			break
		}
		end := MatchingBrace(text, index)
		if end < 0 {
			return index + 1
		}
		index = end + 1
	}
	return index
}

func skipEnvironment(text, envName string, index int) int {
	re := regexp.MustCompile(`\\(begin|end)\s*\{` + regexp.QuoteMeta(envName) + `\}`)
	depth := 1
	for _, m := range re.FindAllStringSubmatchIndex(text[index:], -1) {
		if text[index+m[2]:index+m[3]] == "begin" {
			depth++
			continue
		}
		depth--
		if depth == 0 {
			return index + m[1]
		}
	}
	return len(text)
}

func skipComment(text string, index int) int {
	for index < len(text) && text[index] != '\n' {
		index++
	}
	return index
}

func isMathStart(text string, index int) bool {
	if text[index] == '$' && !IsEscaped(text, index) {
		return true
	}
	return strings.HasPrefix(text[index:], `\(`) || strings.HasPrefix(text[index:], `\[`)
}

func skipMath(text string, index int) int {
	if text[index] == '$' && !IsEscaped(text, index) {
		if index+1 < len(text) && text[index+1] == '$' {
			if end := findUnescaped(text, "$$", index+2); end >= 0 {
				return end + 2
			}
			return len(text)
		}
		if end := findUnescaped(text, "$", index+1); end >= 0 {
			return end + 1
		}
		return len(text)
	}
	if strings.HasPrefix(text[index:], `\(`) {
		if end := indexFrom(text, `\)`, index+2); end >= 0 {
			return end + 2
		}
		return len(text)
	}
	if strings.HasPrefix(text[index:], `\[`) {
		if end := indexFrom(text, `\]`, index+2); end >= 0 {
			return end + 2
		}
		return len(text)
	}
	return index + 1
}

func skipFirstBraced(text string, index int) int {
	index = SkipSpace(text, index)
	if index < len(text) && text[index] == '{' {
		end := MatchingBrace(text, index)
		if end < 0 {
			return index + 1
		}
		return end + 1
	}
	return index
}

func nextSpecialIndex(text string, index, end int) int {
	for index < end {
		switch text[index] {
		case '\\', '%', '$':
			return index
		}
		index++
	}
	return end
}
