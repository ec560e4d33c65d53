package tex

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsEscaped reports whether the byte at index is preceded by an odd number
// of backslashes.
func IsEscaped(text string, index int) bool {
	backslashes := 0
	for pos := index - 1; pos >= 0 && text[pos] == '\\'; pos-- {
		backslashes++
	}
	return backslashes%2 == 1
}

// StripComments blanks every unescaped % and the rest of its line.
func StripComments(text string) string {
	chars := []byte(text)
	for index := 0; index < len(chars); {
		if chars[index] == '%' && !IsEscaped(text, index) {
			for index < len(chars) && chars[index] != '\n' {
				chars[index] = ' '
				index++
			}
			continue
		}
		index++
	}
	return string(chars)
}

// MaskMath blanks inline and display math: $...$, $$...$$, \(...\) and \[...\].
// An unterminated opener stops masking at that point.
func MaskMath(text string) string {
	chars := []byte(text)
	index := 0
	for index < len(text) {
		if text[index] == '$' && !IsEscaped(text, index) {
			if index+1 < len(text) && text[index+1] == '$' {
				end := findUnescaped(text, "$$", index+2)
				if end < 0 {
					break
				}
				maskRange(chars, index, end+2)
				index = end + 2
				continue
			}
			end := findUnescaped(text, "$", index+1)
			if end < 0 {
				break
			}
			maskRange(chars, index, end+1)
			index = end + 1
			continue
		}
		if strings.HasPrefix(text[index:], `\(`) {
			end := indexFrom(text, `\)`, index+2)
			if end < 0 {
				break
			}
			maskRange(chars, index, end+2)
			index = end + 2
			continue
		}
		if strings.HasPrefix(text[index:], `\[`) {
			end := indexFrom(text, `\]`, index+2)
			if end < 0 {
				break
			}
			maskRange(chars, index, end+2)
			index = end + 2
			continue
		}
		index++
	}
	return string(chars)
}

// MaskCommentsAndMath strips comments first and then masks math.
func MaskCommentsAndMath(text string) string {
	return MaskMath(StripComments(text))
}

// MaskCommandArguments blanks the first braced argument of every listed
// command. Commands in twoArg also have their second argument blanked.
func MaskCommandArguments(text string, commands []string, twoArg map[string]bool) string {
	if len(commands) == 0 {
		return text
	}
	chars := []byte(text)
	for _, command := range commands {
		if command == "" {
			continue
		}
		for _, span := range CommandSpans(text, command) {
			if span.HasArgument {
				maskRange(chars, span.ArgumentStart, span.ArgumentEnd)
			}
			if twoArg[command] && span.HasArgument {
				index := SkipSpace(text, span.ArgumentEnd+1)
				if index < len(text) && text[index] == '{' {
					if end := MatchingBrace(text, index); end >= 0 {
						maskRange(chars, index+1, end)
					}
				}
			}
		}
	}
	return string(chars)
}

// SkipSpace returns the first index at or after index that is not whitespace.
func SkipSpace(text string, index int) int {
	for index < len(text) {
		r, size := utf8.DecodeRuneInString(text[index:])
		if !unicode.IsSpace(r) {
			break
		}
		index += size
	}
	return index
}

// LastNonSpace returns the start of the last non-space rune in
// text[start:end], or start-1 when the range is blank.
func LastNonSpace(text string, start, end int) int {
	index := end
	for index > start {
		r, size := utf8.DecodeLastRuneInString(text[start:index])
		if !unicode.IsSpace(r) {
			return index - size
		}
		index -= size
	}
	return start - 1
}

// PrevNonSpace returns the start of the last non-space rune before index,
// or -1 when there is none.
func PrevNonSpace(text string, index int) int {
	for index > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:index])
		if !unicode.IsSpace(r) {
			return index - size
		}
		index -= size
	}
	return -1
}

func maskRange(chars []byte, start, end int) {
	if end > len(chars) {
		end = len(chars)
	}
	for index := start; index < end; index++ {
		if chars[index] != '\n' {
			chars[index] = ' '
		}
	}
}

func findUnescaped(text, needle string, start int) int {
	index := start
	for {
		found := indexFrom(text, needle, index)
		if found < 0 {
			return -1
		}
		if !IsEscaped(text, found) {
			return found
		}
		index = found + len(needle)
	}
}

func indexFrom(text, needle string, start int) int {
	if start > len(text) {
		return -1
	}
	found := strings.Index(text[start:], needle)
	if found < 0 {
		return -1
	}
	return start + found
}
