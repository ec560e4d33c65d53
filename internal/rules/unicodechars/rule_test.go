package unicodechars

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gost-tex/lint-gost-tex/internal/rules/ruletest"
)

func TestRule_Check(t *testing.T) {
	text := "Текст — «кавычки» №1 ё\tТаб\r\nπ ≈ 3 ✓  x"
	rule := New([]string{"№", "«»"})

	issues, err := rule.Check(context.Background(), ruletest.Context(text))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"UNIC001:1:7",
		"UNIC001:2:1", "UNIC001:2:3", "UNIC001:2:7", "UNIC001:2:9",
	}, ruletest.Locations(issues))
	assert.Equal(t, "non-keyboard character U+2014 (EM DASH)", issues[0].Message)
	assert.Equal(t, "non-keyboard character U+00A0 (NO-BREAK SPACE)", issues[4].Message)
}

func TestRule_ControlCharacters(t *testing.T) {
	issues, err := New(nil).Check(context.Background(), ruletest.Context("a\x01b\x7f"))
	require.NoError(t, err)

	assert.Equal(t, []string{"UNIC001:1:2", "UNIC001:1:4"}, ruletest.Locations(issues))
	assert.Equal(t, "non-keyboard character U+0001 (UNKNOWN)", issues[0].Message)
}

func TestCharName(t *testing.T) {
	assert.Equal(t, "GREEK SMALL LETTER PI", CharName('π'))
	assert.Equal(t, "UNKNOWN", CharName('\x00'))
	assert.Equal(t, "UNKNOWN", CharName('\uE000'))
}

func TestCharName_DerivedNames(t *testing.T) {
	tests := []struct {
		char rune
		want string
	}{
		{'中', "CJK UNIFIED IDEOGRAPH-4E2D"},
		{'\u3400', "CJK UNIFIED IDEOGRAPH-3400"},
		{'\U00020000', "CJK UNIFIED IDEOGRAPH-20000"},
		{'가', "HANGUL SYLLABLE GA"},
		{'한', "HANGUL SYLLABLE HAN"},
		{'\uD7A3', "HANGUL SYLLABLE HIH"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, CharName(tt.char))
		})
	}
}
