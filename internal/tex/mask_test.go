package tex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEscaped(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		index int
		want  bool
	}{
		{name: "no backslash", text: "a%", index: 1, want: false},
		{name: "single backslash", text: `\%`, index: 1, want: true},
		{name: "double backslash", text: `\\%`, index: 2, want: false},
		{name: "triple backslash", text: `\\\%`, index: 3, want: true},
		{name: "start of text", text: "%", index: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEscaped(tt.text, tt.index))
		})
	}
}

func TestStripComments(t *testing.T) {
	t.Run("blanks comment keeping length", func(t *testing.T) {
		text := "text % comment\nnext"
		got := StripComments(text)

		assert.Equal(t, "text"+strings.Repeat(" ", 10)+"\nnext", got)
		assert.Len(t, got, len(text))
	})

	t.Run("keeps escaped percent", func(t *testing.T) {
		text := `50\% done`
		assert.Equal(t, text, StripComments(text))
	})

	t.Run("blanks multibyte comment bytes", func(t *testing.T) {
		text := "а % ёж\nб"
		got := StripComments(text)

		assert.Len(t, got, len(text))
		assert.Equal(t, "а", got[:len("а")])
		assert.Contains(t, got, "\nб")
		assert.NotContains(t, got, "ёж")
	})
}

func TestMaskMath(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "inline dollars", text: "a $x+y$ b", want: "a       b"},
		{name: "display dollars", text: "a $$x$$ b", want: "a       b"},
		{name: "parens", text: `a \(x\) b`, want: "a       b"},
		{name: "brackets keep newline", text: "a \\[x\ny\\] b", want: "a    \n    b"},
		{name: "escaped dollar", text: `cost \$5`, want: `cost \$5`},
		{name: "unterminated stops", text: "a $x b", want: "a $x b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskMath(tt.text))
		})
	}
}

func TestMaskCommentsAndMath(t *testing.T) {
	text := "see $x$ % and $y$\nok"
	got := MaskCommentsAndMath(text)

	assert.Equal(t, "see"+strings.Repeat(" ", 14)+"\nok", got)
}

func TestMaskCommandArguments(t *testing.T) {
	t.Run("masks first argument", func(t *testing.T) {
		got := MaskCommandArguments(`see \ref{fig:a}.`, []string{"ref"}, nil)
		assert.Equal(t, `see \ref{     }.`, got)
	})

	t.Run("masks second argument of two-arg commands", func(t *testing.T) {
		got := MaskCommandArguments(`\href{http://x}{text}`, []string{"href"}, map[string]bool{"href": true})
		assert.Equal(t, `\href{        }{    }`, got)
	})

	t.Run("empty command list returns input", func(t *testing.T) {
		assert.Equal(t, `\ref{a}`, MaskCommandArguments(`\ref{a}`, nil, nil))
	})
}

func TestLastNonSpace(t *testing.T) {
	text := "abc;  \n"
	assert.Equal(t, 3, LastNonSpace(text, 0, len(text)))
	assert.Equal(t, -1, LastNonSpace("   ", 0, 3))

	cyr := "ёж "
	idx := LastNonSpace(cyr, 0, len(cyr))
	assert.Equal(t, "ж", cyr[idx:idx+len("ж")])
}

func TestPrevNonSpace(t *testing.T) {
	assert.Equal(t, 0, PrevNonSpace(". ~", 2))
	assert.Equal(t, -1, PrevNonSpace("   ", 3))
}
