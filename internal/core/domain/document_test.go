package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTexFile_LineCol(t *testing.T) {
	file := NewTexFile("a.tex", "ab\nёжик\n\nx")

	tests := []struct {
		name     string
		offset   int
		wantLine int
		wantCol  int
	}{
		{name: "first char", offset: 0, wantLine: 1, wantCol: 1},
		{name: "newline belongs to line", offset: 2, wantLine: 1, wantCol: 3},
		{name: "start of second line", offset: 3, wantLine: 2, wantCol: 1},
		{name: "columns count characters", offset: 3 + len("ёж"), wantLine: 2, wantCol: 3},
		{name: "empty line", offset: 3 + len("ёжик") + 1, wantLine: 3, wantCol: 1},
		{name: "negative offset", offset: -5, wantLine: 1, wantCol: 1},
		{name: "past end clamps", offset: 1000, wantLine: 4, wantCol: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, col := file.LineCol(tt.offset)
			assert.Equal(t, tt.wantLine, line)
			assert.Equal(t, tt.wantCol, col)
		})
	}
}

func TestTexFile_LineText(t *testing.T) {
	file := NewTexFile("a.tex", "first\nsecond\n")

	assert.Equal(t, "first", file.LineText(1))
	assert.Equal(t, "second", file.LineText(2))
	assert.Equal(t, "", file.LineText(3))
	assert.Equal(t, "", file.LineText(0))
	assert.Equal(t, "", file.LineText(10))
	assert.Equal(t, 3, file.LineCount())
}

func TestTexFile_IssueAt(t *testing.T) {
	file := NewTexFile("/doc/a.tex", "line one\nsee \\ref{x}\n")

	issue := file.IssueAt(len("line one\nsee "), "REF001", "missing '~' before reference")

	assert.Equal(t, Issue{
		RuleID:  "REF001",
		Message: "missing '~' before reference",
		Path:    "/doc/a.tex",
		Line:    2,
		Col:     5,
		Snippet: `see \ref{x}`,
	}, issue)
}

func TestDocument_PathIndex(t *testing.T) {
	doc := &Document{Files: []*TexFile{
		NewTexFile("main.tex", ""),
		NewTexFile("chapter.tex", ""),
	}}

	assert.Equal(t, map[string]int{"main.tex": 0, "chapter.tex": 1}, doc.PathIndex())
	assert.Equal(t, []string{"main.tex", "chapter.tex"}, doc.Paths())
}

func TestLintContext_ConfigIssue(t *testing.T) {
	ctx := &LintContext{Source: ConfigSource{Path: "/w/lint-gost-tex.toml", FirstLine: "[document]"}}

	issue := ctx.ConfigIssue("SPELL000", "missing Russian dictionary")

	assert.Equal(t, "/w/lint-gost-tex.toml", issue.Path)
	assert.Equal(t, 1, issue.Line)
	assert.Equal(t, 1, issue.Col)
	assert.Equal(t, "[document]", issue.Snippet)
}
