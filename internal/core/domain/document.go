package domain

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// TexFile is a loaded LaTeX source file. Offsets into Text are byte
// offsets; columns reported to users are counted in characters.
type TexFile struct {
	// Path is the file location as resolved from the configuration.
	Path string

	// Text is the full UTF-8 content.
	Text string

	lineOffsets []int
}

// NewTexFile creates a TexFile and indexes its line starts.
func NewTexFile(path, text string) *TexFile {
	offsets := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return &TexFile{Path: path, Text: text, lineOffsets: offsets}
}

// LineCol converts a byte offset to a 1-based line and column.
// Negative offsets map to (1, 1).
func (f *TexFile) LineCol(offset int) (int, int) {
	if offset < 0 {
		return 1, 1
	}
	if offset > len(f.Text) {
		offset = len(f.Text)
	}
	// index of the last line start <= offset
	lineIndex := sort.Search(len(f.lineOffsets), func(i int) bool {
		return f.lineOffsets[i] > offset
	}) - 1
	if lineIndex < 0 {
		lineIndex = 0
	}
	start := f.lineOffsets[lineIndex]
	return lineIndex + 1, utf8.RuneCountInString(f.Text[start:offset]) + 1
}

// LineText returns the text of a 1-based line without its newline.
func (f *TexFile) LineText(line int) string {
	if line < 1 || line > len(f.lineOffsets) {
		return ""
	}
	start := f.lineOffsets[line-1]
	if line < len(f.lineOffsets) {
		return strings.TrimRight(f.Text[start:f.lineOffsets[line]], "\n")
	}
	return strings.TrimRight(f.Text[start:], "\n")
}

// LineCount returns the number of lines in the file.
func (f *TexFile) LineCount() int {
	return len(f.lineOffsets)
}

// IssueAt builds an issue located at offset.
func (f *TexFile) IssueAt(offset int, ruleID, message string) Issue {
	line, col := f.LineCol(offset)
	return Issue{
		RuleID:  ruleID,
		Message: message,
		Path:    f.Path,
		Line:    line,
		Col:     col,
		Snippet: f.LineText(line),
	}
}

// Document is the root file followed by the files it includes, in order.
type Document struct {
	Files   []*TexFile
	BaseDir string
}

// PathIndex maps each file path to its position in the document.
func (d *Document) PathIndex() map[string]int {
	index := make(map[string]int, len(d.Files))
	for i, file := range d.Files {
		index[file.Path] = i
	}
	return index
}

// Paths returns the file paths in document order.
func (d *Document) Paths() []string {
	paths := make([]string, 0, len(d.Files))
	for _, file := range d.Files {
		paths = append(paths, file.Path)
	}
	return paths
}

// ConfigSource describes where the configuration was read from.
type ConfigSource struct {
	// Path is the config file path, whether or not it exists.
	Path string

	// Exists reports whether the file was found and read.
	Exists bool

	// FirstLine is the first line of the file, used as issue snippet.
	FirstLine string
}

// LintContext is everything a rule may inspect.
type LintContext struct {
	Document *Document
	Config   *Config
	BaseDir  string
	Source   ConfigSource
}

// ConfigIssue builds an issue reported against the configuration file.
func (c *LintContext) ConfigIssue(ruleID, message string) Issue {
	return Issue{
		RuleID:  ruleID,
		Message: message,
		Path:    c.Source.Path,
		Line:    1,
		Col:     1,
		Snippet: c.Source.FirstLine,
	}
}
