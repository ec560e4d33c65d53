package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestDocumentLoader_Load(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.tex"), `\input{title}
\include{chapters/intro}
% \include{commented}
\input{chapters/intro.tex}
\include{missing}
\input{appendix.tex}
\include{ }
`)
	writeFile(t, filepath.Join(dir, "title.tex"), "Титул")
	writeFile(t, filepath.Join(dir, "chapters", "intro.tex"), "Введение")
	writeFile(t, filepath.Join(dir, "commented.tex"), "no")
	writeFile(t, filepath.Join(dir, "appendix.tex"), "Приложение")

	cfg := domain.DocumentConfig{Root: "main.tex", Exclude: []string{"title.tex"}}
	doc, err := NewDocumentLoader().Load(context.Background(), cfg, dir)

	require.NoError(t, err)
	assert.Equal(t, dir, doc.BaseDir)
	assert.Equal(t, []string{
		filepath.Join(dir, "main.tex"),
		filepath.Join(dir, "chapters", "intro.tex"),
		filepath.Join(dir, "appendix.tex"),
	}, doc.Paths())
	assert.Equal(t, "Введение", doc.Files[1].Text)
}

func TestDocumentLoader_IncludesRelativeToRoot(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "thesis", "main.tex"), `\input{part}`)
	writeFile(t, filepath.Join(dir, "thesis", "part.tex"), "часть")

	cfg := domain.DocumentConfig{Root: filepath.Join("thesis", "main.tex")}
	doc, err := NewDocumentLoader().Load(context.Background(), cfg, dir)

	require.NoError(t, err)
	require.Len(t, doc.Files, 2)
	assert.Equal(t, filepath.Join(dir, "thesis", "part.tex"), doc.Files[1].Path)
}

func TestDocumentLoader_RootNotFound(t *testing.T) {
	cfg := domain.DocumentConfig{Root: "main.tex"}

	_, err := NewDocumentLoader().Load(context.Background(), cfg, t.TempDir())

	assert.ErrorIs(t, err, domain.ErrRootNotFound)
}

func TestDocumentLoader_InvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.tex"), []byte{0xff, 0xfe, 'a'}, 0644))

	_, err := NewDocumentLoader().Load(context.Background(), domain.DocumentConfig{Root: "main.tex"}, dir)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDocumentLoader_ExcludedRootStillProvidesIncludes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.tex"), `\input{body}`)
	writeFile(t, filepath.Join(dir, "body.tex"), "текст")

	cfg := domain.DocumentConfig{Root: "main.tex", Exclude: []string{"main.tex"}}
	doc, err := NewDocumentLoader().Load(context.Background(), cfg, dir)

	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "body.tex")}, doc.Paths())
}

func TestWordlistLoader_Load(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "ru.txt")
	second := filepath.Join(dir, "en.txt")
	writeFile(t, first, "# comment\n  слово \n\nтекст\r\n")
	require.NoError(t, os.WriteFile(second, []byte("hello\n\xffworld\n"), 0644))

	entries, err := NewWordlistLoader().Load(context.Background(), []string{first, "", filepath.Join(dir, "missing.txt"), second})

	require.NoError(t, err)
	assert.Equal(t, []string{"слово", "текст", "hello", "world"}, entries)
}

func TestWordlistLoader_LongLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ru.txt")
	long := strings.Repeat("x", 2*1024*1024)
	writeFile(t, path, long+"\nслово\n")

	entries, err := NewWordlistLoader().Load(context.Background(), []string{path})

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "слово", entries[1])
}

func TestWordlistLoader_SkipsDirectories(t *testing.T) {
	entries, err := NewWordlistLoader().Load(context.Background(), []string{t.TempDir()})

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWordlistLoader_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewWordlistLoader().Load(ctx, []string{"a"})

	assert.ErrorIs(t, err, context.Canceled)
}
