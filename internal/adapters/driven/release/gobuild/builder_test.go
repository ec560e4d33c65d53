package gobuild

import (
	"archive/tar"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
)

type call struct {
	dir  string
	env  []string
	name string
	args []string
}

// fakeRunner records calls and writes a stub binary to the -o path.
type fakeRunner struct {
	calls []call
	err   error
}

func (r *fakeRunner) Run(_ context.Context, dir string, env []string, name string, args ...string) error {
	r.calls = append(r.calls, call{dir: dir, env: env, name: name, args: args})
	if r.err != nil {
		return r.err
	}
	for i, arg := range args {
		if arg == "-o" && i+1 < len(args) {
			return os.WriteFile(args[i+1], []byte("binary for "+env[0]), 0o755)
		}
	}
	return errors.New("no -o flag")
}

func readArchive(t *testing.T, path string) (string, string, int64) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	zr, err := gzip.NewReader(f)
	require.NoError(t, err)
	tr := tar.NewReader(zr)
	header, err := tr.Next()
	require.NoError(t, err)
	content, err := io.ReadAll(tr)
	require.NoError(t, err)
	return header.Name, string(content), header.Mode
}

func TestBuilder_Build(t *testing.T) {
	dir := t.TempDir()
	dist := filepath.Join(dir, "dist")
	runner := &fakeRunner{}
	builder := NewBuilder(runner)

	artifacts, err := builder.Build(context.Background(), domain.BuildOptions{
		Dir:     dir,
		Package: "./cmd/lint-gost-tex",
		Binary:  "lint-gost-tex",
		Version: "1.2.0",
		Targets: []domain.Target{{OS: "linux", Arch: "amd64"}, {OS: "windows", Arch: "amd64"}},
	}, dist)
	require.NoError(t, err)
	require.Len(t, artifacts, 2)

	assert.Equal(t, "lint-gost-tex_1.2.0_linux_amd64.tar.gz", artifacts[0].Name)
	assert.Equal(t, filepath.Join(dist, artifacts[0].Name), artifacts[0].Path)
	assert.Equal(t, domain.Target{OS: "linux", Arch: "amd64"}, artifacts[0].Target)
	assert.Positive(t, artifacts[0].Size)

	require.Len(t, runner.calls, 2)
	first := runner.calls[0]
	assert.Equal(t, "go", first.name)
	assert.Equal(t, dir, first.dir)
	assert.Equal(t, []string{"GOOS=linux", "GOARCH=amd64", "CGO_ENABLED=0"}, first.env)
	assert.Equal(t, []string{
		"build", "-trimpath",
		"-ldflags", "-s -w -X main.version=1.2.0",
		"-o", filepath.Join(dir, "build", "linux_amd64", "lint-gost-tex"),
		"./cmd/lint-gost-tex",
	}, first.args)

	name, content, mode := readArchive(t, artifacts[1].Path)
	assert.Equal(t, "lint-gost-tex.exe", name)
	assert.Equal(t, "binary for GOOS=windows", content)
	assert.Equal(t, int64(0o755), mode)
}

func TestBuilder_BuildDefaults(t *testing.T) {
	dir := t.TempDir()
	runner := &fakeRunner{}

	artifacts, err := NewBuilder(runner).Build(context.Background(), domain.BuildOptions{
		Dir:     dir,
		Package: ".",
		Binary:  "tool",
	}, filepath.Join(dir, "dist"))
	require.NoError(t, err)
	assert.Len(t, artifacts, len(domain.DefaultTargets()))
	assert.Equal(t, "tool_dev_linux_amd64.tar.gz", artifacts[0].Name)
}

func TestBuilder_BuildToolFailure(t *testing.T) {
	dir := t.TempDir()
	toolErr := &domain.ToolError{Tool: "go", Code: 2, Err: errors.New("exit status 2")}
	runner := &fakeRunner{err: toolErr}

	artifacts, err := NewBuilder(runner).Build(context.Background(), domain.BuildOptions{
		Dir:     dir,
		Package: ".",
		Binary:  "tool",
	}, filepath.Join(dir, "dist"))
	require.Error(t, err)
	assert.Empty(t, artifacts)

	var got *domain.ToolError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, 2, got.Code)
	assert.Len(t, runner.calls, 1)
}

func TestBuilder_BuildRequiresBinary(t *testing.T) {
	_, err := NewBuilder(&fakeRunner{}).Build(context.Background(), domain.BuildOptions{Package: "."}, t.TempDir())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExecRunner_ExitStatus(t *testing.T) {
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("no /bin/sh")
	}

	err := ExecRunner{}.Run(context.Background(), t.TempDir(), nil, "/bin/sh", "-c", "exit 3")
	var toolErr *domain.ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, 3, toolErr.Code)
	assert.Equal(t, "/bin/sh", toolErr.Tool)

	assert.NoError(t, ExecRunner{}.Run(context.Background(), t.TempDir(), nil, "/bin/sh", "-c", "exit 0"))
}
