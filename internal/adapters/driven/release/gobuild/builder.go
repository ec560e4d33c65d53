// Package gobuild cross-compiles the linter with the Go toolchain and packs
// each binary into a gzip-compressed tarball.
package gobuild

import (
	"archive/tar"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
	"github.com/gost-tex/lint-gost-tex/internal/core/ports/driven"
	"github.com/gost-tex/lint-gost-tex/internal/logger"
)

// DefaultVersion is stamped when no version is requested.
const DefaultVersion = "dev"

// Runner executes an external command.
type Runner interface {
	Run(ctx context.Context, dir string, env []string, name string, args ...string) error
}

// ExecRunner runs commands with os/exec, streaming their output.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes name with args in dir. A non-zero exit becomes a
// *domain.ToolError carrying the exit status.
func (r ExecRunner) Run(ctx context.Context, dir string, env []string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), env...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &domain.ToolError{Tool: name, Code: exitErr.ExitCode(), Err: err}
	}
	if err != nil {
		return fmt.Errorf("running %s: %w", name, err)
	}
	return nil
}

// Ensure Builder implements the interface.
var _ driven.ArtifactBuilder = (*Builder)(nil)

// Builder produces one .tar.gz per target.
type Builder struct {
	runner Runner
	goBin  string
}

// NewBuilder creates a builder that invokes the go command through runner.
func NewBuilder(runner Runner) *Builder {
	return &Builder{runner: runner, goBin: "go"}
}

// Build compiles opts.Package for every target into <Dir>/build and writes
// the archives to distDir.
func (b *Builder) Build(ctx context.Context, opts domain.BuildOptions, distDir string) ([]domain.Artifact, error) {
	if opts.Binary == "" || opts.Package == "" {
		return nil, fmt.Errorf("%w: binary and package are required", domain.ErrInvalidInput)
	}
	version := opts.Version
	if version == "" {
		version = DefaultVersion
	}
	targets := opts.Targets
	if len(targets) == 0 {
		targets = domain.DefaultTargets()
	}

	if err := os.MkdirAll(distDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating dist directory: %w", err)
	}

	artifacts := make([]domain.Artifact, 0, len(targets))
	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return artifacts, err
		}

		binPath, err := b.compile(ctx, opts, version, target)
		if err != nil {
			return artifacts, err
		}

		name := fmt.Sprintf("%s_%s_%s_%s.tar.gz", opts.Binary, version, target.OS, target.Arch)
		archivePath := filepath.Join(distDir, name)
		size, err := writeArchive(archivePath, binPath)
		if err != nil {
			return artifacts, fmt.Errorf("packing %s: %w", target, err)
		}
		logger.Info("built %s (%d bytes)", name, size)

		artifacts = append(artifacts, domain.Artifact{
			Name:   name,
			Path:   archivePath,
			Size:   size,
			Target: target,
		})
	}
	return artifacts, nil
}

func (b *Builder) compile(ctx context.Context, opts domain.BuildOptions, version string, target domain.Target) (string, error) {
	binary := opts.Binary
	if target.OS == "windows" {
		binary += ".exe"
	}
	outDir := filepath.Join(opts.Dir, domain.DefaultBuildDir, target.OS+"_"+target.Arch)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("creating build directory: %w", err)
	}
	out := filepath.Join(outDir, binary)

	env := []string{"GOOS=" + target.OS, "GOARCH=" + target.Arch, "CGO_ENABLED=0"}
	args := []string{
		"build", "-trimpath",
		"-ldflags", "-s -w -X main.version=" + version,
		"-o", out,
		opts.Package,
	}
	logger.Debug("%s %s [%s]", b.goBin, strings.Join(args, " "), strings.Join(env, " "))
	if err := b.runner.Run(ctx, opts.Dir, env, b.goBin, args...); err != nil {
		return "", err
	}
	return out, nil
}

// writeArchive packs the file at binPath into a gzip-compressed tarball
// and returns the archive size.
func writeArchive(archivePath, binPath string) (int64, error) {
	info, err := os.Stat(binPath)
	if err != nil {
		return 0, err
	}
	in, err := os.Open(binPath)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.Create(archivePath)
	if err != nil {
		return 0, err
	}

	zw := gzip.NewWriter(out)
	tw := tar.NewWriter(zw)
	header := &tar.Header{
		Name:    filepath.Base(binPath),
		Mode:    0o755,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}
	err = tw.WriteHeader(header)
	if err == nil {
		_, err = io.Copy(tw, in)
	}
	if err == nil {
		err = tw.Close()
	}
	if err == nil {
		err = zw.Close()
	}
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(archivePath)
		return 0, err
	}

	stat, err := os.Stat(archivePath)
	if err != nil {
		return 0, err
	}
	return stat.Size(), nil
}
