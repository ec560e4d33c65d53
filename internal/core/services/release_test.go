package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
)

func credentials() domain.Credentials {
	return domain.Credentials{Username: "alice", Password: "secret"}
}

func TestReleaseService_Build(t *testing.T) {
	dir := t.TempDir()
	builder := &fakeBuilder{}
	svc := NewReleaseService(builder, nil)

	artifacts, err := svc.Build(context.Background(), domain.BuildOptions{Dir: dir, Binary: "tool", Package: "."})
	require.NoError(t, err)
	assert.Len(t, artifacts, 1)
	assert.Equal(t, filepath.Join(dir, "dist"), builder.distDir)
	assert.Equal(t, dir, builder.opts.Dir)
}

func TestReleaseService_BuildToolFailure(t *testing.T) {
	toolErr := &domain.ToolError{Tool: "go", Code: 2, Err: errors.New("exit status 2")}
	svc := NewReleaseService(&fakeBuilder{err: toolErr}, nil)

	_, err := svc.Build(context.Background(), domain.BuildOptions{Dir: t.TempDir()})
	var got *domain.ToolError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, 2, got.Code)
}

func TestReleaseService_BuildWithoutBuilder(t *testing.T) {
	_, err := NewReleaseService(nil, nil).Build(context.Background(), domain.BuildOptions{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReleaseService_Publish(t *testing.T) {
	dir := t.TempDir()
	dist := filepath.Join(dir, "dist")
	require.NoError(t, os.MkdirAll(filepath.Join(dist, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dist, "b.tar.gz"), []byte("bb"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dist, "a.tar.gz"), []byte("a"), 0o644))

	publisher := &fakePublisher{}
	svc := NewReleaseService(nil, publisher)

	artifacts, err := svc.Publish(context.Background(), domain.PublishOptions{
		Dir:         dir,
		Repository:  "gost-tex/lint-gost-tex",
		Tag:         "v1.0.0",
		Credentials: credentials(),
	})
	require.NoError(t, err)
	require.Len(t, artifacts, 2)
	assert.Equal(t, "a.tar.gz", artifacts[0].Name)
	assert.Equal(t, int64(1), artifacts[0].Size)
	assert.Equal(t, filepath.Join(dist, "b.tar.gz"), artifacts[1].Path)
	assert.Equal(t, artifacts, publisher.artifacts)
	assert.Equal(t, "v1.0.0", publisher.opts.Tag)
}

func TestReleaseService_PublishErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing credentials", func(t *testing.T) {
		publisher := &fakePublisher{}
		svc := NewReleaseService(nil, publisher)
		_, err := svc.Publish(ctx, domain.PublishOptions{
			Dir:         t.TempDir(),
			Credentials: domain.Credentials{Username: "alice"},
		})
		assert.ErrorIs(t, err, domain.ErrMissingCredentials)
		assert.Nil(t, publisher.artifacts)
	})

	t.Run("no dist", func(t *testing.T) {
		svc := NewReleaseService(nil, &fakePublisher{})
		_, err := svc.Publish(ctx, domain.PublishOptions{Dir: t.TempDir(), Credentials: credentials()})
		assert.ErrorIs(t, err, domain.ErrNoArtifacts)
	})

	t.Run("empty dist", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "dist"), 0o755))
		svc := NewReleaseService(nil, &fakePublisher{})
		_, err := svc.Publish(ctx, domain.PublishOptions{Dir: dir, Credentials: credentials()})
		assert.ErrorIs(t, err, domain.ErrNoArtifacts)
	})

	t.Run("upload failure", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "dist"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "dist", "a.tar.gz"), []byte("a"), 0o644))
		boom := errors.New("boom")
		svc := NewReleaseService(nil, &fakePublisher{err: boom})
		_, err := svc.Publish(ctx, domain.PublishOptions{Dir: dir, Credentials: credentials()})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("no publisher", func(t *testing.T) {
		_, err := NewReleaseService(nil, nil).Publish(ctx, domain.PublishOptions{Credentials: credentials()})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestReleaseService_Clean(t *testing.T) {
	dir := t.TempDir()
	for _, sub := range []string{"dist", "build", "lint_gost_tex.egg-info", "docs"} {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, sub), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, sub, "file"), []byte("x"), 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.egg-info"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.tex"), []byte("x"), 0o644))

	svc := NewReleaseService(nil, nil)
	removed, err := svc.Clean(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "dist"),
		filepath.Join(dir, "build"),
		filepath.Join(dir, "lint_gost_tex.egg-info"),
		filepath.Join(dir, "other.egg-info"),
	}, removed)

	assert.NoDirExists(t, filepath.Join(dir, "dist"))
	assert.NoDirExists(t, filepath.Join(dir, "build"))
	assert.NoFileExists(t, filepath.Join(dir, "other.egg-info"))
	assert.DirExists(t, filepath.Join(dir, "docs"))
	assert.FileExists(t, filepath.Join(dir, "main.tex"))

	// second run is a no-op
	removed, err = svc.Clean(context.Background(), dir)
	require.NoError(t, err)
	assert.Empty(t, removed)
}
