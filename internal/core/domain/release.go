package domain

import (
	"fmt"
	"strings"
)

// DefaultDistDir is where build writes artifacts.
const DefaultDistDir = "dist"

// DefaultBuildDir holds intermediate build output.
const DefaultBuildDir = "build"

// Target is a platform to build for.
type Target struct {
	OS   string
	Arch string
}

func (t Target) String() string {
	return t.OS + "/" + t.Arch
}

// ParseTarget parses an "os/arch" pair.
func ParseTarget(value string) (Target, error) {
	osName, arch, ok := strings.Cut(strings.TrimSpace(value), "/")
	if !ok || osName == "" || arch == "" {
		return Target{}, fmt.Errorf("%w: target %q must be os/arch", ErrInvalidInput, value)
	}
	return Target{OS: osName, Arch: arch}, nil
}

// DefaultTargets are the platforms built when none are requested.
func DefaultTargets() []Target {
	return []Target{
		{OS: "linux", Arch: "amd64"},
		{OS: "linux", Arch: "arm64"},
		{OS: "darwin", Arch: "amd64"},
		{OS: "darwin", Arch: "arm64"},
		{OS: "windows", Arch: "amd64"},
	}
}

// Artifact is a distributable file in the dist directory.
type Artifact struct {
	Name   string
	Path   string
	Size   int64
	Target Target
}

// BuildOptions parameterise the build task.
type BuildOptions struct {
	// Dir is the project directory.
	Dir string

	// Package is the main package to build.
	Package string

	// Binary is the executable name.
	Binary string

	// Version is stamped into the binary and artifact names.
	Version string

	Targets []Target
}

// Credentials authenticate against the package index.
type Credentials struct {
	Username string
	Password string
}

// TokenUsername marks Password as a bearer token rather than a password.
const TokenUsername = "__token__"

// IsToken reports whether the password should be sent as a bearer token.
func (c Credentials) IsToken() bool {
	return c.Username == TokenUsername
}

// Validate returns ErrMissingCredentials if either value is empty.
func (c Credentials) Validate() error {
	if c.Username == "" || c.Password == "" {
		return ErrMissingCredentials
	}
	return nil
}

// PublishOptions parameterise the publish task.
type PublishOptions struct {
	// Dir is the project directory containing dist/.
	Dir string

	// Repository is the "owner/name" hosting the releases.
	Repository string

	// Tag is the release tag to upload to.
	Tag string

	Credentials Credentials
}

// SplitRepository splits "owner/name".
func SplitRepository(repo string) (string, string, error) {
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", fmt.Errorf("%w: repository %q must be owner/name", ErrInvalidInput, repo)
	}
	return owner, name, nil
}
