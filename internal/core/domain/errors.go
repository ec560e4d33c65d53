package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent lint and packaging failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConfigInvalid indicates the lint configuration could not be parsed
	// or holds values of the wrong type.
	ErrConfigInvalid = errors.New("invalid configuration")

	// ErrRootNotFound indicates the root .tex file does not exist.
	ErrRootNotFound = errors.New("root document not found")

	// ErrUnknownRule indicates a rule name that is not registered.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrIssuesFound is returned when linting finished and reported issues.
	// The CLI maps it to exit status 1 without printing it.
	ErrIssuesFound = errors.New("issues found")

	// Packaging Errors.

	// ErrMissingCredentials indicates the publish credentials are not set.
	ErrMissingCredentials = errors.New("publish credentials not set")

	// ErrNoArtifacts indicates there is nothing to publish.
	ErrNoArtifacts = errors.New("no artifacts to publish")
)

// ToolError reports a failed invocation of an external tool. Code carries
// the tool's exit status so the CLI can exit with it.
type ToolError struct {
	Tool string
	Code int
	Err  error
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s exited with status %d: %v", e.Tool, e.Code, e.Err)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}
