package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrConfigInvalid", ErrConfigInvalid},
		{"ErrRootNotFound", ErrRootNotFound},
		{"ErrUnknownRule", ErrUnknownRule},
		{"ErrIssuesFound", ErrIssuesFound},
		{"ErrMissingCredentials", ErrMissingCredentials},
		{"ErrNoArtifacts", ErrNoArtifacts},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("loading config: %w", ErrConfigInvalid)

	assert.True(t, errors.Is(wrapped, ErrConfigInvalid))
	assert.False(t, errors.Is(wrapped, ErrInvalidInput))
}

func TestToolError(t *testing.T) {
	inner := errors.New("exit status 2")
	err := fmt.Errorf("build linux/amd64: %w", &ToolError{Tool: "go", Code: 2, Err: inner})

	var toolErr *ToolError
	assert.True(t, errors.As(err, &toolErr))
	assert.Equal(t, 2, toolErr.Code)
	assert.True(t, errors.Is(err, inner))
	assert.Contains(t, err.Error(), "go exited with status 2")
}
