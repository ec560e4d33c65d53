// Package mcp provides an MCP (Model Context Protocol) server adapter for
// lint-gost-tex. It lets AI assistants lint LaTeX documents and look up the
// rules behind the reported issues.
package mcp

import "errors"

// ErrMissingLintService is returned when the lint service is not provided.
var ErrMissingLintService = errors.New("mcp: lint service is required")

// ErrMissingRuleCatalog is returned when the rule catalog is not provided.
var ErrMissingRuleCatalog = errors.New("mcp: rule catalog is required")
