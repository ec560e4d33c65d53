package mcp

import (
	"github.com/gost-tex/lint-gost-tex/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Lint runs the rules over a document.
	Lint driving.LintService

	// Rules lists the available rules.
	Rules driving.RuleCatalog

	// Baseline exposes accepted issues. Optional.
	Baseline driving.BaselineService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Lint == nil {
		return ErrMissingLintService
	}
	if p.Rules == nil {
		return ErrMissingRuleCatalog
	}
	return nil
}
