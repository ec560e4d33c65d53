// Package domain defines the core entities for lint-gost-tex.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Issue: a rule violation with location and snippet
//   - TexFile, Document: loaded LaTeX sources
//   - Config: the lint configuration and its defaults
//   - BaselineEntry: an accepted issue
//   - Artifact, Credentials: packaging and publishing inputs
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
