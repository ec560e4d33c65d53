package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
)

// LintInput is the input schema for the lint tool.
type LintInput struct {
	Dir      string `json:"dir,omitempty" jsonschema:"project directory holding lint-gost-tex.toml (default: server working directory)"`
	Root     string `json:"root,omitempty" jsonschema:"root .tex file, overriding the configured one"`
	Config   string `json:"config,omitempty" jsonschema:"config file path (default lint-gost-tex.toml)"`
	Baseline bool   `json:"baseline,omitempty" jsonschema:"hide issues recorded in the baseline"`
}

// LintOutput is the output schema for the lint tool.
type LintOutput struct {
	Issues     []IssueOutput `json:"issues"`
	Count      int           `json:"count"`
	Suppressed int           `json:"suppressed"`
	Files      []string      `json:"files"`
}

// IssueOutput represents a single issue with a path relative to the
// project directory.
type IssueOutput struct {
	RuleID  string `json:"rule_id"`
	Message string `json:"message"`
	Path    string `json:"path"`
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Snippet string `json:"snippet,omitempty"`
}

// RulesInput is the input schema for the rules tool.
type RulesInput struct{}

// RulesOutput is the output schema for the rules tool.
type RulesOutput struct {
	Rules []domain.RuleInfo `json:"rules"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "lint",
		Description: "Check a LaTeX document against GOST formatting rules",
	}, s.handleLint)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "rules",
		Description: "List the lint rules and the issue IDs they report",
	}, s.handleRules)
}

// handleLint handles the lint tool invocation.
func (s *Server) handleLint(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input LintInput,
) (*mcp.CallToolResult, LintOutput, error) {
	dir := input.Dir
	if dir == "" {
		dir = s.baseDir
	}

	report, err := s.ports.Lint.Lint(ctx, domain.LintOptions{
		BaseDir:       dir,
		ConfigPath:    input.Config,
		Root:          input.Root,
		ApplyBaseline: input.Baseline,
	})
	if err != nil {
		return nil, LintOutput{}, err
	}

	output := LintOutput{
		Issues:     make([]IssueOutput, len(report.Issues)),
		Count:      len(report.Issues),
		Suppressed: report.Suppressed,
		Files:      make([]string, len(report.Files)),
	}
	for i, issue := range report.Issues {
		output.Issues[i] = IssueOutput{
			RuleID:  issue.RuleID,
			Message: issue.Message,
			Path:    domain.RelPath(issue.Path, report.BaseDir),
			Line:    issue.Line,
			Col:     issue.Col,
			Snippet: issue.Snippet,
		}
	}
	for i, path := range report.Files {
		output.Files[i] = domain.RelPath(path, report.BaseDir)
	}

	return nil, output, nil
}

// handleRules handles the rules tool invocation.
func (s *Server) handleRules(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ RulesInput,
) (*mcp.CallToolResult, RulesOutput, error) {
	rules, err := s.ports.Rules.List()
	if err != nil {
		return nil, RulesOutput{}, err
	}
	return nil, RulesOutput{Rules: rules}, nil
}
