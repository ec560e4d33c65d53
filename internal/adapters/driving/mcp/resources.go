package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for lint-gost-tex resources.
	uriScheme = "lint-gost-tex://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "rules",
		Name:        "rules",
		Description: "Lint rules with their issue IDs",
		MIMEType:    "application/json",
	}, s.handleRulesResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "baseline",
		Name:        "baseline",
		Description: "Issues accepted in the baseline of the working directory",
		MIMEType:    "application/json",
	}, s.handleBaselineResource)
}

// handleRulesResource returns the rule catalog.
func (s *Server) handleRulesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	rules, err := s.ports.Rules.List()
	if err != nil {
		return nil, fmt.Errorf("listing rules: %w", err)
	}
	return jsonResource(req.Params.URI, rules)
}

// handleBaselineResource returns the baseline entries of the server's
// base directory.
func (s *Server) handleBaselineResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Baseline == nil {
		return jsonResource(req.Params.URI, []any{})
	}

	entries, err := s.ports.Baseline.List(ctx, domain.LintOptions{BaseDir: s.baseDir})
	if err != nil {
		return nil, fmt.Errorf("listing baseline: %w", err)
	}

	type entryInfo struct {
		ID      string `json:"id"`
		RuleID  string `json:"rule_id"`
		Path    string `json:"path"`
		Message string `json:"message"`
	}
	infos := make([]entryInfo, len(entries))
	for i, entry := range entries {
		infos[i] = entryInfo{
			ID:      entry.ID,
			RuleID:  entry.RuleID,
			Path:    entry.Path,
			Message: entry.Message,
		}
	}
	return jsonResource(req.Params.URI, infos)
}

func jsonResource(uri string, value any) (*mcp.ReadResourceResult, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("marshaling resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
