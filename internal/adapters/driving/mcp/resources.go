package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const uriScheme = "mafteah://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource with index statistics, so assistants can check
	// the corpus without spending a tool call.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "index",
		Name:        "index",
		Description: "Statistics for the open search index",
		MIMEType:    "application/json",
	}, s.handleIndexResource)
}

// handleIndexResource returns index statistics as JSON.
func (s *Server) handleIndexResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	count, err := s.ports.Index.DocCount()
	if err != nil {
		return nil, fmt.Errorf("reading document count: %w", err)
	}

	data, err := json.MarshalIndent(StatsOutput{Documents: count}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling stats: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
