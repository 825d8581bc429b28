package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sifria-labs/mafteah-cli/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query    string `json:"query" jsonschema:"the search query; all terms must match within a line, diacritics are ignored"`
	Limit    int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 50)"`
	Book     string `json:"book,omitempty" jsonschema:"restrict results to an exact book title"`
	Category string `json:"category,omitempty" jsonschema:"restrict results to category paths containing this text"`
	Wildcard bool   `json:"wildcard,omitempty" jsonschema:"treat * and ? in the query as wildcards"`
}

// StatsInput is the input schema for the stats tool. It has no fields.
type StatsInput struct{}

// StatsOutput is the output schema for the stats tool.
type StatsOutput struct {
	Documents uint64 `json:"documents"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search the Hebrew book corpus; returns ranked lines with highlighted snippets",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "stats",
		Description: "Report the number of indexed lines",
	}, s.handleStats)
}

// handleSearch handles the search tool invocation. Failed searches come
// back as error responses rather than protocol errors, so callers
// always receive the published response shape.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, domain.SearchResponse, error) {
	req := domain.SearchRequest{
		Query:          input.Query,
		Limit:          input.Limit,
		BookFilter:     input.Book,
		CategoryFilter: input.Category,
		WildcardMode:   input.Wildcard,
	}

	resp, err := s.ports.Search.Search(ctx, req)
	if err != nil {
		return nil, *domain.NewErrorResponse(input.Query, err), nil
	}

	return nil, *resp, nil
}

// handleStats handles the stats tool invocation.
func (s *Server) handleStats(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ StatsInput,
) (*mcp.CallToolResult, StatsOutput, error) {
	count, err := s.ports.Index.DocCount()
	if err != nil {
		return nil, StatsOutput{}, fmt.Errorf("reading document count: %w", err)
	}

	return nil, StatsOutput{Documents: count}, nil
}
