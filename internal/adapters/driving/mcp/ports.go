package mcp

import (
	"github.com/sifria-labs/mafteah-cli/internal/core/ports/driven"
	"github.com/sifria-labs/mafteah-cli/internal/core/ports/driving"
)

// Ports aggregates the dependencies of the MCP server. This provides a
// single injection point for dependency injection.
type Ports struct {
	// Search answers search requests.
	Search driving.SearchService

	// Index reports statistics for the open snapshot.
	Index driven.SearchIndex
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Index == nil {
		return ErrMissingIndex
	}
	return nil
}
