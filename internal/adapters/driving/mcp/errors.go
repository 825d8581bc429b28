// Package mcp provides a Model Context Protocol server adapter so AI
// assistants can search the indexed corpus.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")

// ErrMissingIndex is returned when the index handle is not provided.
var ErrMissingIndex = errors.New("mcp: search index is required")
