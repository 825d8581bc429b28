package driving

import (
	"context"

	"github.com/sifria-labs/mafteah-cli/internal/core/domain"
)

// SearchService executes search requests against the open index
// snapshot. This is used by the CLI, MCP, and TUI adapters.
type SearchService interface {
	// Search compiles and runs one request and returns the success
	// response. A blank query returns an empty success response
	// without consulting the index. Request and query errors are
	// returned as errors; adapters convert them into error responses
	// with domain.NewErrorResponse.
	Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error)
}
