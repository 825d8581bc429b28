package driving

import (
	"context"

	"github.com/sifria-labs/mafteah-cli/internal/core/domain"
)

// IndexBuilder runs a single-shot index build from the relational
// source. This is used by the CLI adapter.
type IndexBuilder interface {
	// Build streams the source into the index writer and commits.
	// On error no readable index is left at the target path.
	Build(ctx context.Context) (*domain.BuildStats, error)
}
