package driven

import (
	"context"

	"github.com/sifria-labs/mafteah-cli/internal/core/domain"
)

// SourceReader provides read-only access to the relational book corpus
// the builder consumes.
type SourceReader interface {
	// Books loads every book row keyed by book ID.
	Books(ctx context.Context) (map[int64]domain.Book, error)

	// Categories loads every category row keyed by category ID.
	Categories(ctx context.Context) (map[int64]domain.Category, error)

	// Lines streams line rows ordered by (bookId, lineIndex), calling
	// fn for each. A non-nil error from fn stops the stream and is
	// returned unchanged.
	Lines(ctx context.Context, fn func(domain.Line) error) error

	// Close releases the underlying database handle.
	Close() error
}
