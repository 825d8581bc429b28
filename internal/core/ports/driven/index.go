package driven

import (
	"context"

	"github.com/sifria-labs/mafteah-cli/internal/core/domain"
)

// SearchIndex executes compiled queries against an open, read-only
// index snapshot. Implementations must be safe for concurrent readers;
// the snapshot is immutable for the lifetime of the handle.
type SearchIndex interface {
	// Execute runs the query and returns the top limit hits in
	// descending score order, with stored fields materialised.
	// Returns domain.ErrParse when the engine rejects the query and
	// domain.ErrIndexClosed after Close.
	Execute(ctx context.Context, q domain.Query, limit int) (*domain.IndexResult, error)

	// DocCount returns the number of documents in the snapshot.
	DocCount() (uint64, error)

	// Close releases the snapshot. Safe to call once; queries in
	// flight must drain first.
	Close() error
}

// IndexWriter accumulates documents for a single-shot build. Nothing
// is visible at the target path until Commit; Abort discards all
// buffered and flushed work.
type IndexWriter interface {
	// Add buffers one document for indexing.
	Add(doc domain.Document) error

	// Commit flushes remaining documents and atomically publishes the
	// index at the target path.
	Commit() error

	// Abort discards the build, leaving the target path untouched.
	Abort() error
}
