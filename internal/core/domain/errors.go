package domain

import "errors"

// Domain errors represent search and build failures that callers act
// on. These are distinct from infrastructure errors.
var (
	// ErrInvalidRequest indicates a malformed search request, such as
	// a wildcard term with no regular characters.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrIndexNotFound indicates the index directory does not exist,
	// or exists but holds no readable index.
	ErrIndexNotFound = errors.New("index not found")

	// ErrIndexClosed indicates the engine was used after Close.
	ErrIndexClosed = errors.New("index closed")

	// ErrParse indicates the engine rejected a compiled query.
	// Unreachable in default mode, where every term is literal;
	// possible for pathological wildcard patterns.
	ErrParse = errors.New("query parse failed")

	// ErrSourceMissing indicates the source database does not exist or
	// cannot be opened.
	ErrSourceMissing = errors.New("source database missing")
)
