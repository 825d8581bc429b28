// Package domain defines the core business entities for mafteah.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Book, Category, Line: rows read from the relational source
//   - Document: one indexed document per non-blank content line
//   - Query, QueryTerm: the compiled query tree the engine executes
//   - SearchRequest, SearchResponse, Hit: the published search contract
//   - BuildStats: counters reported by an index build
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
