// Package bleve adapts the search index ports to a Bleve index on disk.
//
// The package owns three concerns: the custom Hebrew analyzer shared by
// indexing and querying, the batch writer the index builder streams
// documents into, and the read-only engine that executes compiled
// queries. A Reloader wraps the engine and swaps in a fresh one when
// the index directory is replaced by a rebuild.
package bleve
