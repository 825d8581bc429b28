// Package hebrew provides the text normalisation primitives shared by
// the index analyzer, the query compiler, and the snippet locator.
// It strips tag markup and removes Hebrew diacritics (nikud and
// te'amim) so that a query term and its pointed corpus variant match.
//
// All functions are pure and idempotent: normalising an already
// normalised string is a no-op.
package hebrew
