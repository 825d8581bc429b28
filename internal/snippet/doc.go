// Package snippet produces bounded excerpts of stored content with
// query-term matches wrapped in <mark>...</mark>.
//
// Matching is positional: content is folded to a lowercased,
// diacritic-free rune stream while keeping each folded rune's original
// byte offset, terms are folded the same way, and the excerpt window
// is placed around the earliest occurrence. Marks are emitted at
// original offsets, so the pointed (diacritic-bearing) text is what
// the reader sees highlighted. Overlapping matches are merged before
// emission; markers never nest.
package snippet
