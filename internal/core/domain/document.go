package domain

// Document is one searchable unit: a single non-blank content line with
// its denormalised book metadata. The stored content is tag-stripped,
// so snippets and highlights operate on the user-visible string.
type Document struct {
	// LineID is the stable identifier of the source line.
	LineID int64

	// BookID identifies the owning book.
	BookID int64

	// LineIndex is the line's position within its book.
	LineIndex int32

	// BookTitle is the owning book's title; empty when the book row
	// is missing from the source.
	BookTitle string

	// CategoryPath is the root-to-leaf category titles joined by "/";
	// empty when the book has no category. At most MaxCategoryDepth
	// parts.
	CategoryPath string

	// HeRef is the human-readable reference, possibly empty.
	HeRef string

	// Content is the tag-stripped line text.
	Content string
}
