package domain

// Book is a row of the source book table, read-only during indexing.
type Book struct {
	// ID is the source-assigned book identifier.
	ID int64

	// Title is the display title, also the target of exact filtering.
	Title string

	// CategoryID points at the book's category node; nil when the book
	// is uncategorised.
	CategoryID *int64
}

// Category is a node in the category forest.
type Category struct {
	// ID is the source-assigned category identifier.
	ID int64

	// Title is one path segment of the category path.
	Title string

	// ParentID is nil for roots. Malformed inputs may contain cycles;
	// path building caps the parent walk instead of erroring.
	ParentID *int64
}

// Line is a row of the source line table.
type Line struct {
	// ID is the stable line identifier carried into search hits.
	ID int64

	// BookID references the owning book.
	BookID int64

	// LineIndex is the line's position within its book.
	LineIndex int32

	// Content is the raw line text and may contain tag markup.
	// NULL columns arrive as the empty string.
	Content string

	// HeRef is the human-readable reference, possibly empty.
	HeRef string
}

// MaxCategoryDepth caps the parent walk when resolving category paths.
// Cycles in malformed data fall through the cap and yield a partial
// path, never an error.
const MaxCategoryDepth = 20
