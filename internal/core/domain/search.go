package domain

// DefaultLimit is the number of hits returned when a request leaves
// Limit unset.
const DefaultLimit = 50

// MaxLimit is the ceiling on client-requested hits; larger values are
// clamped, not rejected.
const MaxLimit = 100000

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// SearchRequest is the published input contract.
type SearchRequest struct {
	// Query is the user's query text.
	Query string `json:"query"`

	// Limit caps the number of returned hits. Zero or negative means
	// DefaultLimit; values above MaxLimit are clamped.
	Limit int `json:"limit,omitempty"`

	// BookFilter restricts hits to an exact book title.
	BookFilter string `json:"book_filter,omitempty"`

	// CategoryFilter restricts hits to category paths containing it.
	CategoryFilter string `json:"category_filter,omitempty"`

	// WildcardMode enables the * and ? operators in Query.
	WildcardMode bool `json:"wildcard_mode,omitempty"`
}

// EffectiveLimit resolves the top-K the engine should fetch.
func (r SearchRequest) EffectiveLimit() int {
	switch {
	case r.Limit <= 0:
		return DefaultLimit
	case r.Limit > MaxLimit:
		return MaxLimit
	}
	return r.Limit
}

// Hit is one returned document in the published schema.
type Hit struct {
	// Rank is the 1-based position within this result page.
	Rank int `json:"rank"`

	// LineID is the stable identifier of the matched line.
	LineID int64 `json:"line_id"`

	// BookID identifies the owning book.
	BookID int64 `json:"book_id"`

	// LineIndex is the line's position within its book.
	LineIndex int32 `json:"line_index"`

	// BookTitle is the owning book's title.
	BookTitle string `json:"book_title"`

	// CategoryPath is the book's category path.
	CategoryPath string `json:"category_path"`

	// HeRef is the human-readable reference, possibly empty.
	HeRef string `json:"he_ref"`

	// Snippet is a bounded excerpt with matches wrapped in
	// <mark>...</mark>.
	Snippet string `json:"snippet"`

	// Score is the relevance score, higher is better.
	Score float64 `json:"score"`
}

// SearchResponse is the published output contract. Results is never
// nil, so callers and encoders never see a null list.
type SearchResponse struct {
	// Status is StatusSuccess or StatusError.
	Status string `json:"status"`

	// Message explains the failure; only set when Status is error.
	Message string `json:"message,omitempty"`

	// Query echoes the request's query text.
	Query string `json:"query,omitempty"`

	// TotalHits is the full match count, not capped by limit.
	TotalHits int `json:"total_hits"`

	// ElapsedMS is the wall-clock search duration in milliseconds.
	ElapsedMS int64 `json:"elapsed_ms"`

	// Results are the hits in descending score order.
	Results []Hit `json:"results"`
}

// NewSearchResponse builds the success shape.
func NewSearchResponse(query string, totalHits int, elapsedMS int64, results []Hit) *SearchResponse {
	if results == nil {
		results = []Hit{}
	}
	return &SearchResponse{
		Status:    StatusSuccess,
		Query:     query,
		TotalHits: totalHits,
		ElapsedMS: elapsedMS,
		Results:   results,
	}
}

// NewErrorResponse builds the error shape from a failed search. The
// message is the human-readable error text; no stack traces cross the
// interface.
func NewErrorResponse(query string, err error) *SearchResponse {
	return &SearchResponse{
		Status:  StatusError,
		Message: err.Error(),
		Query:   query,
		Results: []Hit{},
	}
}
