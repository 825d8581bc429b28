package domain

// Query is the compiled, backend-neutral form of a search request.
// The engine executes it as a conjunction: every term must match, and
// non-empty filters add required clauses.
type Query struct {
	// Terms are the content clauses. All of them are required.
	Terms []QueryTerm

	// BookFilter, when non-empty, restricts hits to the exact,
	// unanalysed book title.
	BookFilter string

	// CategoryFilter, when non-empty, restricts hits to category paths
	// containing it as a substring.
	CategoryFilter string
}

// QueryTerm is one required content clause. A term is either literal
// (matched through the analyzer) or a pattern synthesised from a
// wildcard term.
type QueryTerm struct {
	// Text is the term as the user wrote it.
	Text string

	// Regexp is the anchored pattern for a wildcard term, matched
	// against the indexed term surface. Empty for literal terms.
	Regexp string

	// Plain is the operator-free literal text the snippet locator
	// scans for.
	Plain string
}

// IsPattern reports whether the term carries wildcard operators.
func (t QueryTerm) IsPattern() bool {
	return t.Regexp != ""
}

// SnippetTerms returns the plain words used to locate and mark matches
// in snippets.
func (q Query) SnippetTerms() []string {
	terms := make([]string, 0, len(q.Terms))
	for _, t := range q.Terms {
		if t.Plain != "" {
			terms = append(terms, t.Plain)
		}
	}
	return terms
}

// IndexResult is what the engine returns for one executed query.
type IndexResult struct {
	// Hits are the top-K matches in descending score order.
	Hits []IndexHit

	// Total is the full match count, not capped by the requested
	// limit.
	Total int
}

// IndexHit is one engine match with its stored fields materialised.
type IndexHit struct {
	// Score is the relevance score, higher is better.
	Score float64

	// Document carries the stored fields of the matched line.
	Document Document
}
