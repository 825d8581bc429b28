package bleve

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp/syntax"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/sifria-labs/mafteah-cli/internal/core/domain"
	"github.com/sifria-labs/mafteah-cli/internal/core/ports/driven"
	"github.com/sifria-labs/mafteah-cli/internal/logger"
)

// metaFile is written by bleve when an index is created. Its absence
// means the directory is not an index.
const metaFile = "index_meta.json"

// Engine executes compiled queries against a read-only index snapshot.
// It is safe for concurrent searches.
type Engine struct {
	path string
	idx  bleve.Index
}

// Open opens the index at path. It returns domain.ErrIndexNotFound when
// nothing readable exists there.
func Open(path string) (*Engine, error) {
	path = filepath.Clean(path)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", domain.ErrIndexNotFound, path)
	}
	if _, err := os.Stat(filepath.Join(path, metaFile)); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s is not an index", domain.ErrIndexNotFound, path)
	}
	idx, err := bleve.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open index %s: %w", path, err)
	}
	return &Engine{path: path, idx: idx}, nil
}

// Execute runs a compiled query and materializes the stored fields of
// the top hits. The query must carry at least one term or filter.
func (e *Engine) Execute(ctx context.Context, q domain.Query, limit int) (*domain.IndexResult, error) {
	if e.idx == nil {
		return nil, domain.ErrIndexClosed
	}
	bq, err := buildQuery(q)
	if err != nil {
		return nil, err
	}

	req := bleve.NewSearchRequestOptions(bq, limit, 0, false)
	req.Fields = storedFields
	req.SortBy([]string{"-_score", "_id"})

	res, err := e.idx.SearchInContext(ctx, req)
	if err != nil {
		return nil, err
	}
	logger.Debug("index query executed", "total", res.Total, "took", res.Took)

	hits := make([]domain.IndexHit, 0, len(res.Hits))
	for _, hit := range res.Hits {
		hits = append(hits, domain.IndexHit{
			Score:    hit.Score,
			Document: documentFromFields(hit.Fields),
		})
	}
	return &domain.IndexResult{Hits: hits, Total: saturateInt(res.Total)}, nil
}

// saturateInt narrows a bleve hit count without wrapping.
func saturateInt(n uint64) int {
	if n > math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}

// DocCount reports the number of indexed documents.
func (e *Engine) DocCount() (uint64, error) {
	if e.idx == nil {
		return 0, domain.ErrIndexClosed
	}
	return e.idx.DocCount()
}

// Close releases the index readers.
func (e *Engine) Close() error {
	if e.idx == nil {
		return nil
	}
	err := e.idx.Close()
	e.idx = nil
	return err
}

// Path returns the directory the engine was opened from.
func (e *Engine) Path() string {
	return e.path
}

// buildQuery translates the compiled query tree into a bleve
// conjunction: every term and filter must match.
func buildQuery(q domain.Query) (query.Query, error) {
	clauses := make([]query.Query, 0, len(q.Terms)+2)
	for _, term := range q.Terms {
		if term.IsPattern() {
			if _, err := syntax.Parse(term.Regexp, syntax.Perl); err != nil {
				return nil, fmt.Errorf("%w: term %q: %v", domain.ErrParse, term.Text, err)
			}
			rq := bleve.NewRegexpQuery(term.Regexp)
			rq.SetField(fieldContent)
			clauses = append(clauses, rq)
			continue
		}
		mq := bleve.NewMatchQuery(term.Text)
		mq.SetField(fieldContent)
		mq.SetOperator(query.MatchQueryOperatorAnd)
		clauses = append(clauses, mq)
	}
	if q.BookFilter != "" {
		tq := bleve.NewTermQuery(q.BookFilter)
		tq.SetField(fieldBookTitle)
		clauses = append(clauses, tq)
	}
	if q.CategoryFilter != "" {
		wq := bleve.NewWildcardQuery("*" + q.CategoryFilter + "*")
		wq.SetField(fieldCategoryPath)
		clauses = append(clauses, wq)
	}
	return bleve.NewConjunctionQuery(clauses...), nil
}

// documentFromFields rebuilds a domain document from stored hit fields.
func documentFromFields(fields map[string]interface{}) domain.Document {
	return domain.Document{
		LineID:       toInt64(fields[fieldLineID]),
		BookID:       toInt64(fields[fieldBookID]),
		LineIndex:    int32(toInt64(fields[fieldLineIndex])),
		BookTitle:    toString(fields[fieldBookTitle]),
		CategoryPath: toString(fields[fieldCategoryPath]),
		HeRef:        toString(fields[fieldHeRef]),
		Content:      toString(fields[fieldContent]),
	}
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func toInt64(v any) int64 {
	switch t := v.(type) {
	case float64:
		return int64(t)
	case float32:
		return int64(t)
	case int64:
		return t
	case int:
		return int64(t)
	case uint64:
		return int64(t)
	default:
		return 0
	}
}

var _ driven.SearchIndex = (*Engine)(nil)
