package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sifria-labs/mafteah-cli/internal/core/domain"
	"github.com/sifria-labs/mafteah-cli/internal/core/ports/driven"
	"github.com/sifria-labs/mafteah-cli/internal/core/ports/driving"
	"github.com/sifria-labs/mafteah-cli/internal/logger"
	"github.com/sifria-labs/mafteah-cli/internal/query"
	"github.com/sifria-labs/mafteah-cli/internal/snippet"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService compiles search requests, executes them against the
// index snapshot and shapes the published response.
type SearchService struct {
	index driven.SearchIndex
}

// NewSearchService creates a new search service over an open index.
func NewSearchService(index driven.SearchIndex) *SearchService {
	return &SearchService{index: index}
}

// Search compiles and executes one request.
func (s *SearchService) Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error) {
	logger.Section("Search Execution")
	logger.Debug("search request",
		"query", req.Query,
		"limit", req.Limit,
		"wildcard", req.WildcardMode)

	started := time.Now()

	// Blank queries are answered without consulting the index.
	if strings.TrimSpace(req.Query) == "" {
		logger.Debug("blank query, returning empty result")
		return domain.NewSearchResponse(req.Query, 0, elapsedMS(started), nil), nil
	}

	compiled, err := query.Compile(req)
	if err != nil {
		return nil, err
	}
	logger.Debug("compiled query",
		"terms", len(compiled.Terms),
		"book_filter", compiled.BookFilter,
		"category_filter", compiled.CategoryFilter)

	// Every token analysed away; nothing can match.
	if len(compiled.Terms) == 0 {
		logger.Debug("no searchable terms, returning empty result")
		return domain.NewSearchResponse(req.Query, 0, elapsedMS(started), nil), nil
	}

	result, err := s.index.Execute(ctx, compiled, req.EffectiveLimit())
	if err != nil {
		logger.Warn("index query failed", "err", err)
		return nil, fmt.Errorf("executing search: %w", err)
	}

	terms := compiled.SnippetTerms()
	hits := make([]domain.Hit, 0, len(result.Hits))
	for i, ih := range result.Hits {
		doc := ih.Document
		hits = append(hits, domain.Hit{
			Rank:         i + 1,
			LineID:       doc.LineID,
			BookID:       doc.BookID,
			LineIndex:    doc.LineIndex,
			BookTitle:    doc.BookTitle,
			CategoryPath: doc.CategoryPath,
			HeRef:        doc.HeRef,
			Snippet:      snippet.Build(doc.Content, terms),
			Score:        ih.Score,
		})
	}

	logger.Info("search completed",
		"total", result.Total,
		"returned", len(hits),
		"elapsed", time.Since(started))
	return domain.NewSearchResponse(req.Query, result.Total, elapsedMS(started), hits), nil
}

func elapsedMS(started time.Time) int64 {
	return time.Since(started).Milliseconds()
}
