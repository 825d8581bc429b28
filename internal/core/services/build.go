package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sifria-labs/mafteah-cli/internal/core/domain"
	"github.com/sifria-labs/mafteah-cli/internal/core/ports/driven"
	"github.com/sifria-labs/mafteah-cli/internal/core/ports/driving"
	"github.com/sifria-labs/mafteah-cli/internal/hebrew"
	"github.com/sifria-labs/mafteah-cli/internal/logger"
)

// Ensure BuildService implements the interface.
var _ driving.IndexBuilder = (*BuildService)(nil)

// BuildService streams the relational corpus into an index writer and
// commits the result atomically.
type BuildService struct {
	source driven.SourceReader
	writer driven.IndexWriter
}

// NewBuildService creates a build service. The caller opens the source
// before creating the writer, so a missing database is reported before
// the target directory is touched.
func NewBuildService(source driven.SourceReader, writer driven.IndexWriter) *BuildService {
	return &BuildService{source: source, writer: writer}
}

// Build runs the single-shot build. On error the writer is aborted and
// no readable index is left at the target path.
func (b *BuildService) Build(ctx context.Context) (*domain.BuildStats, error) {
	logger.Section("Index Build")

	stats := &domain.BuildStats{RunID: uuid.New().String()}
	started := time.Now()
	logger.Info("build started", "run_id", stats.RunID)

	books, err := b.source.Books(ctx)
	if err != nil {
		return nil, b.fail(fmt.Errorf("loading books: %w", err))
	}
	stats.Books = len(books)
	logger.Debug("books loaded", "count", stats.Books)

	categories, err := b.source.Categories(ctx)
	if err != nil {
		return nil, b.fail(fmt.Errorf("loading categories: %w", err))
	}
	stats.Categories = len(categories)
	logger.Debug("categories loaded", "count", stats.Categories)

	paths := resolveCategoryPaths(categories)

	err = b.source.Lines(ctx, func(line domain.Line) error {
		// One document per non-blank source line.
		if strings.TrimSpace(line.Content) == "" {
			stats.SkippedBlank++
			return nil
		}

		doc := domain.Document{
			LineID:    line.ID,
			BookID:    line.BookID,
			LineIndex: line.LineIndex,
			HeRef:     line.HeRef,
			Content:   hebrew.StripTags(line.Content),
		}
		if book, ok := books[line.BookID]; ok {
			doc.BookTitle = book.Title
			if book.CategoryID != nil {
				doc.CategoryPath = paths[*book.CategoryID]
			}
		}

		if err := b.writer.Add(doc); err != nil {
			return fmt.Errorf("indexing line %d: %w", line.ID, err)
		}
		stats.Documents++
		return nil
	})
	if err != nil {
		return nil, b.fail(fmt.Errorf("streaming lines: %w", err))
	}

	if err := b.writer.Commit(); err != nil {
		return nil, b.fail(fmt.Errorf("committing index: %w", err))
	}

	stats.Elapsed = time.Since(started)
	logger.Info("build completed",
		"run_id", stats.RunID,
		"books", stats.Books,
		"categories", stats.Categories,
		"documents", stats.Documents,
		"skipped_blank", stats.SkippedBlank,
		"elapsed", stats.Elapsed)
	return stats, nil
}

// fail aborts the writer so no partial index survives, then returns
// the original error.
func (b *BuildService) fail(err error) error {
	logger.Warn("build failed", "err", err)
	if abortErr := b.writer.Abort(); abortErr != nil {
		logger.Warn("writer abort failed", "err", abortErr)
	}
	return err
}

// resolveCategoryPaths computes every category's root-to-leaf path.
// The parent walk is capped at domain.MaxCategoryDepth hops, so cycles
// in malformed data yield a partial path instead of spinning.
func resolveCategoryPaths(categories map[int64]domain.Category) map[int64]string {
	paths := make(map[int64]string, len(categories))
	for id := range categories {
		titles := make([]string, 0, domain.MaxCategoryDepth)
		cur, ok := categories[id]
		for ok && len(titles) < domain.MaxCategoryDepth {
			titles = append(titles, cur.Title)
			if cur.ParentID == nil {
				break
			}
			cur, ok = categories[*cur.ParentID]
		}
		// titles is leaf-to-root; reverse into display order.
		for i, j := 0, len(titles)-1; i < j; i, j = i+1, j-1 {
			titles[i], titles[j] = titles[j], titles[i]
		}
		paths[id] = strings.Join(titles, "/")
	}
	return paths
}
