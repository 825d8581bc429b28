package bleve

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/blevesearch/bleve/v2"

	"github.com/sifria-labs/mafteah-cli/internal/core/domain"
	"github.com/sifria-labs/mafteah-cli/internal/core/ports/driven"
	"github.com/sifria-labs/mafteah-cli/internal/logger"
)

// DefaultBatchSize is the number of documents buffered per index batch.
const DefaultBatchSize = 10000

// buildSuffix names the working directory a build runs in. Commit
// renames it onto the target path, so an interrupted build never leaves
// a readable index there.
const buildSuffix = ".building"

// Writer streams documents into a fresh index.
//
// Creating a writer truncates the target path; the index is built in a
// sibling directory and moved into place by Commit.
type Writer struct {
	target    string
	tmp       string
	batchSize int
	idx       bleve.Index
	batch     *bleve.Batch
	pending   int
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithBatchSize overrides the default batch size.
func WithBatchSize(n int) WriterOption {
	return func(w *Writer) {
		if n > 0 {
			w.batchSize = n
		}
	}
}

// CreateWriter truncates the index at target and opens a writer that
// builds its replacement.
func CreateWriter(target string, opts ...WriterOption) (*Writer, error) {
	if target == "" {
		return nil, fmt.Errorf("index path is required")
	}
	w := &Writer{
		target:    filepath.Clean(target),
		batchSize: DefaultBatchSize,
	}
	w.tmp = w.target + buildSuffix
	for _, opt := range opts {
		opt(w)
	}

	if err := os.MkdirAll(filepath.Dir(w.target), 0o755); err != nil {
		return nil, fmt.Errorf("create index directory: %w", err)
	}
	if err := os.RemoveAll(w.target); err != nil {
		return nil, fmt.Errorf("truncate index %s: %w", w.target, err)
	}
	if err := os.RemoveAll(w.tmp); err != nil {
		return nil, fmt.Errorf("clear stale build %s: %w", w.tmp, err)
	}

	idx, err := bleve.New(w.tmp, buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create index %s: %w", w.tmp, err)
	}
	w.idx = idx
	w.batch = idx.NewBatch()
	return w, nil
}

// Add buffers one document, flushing when the batch is full.
func (w *Writer) Add(doc domain.Document) error {
	if w.idx == nil {
		return domain.ErrIndexClosed
	}
	fields := map[string]any{
		fieldLineID:       doc.LineID,
		fieldBookID:       doc.BookID,
		fieldLineIndex:    doc.LineIndex,
		fieldBookTitle:    doc.BookTitle,
		fieldCategoryPath: doc.CategoryPath,
		fieldHeRef:        doc.HeRef,
		fieldContent:      doc.Content,
		fieldTitleSearch:  doc.BookTitle,
	}
	if err := w.batch.Index(docID(doc.LineID), fields); err != nil {
		return err
	}
	w.pending++
	if w.pending >= w.batchSize {
		return w.flush()
	}
	return nil
}

func (w *Writer) flush() error {
	if w.pending == 0 {
		return nil
	}
	if err := w.idx.Batch(w.batch); err != nil {
		return err
	}
	logger.Debug("flushed index batch", "documents", w.pending)
	w.batch.Reset()
	w.pending = 0
	return nil
}

// Commit flushes buffered documents, closes the index, and moves it
// onto the target path.
func (w *Writer) Commit() error {
	if w.idx == nil {
		return domain.ErrIndexClosed
	}
	if err := w.flush(); err != nil {
		return err
	}
	if err := w.idx.Close(); err != nil {
		return err
	}
	w.idx = nil
	if err := os.RemoveAll(w.target); err != nil {
		return err
	}
	return os.Rename(w.tmp, w.target)
}

// Abort discards the partial build. Calling it after Commit is a no-op.
func (w *Writer) Abort() error {
	if w.idx != nil {
		_ = w.idx.Close()
		w.idx = nil
	}
	return os.RemoveAll(w.tmp)
}

func docID(lineID int64) string {
	return strconv.FormatInt(lineID, 10)
}

var _ driven.IndexWriter = (*Writer)(nil)
