// Package sqlite reads the book corpus from its relational source.
//
// The reader consumes three tables: book, category and line. It opens
// the database in query-only mode and never writes to it.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/sifria-labs/mafteah-cli/internal/core/domain"
	"github.com/sifria-labs/mafteah-cli/internal/core/ports/driven"
)

// Reader streams books, categories and content lines from a corpus
// database.
type Reader struct {
	db   *sql.DB
	path string
}

// NewReader opens the corpus database at path.
// Returns domain.ErrSourceMissing when the file does not exist.
func NewReader(path string) (*Reader, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: no database path given", domain.ErrSourceMissing)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", domain.ErrSourceMissing, path)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=query_only(1)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return &Reader{db: db, path: path}, nil
}

// Books loads all book rows keyed by id.
func (r *Reader) Books(ctx context.Context) (map[int64]domain.Book, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, categoryId FROM book`)
	if err != nil {
		return nil, fmt.Errorf("querying books: %w", err)
	}
	defer rows.Close()

	books := make(map[int64]domain.Book)
	for rows.Next() {
		var book domain.Book
		var title sql.NullString
		var categoryID sql.NullInt64
		if err := rows.Scan(&book.ID, &title, &categoryID); err != nil {
			return nil, fmt.Errorf("scanning book: %w", err)
		}
		book.Title = title.String
		if categoryID.Valid {
			id := categoryID.Int64
			book.CategoryID = &id
		}
		books[book.ID] = book
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading books: %w", err)
	}
	return books, nil
}

// Categories loads all category rows keyed by id.
func (r *Reader) Categories(ctx context.Context) (map[int64]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, parentId FROM category`)
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}
	defer rows.Close()

	categories := make(map[int64]domain.Category)
	for rows.Next() {
		var category domain.Category
		var title sql.NullString
		var parentID sql.NullInt64
		if err := rows.Scan(&category.ID, &title, &parentID); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		category.Title = title.String
		if parentID.Valid {
			id := parentID.Int64
			category.ParentID = &id
		}
		categories[category.ID] = category
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading categories: %w", err)
	}
	return categories, nil
}

// Lines streams content lines ordered by book and position, invoking fn
// for each row. Iteration stops at the first error fn returns.
func (r *Reader) Lines(ctx context.Context, fn func(domain.Line) error) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, bookId, lineIndex, content, heRef
		FROM line
		ORDER BY bookId, lineIndex
	`)
	if err != nil {
		return fmt.Errorf("querying lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line domain.Line
		var content, heRef sql.NullString
		if err := rows.Scan(&line.ID, &line.BookID, &line.LineIndex, &content, &heRef); err != nil {
			return fmt.Errorf("scanning line: %w", err)
		}
		line.Content = content.String
		line.HeRef = heRef.String
		if err := fn(line); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("reading lines: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (r *Reader) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Reader) Path() string {
	return r.path
}

var _ driven.SourceReader = (*Reader)(nil)
