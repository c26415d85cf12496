package fallback

import (
	"context"
	"fmt"
	"time"

	"bookchat/internal/book"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSource reads the fallback catalog from the fallback_books table.
type PostgresSource struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresSource(db *pgxpool.Pool, timeout time.Duration) *PostgresSource {
	return &PostgresSource{db: db, timeout: timeout}
}

func (s *PostgresSource) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

func (s *PostgresSource) Books(ctx context.Context) ([]book.Record, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.db.Query(ctx, `
		SELECT title, author, publisher, year, isbn, category, pages, location, status, description
		FROM fallback_books
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query fallback books: %w", err)
	}

	books, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (book.Record, error) {
		var r book.Record
		var status string
		err := row.Scan(&r.Title, &r.Author, &r.Publisher, &r.Year, &r.ISBN, &r.Category, &r.Pages, &r.Location, &status, &r.Description)
		r.Status = book.Status(status)
		return r, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan fallback books: %w", err)
	}
	return books, nil
}

// Replace swaps the whole catalog for books, keeping their order.
func (s *PostgresSource) Replace(ctx context.Context, books []book.Record) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM fallback_books`); err != nil {
		return fmt.Errorf("clear fallback books: %w", err)
	}

	rows := make([][]any, 0, len(books))
	for i, b := range books {
		rows = append(rows, []any{i, b.Title, b.Author, b.Publisher, b.Year, b.ISBN, b.Category, b.Pages, b.Location, string(b.Status), b.Description})
	}
	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"fallback_books"},
		[]string{"position", "title", "author", "publisher", "year", "isbn", "category", "pages", "location", "status", "description"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("copy fallback books: %w", err)
	}

	return tx.Commit(ctx)
}
