package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"bookchat/internal/book"
	"bookchat/internal/config"
	"bookchat/internal/fallback"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	file := flag.String("file", "", "JSON file of book records (any shape the search service returns); defaults to the built-in sample catalog")
	flag.Parse()

	config.LoadEnvFiles()
	cfg := config.Load()
	if cfg.DBDSN == "" {
		log.Fatal("DB_DSN is required")
	}

	books, err := loadBooks(*file)
	if err != nil {
		log.Fatalf("load books: %v", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	src := fallback.NewPostgresSource(pool, 30*time.Second)
	if err := src.Replace(ctx, books); err != nil {
		log.Fatalf("seed fallback_books: %v", err)
	}
	log.Printf("seeded fallback_books count=%d", len(books))
}

func loadBooks(path string) ([]book.Record, error) {
	if path == "" {
		return fallback.SampleBooks, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return book.Normalize(raw)
}
