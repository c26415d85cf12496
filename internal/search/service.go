package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"bookchat/internal/book"
	"bookchat/internal/fallback"
)

// ErrFallbackFailed is returned when neither the upstream nor the fallback
// catalog could answer.
var ErrFallbackFailed = errors.New("fallback catalog unavailable")

// Upstream is the remote semantic search service.
type Upstream interface {
	Search(ctx context.Context, query string, topK int) (json.RawMessage, error)
}

type Service struct {
	upstream Upstream
	fallback fallback.Source
}

func NewService(upstream Upstream, fb fallback.Source) *Service {
	return &Service{upstream: upstream, fallback: fb}
}

type fallbackResponse struct {
	Results []book.Record `json:"results"`
}

// Search returns the upstream's JSON untouched. When the upstream fails the
// answer is built from the fallback catalog.
func (s *Service) Search(ctx context.Context, query string, topK int) (json.RawMessage, error) {
	raw, err := s.upstream.Search(ctx, query, topK)
	if err == nil {
		return raw, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	log.Printf("search upstream_failed query=%q top_k=%d error=%v", query, topK, err)

	catalog, err := s.fallback.Books(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFallbackFailed, err)
	}

	body, err := json.Marshal(fallbackResponse{Results: fallback.Cycle(catalog, topK)})
	if err != nil {
		return nil, fmt.Errorf("marshal fallback results: %w", err)
	}
	log.Printf("search fallback_served query=%q top_k=%d catalog=%d", query, topK, len(catalog))
	return body, nil
}

// Records searches and normalizes the result.
func (s *Service) Records(ctx context.Context, query string, topK int) ([]book.Record, error) {
	raw, err := s.Search(ctx, query, topK)
	if err != nil {
		return nil, err
	}
	return book.Normalize(raw)
}
