package server

import (
	"context"
	"net/http"
	"time"

	"bookchat/internal/assistant"
	"bookchat/internal/chat"
	"bookchat/internal/httpx"
	"bookchat/internal/search"

	"github.com/go-chi/chi/v5"
)

const DefaultMaxBodyBytes = 1 << 20

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Deps struct {
	Search *search.HTTPHandler
	Chat   *chat.HTTPHandler
	Ask    *assistant.HTTPHandler

	// DB is nil when the server runs without a database.
	DB Pinger

	CORSAllowedOrigins []string
	RateLimiter        *httpx.RateLimitMiddleware
	MaxBodyBytes       int64
}

func NewRouter(d Deps) http.Handler {
	maxBody := d.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}

	r := chi.NewRouter()
	r.Use(httpx.RequestIDMiddleware)
	r.Use(httpx.AccessLogMiddleware)
	r.Use(httpx.RecoveryMiddleware)
	r.Use(httpx.CORSMiddleware(d.CORSAllowedOrigins))
	r.Use(httpx.SecurityHeadersMiddleware)
	if d.RateLimiter != nil {
		r.Use(d.RateLimiter.Middleware)
	}
	r.Use(httpx.RequestSizeLimitMiddleware(maxBody))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Resource not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpx.JSONError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/readyz", readyHandler(d.DB))

	r.Post("/search", d.Search.Search)
	r.Post("/chat", d.Chat.Chat)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/ask", d.Ask.Ask)
	})

	return r
}

func readyHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
			defer cancel()
			if err := db.Ping(ctx); err != nil {
				httpx.JSONError(w, r, http.StatusServiceUnavailable, "NOT_READY", "db not ready", nil)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	}
}
