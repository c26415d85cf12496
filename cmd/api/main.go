package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"bookchat/internal/assistant"
	"bookchat/internal/chat"
	"bookchat/internal/config"
	"bookchat/internal/fallback"
	"bookchat/internal/httpx"
	"bookchat/internal/platform/bookservice"
	"bookchat/internal/platform/llm"
	"bookchat/internal/platform/telemetry"
	"bookchat/internal/search"
	"bookchat/internal/server"

	"github.com/jackc/pgx/v5/pgxpool"
)

const sessionIdle = 30 * time.Minute

func main() {
	config.LoadEnvFiles()
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, "bookchat-api", cfg.OTLPEndpoint)
	if err != nil {
		log.Fatalf("telemetry setup: %v", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(flushCtx)
	}()

	upstream := bookservice.NewClient(cfg.UpstreamSearchURL, bookservice.Options{
		Dataset: bookservice.Dataset{
			NPZ:       cfg.SearchNPZ,
			Meta:      cfg.SearchMeta,
			SourceCSV: cfg.SearchSourceCSV,
			Randomize: cfg.SearchRandomize,
		},
		Timeout: cfg.UpstreamTimeout,
		RPS:     cfg.UpstreamRPS,
	})

	deps := server.Deps{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimiter:        httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst),
	}
	defer deps.RateLimiter.Stop()

	var source fallback.Source = fallback.NewStaticSource(fallback.SampleBooks)
	if cfg.DBDSN != "" {
		pool := mustOpenDB(cfg.DBDSN)
		defer pool.Close()
		source = fallback.NewPostgresSource(pool, 2*time.Second)
		deps.DB = pool
	}

	var completer chat.Completer
	if cfg.LLMEnabled() {
		completer = llm.NewClient(llm.Config{
			BaseURL: cfg.LLMBaseURL,
			APIKey:  cfg.LLMAPIKey,
			Model:   cfg.LLMModel,
		})
	} else {
		log.Println("LLM_API_KEY not set, chat runs in fallback reply mode")
	}

	searchSvc := search.NewService(upstream, source)
	chatSvc := chat.NewService(completer, searchSvc)
	sessions := assistant.NewSessions()
	dispatcher := assistant.NewDispatcher(searchSvc, chatSvc, assistant.Options{TopK: cfg.SearchTopK})

	deps.Search = search.NewHTTPHandler(searchSvc, cfg.SearchTopK)
	deps.Chat = chat.NewHTTPHandler(chatSvc)
	deps.Ask = assistant.NewHTTPHandler(dispatcher, sessions)

	go pruneSessions(ctx, sessions)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      server.NewRouter(deps),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.UpstreamTimeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}()

	log.Printf("Starting server on %s upstream=%s", cfg.Addr, cfg.UpstreamSearchURL)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server error: %v", err)
	}
	log.Println("server stopped")
}

func pruneSessions(ctx context.Context, sessions *assistant.Sessions) {
	ticker := time.NewTicker(sessionIdle / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := sessions.Prune(sessionIdle); n > 0 {
				log.Printf("sessions pruned=%d live=%d", n, sessions.Len())
			}
		}
	}
}

func mustOpenDB(dsn string) *pgxpool.Pool {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("cannot create db pool: %v", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		log.Fatalf("cannot ping database (%s): %v", redactDSN(dsn), err)
	}
	log.Println("database connection OK")
	return pool
}

func redactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
