package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr string

	UpstreamSearchURL string
	SearchNPZ         string
	SearchMeta        string
	SearchSourceCSV   string
	SearchRandomize   bool
	SearchTopK        int
	UpstreamTimeout   time.Duration
	UpstreamRPS       float64

	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string

	DBDSN string

	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int

	OTLPEndpoint  string
	BookchatURL   string
	MigrationsDir string
}

// LoadEnvFiles reads .env and .env.local. Variables already present in the
// process environment win.
func LoadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// Load builds a Config from the environment.
func Load() Config {
	return Config{
		Addr: getEnv("APP_ADDR", ":8080"),

		UpstreamSearchURL: getEnv("UPSTREAM_SEARCH_URL", "http://localhost:8000"),
		SearchNPZ:         getEnv("SEARCH_NPZ", "books_emb.npz"),
		SearchMeta:        getEnv("SEARCH_META", "books_meta.csv"),
		SearchSourceCSV:   getEnv("SEARCH_SOURCE_CSV", "book.csv"),
		SearchRandomize:   getEnvBool("SEARCH_RANDOMIZE", true),
		SearchTopK:        getEnvInt("SEARCH_TOP_K", 6),
		UpstreamTimeout:   time.Duration(getEnvInt("UPSTREAM_TIMEOUT_SECONDS", 30)) * time.Second,
		UpstreamRPS:       getEnvFloat("UPSTREAM_RPS", 0),

		LLMBaseURL: getEnv("LLM_BASE_URL", "https://api.openai.com/v1"),
		LLMAPIKey:  getEnv("LLM_API_KEY", ""),
		LLMModel:   getEnv("LLM_MODEL", "gpt-4o-mini"),

		DBDSN: getEnv("DB_DSN", ""),

		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		RateLimitRPS:       getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 20),

		OTLPEndpoint:  getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		BookchatURL:   getEnv("BOOKCHAT_URL", "http://localhost:8080"),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "db/migrations"),
	}
}

// LLMEnabled reports whether an LLM key is configured.
func (c Config) LLMEnabled() bool {
	return c.LLMAPIKey != ""
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
