package bookservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

var (
	// ErrNetwork is returned when the service could not be reached or answered
	// with a non-2xx status.
	ErrNetwork = errors.New("book service unreachable")
	// ErrUnexpectedBody is returned when a 2xx response body cannot be decoded.
	ErrUnexpectedBody = errors.New("unexpected response body")
)

// StatusError is a non-2xx answer from the service.
type StatusError struct {
	Endpoint   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status code: %d", e.Endpoint, e.StatusCode)
}

// Is makes a StatusError match ErrNetwork.
func (e *StatusError) Is(target error) bool {
	return target == ErrNetwork
}

// Dataset selects the embedding index the search service queries.
type Dataset struct {
	NPZ       string
	Meta      string
	SourceCSV string
	Randomize bool
}

// DefaultDataset is the dataset the search service ships with.
var DefaultDataset = Dataset{
	NPZ:       "books_emb.npz",
	Meta:      "books_meta.csv",
	SourceCSV: "book.csv",
	Randomize: true,
}

const DefaultTimeout = 30 * time.Second

type Options struct {
	Dataset Dataset
	Timeout time.Duration
	// RPS caps outbound requests per second. Zero disables the limiter.
	RPS        float64
	HTTPClient *http.Client
}

// Client talks to the book search service's /search and /chat endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
	dataset    Dataset
	limiter    *rate.Limiter
	tracer     trace.Tracer
}

func NewClient(baseURL string, opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	dataset := opts.Dataset
	if dataset == (Dataset{}) {
		dataset = DefaultDataset
	}
	limiter := rate.NewLimiter(rate.Inf, 1)
	if opts.RPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RPS), 1)
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		dataset:    dataset,
		limiter:    limiter,
		tracer:     otel.Tracer("bookchat/bookservice"),
	}
}

type searchRequest struct {
	NPZ       string `json:"npz"`
	Meta      string `json:"meta"`
	Query     string `json:"query"`
	TopK      int    `json:"top_k"`
	SourceCSV string `json:"source_csv"`
	Randomize bool   `json:"randomize"`
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// Search posts query to /search and returns the raw JSON body. The body's
// shape is left to the caller.
func (c *Client) Search(ctx context.Context, query string, topK int) (json.RawMessage, error) {
	ctx, span := c.tracer.Start(ctx, "bookservice.search",
		trace.WithAttributes(
			attribute.String("search.query", query),
			attribute.Int("search.top_k", topK),
		),
	)
	defer span.End()

	body, err := c.post(ctx, "/search", searchRequest{
		NPZ:       c.dataset.NPZ,
		Meta:      c.dataset.Meta,
		Query:     query,
		TopK:      topK,
		SourceCSV: c.dataset.SourceCSV,
		Randomize: c.dataset.Randomize,
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if !json.Valid(body) {
		err := fmt.Errorf("search: %w", ErrUnexpectedBody)
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("response.bytes", len(body)))
	return json.RawMessage(body), nil
}

// Chat posts message to /chat and returns the reply. A response without a
// reply yields "".
func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "bookservice.chat")
	defer span.End()

	body, err := c.post(ctx, "/chat", chatRequest{Message: message})
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	var res chatResponse
	if err := json.Unmarshal(body, &res); err != nil {
		err = fmt.Errorf("chat: %w: %v", ErrUnexpectedBody, err)
		span.RecordError(err)
		return "", err
	}
	span.SetAttributes(attribute.Bool("reply.empty", res.Reply == ""))
	return res.Reply, nil
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrNetwork, err)
	}

	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s request: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Endpoint: path, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrNetwork, err)
	}
	return body, nil
}
