//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=assistant

package assistant

import (
	"context"
	"encoding/json"

	"bookchat/internal/book"
)

// Searcher runs a book search and returns the raw payload.
type Searcher interface {
	Search(ctx context.Context, query string, topK int) (json.RawMessage, error)
}

// Chatter forwards a free-form message and returns the reply.
type Chatter interface {
	Chat(ctx context.Context, message string) (string, error)
}

// Renderer displays the conversation.
type Renderer interface {
	UserMessage(text string)
	AssistantMessage(text string)
	StartLoading(text string)
	StopLoading()
	Gallery(records []book.Record)
}
