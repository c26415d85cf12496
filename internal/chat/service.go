package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"

	"bookchat/internal/intent"
)

const (
	NotConfiguredReply = "AI 채팅 기능을 사용하려면 LLM_API_KEY를 설정해주세요. 현재는 기본 응답 모드로 동작 중입니다."
	FailureReply       = "죄송합니다. AI 응답을 생성하는 중 오류가 발생했습니다."
	noResultsText      = "검색 결과가 없습니다."

	contextTopK = 3
)

// Completer generates a reply for a prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Searcher looks up books to put into the prompt.
type Searcher interface {
	Search(ctx context.Context, query string, topK int) (json.RawMessage, error)
}

type Service struct {
	llm      Completer
	searcher Searcher
	context  *intent.Classifier
}

// NewService builds the chat service. A nil llm answers every message with
// NotConfiguredReply.
func NewService(llm Completer, searcher Searcher) *Service {
	return &Service{
		llm:      llm,
		searcher: searcher,
		context:  intent.NewClassifier(intent.ChatContextKeywords),
	}
}

// Reply answers message. Failures are folded into the reply text.
func (s *Service) Reply(ctx context.Context, message string) string {
	if s.llm == nil {
		return NotConfiguredReply
	}

	prompt := message
	if s.context.Matches(message) {
		prompt = s.bookPrompt(ctx, message)
	}

	reply, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		log.Printf("chat llm_failed error=%v", err)
		return FailureReply
	}
	return reply
}

// Chat is Reply shaped for callers that expect an error return. It never fails.
func (s *Service) Chat(ctx context.Context, message string) (string, error) {
	return s.Reply(ctx, message), nil
}

func (s *Service) bookPrompt(ctx context.Context, message string) string {
	results := noResultsText
	if s.searcher != nil {
		raw, err := s.searcher.Search(ctx, message, contextTopK)
		switch {
		case err != nil:
			log.Printf("chat context_search_failed error=%v", err)
		case hasResults(raw):
			var buf bytes.Buffer
			if err := json.Indent(&buf, raw, "", "  "); err == nil {
				results = buf.String()
			}
		}
	}

	return fmt.Sprintf(`사용자 질문: %s

관련 도서 검색 결과:
%s

위 도서 정보를 참고하여 도움이 되는 답변을 해주세요. 도서 추천이나 관련 질문에 대해서는 구체적인 도서 정보를 포함하여 답변해주세요.`, message, results)
}

func hasResults(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return false
	}
	return !bytes.Equal(trimmed, []byte("[]"))
}
