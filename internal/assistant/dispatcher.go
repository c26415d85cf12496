package assistant

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"bookchat/internal/book"
	"bookchat/internal/intent"
	"bookchat/internal/platform/bookservice"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const DefaultTopK = 6

const (
	msgSearchFailed = "도서 검색 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요."
	msgNoResults    = "죄송합니다. 관련된 도서를 찾을 수 없습니다. 다른 키워드로 검색해보세요."
	msgChatFailed   = "AI와의 채팅 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요."
	msgEmptyReply   = "응답을 받을 수 없습니다."
)

// Outcome is how one round trip ended.
type Outcome string

const (
	OutcomeIgnored         Outcome = "ignored"
	OutcomeResults         Outcome = "results"
	OutcomeReply           Outcome = "reply"
	OutcomeNoResults       Outcome = "no_results"
	OutcomeNetworkError    Outcome = "network_error"
	OutcomeUnexpectedShape Outcome = "unexpected_shape"
	OutcomeChatError       Outcome = "chat_error"
	OutcomeCanceled        Outcome = "canceled"
)

// Result summarizes a dispatched input.
type Result struct {
	Intent      intent.Intent `json:"intent,omitempty"`
	Outcome     Outcome       `json:"outcome"`
	FirstSearch bool          `json:"first_search"`
	Records     []book.Record `json:"-"`
}

func LoadingText(text string) string {
	return fmt.Sprintf("\"%s\"에 대해 처리하고 있습니다...", text)
}

func ResultsHeader(text string) string {
	return fmt.Sprintf("\"%s\"와 관련된 도서를 찾아드렸습니다:", text)
}

type Options struct {
	TopK       int
	Classifier *intent.Classifier
	Normalizer *book.Normalizer
}

// Dispatcher routes user input to search or chat and renders the outcome.
type Dispatcher struct {
	searcher   Searcher
	chatter    Chatter
	classifier *intent.Classifier
	normalizer *book.Normalizer
	topK       int
	tracer     trace.Tracer
}

func NewDispatcher(searcher Searcher, chatter Chatter, opts Options) *Dispatcher {
	d := &Dispatcher{
		searcher:   searcher,
		chatter:    chatter,
		classifier: opts.Classifier,
		normalizer: opts.Normalizer,
		topK:       opts.TopK,
		tracer:     otel.Tracer("bookchat/assistant"),
	}
	if d.classifier == nil {
		d.classifier = intent.NewClassifier(intent.DefaultKeywords)
	}
	if d.normalizer == nil {
		d.normalizer = book.NewNormalizer(book.DefaultSynonyms)
	}
	if d.topK <= 0 {
		d.topK = DefaultTopK
	}
	return d
}

// Ask handles one submission in session s. A newer Ask on the same session
// cancels this one; a canceled round trip renders nothing after the loading
// indicator is removed. Errors never escape: each is rendered as one message.
func (d *Dispatcher) Ask(ctx context.Context, s *Session, text string, r Renderer) Result {
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{Outcome: OutcomeIgnored, FirstSearch: s.FirstSearch()}
	}

	ctx, done, first := s.begin(ctx)
	defer done()

	in := d.classifier.Classify(text)
	ctx, span := d.tracer.Start(ctx, "assistant.ask",
		trace.WithAttributes(
			attribute.String("session.id", s.ID),
			attribute.String("intent", string(in)),
		),
	)
	defer span.End()

	r.UserMessage(text)
	r.StartLoading(LoadingText(text))

	var res Result
	if in == intent.Search {
		res = d.search(ctx, text, r)
	} else {
		res = d.chat(ctx, text, r)
	}
	res.Intent = in
	res.FirstSearch = first

	span.SetAttributes(attribute.String("outcome", string(res.Outcome)))
	log.Printf("assistant ask session=%s intent=%s outcome=%s records=%d", s.ID, in, res.Outcome, len(res.Records))
	return res
}

func (d *Dispatcher) search(ctx context.Context, text string, r Renderer) Result {
	records, err := d.fetchRecords(ctx, text)
	r.StopLoading()

	if err != nil {
		outcome := classifySearchError(ctx, err)
		switch outcome {
		case OutcomeCanceled:
			// superseded by a newer query
		case OutcomeNoResults:
			log.Printf("assistant no_valid_results query=%q", text)
			r.AssistantMessage(msgNoResults)
		case OutcomeUnexpectedShape:
			log.Printf("assistant unexpected_shape query=%q error=%v", text, err)
			r.AssistantMessage(msgSearchFailed)
		default:
			log.Printf("assistant network_error query=%q error=%v", text, err)
			r.AssistantMessage(msgSearchFailed)
		}
		return Result{Outcome: outcome}
	}

	r.AssistantMessage(ResultsHeader(text))
	r.Gallery(records)
	return Result{Outcome: OutcomeResults, Records: records}
}

func (d *Dispatcher) fetchRecords(ctx context.Context, text string) ([]book.Record, error) {
	raw, err := d.searcher.Search(ctx, text, d.topK)
	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return d.normalizer.Normalize(raw)
}

func classifySearchError(ctx context.Context, err error) Outcome {
	switch {
	case ctx.Err() != nil && errors.Is(err, context.Canceled):
		return OutcomeCanceled
	case errors.Is(err, book.ErrNoValidResults):
		return OutcomeNoResults
	case errors.Is(err, book.ErrUnexpectedShape), errors.Is(err, bookservice.ErrUnexpectedBody):
		return OutcomeUnexpectedShape
	default:
		return OutcomeNetworkError
	}
}

func (d *Dispatcher) chat(ctx context.Context, text string, r Renderer) Result {
	reply, err := d.chatter.Chat(ctx, text)
	r.StopLoading()

	if err != nil {
		if ctx.Err() != nil && errors.Is(err, context.Canceled) {
			return Result{Outcome: OutcomeCanceled}
		}
		log.Printf("assistant chat_error error=%v", err)
		r.AssistantMessage(msgChatFailed)
		return Result{Outcome: OutcomeChatError}
	}
	if ctx.Err() != nil {
		return Result{Outcome: OutcomeCanceled}
	}

	if strings.TrimSpace(reply) == "" {
		reply = msgEmptyReply
	}
	r.AssistantMessage(reply)
	return Result{Outcome: OutcomeReply}
}
