package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"bookchat/internal/book"
	"bookchat/internal/intent"
	"bookchat/internal/platform/bookservice"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_SearchRendersInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	searcher := NewMockSearcher(ctrl)
	renderer := NewMockRenderer(ctrl)

	text := "고양이에 대한 책 추천해줘"
	searcher.EXPECT().Search(gomock.Any(), text, DefaultTopK).
		Return(json.RawMessage(`{"results":[{"title":"고양이","author":"베르나르 베르베르","status":"대출가능"}]}`), nil)

	gomock.InOrder(
		renderer.EXPECT().UserMessage(text),
		renderer.EXPECT().StartLoading(`"고양이에 대한 책 추천해줘"에 대해 처리하고 있습니다...`),
		renderer.EXPECT().StopLoading(),
		renderer.EXPECT().AssistantMessage(`"고양이에 대한 책 추천해줘"와 관련된 도서를 찾아드렸습니다:`),
		renderer.EXPECT().Gallery(gomock.Len(1)),
	)

	d := NewDispatcher(searcher, NewMockChatter(ctrl), Options{})
	res := d.Ask(context.Background(), NewSession(), text, renderer)

	assert.Equal(t, intent.Search, res.Intent)
	assert.Equal(t, OutcomeResults, res.Outcome)
	assert.True(t, res.FirstSearch)
	require.Len(t, res.Records, 1)
	assert.Equal(t, book.StatusAvailable, res.Records[0].Status)
}

func TestDispatcher_SearchErrors(t *testing.T) {
	tests := []struct {
		name    string
		raw     json.RawMessage
		err     error
		outcome Outcome
		message string
	}{
		{"status error", nil, &bookservice.StatusError{Endpoint: "/search", StatusCode: 502}, OutcomeNetworkError, msgSearchFailed},
		{"transport error", nil, fmt.Errorf("/search: %w: dial tcp", bookservice.ErrNetwork), OutcomeNetworkError, msgSearchFailed},
		{"undecodable body", nil, bookservice.ErrUnexpectedBody, OutcomeUnexpectedShape, msgSearchFailed},
		{"scalar payload", json.RawMessage(`42`), nil, OutcomeUnexpectedShape, msgSearchFailed},
		{"blank titles only", json.RawMessage(`{"results":[{"title":""}]}`), nil, OutcomeNoResults, msgNoResults},
		{"empty list", json.RawMessage(`[]`), nil, OutcomeNoResults, msgNoResults},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			searcher := NewMockSearcher(ctrl)
			searcher.EXPECT().Search(gomock.Any(), "소설", DefaultTopK).Return(tt.raw, tt.err)

			tr := NewTranscript()
			res := NewDispatcher(searcher, NewMockChatter(ctrl), Options{}).Ask(context.Background(), NewSession(), "소설", tr)

			assert.Equal(t, tt.outcome, res.Outcome)
			assert.Equal(t, []string{tt.message}, tr.AssistantTexts())
			assert.Empty(t, tr.Loading())
			assert.Nil(t, tr.GalleryView)
		})
	}
}

func TestDispatcher_Chat(t *testing.T) {
	tests := []struct {
		name    string
		reply   string
		err     error
		outcome Outcome
		want    string
	}{
		{"reply", "맑아요", nil, OutcomeReply, "맑아요"},
		{"empty reply", "", nil, OutcomeReply, msgEmptyReply},
		{"whitespace reply", "  \n", nil, OutcomeReply, msgEmptyReply},
		{"error", "", bookservice.ErrNetwork, OutcomeChatError, msgChatFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			chatter := NewMockChatter(ctrl)
			chatter.EXPECT().Chat(gomock.Any(), "오늘 날씨 어때").Return(tt.reply, tt.err)

			tr := NewTranscript()
			res := NewDispatcher(NewMockSearcher(ctrl), chatter, Options{}).Ask(context.Background(), NewSession(), "  오늘 날씨 어때 ", tr)

			assert.Equal(t, intent.Chat, res.Intent)
			assert.Equal(t, tt.outcome, res.Outcome)
			assert.Equal(t, []Entry{
				{Role: RoleUser, Text: "오늘 날씨 어때"},
				{Role: RoleAssistant, Text: tt.want},
			}, tr.Entries)
			assert.Equal(t, 1, tr.LoadingCount())
		})
	}
}

func TestDispatcher_BlankInputIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := NewSession()
	tr := NewTranscript()
	res := NewDispatcher(NewMockSearcher(ctrl), NewMockChatter(ctrl), Options{}).Ask(context.Background(), s, "   ", tr)

	assert.Equal(t, OutcomeIgnored, res.Outcome)
	assert.Empty(t, tr.Entries)
	assert.Equal(t, 0, tr.LoadingCount())
	assert.True(t, s.FirstSearch())
}

func TestDispatcher_FirstSearchFlipsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	chatter := NewMockChatter(ctrl)
	chatter.EXPECT().Chat(gomock.Any(), gomock.Any()).Return("", errors.New("down")).Times(2)

	d := NewDispatcher(NewMockSearcher(ctrl), chatter, Options{})
	s := NewSession()

	first := d.Ask(context.Background(), s, "안녕", NewTranscript())
	second := d.Ask(context.Background(), s, "안녕", NewTranscript())

	assert.True(t, first.FirstSearch)
	assert.False(t, second.FirstSearch)
	assert.False(t, s.FirstSearch())
}

func TestDispatcher_CustomTopK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	searcher := NewMockSearcher(ctrl)
	searcher.EXPECT().Search(gomock.Any(), "도서", 12).Return(json.RawMessage(`[{"title":"a"}]`), nil)

	res := NewDispatcher(searcher, nil, Options{TopK: 12}).Ask(context.Background(), NewSession(), "도서", NewTranscript())
	assert.Equal(t, OutcomeResults, res.Outcome)
}

func TestDispatcher_NewQueryCancelsInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	searcher := NewMockSearcher(ctrl)

	started := make(chan struct{})
	searcher.EXPECT().Search(gomock.Any(), "느린 책", DefaultTopK).
		DoAndReturn(func(ctx context.Context, query string, topK int) (json.RawMessage, error) {
			close(started)
			<-ctx.Done()
			return nil, fmt.Errorf("/search: %w: %w", bookservice.ErrNetwork, ctx.Err())
		})
	searcher.EXPECT().Search(gomock.Any(), "빠른 책", DefaultTopK).
		Return(json.RawMessage(`[{"title":"빠른 책"}]`), nil)

	d := NewDispatcher(searcher, nil, Options{})
	s := NewSession()

	slow := NewTranscript()
	slowResult := make(chan Result, 1)
	go func() {
		slowResult <- d.Ask(context.Background(), s, "느린 책", slow)
	}()

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("slow search never started")
	}

	fast := NewTranscript()
	fastRes := d.Ask(context.Background(), s, "빠른 책", fast)
	assert.Equal(t, OutcomeResults, fastRes.Outcome)

	var res Result
	select {
	case res = <-slowResult:
	case <-time.After(2 * time.Second):
		t.Fatal("slow search was not canceled")
	}
	assert.Equal(t, OutcomeCanceled, res.Outcome)
	assert.Empty(t, slow.AssistantTexts())
	assert.Empty(t, slow.Loading())
}
