package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/unicode/norm"
	"pgregory.net/rapid"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Intent
	}{
		{"recommendation request", "고양이에 대한 책 추천해줘", Search},
		{"small talk", "오늘 날씨 어때", Chat},
		{"empty", "", Chat},
		{"whitespace", "   ", Chat},
		{"novel", "재미있는 소설 있어?", Search},
		{"want to read", "뭔가 읽고 싶어", Search},
		{"textbook", "미적분 교재", Search},
		{"search verb", "데이터베이스 검색", Search},
		{"find", "이거 찾아줘", Search},
		{"greeting", "안녕하세요", Chat},
		{"english", "recommend a book", Chat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

func TestClassify_DecomposedInput(t *testing.T) {
	assert.Equal(t, Search, Classify(norm.NFD.String("좋은 도서 알려줘")))
}

func TestClassifier_CustomVocabulary(t *testing.T) {
	c := NewClassifier([]string{"", "만화"})
	assert.Equal(t, Search, c.Classify("만화 보고 싶다"))
	assert.Equal(t, Chat, c.Classify("책 추천"))
	assert.Equal(t, Chat, c.Classify("아무거나"))
}

func TestChatContextKeywords(t *testing.T) {
	c := NewClassifier(ChatContextKeywords)
	assert.True(t, c.Matches("도서 찾기 도와줘"))
	assert.False(t, c.Matches("소설 얘기 하자"))
}

func TestProperty_KeywordAnywhereMeansSearch(t *testing.T) {
	filler := rapid.StringOfN(rapid.RuneFrom([]rune("가나다라마바사 abc123")), 0, 10, -1)
	rapid.Check(t, func(t *rapid.T) {
		k := rapid.SampledFrom(DefaultKeywords).Draw(t, "keyword")
		text := filler.Draw(t, "prefix") + k + filler.Draw(t, "suffix")
		if got := Classify(text); got != Search {
			t.Fatalf("classify(%q) = %s", text, got)
		}
	})
}

func TestProperty_NoKeywordMeansChat(t *testing.T) {
	// None of these runes occur in any keyword.
	text := rapid.StringOfN(rapid.RuneFrom([]rune("가나다라마바 xyz0")), 0, 20, -1)
	rapid.Check(t, func(t *rapid.T) {
		s := text.Draw(t, "text")
		if got := Classify(s); got != Chat {
			t.Fatalf("classify(%q) = %s", s, got)
		}
	})
}
