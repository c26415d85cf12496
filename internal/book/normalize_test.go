package book

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"
)

func TestNormalize_Shapes(t *testing.T) {
	item := `{"title":"채식주의자","author":"한강","status":"대출가능"}`

	t.Run("bare array", func(t *testing.T) {
		got, err := Normalize([]byte(`[` + item + `]`))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "채식주의자", got[0].Title)
	})

	t.Run("array and results wrapper are equivalent", func(t *testing.T) {
		bare, err := Normalize([]byte(`[` + item + `]`))
		require.NoError(t, err)
		wrapped, err := Normalize([]byte(`{"results":[` + item + `]}`))
		require.NoError(t, err)
		assert.Equal(t, bare, wrapped)
	})

	t.Run("single object", func(t *testing.T) {
		got, err := Normalize([]byte(item))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "한강", got[0].Author)
	})

	t.Run("results that is not an array is a single object", func(t *testing.T) {
		got, err := Normalize([]byte(`{"title":"소년이 온다","results":"none"}`))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "소년이 온다", got[0].Title)
	})

	for name, raw := range map[string]string{
		"number":         `42`,
		"string":         `"books"`,
		"null":           `null`,
		"boolean":        `true`,
		"garbage":        `{not json`,
		"trailing value": `[{"title":"a"}] trailing`,
		"two documents":  `[{"title":"a"}] [{"title":"b"}]`,
		"stray bracket":  `{"title":"a"}]`,
	} {
		t.Run("unexpected shape "+name, func(t *testing.T) {
			_, err := Normalize([]byte(raw))
			assert.ErrorIs(t, err, ErrUnexpectedShape)
		})
	}
}

func TestNormalize_Defaults(t *testing.T) {
	got, err := Normalize([]byte(`[{"title":"데미안"}]`))
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, Record{
		Title:           "데미안",
		Author:          DefaultAuthor,
		Status:          StatusAvailable,
		StatusUncertain: true,
		Description:     DefaultDescription,
	}, got[0])
}

func TestNormalize_TrailingWhitespaceIsAccepted(t *testing.T) {
	got, err := Normalize([]byte("[{\"title\":\"a\"}]\n\t "))
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestNormalize_CanonicalJSONIsFixedPoint(t *testing.T) {
	first, err := Normalize([]byte(`[{"title":"데미안","status":"분실"}]`))
	require.NoError(t, err)
	require.True(t, first[0].StatusUncertain)

	encoded, err := json.Marshal(first)
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), "status_uncertain")

	second, err := Normalize(encoded)
	require.NoError(t, err)
	reencoded, err := json.Marshal(second)
	require.NoError(t, err)
	assert.JSONEq(t, string(encoded), string(reencoded))
}

func TestNormalize_Synonyms(t *testing.T) {
	raw := `[{
		"제목": "토지",
		"writer": "박경리",
		"출판사명": "마로니에북스",
		"출판연도": 2012,
		"ISBN": "9788960530000",
		"장르": "소설",
		"페이지수": 488,
		"서가위치": "2층 A-13",
		"status": "대출중",
		"summary": "대하소설",
		"cover_url": "https://example.com/toji.jpg"
	}]`

	got, err := Normalize([]byte(raw))
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, Record{
		Title:       "토지",
		Author:      "박경리",
		Publisher:   "마로니에북스",
		Year:        "2012",
		ISBN:        "9788960530000",
		Category:    "소설",
		Pages:       "488",
		Location:    "2층 A-13",
		Status:      StatusBorrowed,
		Description: "대하소설",
		Image:       "https://example.com/toji.jpg",
	}, got[0])
}

func TestNormalize_SynonymOrder(t *testing.T) {
	t.Run("canonical key wins", func(t *testing.T) {
		got, err := Normalize([]byte(`[{"title":"A","제목":"B","name":"C"}]`))
		require.NoError(t, err)
		assert.Equal(t, "A", got[0].Title)
	})

	t.Run("empty and null values fall through", func(t *testing.T) {
		got, err := Normalize([]byte(`[{"title":"","제목":null,"book_title":"C"}]`))
		require.NoError(t, err)
		assert.Equal(t, "C", got[0].Title)
	})

	t.Run("string arrays are joined", func(t *testing.T) {
		got, err := Normalize([]byte(`[{"title":"공저","author":["김철수","이영호"]}]`))
		require.NoError(t, err)
		assert.Equal(t, "김철수, 이영호", got[0].Author)
	})

	t.Run("objects are not text", func(t *testing.T) {
		got, err := Normalize([]byte(`[{"title":"객체","author":{"name":"x"}}]`))
		require.NoError(t, err)
		assert.Equal(t, DefaultAuthor, got[0].Author)
	})
}

func TestNormalize_Filter(t *testing.T) {
	t.Run("blank title", func(t *testing.T) {
		_, err := Normalize([]byte(`{"results":[{"title":""}]}`))
		assert.ErrorIs(t, err, ErrNoValidResults)
	})

	t.Run("whitespace title", func(t *testing.T) {
		_, err := Normalize([]byte(`[{"title":"   "}]`))
		assert.ErrorIs(t, err, ErrNoValidResults)
	})

	t.Run("empty list", func(t *testing.T) {
		_, err := Normalize([]byte(`[]`))
		assert.ErrorIs(t, err, ErrNoValidResults)
	})

	t.Run("placeholder titles are dropped", func(t *testing.T) {
		got, err := Normalize([]byte(`[{"author":"무명"},{"title":"도서 #7 특별판"},{"title":"남는 책"}]`))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "남는 책", got[0].Title)
	})

	t.Run("non-object items are dropped", func(t *testing.T) {
		got, err := Normalize([]byte(`[1,"x",null,{"title":"살아남기"}]`))
		require.NoError(t, err)
		require.Len(t, got, 1)
	})
}

func TestCanonicalStatus(t *testing.T) {
	tests := []struct {
		raw       any
		want      Status
		certainty bool
	}{
		{"available", StatusAvailable, true},
		{"AVAILABLE", StatusAvailable, true},
		{"대출가능", StatusAvailable, true},
		{"대출 가능", StatusAvailable, true},
		{"대출중", StatusBorrowed, true},
		{"대출", StatusBorrowed, true},
		{"Borrowed", StatusBorrowed, true},
		{"unavailable", StatusAvailable, true},
		{"Not Available", StatusAvailable, true},
		{"borrowed, available soon", StatusAvailable, true},
		{"분실", StatusAvailable, false},
		{"", StatusAvailable, false},
		{nil, StatusAvailable, false},
		{true, StatusAvailable, true},
		{false, StatusBorrowed, true},
		{float64(2), StatusAvailable, true},
		{float64(0), StatusBorrowed, true},
		{StatusBorrowed, StatusBorrowed, true},
	}

	for _, tt := range tests {
		got, ok := CanonicalStatus(tt.raw)
		assert.Equal(t, tt.want, got, "raw=%v", tt.raw)
		assert.Equal(t, tt.certainty, ok, "raw=%v", tt.raw)
	}
}

func TestNormalize_AvailableSubstringWins(t *testing.T) {
	got, err := Normalize([]byte(`[{"title":"x","status":"unavailable"},{"title":"y","status":"대출 불가"}]`))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, StatusAvailable, got[0].Status)
	assert.False(t, got[0].StatusUncertain)
	assert.Equal(t, StatusBorrowed, got[1].Status)
}

func TestCanonicalStatus_DecomposedHangul(t *testing.T) {
	decomposed := norm.NFD.String("가능")
	require.NotEqual(t, "가능", decomposed)
	got, ok := CanonicalStatus("대출" + decomposed)
	assert.True(t, ok)
	assert.Equal(t, StatusAvailable, got)
}

func TestNormalizer_CustomSynonyms(t *testing.T) {
	table := SynonymTable{}
	for f, keys := range DefaultSynonyms {
		table[f] = keys
	}
	table[FieldTitle] = []string{"headline"}

	n := NewNormalizer(table)
	got, err := n.Normalize([]byte(`[{"headline":"맞춤 키","title":"무시"}]`))
	require.NoError(t, err)
	assert.Equal(t, "맞춤 키", got[0].Title)
}
