package fallback

import (
	"context"
	"fmt"

	"bookchat/internal/book"
)

// MaxResults caps how many fallback items a single search returns.
const MaxResults = 10

// Source provides the catalog served when the upstream search fails.
type Source interface {
	Books(ctx context.Context) ([]book.Record, error)
}

// Cycle returns min(topK, MaxResults) records taken round-robin from catalog.
// Repeats get " 제<n>권" appended to the title, n being the 1-based position.
func Cycle(catalog []book.Record, topK int) []book.Record {
	if len(catalog) == 0 || topK <= 0 {
		return []book.Record{}
	}
	n := min(topK, MaxResults)

	out := make([]book.Record, 0, n)
	for i := 0; i < n; i++ {
		r := catalog[i%len(catalog)]
		if i >= len(catalog) {
			r.Title = fmt.Sprintf("%s 제%d권", r.Title, i+1)
		}
		out = append(out, r)
	}
	return out
}

// StaticSource serves a fixed catalog.
type StaticSource struct {
	books []book.Record
}

func NewStaticSource(books []book.Record) *StaticSource {
	return &StaticSource{books: books}
}

func (s *StaticSource) Books(ctx context.Context) ([]book.Record, error) {
	out := make([]book.Record, len(s.books))
	copy(out, s.books)
	return out, nil
}

// SampleBooks is the built-in catalog.
var SampleBooks = []book.Record{
	{
		Title:       "컴퓨터 과학과 수학의 만남",
		Author:      "김철수",
		Status:      book.StatusAvailable,
		Description: "컴퓨터 과학의 기초가 되는 수학적 개념들을 쉽게 설명한 입문서입니다. 알고리즘의 복잡도 분석부터 암호학의 수학적 원리까지 다룹니다.",
		Publisher:   "한빛미디어",
		Year:        "2023",
		Category:    "컴퓨터공학",
		Location:    "공학도서관 2층",
		ISBN:        "978-89-123-4567-8",
		Pages:       "320",
	},
	{
		Title:       "알고리즘과 이산수학",
		Author:      "이영호",
		Status:      book.StatusBorrowed,
		Description: "프로그래밍 알고리즘에 필요한 이산수학의 핵심 개념을 다룹니다. 그래프 이론, 조합론, 논리학 등을 포함합니다.",
		Publisher:   "생록출판",
		Year:        "2022",
		Category:    "수학",
		Location:    "과학도서관 3층",
		ISBN:        "978-89-234-5678-9",
		Pages:       "280",
	},
	{
		Title:       "수학으로 이해하는 인공지능",
		Author:      "박민수",
		Status:      book.StatusAvailable,
		Description: "AI와 머신러닝의 수학적 원리를 고등학생도 이해할 수 있게 설명합니다. 선형대수, 미적분, 확률론의 기초부터 시작합니다.",
		Publisher:   "에이콘출판",
		Year:        "2024",
		Category:    "인공지능",
		Location:    "전산도서관 1층",
		ISBN:        "978-89-345-6789-0",
		Pages:       "400",
	},
}
