package book

import (
	"fmt"
	"strings"
)

const (
	GalleryLimit = 6

	galleryTitleRunes  = 40
	galleryAuthorRunes = 20
	cardDescRunes      = 100
)

// Card is one book tile in the gallery or the full list.
type Card struct {
	Record
	DisplayTitle       string `json:"display_title"`
	DisplayAuthor      string `json:"display_author"`
	DisplayDescription string `json:"display_description,omitempty"`
	StatusLabel        string `json:"status_label"`
}

// GalleryView is the compact result gallery shown under a search reply.
type GalleryView struct {
	Cards     []Card `json:"cards"`
	Total     int    `json:"total"`
	More      int    `json:"more"`
	MoreLabel string `json:"more_label,omitempty"`
}

// ListView is the full result list opened from the gallery.
type ListView struct {
	Heading string `json:"heading"`
	Cards   []Card `json:"cards"`
}

// Gallery builds the gallery for the first GalleryLimit records.
func Gallery(records []Record) GalleryView {
	shown := records
	if len(shown) > GalleryLimit {
		shown = shown[:GalleryLimit]
	}

	view := GalleryView{
		Cards: make([]Card, 0, len(shown)),
		Total: len(records),
	}
	for _, r := range shown {
		view.Cards = append(view.Cards, Card{
			Record:        r,
			DisplayTitle:  truncate(r.Title, galleryTitleRunes),
			DisplayAuthor: truncate(r.Author, galleryAuthorRunes),
			StatusLabel:   r.Status.Label(),
		})
	}
	if len(records) > GalleryLimit {
		view.More = len(records) - GalleryLimit
		view.MoreLabel = fmt.Sprintf("더 많은 추천 보기 (%d권 더)", view.More)
	}
	return view
}

// List builds the full list of records.
func List(records []Record) ListView {
	view := ListView{
		Heading: fmt.Sprintf("전체 추천 도서 목록 (%d권)", len(records)),
		Cards:   make([]Card, 0, len(records)),
	}
	for _, r := range records {
		view.Cards = append(view.Cards, Card{
			Record:             r,
			DisplayTitle:       r.Title,
			DisplayAuthor:      r.Author,
			DisplayDescription: truncate(r.Description, cardDescRunes),
			StatusLabel:        r.Status.Label(),
		})
	}
	return view
}

// Details renders the per-book detail text. Blank metadata lines are omitted.
func Details(r Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📖 \"%s\" 상세 정보\n\n", r.Title)
	fmt.Fprintf(&b, "저자: %s\n", r.Author)
	fmt.Fprintf(&b, "상태: %s\n", r.Status.Label())

	optional := []struct {
		label, value string
	}{
		{"출판사", r.Publisher},
		{"출판연도", r.Year},
		{"분류", r.Category},
		{"위치", r.Location},
		{"ISBN", r.ISBN},
		{"페이지", r.Pages},
	}
	for _, o := range optional {
		if strings.TrimSpace(o.value) == "" {
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", o.label, o.value)
	}

	if strings.TrimSpace(r.Description) != "" && r.Description != DefaultDescription {
		fmt.Fprintf(&b, "\n🔍 내용 소개:\n%s", r.Description)
	}
	return b.String()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
