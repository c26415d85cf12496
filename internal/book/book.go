package book

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedShape is returned when a search payload is neither an array,
	// an object with a "results" array, nor a plain object.
	ErrUnexpectedShape = errors.New("unexpected response shape")
	// ErrNoValidResults is returned when no item survives normalization.
	ErrNoValidResults = errors.New("no valid book records")
)

// Status is the canonical availability of a book.
type Status string

const (
	StatusAvailable Status = "available"
	StatusBorrowed  Status = "borrowed"
)

// Label returns the localized status label shown next to a book.
func (s Status) Label() string {
	if s == StatusAvailable {
		return "대출가능"
	}
	return "대출중"
}

const (
	DefaultAuthor      = "저자 미상"
	DefaultDescription = "설명이 없습니다."

	// PlaceholderMarker prefixes the synthesized title of an untitled item.
	PlaceholderMarker = "도서 #"
)

// PlaceholderTitle is the title given to the n-th (1-based) item without one.
func PlaceholderTitle(n int) string {
	return fmt.Sprintf("%s%d", PlaceholderMarker, n)
}

// Record is the canonical book record built from one raw search item.
type Record struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	Publisher       string `json:"publisher"`
	Year            string `json:"year"`
	ISBN            string `json:"isbn"`
	Category        string `json:"category"`
	Pages           string `json:"pages"`
	Location        string `json:"location"`
	Status          Status `json:"status"`
	StatusUncertain bool   `json:"-"`
	Description     string `json:"description"`
	Image           string `json:"image,omitempty"`
}
