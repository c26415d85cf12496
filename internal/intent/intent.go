package intent

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Intent is the routing decision for one user input.
type Intent string

const (
	Search Intent = "search"
	Chat   Intent = "chat"
)

// DefaultKeywords is the vocabulary that marks an input as a book search.
var DefaultKeywords = []string{
	"책", "도서", "검색", "찾아", "추천",
	"책 추천", "도서 추천", "읽고 싶",
	"소설", "교재", "참고서",
}

// ChatContextKeywords marks a chat message that should be answered with
// search results in the prompt.
var ChatContextKeywords = []string{"책", "도서", "검색", "추천", "책 찾기", "도서 찾기"}

// Classifier matches input text against a keyword vocabulary.
type Classifier struct {
	keywords []string
}

// NewClassifier returns a classifier over keywords. Keywords are NFC-normalized.
func NewClassifier(keywords []string) *Classifier {
	normalized := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = norm.NFC.String(k); k != "" {
			normalized = append(normalized, k)
		}
	}
	return &Classifier{keywords: normalized}
}

// Matches reports whether text contains any keyword.
func (c *Classifier) Matches(text string) bool {
	text = norm.NFC.String(text)
	for _, k := range c.keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// Classify returns Search when text contains a keyword and Chat otherwise.
func (c *Classifier) Classify(text string) Intent {
	if c.Matches(text) {
		return Search
	}
	return Chat
}

var defaultClassifier = NewClassifier(DefaultKeywords)

// Classify classifies text against DefaultKeywords.
func Classify(text string) Intent {
	return defaultClassifier.Classify(text)
}
