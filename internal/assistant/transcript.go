package assistant

import (
	"bookchat/internal/book"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Entry struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// Transcript is a Renderer that records what would be shown.
type Transcript struct {
	Entries     []Entry           `json:"entries"`
	GalleryView *book.GalleryView `json:"gallery,omitempty"`
	Records     []book.Record     `json:"records,omitempty"`

	loading     string
	loadingSeen int
}

func NewTranscript() *Transcript {
	return &Transcript{Entries: []Entry{}}
}

func (t *Transcript) UserMessage(text string) {
	t.Entries = append(t.Entries, Entry{Role: RoleUser, Text: text})
}

func (t *Transcript) AssistantMessage(text string) {
	t.Entries = append(t.Entries, Entry{Role: RoleAssistant, Text: text})
}

func (t *Transcript) StartLoading(text string) {
	t.loading = text
	t.loadingSeen++
}

func (t *Transcript) StopLoading() {
	t.loading = ""
}

func (t *Transcript) Gallery(records []book.Record) {
	view := book.Gallery(records)
	t.GalleryView = &view
	t.Records = records
}

// Loading returns the loading text currently shown, or "".
func (t *Transcript) Loading() string {
	return t.loading
}

// LoadingCount returns how many times a loading indicator was shown.
func (t *Transcript) LoadingCount() int {
	return t.loadingSeen
}

// AssistantTexts returns the assistant messages in order.
func (t *Transcript) AssistantTexts() []string {
	var out []string
	for _, e := range t.Entries {
		if e.Role == RoleAssistant {
			out = append(out, e.Text)
		}
	}
	return out
}
