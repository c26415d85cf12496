package book

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalizer turns raw search payloads into canonical records.
type Normalizer struct {
	synonyms SynonymTable
}

// NewNormalizer creates a normalizer over the given synonym table.
func NewNormalizer(synonyms SynonymTable) *Normalizer {
	return &Normalizer{synonyms: synonyms}
}

var defaultNormalizer = NewNormalizer(DefaultSynonyms)

// Normalize normalizes raw with DefaultSynonyms.
func Normalize(raw []byte) ([]Record, error) {
	return defaultNormalizer.Normalize(raw)
}

// Normalize decodes raw and normalizes every item it carries.
func (n *Normalizer) Normalize(raw []byte) ([]Record, error) {
	p, err := DecodePayload(raw)
	if err != nil {
		return nil, err
	}
	return n.NormalizePayload(p)
}

// NormalizePayload builds records for the payload's items and drops the ones
// without a usable title.
func (n *Normalizer) NormalizePayload(p Payload) ([]Record, error) {
	if p.Shape == ShapeUnrecognized {
		return nil, ErrUnexpectedShape
	}

	records := make([]Record, 0, len(p.Items))
	uncertain := 0
	for i, item := range p.Items {
		rec := n.normalizeItem(item, i+1)
		if !hasUsableTitle(rec.Title) {
			continue
		}
		if rec.StatusUncertain {
			uncertain++
		}
		records = append(records, rec)
	}

	log.Printf("normalize shape=%s items=%d kept=%d status_uncertain=%d", p.Shape, len(p.Items), len(records), uncertain)

	if len(records) == 0 {
		return nil, ErrNoValidResults
	}
	return records, nil
}

func (n *Normalizer) normalizeItem(item any, position int) Record {
	fields, _ := item.(map[string]any)

	text := func(f Field, def string) string {
		if v, ok := n.synonyms.Lookup(fields, f); ok {
			if s, ok := stringify(v); ok {
				return s
			}
		}
		return def
	}

	rec := Record{
		Title:       text(FieldTitle, PlaceholderTitle(position)),
		Author:      text(FieldAuthor, DefaultAuthor),
		Publisher:   text(FieldPublisher, ""),
		Year:        text(FieldYear, ""),
		ISBN:        text(FieldISBN, ""),
		Category:    text(FieldCategory, ""),
		Pages:       text(FieldPages, ""),
		Location:    text(FieldLocation, ""),
		Description: text(FieldDescription, DefaultDescription),
		Image:       text(FieldImage, ""),
	}

	raw, _ := n.synonyms.Lookup(fields, FieldStatus)
	status, ok := CanonicalStatus(raw)
	rec.Status = status
	rec.StatusUncertain = !ok
	return rec
}

func hasUsableTitle(title string) bool {
	if strings.TrimSpace(title) == "" {
		return false
	}
	return !strings.Contains(norm.NFC.String(title), PlaceholderMarker)
}

// stringify renders a scalar JSON value as text. String arrays are joined.
func stringify(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case json.Number:
		return x.String(), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(x), true
	case []any:
		parts := make([]string, 0, len(x))
		for _, e := range x {
			if s, ok := stringify(e); ok && s != "" {
				parts = append(parts, s)
			}
		}
		if len(parts) == 0 {
			return "", false
		}
		return strings.Join(parts, ", "), true
	}
	return "", false
}

// CanonicalStatus maps a raw status value onto the status enum. The boolean is
// false when the value was missing or not recognized and the default was used.
func CanonicalStatus(raw any) (Status, bool) {
	switch x := raw.(type) {
	case Status:
		return CanonicalStatus(string(x))
	case string:
		return canonicalStatusText(x)
	case bool:
		if x {
			return StatusAvailable, true
		}
		return StatusBorrowed, true
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return StatusAvailable, false
		}
		return statusFromCount(f), true
	case float64:
		return statusFromCount(x), true
	}
	return StatusAvailable, false
}

// statusFromCount reads a numeric status as the number of copies on the shelf.
func statusFromCount(n float64) Status {
	if n > 0 {
		return StatusAvailable
	}
	return StatusBorrowed
}

func canonicalStatusText(s string) (Status, bool) {
	lower := strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
	switch {
	case strings.Contains(lower, "가능") || strings.Contains(lower, "available"):
		return StatusAvailable, true
	case strings.Contains(lower, "borrowed") || strings.Contains(lower, "대출") || lower == "대출중":
		return StatusBorrowed, true
	}
	if lower != "" {
		log.Printf("normalize status_unrecognized value=%q default=%s", s, StatusAvailable)
	}
	return StatusAvailable, false
}

// String renders a record for log lines.
func (r Record) String() string {
	return fmt.Sprintf("%q by %q (%s)", r.Title, r.Author, r.Status)
}
