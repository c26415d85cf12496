package book

// Field names a canonical record field.
type Field string

const (
	FieldTitle       Field = "title"
	FieldAuthor      Field = "author"
	FieldPublisher   Field = "publisher"
	FieldYear        Field = "year"
	FieldISBN        Field = "isbn"
	FieldCategory    Field = "category"
	FieldPages       Field = "pages"
	FieldLocation    Field = "location"
	FieldStatus      Field = "status"
	FieldDescription Field = "description"
	FieldImage       Field = "image"
)

// SynonymTable lists, per canonical field, the source keys probed in order.
// The canonical name comes first.
type SynonymTable map[Field][]string

// DefaultSynonyms covers the key names the upstream search service is known to emit.
var DefaultSynonyms = SynonymTable{
	FieldTitle:       {"title", "제목", "book_title", "name"},
	FieldAuthor:      {"author", "저자", "book_author", "writer"},
	FieldPublisher:   {"publisher", "출판사", "출판사명"},
	FieldYear:        {"year", "출판년도", "출판연도"},
	FieldISBN:        {"isbn", "ISBN"},
	FieldCategory:    {"category", "분류", "장르"},
	FieldPages:       {"pages", "페이지", "페이지수"},
	FieldLocation:    {"location", "위치", "서가위치"},
	FieldStatus:      {"status"},
	FieldDescription: {"description", "설명", "summary", "내용"},
	FieldImage:       {"image", "cover", "cover_url", "표지"},
}

// Lookup returns the first present value among the field's synonym keys.
func (t SynonymTable) Lookup(item map[string]any, f Field) (any, bool) {
	for _, key := range t[f] {
		v, ok := item[key]
		if !ok || isAbsent(v) {
			continue
		}
		return v, true
	}
	return nil, false
}

func isAbsent(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case []any:
		return len(x) == 0
	case map[string]any:
		return true
	}
	return false
}
