package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"bookchat/internal/book"
)

// TestRecord is a fully populated book record for handler tests.
var TestRecord = book.Record{
	Title:       "채식주의자",
	Author:      "한강",
	Publisher:   "창비",
	Year:        "2007",
	ISBN:        "978-89-364-3734-4",
	Category:    "소설",
	Pages:       "247",
	Location:    "문학관 3층",
	Status:      book.StatusAvailable,
	Description: "연작 소설.",
}

// NewRequest creates a request for testing. A string body is sent as is,
// anything else is encoded as JSON.
func NewRequest(method, path string, body any) *http.Request {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}
	r := httptest.NewRequest(method, path, reader)
	if reader != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	return r
}

// RecordResponse is a decoded HTTP response.
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]any
}

// RecordHTTPResponse decodes the recorded response body as a JSON object.
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]any
	if len(bodyBytes) > 0 {
		_ = json.Unmarshal(bodyBytes, &bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}

// ErrorCode returns error.code from an error envelope, or "".
func (r RecordResponse) ErrorCode() string {
	errObj, _ := r.Body["error"].(map[string]any)
	code, _ := errObj["code"].(string)
	return code
}
