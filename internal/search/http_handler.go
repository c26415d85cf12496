package search

import (
	"log"
	"net/http"

	"bookchat/internal/httpx"
)

const errorMessage = "검색 중 오류가 발생했습니다."

type HTTPHandler struct {
	svc         *Service
	defaultTopK int
}

func NewHTTPHandler(svc *Service, defaultTopK int) *HTTPHandler {
	return &HTTPHandler{svc: svc, defaultTopK: defaultTopK}
}

// Request is the search body. Dataset fields sent by clients are ignored;
// the server's configured dataset is used.
type Request struct {
	Query string `json:"query" validate:"notblank"`
	TopK  int    `json:"top_k" validate:"gte=1,lte=50"`
}

// Search handles POST /search
// @Summary Search books
// @Description Proxies the semantic search service, falling back to the local catalog
// @Tags search
// @Accept json
// @Produce json
// @Param request body Request true "Search request"
// @Success 200 {array} book.Record
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /search [post]
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	req := Request{TopK: h.defaultTopK}
	if !httpx.DecodeAndValidate(w, r, &req) {
		return
	}

	raw, err := h.svc.Search(r.Context(), req.Query, req.TopK)
	if err != nil {
		log.Printf("search failed request_id=%s error=%v", httpx.RequestIDFrom(r), err)
		httpx.JSONError(w, r, http.StatusInternalServerError, "SEARCH_FAILED", errorMessage, nil)
		return
	}

	httpx.WriteRawJSON(w, http.StatusOK, raw)
}
