package assistant

import (
	"net/http"

	"bookchat/internal/book"
	"bookchat/internal/httpx"
)

type HTTPHandler struct {
	dispatcher *Dispatcher
	sessions   *Sessions
}

func NewHTTPHandler(dispatcher *Dispatcher, sessions *Sessions) *HTTPHandler {
	return &HTTPHandler{dispatcher: dispatcher, sessions: sessions}
}

type AskRequest struct {
	Text      string `json:"text" validate:"max=2000"`
	SessionID string `json:"session_id,omitempty" validate:"omitempty,uuid"`
}

type AskResponse struct {
	SessionID   string            `json:"session_id"`
	Intent      string            `json:"intent,omitempty"`
	Outcome     Outcome           `json:"outcome"`
	FirstSearch bool              `json:"first_search"`
	Entries     []Entry           `json:"entries"`
	Gallery     *book.GalleryView `json:"gallery,omitempty"`
	List        *book.ListView    `json:"list,omitempty"`
	Details     []string          `json:"details,omitempty"`
}

// Ask handles POST /v1/ask
// @Summary Ask the assistant
// @Description Classifies the text, runs a search or a chat, and returns what to render
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body AskRequest true "User input"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /v1/ask [post]
func (h *HTTPHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if !httpx.DecodeAndValidate(w, r, &req) {
		return
	}

	session := h.sessions.Get(req.SessionID)
	tr := NewTranscript()
	res := h.dispatcher.Ask(r.Context(), session, req.Text, tr)

	resp := AskResponse{
		SessionID:   session.ID,
		Intent:      string(res.Intent),
		Outcome:     res.Outcome,
		FirstSearch: res.FirstSearch,
		Entries:     tr.Entries,
		Gallery:     tr.GalleryView,
	}
	if len(res.Records) > 0 {
		list := book.List(res.Records)
		resp.List = &list
		resp.Details = make([]string, 0, len(res.Records))
		for _, rec := range res.Records {
			resp.Details = append(resp.Details, book.Details(rec))
		}
	}

	w.Header().Set(httpx.SessionIDHeader, session.ID)
	httpx.JSONSuccess(w, r, resp, nil)
}
