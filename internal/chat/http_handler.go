package chat

import (
	"net/http"

	"bookchat/internal/httpx"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

type Request struct {
	Message string `json:"message" validate:"notblank"`
}

type Response struct {
	Reply string `json:"reply"`
}

// Chat handles POST /chat
// @Summary Chat with the assistant
// @Description Answers a message, adding search results when it is about books
// @Tags chat
// @Accept json
// @Produce json
// @Param request body Request true "Chat message"
// @Success 200 {object} Response
// @Failure 400 {object} httpx.ErrorResponse
// @Router /chat [post]
func (h *HTTPHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req Request
	if !httpx.DecodeAndValidate(w, r, &req) {
		return
	}
	httpx.WriteJSON(w, http.StatusOK, Response{Reply: h.svc.Reply(r.Context(), req.Message)})
}
