package http

import (
	"net/http"
	"strings"

	"car-shopper/service"
)

type askRequest struct {
	Question string `json:"question" validate:"required"`
}

type AssistantHandler struct {
	service *service.AssistantService
}

func NewAssistantHandler(service *service.AssistantService) *AssistantHandler {
	return &AssistantHandler{service: service}
}

// Messages handles GET, POST and DELETE on /assistant/messages.
func (h *AssistantHandler) Messages(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, r, http.StatusOK, h.service.History())

	case http.MethodPost:
		var req askRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, err)
			return
		}
		exchange, err := h.service.Ask(r.Context(), req.Question)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusCreated, exchange)

	case http.MethodDelete:
		h.service.Clear()
		w.WriteHeader(http.StatusNoContent)

	default:
		methodNotAllowed(w, strings.Join([]string{http.MethodGet, http.MethodPost, http.MethodDelete}, ", "))
	}
}

func (h *AssistantHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	writeJSON(w, r, http.StatusOK, h.service.Suggestions())
}
