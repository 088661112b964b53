package http

import (
	"net/http"
	"strings"

	"car-shopper/domain"
	"car-shopper/logger"
	"car-shopper/service"
)

type compareRequest struct {
	CarID string `json:"car_id" validate:"required"`
}

type ComparisonHandler struct {
	service *service.ComparisonService
}

func NewComparisonHandler(service *service.ComparisonService) *ComparisonHandler {
	return &ComparisonHandler{service: service}
}

// Selection handles GET, POST and DELETE on /comparison.
func (h *ComparisonHandler) Selection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, r, http.StatusOK, h.service.List())

	case http.MethodPost:
		var req compareRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, err)
			return
		}
		if _, err := h.service.Add(req.CarID); err != nil {
			writeError(w, r, err)
			return
		}
		logger.FromContext(r.Context()).Info().Str("car_id", req.CarID).Msg("car added to comparison")
		writeJSON(w, r, http.StatusCreated, h.service.List())

	case http.MethodDelete:
		h.service.Clear()
		w.WriteHeader(http.StatusNoContent)

	default:
		methodNotAllowed(w, strings.Join([]string{http.MethodGet, http.MethodPost, http.MethodDelete}, ", "))
	}
}

// Remove handles DELETE /comparison/{id}.
func (h *ComparisonHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		methodNotAllowed(w, http.MethodDelete)
		return
	}

	if err := h.service.Remove(r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, h.service.List())
}

// Table handles GET /comparison/table?mode=car|dealership.
func (h *ComparisonHandler) Table(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	table, err := h.service.Table(domain.ComparisonMode(r.URL.Query().Get("mode")))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, table)
}
