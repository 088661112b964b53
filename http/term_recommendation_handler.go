package http

import (
	"net/http"

	"car-shopper/domain"
	"car-shopper/service"
)

type termRecommendationRequest struct {
	VehiclePrice      *float64 `json:"vehicle_price" validate:"required"`
	DownPayment       float64  `json:"down_payment"`
	InterestRate      *float64 `json:"interest_rate" validate:"required"`
	MaxMonthlyPayment float64  `json:"max_monthly_payment" validate:"gt=0"`
	Preference        string   `json:"preference" validate:"omitempty,oneof=minimize_interest minimize_payment balanced"`
}

type TermRecommendationHandler struct {
	service *service.TermRecommendationService
}

func NewTermRecommendationHandler(service *service.TermRecommendationService) *TermRecommendationHandler {
	return &TermRecommendationHandler{service: service}
}

func (h *TermRecommendationHandler) RecommendTerm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	var req termRecommendationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	preference := domain.TermPreference(req.Preference)
	if preference == "" {
		preference = domain.PreferBalanced
	}

	result, err := h.service.RecommendTerm(r.Context(), domain.TermRecommendationInput{
		VehiclePrice:      *req.VehiclePrice,
		DownPayment:       req.DownPayment,
		InterestRate:      *req.InterestRate,
		MaxMonthlyPayment: req.MaxMonthlyPayment,
		Preference:        preference,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, result)
}
