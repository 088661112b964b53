package http

import (
	"net/http"

	"car-shopper/domain"
	"car-shopper/service"
)

type loanRequest struct {
	VehiclePrice *float64 `json:"vehicle_price" validate:"required"`
	DownPayment  float64  `json:"down_payment"`
	InterestRate *float64 `json:"interest_rate" validate:"required"`
	TermMonths   *int     `json:"term_months" validate:"required"`
}

type LoanHandler struct {
	service *service.LoanService
}

func NewLoanHandler(service *service.LoanService) *LoanHandler {
	return &LoanHandler{service: service}
}

func (h *LoanHandler) CalculateLoan(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	var req loanRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	input := domain.LoanInput{
		VehiclePrice: *req.VehiclePrice,
		DownPayment:  req.DownPayment,
		InterestRate: *req.InterestRate,
		TermMonths:   *req.TermMonths,
	}

	quote, err := h.service.CalculateLoan(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, quote)
}
