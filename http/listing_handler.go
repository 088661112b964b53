package http

import (
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"car-shopper/domain"
	"car-shopper/service"
)

type ListingHandler struct {
	service *service.ListingService
}

func NewListingHandler(service *service.ListingService) *ListingHandler {
	return &ListingHandler{service: service}
}

// Search handles GET /cars.
func (h *ListingHandler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	filter, err := parseListingFilter(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, h.service.Search(filter))
}

func (h *ListingHandler) Featured(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	writeJSON(w, r, http.StatusOK, h.service.Featured())
}

func (h *ListingHandler) Options(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	writeJSON(w, r, http.StatusOK, h.service.Options())
}

// Get handles GET /cars/{id}.
func (h *ListingHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	car, err := h.service.Get(r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, car)
}

// Similar handles GET /cars/{id}/similar.
func (h *ListingHandler) Similar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	cars, err := h.service.Similar(r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, cars)
}

func parseListingFilter(q url.Values) (domain.ListingFilter, error) {
	filter := domain.ListingFilter{
		Make:     q.Get("make"),
		Model:    q.Get("model"),
		BodyType: q.Get("body_type"),
		Query:    q.Get("q"),
	}

	ints := map[string]*int{
		"year_min":    &filter.YearMin,
		"year_max":    &filter.YearMax,
		"mileage_max": &filter.MileageMax,
	}
	for name, dst := range ints {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return domain.ListingFilter{}, fmt.Errorf("%w: %s must be a non-negative integer", errBadRequest, name)
		}
		*dst = v
	}

	floats := map[string]*float64{
		"price_min": &filter.PriceMin,
		"price_max": &filter.PriceMax,
	}
	for name, dst := range floats {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return domain.ListingFilter{}, fmt.Errorf("%w: %s must be a non-negative number", errBadRequest, name)
		}
		*dst = v
	}

	// the home page search form sends a single year, used as the minimum
	if raw := q.Get("year"); raw != "" && filter.YearMin == 0 {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return domain.ListingFilter{}, fmt.Errorf("%w: year must be a non-negative integer", errBadRequest)
		}
		filter.YearMin = v
	}

	return filter, nil
}
