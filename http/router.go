package http

import (
	"net/http"

	"github.com/rs/zerolog"
)

type Handlers struct {
	Loan               *LoanHandler
	TermRecommendation *TermRecommendationHandler
	Listing            *ListingHandler
	Comparison         *ComparisonHandler
	Assistant          *AssistantHandler
}

// NewRouter wires every route behind rate limiting, request logging and
// panic recovery.
func NewRouter(h Handlers, limiter *RateLimiter, log zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/loan/calculate", h.Loan.CalculateLoan)
	mux.HandleFunc("/loan/recommend-term", h.TermRecommendation.RecommendTerm)

	mux.HandleFunc("/cars", h.Listing.Search)
	mux.HandleFunc("/cars/featured", h.Listing.Featured)
	mux.HandleFunc("/cars/options", h.Listing.Options)
	mux.HandleFunc("/cars/{id}", h.Listing.Get)
	mux.HandleFunc("/cars/{id}/similar", h.Listing.Similar)

	mux.HandleFunc("/comparison", h.Comparison.Selection)
	mux.HandleFunc("/comparison/table", h.Comparison.Table)
	mux.HandleFunc("/comparison/{id}", h.Comparison.Remove)

	mux.HandleFunc("/assistant/messages", h.Assistant.Messages)
	mux.HandleFunc("/assistant/suggestions", h.Assistant.Suggestions)

	var handler http.Handler = mux
	handler = RateLimitMiddleware(limiter, handler)
	handler = Recovery(handler)
	handler = RequestLogger(log, handler)
	return handler
}
