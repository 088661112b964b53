package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"car-shopper/domain"
	"car-shopper/repository"
	"car-shopper/service"
)

func newTestServer(t *testing.T, capacity int) *httptest.Server {
	t.Helper()

	cars, err := repository.NewCarRepositoryMemory()
	require.NoError(t, err)

	limiter := NewRateLimiter(capacity, time.Minute)
	t.Cleanup(limiter.Stop)

	handler := NewRouter(Handlers{
		Loan: NewLoanHandler(service.NewLoanService(
			repository.NewLoanRepositoryMemory(), repository.NewMemoryCache())),
		TermRecommendation: NewTermRecommendationHandler(service.NewTermRecommendationService()),
		Listing:            NewListingHandler(service.NewListingService(cars)),
		Comparison:         NewComparisonHandler(service.NewComparisonService(cars, repository.NewComparisonRepositoryMemory())),
		Assistant:          NewAssistantHandler(service.NewAssistantService(repository.NewMessageRepositoryMemory())),
	}, limiter, zerolog.Nop())

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url, body string) (*http.Response, []byte) {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	req, err := http.NewRequest(method, url, r)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func carIDs(t *testing.T, raw []byte) []string {
	t.Helper()
	var cars []domain.CarListing
	require.NoError(t, json.Unmarshal(raw, &cars))
	out := []string{}
	for _, c := range cars {
		out = append(out, c.ID)
	}
	return out
}

func TestRouter_Listings(t *testing.T) {
	srv := newTestServer(t, 100)

	resp, raw := do(t, http.MethodGet, srv.URL+"/cars?body_type=SUV", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"4", "6"}, carIDs(t, raw))

	resp, raw = do(t, http.MethodGet, srv.URL+"/cars?year=2022&price_max=26000", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"1"}, carIDs(t, raw))

	resp, _ = do(t, http.MethodGet, srv.URL+"/cars?price_min=cheap", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, raw = do(t, http.MethodGet, srv.URL+"/cars/featured", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"1", "2", "3"}, carIDs(t, raw))

	resp, raw = do(t, http.MethodGet, srv.URL+"/cars/5", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var car domain.CarListing
	require.NoError(t, json.Unmarshal(raw, &car))
	assert.Equal(t, "3 Series", car.Model)

	resp, raw = do(t, http.MethodGet, srv.URL+"/cars/1/similar", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"2", "5"}, carIDs(t, raw))

	resp, _ = do(t, http.MethodGet, srv.URL+"/cars/404", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, raw = do(t, http.MethodGet, srv.URL+"/cars/options", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var opts domain.CarOptions
	require.NoError(t, json.Unmarshal(raw, &opts))
	assert.Len(t, opts.Years, 21)
}

func TestRouter_ComparisonFlow(t *testing.T) {
	srv := newTestServer(t, 100)

	for _, id := range []string{"1", "2", "3"} {
		resp, _ := do(t, http.MethodPost, srv.URL+"/comparison", `{"car_id":"`+id+`"}`)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, _ := do(t, http.MethodPost, srv.URL+"/comparison", `{"car_id":"4"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = do(t, http.MethodPost, srv.URL+"/comparison", `{"car_id":"1"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = do(t, http.MethodPost, srv.URL+"/comparison", `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, raw := do(t, http.MethodGet, srv.URL+"/comparison/table?mode=car", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var table domain.ComparisonTable
	require.NoError(t, json.Unmarshal(raw, &table))
	require.NotEmpty(t, table.Rows)
	assert.Equal(t, "Price", table.Rows[0].Label)
	assert.True(t, table.Rows[0].Cells[1].Best)

	resp, _ = do(t, http.MethodGet, srv.URL+"/comparison/table?mode=colour", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, raw = do(t, http.MethodDelete, srv.URL+"/comparison/2", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"1", "3"}, carIDs(t, raw))

	resp, _ = do(t, http.MethodDelete, srv.URL+"/comparison/2", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = do(t, http.MethodDelete, srv.URL+"/comparison", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, raw = do(t, http.MethodGet, srv.URL+"/comparison", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, carIDs(t, raw))
}

func TestRouter_Assistant(t *testing.T) {
	srv := newTestServer(t, 100)

	resp, raw := do(t, http.MethodPost, srv.URL+"/assistant/messages", `{"question":"Which cars have the best resale value?"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var exchange domain.ChatExchange
	require.NoError(t, json.Unmarshal(raw, &exchange))
	assert.Contains(t, exchange.Answer.Text, "best resale value")

	resp, _ = do(t, http.MethodPost, srv.URL+"/assistant/messages", `{"question":"   "}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, raw = do(t, http.MethodGet, srv.URL+"/assistant/messages", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var history []domain.ChatMessage
	require.NoError(t, json.Unmarshal(raw, &history))
	assert.Len(t, history, 2)

	resp, _ = do(t, http.MethodDelete, srv.URL+"/assistant/messages", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, raw = do(t, http.MethodGet, srv.URL+"/assistant/suggestions", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var suggestions []string
	require.NoError(t, json.Unmarshal(raw, &suggestions))
	assert.Len(t, suggestions, 6)

	resp, _ = do(t, http.MethodPut, srv.URL+"/assistant/messages", `{}`)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestRouter_RateLimited(t *testing.T) {
	srv := newTestServer(t, 2)

	for i := 0; i < 2; i++ {
		resp, _ := do(t, http.MethodGet, srv.URL+"/cars", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, _ := do(t, http.MethodGet, srv.URL+"/cars", "")
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Retry-After"))
}

func TestRouter_RecommendTerm(t *testing.T) {
	srv := newTestServer(t, 100)

	resp, raw := do(t, http.MethodPost, srv.URL+"/loan/recommend-term",
		`{"vehicle_price":25000,"down_payment":5000,"interest_rate":4.5,"max_monthly_payment":400,"preference":"minimize_payment"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result domain.TermRecommendationResult
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.Equal(t, 84, result.RecommendedTerm)
	assert.Len(t, result.Recommendations, 3)

	resp, _ = do(t, http.MethodPost, srv.URL+"/loan/recommend-term",
		`{"vehicle_price":25000,"down_payment":5000,"interest_rate":4.5,"max_monthly_payment":100}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp, _ = do(t, http.MethodPost, srv.URL+"/loan/recommend-term",
		`{"vehicle_price":25000,"interest_rate":4.5,"max_monthly_payment":400,"preference":"cheapest"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, http.MethodGet, srv.URL+"/loan/recommend-term", "")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
