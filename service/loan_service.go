package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"car-shopper/domain"
	"car-shopper/logger"
	"car-shopper/repository"
)

// roundCents rounds a currency amount half away from zero to 2 decimals.
func roundCents(value float64) float64 {
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

type LoanService struct {
	repo  repository.LoanRepository
	cache repository.CacheRepository
}

// NewLoanService creates a new LoanService with the given repository and cache.
func NewLoanService(repo repository.LoanRepository,
	cache repository.CacheRepository,
) *LoanService {
	return &LoanService{repo: repo, cache: cache}
}

// CalculateLoan validates the request against the service limits, computes
// the amortized loan and returns it rounded to cents.
func (s *LoanService) CalculateLoan(
	ctx context.Context,
	input domain.LoanInput,
) (domain.LoanQuote, error) {
	log := logger.FromContext(ctx)

	if err := checkLoanLimits(input.VehiclePrice, input.InterestRate, input.TermMonths); err != nil {
		return domain.LoanQuote{}, err
	}

	key := cacheKey(input)
	if quote, ok := s.cached(ctx, key); ok {
		log.Debug().Str("key", key).Msg("loan quote cache hit")
		s.record(ctx, input, quote)
		return quote, nil
	}

	result, err := ComputeLoan(input.VehiclePrice, input.DownPayment, input.InterestRate, input.TermMonths)
	if err != nil {
		return domain.LoanQuote{}, err
	}

	quote := newQuote(result)

	if raw, err := json.Marshal(quote); err != nil {
		log.Warn().Err(err).Msg("failed to encode loan quote for cache")
	} else if err := s.cache.Set(ctx, key, string(raw)); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to cache loan quote")
	}

	s.record(ctx, input, quote)
	return quote, nil
}

// checkLoanLimits applies the service caps shared by every loan operation,
// on top of the checks ComputeLoan makes.
func checkLoanLimits(vehiclePrice, interestRate float64, termMonths int) error {
	if vehiclePrice > MaxVehiclePrice {
		return fmt.Errorf("%w: vehicle price exceeds the maximum of $%.2f", ErrInvalidInput, MaxVehiclePrice)
	}
	if interestRate > MaxInterestRate {
		return fmt.Errorf("%w: interest rate exceeds the maximum of %.2f%%", ErrInvalidInput, MaxInterestRate)
	}
	if termMonths > MaxTermMonths {
		return fmt.Errorf("%w: term exceeds the maximum of %d months", ErrInvalidInput, MaxTermMonths)
	}
	return nil
}

// record saves the calculation. Failures are logged, never returned.
func (s *LoanService) record(ctx context.Context, input domain.LoanInput, quote domain.LoanQuote) {
	if err := s.repo.Save(input, quote); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("failed to save loan calculation")
	}
}

func (s *LoanService) cached(ctx context.Context, key string) (domain.LoanQuote, bool) {
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return domain.LoanQuote{}, false
	}
	var quote domain.LoanQuote
	if err := json.Unmarshal([]byte(raw), &quote); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("key", key).Msg("discarding unreadable cached loan quote")
		return domain.LoanQuote{}, false
	}
	return quote, true
}

func cacheKey(input domain.LoanInput) string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	return fmt.Sprintf("loan:v1:%s:%s:%s:%d",
		f(input.VehiclePrice), f(input.DownPayment), f(input.InterestRate), input.TermMonths)
}

func newQuote(result domain.LoanResult) domain.LoanQuote {
	breakdown := make([]domain.AmortizationPoint, len(result.Breakdown))
	for i, p := range result.Breakdown {
		breakdown[i] = domain.AmortizationPoint{
			Period:           p.Period,
			Principal:        roundCents(p.Principal),
			Interest:         roundCents(p.Interest),
			RemainingBalance: roundCents(p.RemainingBalance),
		}
	}

	minMonthly := result.MonthlyPayment / AffordabilityIncomeShare

	return domain.LoanQuote{
		LoanResult: domain.LoanResult{
			FinancedPrincipal: roundCents(result.FinancedPrincipal),
			MonthlyRate:       result.MonthlyRate,
			MonthlyPayment:    roundCents(result.MonthlyPayment),
			TotalPayment:      roundCents(result.TotalPayment),
			TotalInterest:     roundCents(result.TotalInterest),
			Breakdown:         breakdown,
		},
		Affordability: domain.Affordability{
			MinMonthlyIncome: roundCents(minMonthly),
			MinAnnualIncome:  roundCents(minMonthly * 12),
		},
	}
}
