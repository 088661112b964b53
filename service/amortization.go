package service

import (
	"fmt"
	"math"

	"car-shopper/domain"
)

// ComputeLoan builds a fixed-rate, fully amortizing loan for a vehicle.
//
// The financed principal is vehiclePrice - downPayment. When the down payment
// covers the whole price the result is all zeros with an empty breakdown.
// Non-finite or negative arguments and terms below one month fail with
// ErrInvalidInput. Values are not rounded.
func ComputeLoan(
	vehiclePrice float64,
	downPayment float64,
	annualRatePercent float64,
	termMonths int,
) (domain.LoanResult, error) {

	if err := checkAmount("vehicle price", vehiclePrice); err != nil {
		return domain.LoanResult{}, err
	}
	if err := checkAmount("down payment", downPayment); err != nil {
		return domain.LoanResult{}, err
	}
	if err := checkAmount("interest rate", annualRatePercent); err != nil {
		return domain.LoanResult{}, err
	}
	if termMonths < MinTermMonths {
		return domain.LoanResult{}, fmt.Errorf("%w: term must be at least %d month, got %d",
			ErrInvalidInput, MinTermMonths, termMonths)
	}

	principal := vehiclePrice - downPayment
	monthlyRate := annualRatePercent / 100 / 12

	if principal <= 0 {
		return domain.LoanResult{
			MonthlyRate: monthlyRate,
			Breakdown:   []domain.AmortizationPoint{},
		}, nil
	}

	payment := monthlyPayment(principal, monthlyRate, termMonths)
	total := payment * float64(termMonths)

	result := domain.LoanResult{
		FinancedPrincipal: principal,
		MonthlyRate:       monthlyRate,
		MonthlyPayment:    payment,
		TotalPayment:      total,
		TotalInterest:     total - principal,
	}
	if !isFinite(result.MonthlyPayment) || !isFinite(result.TotalPayment) || !isFinite(result.TotalInterest) {
		return domain.LoanResult{}, fmt.Errorf("%w: loan of %g at %g%% over %d months is out of range",
			ErrInvalidInput, principal, annualRatePercent, termMonths)
	}

	step := samplingStep(termMonths)
	result.Breakdown = make([]domain.AmortizationPoint, 0, termMonths/step+2)
	walkSchedule(principal, monthlyRate, payment, termMonths, func(p domain.AmortizationPoint) {
		if p.Period == 1 || p.Period%step == 0 || p.Period == termMonths {
			result.Breakdown = append(result.Breakdown, p)
		}
	})

	return result, nil
}

// monthlyPayment is the annuity payment. A zero rate spreads the principal
// evenly; a rate so large that (1+r)^n overflows tends to principal*r.
// (1+r)^n - 1 is computed as expm1(n*log1p(r)) so tiny rates keep their
// precision.
func monthlyPayment(principal, monthlyRate float64, termMonths int) float64 {
	n := float64(termMonths)
	if monthlyRate == 0 {
		return principal / n
	}

	growthMinusOne := math.Expm1(n * math.Log1p(monthlyRate))
	switch {
	case math.IsInf(growthMinusOne, 1):
		return principal * monthlyRate
	case growthMinusOne == 0:
		// rate below float64 resolution
		return principal / n
	}
	return principal * monthlyRate * (1 + growthMinusOne) / growthMinusOne
}

// walkSchedule visits every period of the schedule in order.
func walkSchedule(
	principal float64,
	monthlyRate float64,
	payment float64,
	termMonths int,
	visit func(domain.AmortizationPoint),
) {
	balance := principal
	for period := 1; period <= termMonths; period++ {
		interest := balance * monthlyRate
		principalPart := payment - interest
		balance -= principalPart

		visit(domain.AmortizationPoint{
			Period:           period,
			Principal:        principalPart,
			Interest:         interest,
			RemainingBalance: balance,
		})
	}
}

// samplingStep is ceil(term/12).
func samplingStep(termMonths int) int {
	return (termMonths + BreakdownSamples - 1) / BreakdownSamples
}

func checkAmount(name string, v float64) error {
	if !isFinite(v) {
		return fmt.Errorf("%w: %s must be a finite number, got %v", ErrInvalidInput, name, v)
	}
	if v < 0 {
		return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidInput, name, v)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
