package service

import (
	"context"
	"fmt"
	"sort"

	"car-shopper/domain"
	"car-shopper/logger"
)

type TermRecommendationService struct {
	terms []int
}

func NewTermRecommendationService() *TermRecommendationService {
	return &TermRecommendationService{terms: StandardLoanTerms}
}

// RecommendTerm evaluates the standard loan terms, drops those whose payment
// exceeds the budget and ranks the rest by the buyer's preference.
func (s *TermRecommendationService) RecommendTerm(
	ctx context.Context,
	input domain.TermRecommendationInput,
) (domain.TermRecommendationResult, error) {

	if !isFinite(input.MaxMonthlyPayment) || input.MaxMonthlyPayment <= 0 {
		return domain.TermRecommendationResult{}, fmt.Errorf("%w: max monthly payment must be positive", ErrInvalidInput)
	}
	switch input.Preference {
	case domain.PreferMinimizeInterest, domain.PreferMinimizePayment, domain.PreferBalanced:
	default:
		return domain.TermRecommendationResult{}, fmt.Errorf("%w: unknown preference %q", ErrInvalidInput, input.Preference)
	}

	recommendations := []domain.TermRecommendation{}

	// one scenario per term
	for _, term := range s.terms {
		if err := checkLoanLimits(input.VehiclePrice, input.InterestRate, term); err != nil {
			return domain.TermRecommendationResult{}, err
		}
		result, err := ComputeLoan(input.VehiclePrice, input.DownPayment, input.InterestRate, term)
		if err != nil {
			return domain.TermRecommendationResult{}, err
		}

		// over budget
		if roundCents(result.MonthlyPayment) > input.MaxMonthlyPayment {
			continue
		}

		recommendations = append(recommendations, domain.TermRecommendation{
			TermMonths:     term,
			MonthlyPayment: roundCents(result.MonthlyPayment),
			TotalInterest:  roundCents(result.TotalInterest),
			Reason:         reasonFor(input.Preference),
		})
	}

	if len(recommendations) == 0 {
		return domain.TermRecommendationResult{}, fmt.Errorf("%w: every term costs more than $%.2f a month",
			ErrNoAffordableTerm, input.MaxMonthlyPayment)
	}

	score(recommendations, input.Preference)

	// highest score first; ties keep the shorter term
	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})

	logger.FromContext(ctx).Debug().
		Int("recommended_term", recommendations[0].TermMonths).
		Int("candidates", len(recommendations)).
		Msg("term recommended")

	return domain.TermRecommendationResult{
		RecommendedTerm: recommendations[0].TermMonths,
		Recommendations: recommendations,
	}, nil
}

// score fills in a 0-10 score for each option, normalised over the options
// themselves. Lower interest, lower payment and shorter terms score higher.
// The minimize preferences weigh their own metric at 0.8 so that they always
// pick the cheapest option on that metric.
func score(options []domain.TermRecommendation, preference domain.TermPreference) {
	minI, maxI := options[0].TotalInterest, options[0].TotalInterest
	minP, maxP := options[0].MonthlyPayment, options[0].MonthlyPayment
	minT, maxT := options[0].TermMonths, options[0].TermMonths
	for _, o := range options[1:] {
		minI, maxI = min(minI, o.TotalInterest), max(maxI, o.TotalInterest)
		minP, maxP = min(minP, o.MonthlyPayment), max(maxP, o.MonthlyPayment)
		minT, maxT = min(minT, o.TermMonths), max(maxT, o.TermMonths)
	}

	for i := range options {
		interestScore := normalise(options[i].TotalInterest, minI, maxI)
		paymentScore := normalise(options[i].MonthlyPayment, minP, maxP)
		termScore := normalise(float64(options[i].TermMonths), float64(minT), float64(maxT))

		var total float64
		switch preference {
		case domain.PreferMinimizeInterest:
			total = 0.8*interestScore + 0.2*termScore
		case domain.PreferMinimizePayment:
			total = 0.8*paymentScore + 0.2*interestScore
		default:
			total = 0.4*interestScore + 0.4*paymentScore + 0.2*termScore
		}
		options[i].Score = roundCents(total)
	}
}

// normalise maps v in [lo, hi] to 10 (at lo) .. 0 (at hi).
func normalise(v, lo, hi float64) float64 {
	if hi <= lo {
		return 10
	}
	return 10 * (hi - v) / (hi - lo)
}

func reasonFor(preference domain.TermPreference) string {
	switch preference {
	case domain.PreferMinimizeInterest:
		return "Term chosen to minimize the total interest paid"
	case domain.PreferMinimizePayment:
		return "Term chosen to minimize the monthly payment"
	}
	return "Balance between monthly payment and total cost"
}
