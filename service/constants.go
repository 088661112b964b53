package service

const (
	MaxVehiclePrice = 10_000_000.0 // 10 million
	MaxInterestRate = 100.0        // 100% a year
	MaxTermMonths   = 120          // 10 years
	MinTermMonths   = 1

	// Sample points kept from the amortization schedule
	BreakdownSamples = 12

	// The monthly payment should not exceed 15% of monthly income
	AffordabilityIncomeShare = 0.15

	MaxComparedCars = 3
	FeaturedCars    = 3
	MaxSimilarCars  = 3
)

// Terms offered by the calculator, in months
var StandardLoanTerms = []int{24, 36, 48, 60, 72, 84}
