package domain

type LoanInput struct {
	VehiclePrice float64 `json:"vehicle_price"`
	DownPayment  float64 `json:"down_payment"`
	InterestRate float64 `json:"interest_rate"`
	TermMonths   int     `json:"term_months"`
}

// AmortizationPoint is one sampled period of the repayment schedule.
type AmortizationPoint struct {
	Period           int     `json:"period"`
	Principal        float64 `json:"principal"`
	Interest         float64 `json:"interest"`
	RemainingBalance float64 `json:"remaining_balance"`
}

type LoanResult struct {
	FinancedPrincipal float64             `json:"financed_principal"`
	MonthlyRate       float64             `json:"monthly_rate"`
	MonthlyPayment    float64             `json:"monthly_payment"`
	TotalPayment      float64             `json:"total_payment"`
	TotalInterest     float64             `json:"total_interest"`
	Breakdown         []AmortizationPoint `json:"breakdown"`
}

type Affordability struct {
	MinMonthlyIncome float64 `json:"min_monthly_income"`
	MinAnnualIncome  float64 `json:"min_annual_income"`
}

// LoanQuote is a LoanResult rounded to cents plus the affordability estimate.
type LoanQuote struct {
	LoanResult
	Affordability Affordability `json:"affordability"`
}
