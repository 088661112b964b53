package domain

type TermPreference string

const (
	PreferMinimizeInterest TermPreference = "minimize_interest"
	PreferMinimizePayment  TermPreference = "minimize_payment"
	PreferBalanced         TermPreference = "balanced"
)

type TermRecommendationInput struct {
	VehiclePrice      float64        `json:"vehicle_price"`
	DownPayment       float64        `json:"down_payment"`
	InterestRate      float64        `json:"interest_rate"`
	MaxMonthlyPayment float64        `json:"max_monthly_payment"`
	Preference        TermPreference `json:"preference"`
}

type TermRecommendation struct {
	TermMonths     int     `json:"term_months"`
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalInterest  float64 `json:"total_interest"`
	Score          float64 `json:"score"`
	Reason         string  `json:"reason"`
}

type TermRecommendationResult struct {
	RecommendedTerm int                  `json:"recommended_term"`
	Recommendations []TermRecommendation `json:"recommendations"`
}
