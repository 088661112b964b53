package domain

type ComparisonMode string

const (
	ComparisonModeCar        ComparisonMode = "car"
	ComparisonModeDealership ComparisonMode = "dealership"
)

// ComparisonCell is one column of a row. Best marks the winning value(s).
type ComparisonCell struct {
	CarID string `json:"car_id"`
	Value string `json:"value"`
	Best  bool   `json:"best"`
}

type ComparisonRow struct {
	Label string           `json:"label"`
	Cells []ComparisonCell `json:"cells"`
}

type ComparisonTable struct {
	Mode ComparisonMode  `json:"mode"`
	Cars []CarListing    `json:"cars"`
	Rows []ComparisonRow `json:"rows"`
}
