package service

import "math"

type Direction int

const (
	// Lowest flags the minimum, e.g. price and mileage.
	Lowest Direction = iota
	// Highest flags the maximum, e.g. dealership rating.
	Highest
)

// HighlightBest reports, for each index, whether values[i] is the best value
// in the list. Every tied value is flagged. With fewer than two values
// nothing is flagged. NaN never wins.
func HighlightBest(values []float64, direction Direction) []bool {
	flags := make([]bool, len(values))
	if len(values) < 2 {
		return flags
	}

	best := math.NaN()
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(best) ||
			(direction == Lowest && v < best) ||
			(direction == Highest && v > best) {
			best = v
		}
	}

	for i, v := range values {
		flags[i] = v == best
	}
	return flags
}
