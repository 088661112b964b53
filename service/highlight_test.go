package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHighlightBest(t *testing.T) {
	cases := []struct {
		name      string
		values    []float64
		direction Direction
		want      []bool
	}{
		{"lowest price", []float64{25999, 23500, 32750}, Lowest, []bool{false, true, false}},
		{"lowest mileage", []float64{15280, 28450, 7850}, Lowest, []bool{false, false, true}},
		{"highest rating", []float64{4.7, 4.5, 4.8}, Highest, []bool{false, false, true}},
		{"tie flags both", []float64{100, 100}, Lowest, []bool{true, true}},
		{"tie on highest", []float64{4.5, 4.8, 4.8}, Highest, []bool{false, true, true}},
		{"all equal", []float64{1, 1, 1}, Highest, []bool{true, true, true}},
		{"single value", []float64{25999}, Lowest, []bool{false}},
		{"empty", []float64{}, Lowest, []bool{}},
		{"NaN ignored", []float64{math.NaN(), 20000, 30000}, Lowest, []bool{false, true, false}},
		{"all NaN", []float64{math.NaN(), math.NaN()}, Highest, []bool{false, false}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HighlightBest(tc.values, tc.direction))
		})
	}
}

func TestHighlightBest_NilInput(t *testing.T) {
	assert.Empty(t, HighlightBest(nil, Lowest))
}
