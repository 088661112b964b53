package service

import (
	"fmt"
	"math"
	"strconv"
	"sync"

	"github.com/dustin/go-humanize"

	"car-shopper/domain"
	"car-shopper/repository"
)

// ComparisonService manages the side-by-side selection of up to
// MaxComparedCars listings.
type ComparisonService struct {
	mu        sync.Mutex
	cars      repository.CarRepository
	selection repository.ComparisonRepository
}

func NewComparisonService(
	cars repository.CarRepository,
	selection repository.ComparisonRepository,
) *ComparisonService {
	return &ComparisonService{cars: cars, selection: selection}
}

// Add puts the listing into the comparison.
func (s *ComparisonService) Add(carID string) (domain.CarListing, error) {
	car, ok := s.cars.FindByID(carID)
	if !ok {
		return domain.CarListing{}, fmt.Errorf("%w: car %q", ErrNotFound, carID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	selected := s.selection.List()
	for _, c := range selected {
		if c.ID == carID {
			return domain.CarListing{}, fmt.Errorf("%w: car %q", ErrAlreadyCompared, carID)
		}
	}
	if len(selected) >= MaxComparedCars {
		return domain.CarListing{}, fmt.Errorf("%w: at most %d cars can be compared", ErrComparisonFull, MaxComparedCars)
	}

	s.selection.Add(car)
	return car, nil
}

func (s *ComparisonService) Remove(carID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.selection.Remove(carID) {
		return fmt.Errorf("%w: car %q is not in the comparison", ErrNotFound, carID)
	}
	return nil
}

func (s *ComparisonService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.Clear()
}

func (s *ComparisonService) Contains(carID string) bool {
	for _, c := range s.selection.List() {
		if c.ID == carID {
			return true
		}
	}
	return false
}

func (s *ComparisonService) List() []domain.CarListing {
	return s.selection.List()
}

// Table lays out the current selection as rows of cells, flagging the best
// price, mileage or dealership rating.
func (s *ComparisonService) Table(mode domain.ComparisonMode) (domain.ComparisonTable, error) {
	cars := s.selection.List()

	var rows []domain.ComparisonRow
	switch mode {
	case domain.ComparisonModeCar, "":
		mode = domain.ComparisonModeCar
		rows = carRows(cars)
	case domain.ComparisonModeDealership:
		rows = dealershipRows(cars)
	default:
		return domain.ComparisonTable{}, fmt.Errorf("%w: unknown comparison mode %q", ErrInvalidInput, mode)
	}

	return domain.ComparisonTable{Mode: mode, Cars: cars, Rows: rows}, nil
}

func carRows(cars []domain.CarListing) []domain.ComparisonRow {
	prices := make([]float64, len(cars))
	mileages := make([]float64, len(cars))
	for i, c := range cars {
		prices[i] = c.Price
		mileages[i] = float64(c.Mileage)
	}

	return []domain.ComparisonRow{
		rankedRow("Price", cars, HighlightBest(prices, Lowest), func(c domain.CarListing) string { return formatPrice(c.Price) }),
		rankedRow("Mileage", cars, HighlightBest(mileages, Lowest), func(c domain.CarListing) string { return formatMileage(c.Mileage) }),
		plainRow("Year", cars, func(c domain.CarListing) string { return strconv.Itoa(c.Year) }),
		plainRow("Body Type", cars, func(c domain.CarListing) string { return c.BodyType }),
		plainRow("Engine", cars, func(c domain.CarListing) string { return c.Engine }),
		plainRow("Transmission", cars, func(c domain.CarListing) string { return c.Transmission }),
		plainRow("Fuel Type", cars, func(c domain.CarListing) string { return c.FuelType }),
		plainRow("Exterior Color", cars, func(c domain.CarListing) string { return c.ExteriorColor }),
		plainRow("Interior Color", cars, func(c domain.CarListing) string { return c.InteriorColor }),
	}
}

func dealershipRows(cars []domain.CarListing) []domain.ComparisonRow {
	ratings := make([]float64, len(cars))
	for i, c := range cars {
		ratings[i] = c.Dealership.Rating
	}

	return []domain.ComparisonRow{
		plainRow("Dealership", cars, func(c domain.CarListing) string { return c.Dealership.Name }),
		plainRow("Location", cars, func(c domain.CarListing) string { return c.Dealership.Location }),
		rankedRow("Rating", cars, HighlightBest(ratings, Highest), func(c domain.CarListing) string {
			return strconv.FormatFloat(c.Dealership.Rating, 'f', -1, 64) + "/5"
		}),
		plainRow("Phone", cars, func(c domain.CarListing) string { return c.Dealership.ContactPhone }),
		plainRow("Email", cars, func(c domain.CarListing) string { return c.Dealership.ContactEmail }),
	}
}

func rankedRow(
	label string,
	cars []domain.CarListing,
	best []bool,
	value func(domain.CarListing) string,
) domain.ComparisonRow {
	cells := make([]domain.ComparisonCell, len(cars))
	for i, c := range cars {
		cells[i] = domain.ComparisonCell{CarID: c.ID, Value: value(c), Best: best[i]}
	}
	return domain.ComparisonRow{Label: label, Cells: cells}
}

func plainRow(label string, cars []domain.CarListing, value func(domain.CarListing) string) domain.ComparisonRow {
	return rankedRow(label, cars, make([]bool, len(cars)), value)
}

// formatPrice renders whole dollars, e.g. $25,999.
func formatPrice(price float64) string {
	return "$" + humanize.Comma(int64(math.Round(price)))
}

func formatMileage(mileage int) string {
	return humanize.Comma(int64(mileage)) + " mi"
}
