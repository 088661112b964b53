package service

import (
	"fmt"
	"strings"

	"car-shopper/domain"
	"car-shopper/repository"
)

type ListingService struct {
	cars repository.CarRepository
}

func NewListingService(cars repository.CarRepository) *ListingService {
	return &ListingService{cars: cars}
}

// Search returns the listings matching every set field of the filter, in
// catalog order.
func (s *ListingService) Search(filter domain.ListingFilter) []domain.CarListing {
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	result := []domain.CarListing{}
	for _, car := range s.cars.All() {
		if matches(car, filter, query) {
			result = append(result, car)
		}
	}
	return result
}

func matches(car domain.CarListing, f domain.ListingFilter, query string) bool {
	switch {
	case f.Make != "" && car.Make != f.Make:
		return false
	case f.Model != "" && car.Model != f.Model:
		return false
	case f.BodyType != "" && car.BodyType != f.BodyType:
		return false
	case f.YearMin > 0 && car.Year < f.YearMin:
		return false
	case f.YearMax > 0 && car.Year > f.YearMax:
		return false
	case f.PriceMin > 0 && car.Price < f.PriceMin:
		return false
	case f.PriceMax > 0 && car.Price > f.PriceMax:
		return false
	case f.MileageMax > 0 && car.Mileage > f.MileageMax:
		return false
	}
	return query == "" || matchesQuery(car, query)
}

func matchesQuery(car domain.CarListing, query string) bool {
	fields := append([]string{car.Make, car.Model, car.Make + " " + car.Model, car.Description}, car.Features...)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func (s *ListingService) Get(id string) (domain.CarListing, error) {
	car, ok := s.cars.FindByID(id)
	if !ok {
		return domain.CarListing{}, fmt.Errorf("%w: car %q", ErrNotFound, id)
	}
	return car, nil
}

// Featured returns the first listings of the catalog.
func (s *ListingService) Featured() []domain.CarListing {
	all := s.cars.All()
	if len(all) > FeaturedCars {
		all = all[:FeaturedCars]
	}
	return all
}

// Similar returns other listings with the same body type.
func (s *ListingService) Similar(id string) ([]domain.CarListing, error) {
	car, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	similar := []domain.CarListing{}
	for _, other := range s.cars.All() {
		if len(similar) == MaxSimilarCars {
			break
		}
		if other.ID != car.ID && other.BodyType == car.BodyType {
			similar = append(similar, other)
		}
	}
	return similar, nil
}

func (s *ListingService) Options() domain.CarOptions {
	return s.cars.Options()
}
