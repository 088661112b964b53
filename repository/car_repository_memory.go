package repository

import (
	"embed"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"car-shopper/domain"
)

//go:embed seed/*.yaml
var seedFS embed.FS

const (
	newestModelYear = 2025
	modelYearSpan   = 21
)

type catalogSeed struct {
	Cars []domain.CarListing `yaml:"cars"`
}

// CarRepositoryMemory serves the fixed catalog loaded from the embedded seed.
// It is read-only after construction.
type CarRepositoryMemory struct {
	cars    []domain.CarListing
	byID    map[string]int
	options domain.CarOptions
}

// NewCarRepositoryMemory loads the embedded catalog seed.
func NewCarRepositoryMemory() (*CarRepositoryMemory, error) {
	var seed catalogSeed
	if err := decodeSeed("seed/cars.yaml", &seed); err != nil {
		return nil, err
	}

	var options domain.CarOptions
	if err := decodeSeed("seed/options.yaml", &options); err != nil {
		return nil, err
	}
	options.Years = make([]string, 0, modelYearSpan)
	for i := 0; i < modelYearSpan; i++ {
		options.Years = append(options.Years, strconv.Itoa(newestModelYear-i))
	}

	return NewCarRepositoryFromListings(seed.Cars, options)
}

// NewCarRepositoryFromListings builds a repository over the given listings.
func NewCarRepositoryFromListings(
	cars []domain.CarListing,
	options domain.CarOptions,
) (*CarRepositoryMemory, error) {
	byID := make(map[string]int, len(cars))
	for i, car := range cars {
		if car.ID == "" {
			return nil, fmt.Errorf("listing %d has no id", i)
		}
		if _, dup := byID[car.ID]; dup {
			return nil, fmt.Errorf("duplicate listing id %q", car.ID)
		}
		byID[car.ID] = i
	}
	return &CarRepositoryMemory{
		cars:    cars,
		byID:    byID,
		options: options,
	}, nil
}

func decodeSeed(name string, out any) error {
	raw, err := seedFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// All returns the listings in catalog order. The slice is a copy.
func (r *CarRepositoryMemory) All() []domain.CarListing {
	out := make([]domain.CarListing, len(r.cars))
	copy(out, r.cars)
	return out
}

func (r *CarRepositoryMemory) FindByID(id string) (domain.CarListing, bool) {
	i, ok := r.byID[id]
	if !ok {
		return domain.CarListing{}, false
	}
	return r.cars[i], true
}

func (r *CarRepositoryMemory) Options() domain.CarOptions {
	return r.options
}
