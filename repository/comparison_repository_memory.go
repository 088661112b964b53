package repository

import (
	"sync"

	"car-shopper/domain"
)

// ComparisonRepositoryMemory keeps the selected listings in insertion order.
type ComparisonRepositoryMemory struct {
	mu   sync.RWMutex
	cars []domain.CarListing
}

func NewComparisonRepositoryMemory() *ComparisonRepositoryMemory {
	return &ComparisonRepositoryMemory{}
}

func (r *ComparisonRepositoryMemory) List() []domain.CarListing {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.CarListing, len(r.cars))
	copy(out, r.cars)
	return out
}

func (r *ComparisonRepositoryMemory) Add(car domain.CarListing) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cars = append(r.cars, car)
}

// Remove drops the listing with the given id and reports whether it was present.
func (r *ComparisonRepositoryMemory) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, car := range r.cars {
		if car.ID == id {
			r.cars = append(r.cars[:i], r.cars[i+1:]...)
			return true
		}
	}
	return false
}

func (r *ComparisonRepositoryMemory) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cars = nil
}
