package repository

import (
	"sync"

	"car-shopper/domain"
)

// LoanRecord pairs a calculation request with the quote it produced.
type LoanRecord struct {
	Input domain.LoanInput
	Quote domain.LoanQuote
}

// LoanRepositoryMemory is an in-memory implementation of LoanRepository.
type LoanRepositoryMemory struct {
	mu   sync.Mutex
	data []LoanRecord
}

// NewLoanRepositoryMemory creates a new in-memory loan repository.
func NewLoanRepositoryMemory() *LoanRepositoryMemory {
	return &LoanRepositoryMemory{
		data: []LoanRecord{},
	}
}

// Save stores the loan quote in memory.
func (r *LoanRepositoryMemory) Save(
	input domain.LoanInput,
	quote domain.LoanQuote,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, LoanRecord{Input: input, Quote: quote})
	return nil
}

// List returns a copy of every saved record, oldest first.
func (r *LoanRepositoryMemory) List() []LoanRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]LoanRecord, len(r.data))
	copy(out, r.data)
	return out
}
