package repository

import "car-shopper/domain"

type LoanRepository interface {
	Save(input domain.LoanInput, quote domain.LoanQuote) error
}
