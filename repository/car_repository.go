package repository

import "car-shopper/domain"

type CarRepository interface {
	All() []domain.CarListing
	FindByID(id string) (domain.CarListing, bool)
	Options() domain.CarOptions
}

type ComparisonRepository interface {
	List() []domain.CarListing
	Add(car domain.CarListing)
	Remove(id string) bool
	Clear()
}

type MessageRepository interface {
	Append(messages ...domain.ChatMessage)
	List() []domain.ChatMessage
	Clear()
}
