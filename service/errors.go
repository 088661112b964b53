package service

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrComparisonFull   = errors.New("comparison is full")
	ErrAlreadyCompared  = errors.New("car already in comparison")
	ErrEmptyQuestion    = errors.New("question is empty")
	ErrNoAffordableTerm = errors.New("no affordable term")
)
