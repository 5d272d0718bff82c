package service

import "errors"

// Failure kinds returned by the services. Wrapped errors carry detail; match with errors.Is.
var (
	ErrInvalidIdentifier   = errors.New("invalid identifier")
	ErrInvalidCategory     = errors.New("invalid category")
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidRange        = errors.New("invalid range")
	ErrInvalidRecord       = errors.New("invalid record")
	ErrNotFound            = errors.New("record not found")
	ErrDuplicateIdentifier = errors.New("duplicate identifier")
)
