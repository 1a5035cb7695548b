package source

import "errors"

var (
	// ErrMissingParameter indicates a required characteristic was never
	// set before a derived quantity was requested.
	ErrMissingParameter = errors.New("source: required characteristic is not set")

	// ErrInvalidDate indicates a date string that does not follow the
	// YYYY/MM/DD layout.
	ErrInvalidDate = errors.New("source: date must use the YYYY/MM/DD layout")

	// ErrInvalidDistance indicates a zero or negative distance.
	ErrInvalidDistance = errors.New("source: distance must be positive")

	// ErrInvalidUnit indicates a magnitude whose unit tag does not match
	// the standard unit for its role.
	ErrInvalidUnit = errors.New("source: unit does not match the standard unit")

	// ErrInvalidParameter indicates a characteristic outside its
	// physical range (negative value or uncertainty, non-positive
	// strength or half life).
	ErrInvalidParameter = errors.New("source: characteristic outside physical range")
)
