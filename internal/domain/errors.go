package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrInvalidPeopleCount is returned when the household size is not positive
	ErrInvalidPeopleCount = errors.New("people count must be positive")

	// ErrInvalidMealCount is returned when the meal repetition count is not positive
	ErrInvalidMealCount = errors.New("meals per week must be positive")

	// ErrCatalogUnavailable is returned when a catalog query fails; the caller
	// decides whether to retry, degrade, or abort
	ErrCatalogUnavailable = errors.New("catalog query failed")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
