package tour

import "errors"

var (
	// ErrNotFound indicates no tour matches the public lookup.
	ErrNotFound = errors.New("Tour not found")
	// ErrNotFoundOwned deliberately does not distinguish a missing tour
	// from one owned by another business.
	ErrNotFoundOwned = errors.New("Tour not found or access denied")
	// ErrInvalidRating indicates a review rating outside 1-5.
	ErrInvalidRating = errors.New("Rating must be between 1 and 5")
	// ErrValidation indicates a tour document violating schema constraints.
	ErrValidation = errors.New("Tour validation failed")
)
