package domain

import "errors"

// Sentinel errors for catalog and watched-list operations
var (
	// ErrNotFound indicates the catalog reported no match for a search or ID
	ErrNotFound = errors.New("movie not found")

	// ErrCatalogUnavailable indicates a transport failure: network error or non-2xx status
	ErrCatalogUnavailable = errors.New("catalog is unreachable")

	// ErrMalformedResponse indicates the catalog answered with an unexpected payload shape
	ErrMalformedResponse = errors.New("malformed catalog response")

	// ErrInvalidAPIKey indicates the catalog rejected the configured API key
	ErrInvalidAPIKey = errors.New("catalog API key is invalid")

	// ErrInvalidRating indicates a user rating outside 1-10
	ErrInvalidRating = errors.New("rating must be between 1 and 10")

	// ErrAlreadyWatched indicates the movie is already in the watched list
	ErrAlreadyWatched = errors.New("movie is already in the watched list")
)
