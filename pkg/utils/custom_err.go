package utils

import "errors"

var (
	// Pipeline errors. None of these carry raw model output; that is
	// logged server-side only.
	ErrInvalidRequest              = errors.New("invalid trip request")
	ErrGenerationUnavailable       = errors.New("generation model unavailable")
	ErrExtractionFailed            = errors.New("no parseable itinerary in model output")
	ErrMalformedItinerary          = errors.New("model output failed itinerary validation")
	ErrDestinationFactsUnavailable = errors.New("destination facts unavailable")

	ErrTripNotFound    = errors.New("trip not found")
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")
)
