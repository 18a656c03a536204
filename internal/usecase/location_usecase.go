// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"nosh/internal/domain/service"
)

// LocationUsecase defines the interface for location-related business operations.
type LocationUsecase interface {
	// Autocomplete returns place suggestions for a partial search input.
	// Input is normalized (trimmed, lowercased) before the provider call
	// and results are memoized for a short window.
	Autocomplete(ctx context.Context, input string) ([]service.Suggestion, error)

	// ReverseGeocode resolves a coordinate to a human-readable address.
	// Lookups are memoized on the coordinate rounded to 4 decimals.
	ReverseGeocode(ctx context.Context, lat, lng float64) (*service.ResolvedAddress, error)
}
