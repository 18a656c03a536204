// Package service defines ports for external collaborators consumed by
// the use cases.
package service

import "context"

// Suggestion is one autocomplete prediction returned by the geocoding
// provider. The payload is passed through to clients largely as-is.
type Suggestion struct {
	PlaceID     string  `json:"place_id,omitempty"`
	Description string  `json:"description"`
	Latitude    float64 `json:"latitude,omitempty"`
	Longitude   float64 `json:"longitude,omitempty"`
}

// ResolvedAddress is the normalized result of a reverse geocode lookup.
// City, State and Address are always non-empty; the resolver falls back
// to "Unknown City"/"Unknown State" and the raw coordinates when the
// provider payload carries nothing usable.
type ResolvedAddress struct {
	Address   string  `json:"address"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GeocodingProvider is the port for the external geocoding HTTP API.
// Implementations carry their own request timeout; on expiry they return
// a gateway-timeout domain error rather than a generic failure.
type GeocodingProvider interface {
	// Autocomplete returns place predictions for a normalized free-text
	// input. A provider "ZERO_RESULTS" status yields an empty slice, not
	// an error.
	Autocomplete(ctx context.Context, input string) ([]Suggestion, error)

	// ReverseGeocode resolves a coordinate pair into a human-readable
	// address, tolerating provider payload shape variance.
	ReverseGeocode(ctx context.Context, lat, lng float64) (*ResolvedAddress, error)
}
