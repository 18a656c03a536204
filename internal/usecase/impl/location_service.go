// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	domainerrors "nosh/internal/domain/errors"
	"nosh/internal/domain/service"
	"nosh/internal/infra/geocache"
	"nosh/internal/usecase"

	"github.com/pkg/errors"
)

// locationService implements the LocationUsecase interface. It memoizes
// provider responses in the geocode cache so repeated keystrokes and map
// drags inside the TTL window never hit the provider twice.
type locationService struct {
	provider service.GeocodingProvider
	cache    geocache.Cache
	logger   *slog.Logger
}

// NewLocationService is the constructor for locationService.
func NewLocationService(
	provider service.GeocodingProvider,
	cache geocache.Cache,
	logger *slog.Logger,
) usecase.LocationUsecase {
	return &locationService{
		provider: provider,
		cache:    cache,
		logger:   logger,
	}
}

// Autocomplete returns place suggestions for a partial search input.
func (srv *locationService) Autocomplete(ctx context.Context, input string) ([]service.Suggestion, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return nil, domainerrors.ErrSearchInputRequired
	}

	cacheKey := geocache.AutocompleteKey(input)
	if raw, ok := srv.cache.Get(ctx, cacheKey); ok {
		var cached []service.Suggestion
		if err := json.Unmarshal(raw, &cached); err == nil {
			srv.logger.Debug("Autocomplete cache hit", "input", normalized)

			return cached, nil
		}
		// Corrupt entry: fall through to the provider and overwrite it.
		srv.logger.Warn("Discarding unreadable autocomplete cache entry", "key", cacheKey)
	}

	suggestions, err := srv.provider.Autocomplete(ctx, normalized)
	if err != nil {
		return nil, errors.Wrap(err, "autocomplete provider call failed")
	}

	if raw, err := json.Marshal(suggestions); err == nil {
		srv.cache.Set(ctx, cacheKey, raw)
	}

	return suggestions, nil
}

// ReverseGeocode resolves a coordinate to a human-readable address.
func (srv *locationService) ReverseGeocode(ctx context.Context, lat, lng float64) (*service.ResolvedAddress, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	cacheKey := geocache.ReverseKey(lat, lng)
	if raw, ok := srv.cache.Get(ctx, cacheKey); ok {
		var cached service.ResolvedAddress
		if err := json.Unmarshal(raw, &cached); err == nil {
			srv.logger.Debug("Reverse geocode cache hit", "lat", lat, "lng", lng)

			return &cached, nil
		}
		srv.logger.Warn("Discarding unreadable reverse geocode cache entry", "key", cacheKey)
	}

	resolved, err := srv.provider.ReverseGeocode(ctx, lat, lng)
	if err != nil {
		return nil, errors.Wrap(err, "reverse geocode provider call failed")
	}

	if raw, err := json.Marshal(resolved); err == nil {
		srv.cache.Set(ctx, cacheKey, raw)
	}

	return resolved, nil
}
