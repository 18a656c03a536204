package usecase

import (
	"context"

	"nosh/internal/domain/entity"

	"github.com/google/uuid"
)

// RestaurantUsecase defines the interface for restaurant browsing and ranking.
type RestaurantUsecase interface {
	// ListRestaurants returns every restaurant annotated with the distance
	// from the user's stored location, nearest first.
	ListRestaurants(ctx context.Context, username string) ([]*RankedRestaurant, error)

	// ListNearbyRestaurants returns the restaurants within radiusKm of the
	// user's stored location, nearest first.
	ListNearbyRestaurants(ctx context.Context, username string, radiusKm float64) ([]*RankedRestaurant, error)

	// GetRestaurant returns one restaurant annotated with distance.
	GetRestaurant(ctx context.Context, username string, id uuid.UUID) (*RankedRestaurant, error)

	// ListMenuItems returns the menu of a restaurant.
	ListMenuItems(ctx context.Context, restaurantID uuid.UUID) ([]*entity.MenuItem, error)
}

// RankedRestaurant is a restaurant annotated with the distance in
// kilometers (2 decimals) from the ranking origin.
type RankedRestaurant struct {
	*entity.Restaurant
	DistanceKm float64 `json:"distance"`
}
