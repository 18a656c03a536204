package repository

import (
	"context"

	"nosh/internal/domain/entity"
	"nosh/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for restaurant persistence.
var (
	// ErrRestaurantNotFound is returned when a restaurant is not found.
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrMenuItemNotFound is returned when a menu item is not found.
	ErrMenuItemNotFound = errors.New("menu item not found")
)

// RestaurantRepository defines the interface for restaurant-related database operations.
type RestaurantRepository interface {
	// FindAll retrieves every restaurant with its coordinates.
	FindAll(ctx context.Context) ([]*entity.Restaurant, error)

	// FindByID retrieves a restaurant by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)

	// FindMenuItems retrieves the menu of a restaurant.
	FindMenuItems(ctx context.Context, restaurantID uuid.UUID) ([]*entity.MenuItem, error)

	// FindMenuItemByID retrieves a single menu item.
	FindMenuItemByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
}
