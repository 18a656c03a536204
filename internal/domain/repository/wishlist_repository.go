package repository

import (
	"context"

	"nosh/internal/domain/entity"
	"nosh/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for wishlist persistence.
var (
	// ErrWishlistItemNotFound is returned when a wishlist entry is not found.
	ErrWishlistItemNotFound = errors.New("wishlist item not found")
	// ErrWishlistDuplicate is returned when the (user, restaurant) pair
	// already exists.
	ErrWishlistDuplicate = errors.New("restaurant already in wishlist")
)

// WishlistRepository defines the interface for wishlist-related database operations.
type WishlistRepository interface {
	// FindByUser retrieves all wishlist entries for a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error)

	// FindByUserAndRestaurant retrieves the entry for a (user, restaurant)
	// pair. Returns ErrWishlistItemNotFound when the pair is absent.
	FindByUserAndRestaurant(ctx context.Context, userID, restaurantID uuid.UUID) (*entity.WishlistItem, error)

	// Create inserts a new wishlist entry. Returns ErrWishlistDuplicate when
	// the unique (user, restaurant) constraint is violated.
	Create(ctx context.Context, item *entity.WishlistItem) error

	// Delete removes a wishlist entry by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
