package entity

import (
	"time"

	"github.com/google/uuid"
)

// WishlistItem marks a restaurant as saved by a user.
// Invariant: unique per (UserID, RestaurantID); a duplicate add is
// rejected, not merged.
type WishlistItem struct {
	ID           uuid.UUID // The unique identifier for the wishlist entry.
	UserID       uuid.UUID // The owning user.
	RestaurantID uuid.UUID // The saved restaurant.
	CreatedAt    time.Time
}
