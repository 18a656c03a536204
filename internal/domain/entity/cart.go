package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is a single cart line for a user.
// Invariant: unique per (UserID, MenuItemID); a repeated add merges by
// summing quantities instead of creating a second line.
type CartItem struct {
	ID         uuid.UUID // The unique identifier for the cart line.
	UserID     uuid.UUID // The owning user.
	MenuItemID uuid.UUID // The referenced menu item.
	Quantity   int       // Always >= 1.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
