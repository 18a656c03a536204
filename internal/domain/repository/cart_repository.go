package repository

import (
	"context"

	"nosh/internal/domain/entity"
	"nosh/internal/errors"

	"github.com/google/uuid"
)

// ErrCartItemNotFound is returned when a cart line is not found.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository defines the interface for cart-related database operations.
type CartRepository interface {
	// FindByUser retrieves all cart lines for a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error)

	// FindByUserAndMenuItem retrieves the cart line for a (user, menu item)
	// pair. Returns ErrCartItemNotFound when the pair has no line yet.
	FindByUserAndMenuItem(ctx context.Context, userID, menuItemID uuid.UUID) (*entity.CartItem, error)

	// Create inserts a new cart line.
	Create(ctx context.Context, item *entity.CartItem) error

	// UpdateQuantity sets the quantity of an existing cart line.
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error

	// Delete removes a cart line by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
