package usecase

import (
	"context"

	"nosh/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase defines the interface for cart-related business operations.
// The cart holds at most one line per (user, menu item) pair; adding an
// item that already has a line merges by summing quantities.
type CartUsecase interface {
	ListCart(ctx context.Context, username string) ([]*entity.CartItem, error)
	AddToCart(ctx context.Context, username string, input *AddToCartInput) (*entity.CartItem, error)
	UpdateCartItem(ctx context.Context, username string, itemID uuid.UUID, quantity int) (*entity.CartItem, error)
	RemoveFromCart(ctx context.Context, username string, itemID uuid.UUID) error
}

// AddToCartInput defines the data required to add a menu item to the cart.
type AddToCartInput struct {
	MenuItemID uuid.UUID `json:"menu_item_id" validate:"required"`
	Quantity   int       `json:"quantity" validate:"required,min=1"`
}
