package usecase

import (
	"context"

	"nosh/internal/domain/entity"

	"github.com/google/uuid"
)

// WishlistUsecase defines the interface for wishlist-related business operations.
// A restaurant can be saved at most once per user; a duplicate save is
// rejected with a conflict error rather than merged.
type WishlistUsecase interface {
	ListWishlist(ctx context.Context, username string) ([]*entity.WishlistItem, error)
	AddToWishlist(ctx context.Context, username string, restaurantID uuid.UUID) (*entity.WishlistItem, error)
	RemoveFromWishlist(ctx context.Context, username string, itemID uuid.UUID) error
}
