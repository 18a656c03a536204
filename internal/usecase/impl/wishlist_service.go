package impl

import (
	"context"
	"log/slog"

	"nosh/internal/domain/entity"
	domainerrors "nosh/internal/domain/errors"
	"nosh/internal/domain/repository"
	"nosh/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// wishlistService implements the WishlistUsecase interface. A restaurant
// can be saved at most once per user; duplicates are rejected, not merged.
type wishlistService struct {
	userRepo       repository.UserRepository
	restaurantRepo repository.RestaurantRepository
	wishlistRepo   repository.WishlistRepository
	logger         *slog.Logger
}

// NewWishlistService is the constructor for wishlistService.
func NewWishlistService(
	userRepo repository.UserRepository,
	restaurantRepo repository.RestaurantRepository,
	wishlistRepo repository.WishlistRepository,
	logger *slog.Logger,
) usecase.WishlistUsecase {
	return &wishlistService{
		userRepo:       userRepo,
		restaurantRepo: restaurantRepo,
		wishlistRepo:   wishlistRepo,
		logger:         logger,
	}
}

// ListWishlist returns the user's saved restaurants, newest first.
func (srv *wishlistService) ListWishlist(ctx context.Context, username string) ([]*entity.WishlistItem, error) {
	user, err := srv.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}

	items, err := srv.wishlistRepo.FindByUser(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist")
	}

	return items, nil
}

// AddToWishlist saves a restaurant for the user. A second save of the same
// restaurant is rejected with a conflict error.
func (srv *wishlistService) AddToWishlist(ctx context.Context, username string, restaurantID uuid.UUID) (*entity.WishlistItem, error) {
	user, err := srv.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}

	if _, err := srv.restaurantRepo.FindByID(ctx, restaurantID); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRestaurantNotFound, "restaurant not found")
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	if _, err := srv.wishlistRepo.FindByUserAndRestaurant(ctx, user.ID, restaurantID); err == nil {
		return nil, errors.Wrap(domainerrors.ErrWishlistDuplicate, "restaurant already in wishlist")
	} else if !errors.Is(err, repository.ErrWishlistItemNotFound) {
		return nil, errors.Wrap(err, "failed to check wishlist")
	}

	item := &entity.WishlistItem{
		UserID:       user.ID,
		RestaurantID: restaurantID,
	}
	if err := srv.wishlistRepo.Create(ctx, item); err != nil {
		// A concurrent add can still hit the unique constraint.
		if errors.Is(err, repository.ErrWishlistDuplicate) {
			return nil, errors.Wrap(domainerrors.ErrWishlistDuplicate, "restaurant already in wishlist")
		}

		return nil, errors.Wrap(err, "failed to create wishlist entry")
	}

	srv.logger.Debug("Wishlist entry created", "userID", user.ID, "restaurantID", restaurantID)

	return item, nil
}

// RemoveFromWishlist deletes a wishlist entry owned by the user.
func (srv *wishlistService) RemoveFromWishlist(ctx context.Context, username string, itemID uuid.UUID) error {
	user, err := srv.resolveUser(ctx, username)
	if err != nil {
		return err
	}

	items, err := srv.wishlistRepo.FindByUser(ctx, user.ID)
	if err != nil {
		return errors.Wrap(err, "failed to list wishlist")
	}

	for _, item := range items {
		if item.ID == itemID {
			if err := srv.wishlistRepo.Delete(ctx, item.ID); err != nil {
				return errors.Wrap(err, "failed to delete wishlist entry")
			}

			return nil
		}
	}

	return errors.Wrap(domainerrors.ErrWishlistItemNotFound, "wishlist item not found")
}

func (srv *wishlistService) resolveUser(ctx context.Context, username string) (*entity.User, error) {
	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
