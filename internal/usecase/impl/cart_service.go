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

// cartService implements the CartUsecase interface. Adding an item that
// already has a cart line merges by summing quantities; the find-and-merge
// runs inside one transaction so concurrent adds cannot create two lines.
type cartService struct {
	userRepo       repository.UserRepository
	restaurantRepo repository.RestaurantRepository
	cartRepo       repository.CartRepository
	txManager      repository.TransactionManager
	logger         *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	userRepo repository.UserRepository,
	restaurantRepo repository.RestaurantRepository,
	cartRepo repository.CartRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		userRepo:       userRepo,
		restaurantRepo: restaurantRepo,
		cartRepo:       cartRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

// ListCart returns the user's cart lines, oldest first.
func (srv *cartService) ListCart(ctx context.Context, username string) ([]*entity.CartItem, error) {
	user, err := srv.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}

	items, err := srv.cartRepo.FindByUser(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart")
	}

	return items, nil
}

// AddToCart adds a menu item to the cart, merging with an existing line
// for the same item by summing quantities.
func (srv *cartService) AddToCart(ctx context.Context, username string, input *usecase.AddToCartInput) (*entity.CartItem, error) {
	if input.Quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	user, err := srv.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}

	if _, err := srv.restaurantRepo.FindMenuItemByID(ctx, input.MenuItemID); err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, errors.Wrap(domainerrors.ErrMenuItemNotFound, "menu item not found")
		}

		return nil, errors.Wrap(err, "failed to find menu item")
	}

	var result *entity.CartItem

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()

		existing, err := cartRepo.FindByUserAndMenuItem(ctx, user.ID, input.MenuItemID)
		switch {
		case err == nil:
			// Merge path: one line per (user, menu item).
			merged := existing.Quantity + input.Quantity
			if err := cartRepo.UpdateQuantity(ctx, existing.ID, merged); err != nil {
				return errors.Wrap(err, "failed to merge cart line")
			}
			existing.Quantity = merged
			result = existing

			return nil
		case errors.Is(err, repository.ErrCartItemNotFound):
			item := &entity.CartItem{
				UserID:     user.ID,
				MenuItemID: input.MenuItemID,
				Quantity:   input.Quantity,
			}
			if err := cartRepo.Create(ctx, item); err != nil {
				return errors.Wrap(err, "failed to create cart line")
			}
			result = item

			return nil
		default:
			return errors.Wrap(err, "failed to find cart line")
		}
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Debug("Cart line upserted", "userID", user.ID, "menuItemID", input.MenuItemID, "quantity", result.Quantity)

	return result, nil
}

// UpdateCartItem sets the quantity of a cart line owned by the user.
func (srv *cartService) UpdateCartItem(ctx context.Context, username string, itemID uuid.UUID, quantity int) (*entity.CartItem, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	user, err := srv.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}

	item, err := srv.findOwnedLine(ctx, user.ID, itemID)
	if err != nil {
		return nil, err
	}

	if err := srv.cartRepo.UpdateQuantity(ctx, item.ID, quantity); err != nil {
		return nil, errors.Wrap(err, "failed to update cart quantity")
	}
	item.Quantity = quantity

	return item, nil
}

// RemoveFromCart deletes a cart line owned by the user.
func (srv *cartService) RemoveFromCart(ctx context.Context, username string, itemID uuid.UUID) error {
	user, err := srv.resolveUser(ctx, username)
	if err != nil {
		return err
	}

	item, err := srv.findOwnedLine(ctx, user.ID, itemID)
	if err != nil {
		return err
	}

	if err := srv.cartRepo.Delete(ctx, item.ID); err != nil {
		return errors.Wrap(err, "failed to delete cart line")
	}

	return nil
}

// findOwnedLine locates a cart line by ID among the user's lines. A line
// belonging to another user is indistinguishable from a missing one.
func (srv *cartService) findOwnedLine(ctx context.Context, userID, itemID uuid.UUID) (*entity.CartItem, error) {
	items, err := srv.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart")
	}

	for _, item := range items {
		if item.ID == itemID {
			return item, nil
		}
	}

	return nil, errors.Wrap(domainerrors.ErrCartItemNotFound, "cart item not found")
}

func (srv *cartService) resolveUser(ctx context.Context, username string) (*entity.User, error) {
	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
