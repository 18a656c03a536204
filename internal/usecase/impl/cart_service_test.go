package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"nosh/internal/domain/entity"
	domainerrors "nosh/internal/domain/errors"
	"nosh/internal/domain/repository"
	"nosh/internal/errors"
	"nosh/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cartServiceFixtures struct {
	service        usecase.CartUsecase
	userRepo       *mockUserRepository
	restaurantRepo *mockRestaurantRepository
	cartRepo       *mockCartRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	t.Helper()

	userRepo := new(mockUserRepository)
	restaurantRepo := new(mockRestaurantRepository)
	cartRepo := new(mockCartRepository)
	txManager := &fakeTxManager{factory: &fakeRepoFactory{cartRepo: cartRepo}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return cartServiceFixtures{
		service:        NewCartService(userRepo, restaurantRepo, cartRepo, txManager, logger),
		userRepo:       userRepo,
		restaurantRepo: restaurantRepo,
		cartRepo:       cartRepo,
	}
}

func TestCartService_AddToCart_CreatesNewLine(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "alice"}
	menuItem := &entity.MenuItem{ID: uuid.New(), Name: "Noodles"}

	fx.userRepo.On("FindByUsername", ctx, "alice").Return(user, nil)
	fx.restaurantRepo.On("FindMenuItemByID", ctx, menuItem.ID).Return(menuItem, nil)
	fx.cartRepo.On("FindByUserAndMenuItem", ctx, user.ID, menuItem.ID).
		Return(nil, repository.ErrCartItemNotFound)
	fx.cartRepo.On("Create", ctx, mock.AnythingOfType("*entity.CartItem")).Return(nil)

	item, err := fx.service.AddToCart(ctx, "alice", &usecase.AddToCartInput{
		MenuItemID: menuItem.ID,
		Quantity:   2,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)
	fx.cartRepo.AssertNotCalled(t, "UpdateQuantity")
}

func TestCartService_AddToCart_MergesQuantities(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "alice"}
	menuItem := &entity.MenuItem{ID: uuid.New(), Name: "Noodles"}
	existing := &entity.CartItem{ID: uuid.New(), UserID: user.ID, MenuItemID: menuItem.ID, Quantity: 2}

	fx.userRepo.On("FindByUsername", ctx, "alice").Return(user, nil)
	fx.restaurantRepo.On("FindMenuItemByID", ctx, menuItem.ID).Return(menuItem, nil)
	fx.cartRepo.On("FindByUserAndMenuItem", ctx, user.ID, menuItem.ID).Return(existing, nil)
	fx.cartRepo.On("UpdateQuantity", ctx, existing.ID, 5).Return(nil)

	item, err := fx.service.AddToCart(ctx, "alice", &usecase.AddToCartInput{
		MenuItemID: menuItem.ID,
		Quantity:   3,
	})

	require.NoError(t, err)
	// 2 already in the cart + 3 added = 5, still a single line.
	assert.Equal(t, 5, item.Quantity)
	assert.Equal(t, existing.ID, item.ID)
	fx.cartRepo.AssertNotCalled(t, "Create")
}

func TestCartService_AddToCart_RejectsNonPositiveQuantity(t *testing.T) {
	fx := createTestCartService(t)

	for _, quantity := range []int{0, -1} {
		_, err := fx.service.AddToCart(context.Background(), "alice", &usecase.AddToCartInput{
			MenuItemID: uuid.New(),
			Quantity:   quantity,
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidQuantity))
	}

	// Validation fails before any lookup.
	fx.userRepo.AssertNotCalled(t, "FindByUsername")
}

func TestCartService_AddToCart_UnknownMenuItem(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "alice"}
	missingID := uuid.New()

	fx.userRepo.On("FindByUsername", ctx, "alice").Return(user, nil)
	fx.restaurantRepo.On("FindMenuItemByID", ctx, missingID).Return(nil, repository.ErrMenuItemNotFound)

	_, err := fx.service.AddToCart(ctx, "alice", &usecase.AddToCartInput{
		MenuItemID: missingID,
		Quantity:   1,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMenuItemNotFound))
}

func TestCartService_UpdateCartItem_ForeignLineLooksMissing(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "alice"}
	otherID := uuid.New()

	fx.userRepo.On("FindByUsername", ctx, "alice").Return(user, nil)
	fx.cartRepo.On("FindByUser", ctx, user.ID).Return([]*entity.CartItem{}, nil)

	_, err := fx.service.UpdateCartItem(ctx, "alice", otherID, 4)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound))
	fx.cartRepo.AssertNotCalled(t, "UpdateQuantity")
}

func TestCartService_RemoveFromCart_DeletesOwnedLine(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "alice"}
	item := &entity.CartItem{ID: uuid.New(), UserID: user.ID, Quantity: 1}

	fx.userRepo.On("FindByUsername", ctx, "alice").Return(user, nil)
	fx.cartRepo.On("FindByUser", ctx, user.ID).Return([]*entity.CartItem{item}, nil)
	fx.cartRepo.On("Delete", ctx, item.ID).Return(nil)

	err := fx.service.RemoveFromCart(ctx, "alice", item.ID)

	require.NoError(t, err)
	fx.cartRepo.AssertExpectations(t)
}
