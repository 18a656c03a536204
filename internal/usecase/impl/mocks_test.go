package impl

import (
	"context"

	"nosh/internal/domain/entity"
	"nosh/internal/domain/repository"
	"nosh/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Hand-rolled testify doubles for the repository and provider interfaces
// used by the service tests.

type mockUserRepository struct{ mock.Mock }

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

type mockAddressRepository struct{ mock.Mock }

func (m *mockAddressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	return m.Called(ctx, address).Error(0)
}

func (m *mockAddressRepository) FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	args := m.Called(ctx, id)
	if address, ok := args.Get(0).(*entity.Address); ok {
		return address, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAddressRepository) FindAddressesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	args := m.Called(ctx, userID)
	if addresses, ok := args.Get(0).([]*entity.Address); ok {
		return addresses, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAddressRepository) ClearDefaultByUser(ctx context.Context, userID uuid.UUID, exceptID uuid.UUID) error {
	return m.Called(ctx, userID, exceptID).Error(0)
}

func (m *mockAddressRepository) UpdateAddress(ctx context.Context, address *entity.Address) error {
	return m.Called(ctx, address).Error(0)
}

func (m *mockAddressRepository) DeleteAddress(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockRestaurantRepository struct{ mock.Mock }

func (m *mockRestaurantRepository) FindAll(ctx context.Context) ([]*entity.Restaurant, error) {
	args := m.Called(ctx)
	if restaurants, ok := args.Get(0).([]*entity.Restaurant); ok {
		return restaurants, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockRestaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	args := m.Called(ctx, id)
	if restaurant, ok := args.Get(0).(*entity.Restaurant); ok {
		return restaurant, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockRestaurantRepository) FindMenuItems(ctx context.Context, restaurantID uuid.UUID) ([]*entity.MenuItem, error) {
	args := m.Called(ctx, restaurantID)
	if items, ok := args.Get(0).([]*entity.MenuItem); ok {
		return items, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockRestaurantRepository) FindMenuItemByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	args := m.Called(ctx, id)
	if item, ok := args.Get(0).(*entity.MenuItem); ok {
		return item, args.Error(1)
	}

	return nil, args.Error(1)
}

type mockCartRepository struct{ mock.Mock }

func (m *mockCartRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error) {
	args := m.Called(ctx, userID)
	if items, ok := args.Get(0).([]*entity.CartItem); ok {
		return items, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCartRepository) FindByUserAndMenuItem(ctx context.Context, userID, menuItemID uuid.UUID) (*entity.CartItem, error) {
	args := m.Called(ctx, userID, menuItemID)
	if item, ok := args.Get(0).(*entity.CartItem); ok {
		return item, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCartRepository) Create(ctx context.Context, item *entity.CartItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockCartRepository) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	return m.Called(ctx, id, quantity).Error(0)
}

func (m *mockCartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockWishlistRepository struct{ mock.Mock }

func (m *mockWishlistRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error) {
	args := m.Called(ctx, userID)
	if items, ok := args.Get(0).([]*entity.WishlistItem); ok {
		return items, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockWishlistRepository) FindByUserAndRestaurant(ctx context.Context, userID, restaurantID uuid.UUID) (*entity.WishlistItem, error) {
	args := m.Called(ctx, userID, restaurantID)
	if item, ok := args.Get(0).(*entity.WishlistItem); ok {
		return item, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockWishlistRepository) Create(ctx context.Context, item *entity.WishlistItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockWishlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockGeocodingProvider struct{ mock.Mock }

func (m *mockGeocodingProvider) Autocomplete(ctx context.Context, input string) ([]service.Suggestion, error) {
	args := m.Called(ctx, input)
	if suggestions, ok := args.Get(0).([]service.Suggestion); ok {
		return suggestions, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockGeocodingProvider) ReverseGeocode(ctx context.Context, lat, lng float64) (*service.ResolvedAddress, error) {
	args := m.Called(ctx, lat, lng)
	if resolved, ok := args.Get(0).(*service.ResolvedAddress); ok {
		return resolved, args.Error(1)
	}

	return nil, args.Error(1)
}

// fakeTxManager runs the unit of work directly against a fixed factory,
// standing in for a real database transaction.
type fakeTxManager struct {
	factory repository.RepositoryFactory
	err     error
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.err != nil {
		return m.err
	}

	return fn(m.factory)
}

type fakeRepoFactory struct {
	addressRepo repository.AddressRepository
	cartRepo    repository.CartRepository
}

func (f *fakeRepoFactory) NewAddressRepository() repository.AddressRepository { return f.addressRepo }
func (f *fakeRepoFactory) NewCartRepository() repository.CartRepository       { return f.cartRepo }
