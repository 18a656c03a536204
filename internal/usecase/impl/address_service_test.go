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

type addressServiceFixtures struct {
	service     usecase.AddressUsecase
	userRepo    *mockUserRepository
	addressRepo *mockAddressRepository
}

func createTestAddressService(t *testing.T) addressServiceFixtures {
	t.Helper()

	userRepo := new(mockUserRepository)
	addressRepo := new(mockAddressRepository)
	txManager := &fakeTxManager{factory: &fakeRepoFactory{addressRepo: addressRepo}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return addressServiceFixtures{
		service:     NewAddressService(userRepo, addressRepo, txManager, logger),
		userRepo:    userRepo,
		addressRepo: addressRepo,
	}
}

func TestAddressService_CreateAddress_DefaultClearsBeforeInsert(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "alice"}
	fx.userRepo.On("FindByUsername", ctx, "alice").Return(user, nil)

	var calls []string
	fx.addressRepo.On("ClearDefaultByUser", ctx, user.ID, uuid.Nil).
		Run(func(mock.Arguments) { calls = append(calls, "clear") }).
		Return(nil)
	fx.addressRepo.On("CreateAddress", ctx, mock.AnythingOfType("*entity.Address")).
		Run(func(mock.Arguments) { calls = append(calls, "create") }).
		Return(nil)

	address, err := fx.service.CreateAddress(ctx, "alice", &usecase.CreateAddressInput{
		Label:       "Home",
		FullAddress: "1 Main St",
		Latitude:    25.0330,
		Longitude:   121.5654,
		IsDefault:   true,
	})

	require.NoError(t, err)
	assert.True(t, address.IsDefault)
	// The previous default must be cleared before the insert runs.
	assert.Equal(t, []string{"clear", "create"}, calls)
}

func TestAddressService_CreateAddress_NonDefaultSkipsClear(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "alice"}
	fx.userRepo.On("FindByUsername", ctx, "alice").Return(user, nil)
	fx.addressRepo.On("CreateAddress", ctx, mock.AnythingOfType("*entity.Address")).Return(nil)

	_, err := fx.service.CreateAddress(ctx, "alice", &usecase.CreateAddressInput{
		Label:       "Office",
		FullAddress: "2 Work Rd",
	})

	require.NoError(t, err)
	fx.addressRepo.AssertNotCalled(t, "ClearDefaultByUser")
}

func TestAddressService_CreateAddress_UnknownUser(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	fx.userRepo.On("FindByUsername", ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.CreateAddress(ctx, "ghost", &usecase.CreateAddressInput{Label: "Home"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	fx.addressRepo.AssertNotCalled(t, "CreateAddress")
}

func TestAddressService_UpdateAddress_PromoteClearsOthersFirst(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "alice"}
	addressID := uuid.New()
	existing := &entity.Address{ID: addressID, UserID: user.ID, Label: "Office", IsDefault: false}

	fx.userRepo.On("FindByUsername", ctx, "alice").Return(user, nil)
	fx.addressRepo.On("FindAddressByID", ctx, addressID).Return(existing, nil)

	var calls []string
	// The row being promoted is excluded from the clear.
	fx.addressRepo.On("ClearDefaultByUser", ctx, user.ID, addressID).
		Run(func(mock.Arguments) { calls = append(calls, "clear") }).
		Return(nil)
	fx.addressRepo.On("UpdateAddress", ctx, mock.AnythingOfType("*entity.Address")).
		Run(func(mock.Arguments) { calls = append(calls, "update") }).
		Return(nil)

	isDefault := true
	updated, err := fx.service.UpdateAddress(ctx, "alice", addressID, &usecase.UpdateAddressInput{
		IsDefault: &isDefault,
	})

	require.NoError(t, err)
	assert.True(t, updated.IsDefault)
	assert.Equal(t, []string{"clear", "update"}, calls)
}

func TestAddressService_UpdateAddress_DemoteSkipsClear(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "alice"}
	addressID := uuid.New()
	existing := &entity.Address{ID: addressID, UserID: user.ID, IsDefault: true}

	fx.userRepo.On("FindByUsername", ctx, "alice").Return(user, nil)
	fx.addressRepo.On("FindAddressByID", ctx, addressID).Return(existing, nil)
	fx.addressRepo.On("UpdateAddress", ctx, mock.AnythingOfType("*entity.Address")).Return(nil)

	isDefault := false
	updated, err := fx.service.UpdateAddress(ctx, "alice", addressID, &usecase.UpdateAddressInput{
		IsDefault: &isDefault,
	})

	require.NoError(t, err)
	assert.False(t, updated.IsDefault)
	fx.addressRepo.AssertNotCalled(t, "ClearDefaultByUser")
}

func TestAddressService_UpdateAddress_ForeignAddressLooksMissing(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "alice"}
	addressID := uuid.New()
	foreign := &entity.Address{ID: addressID, UserID: uuid.New()}

	fx.userRepo.On("FindByUsername", ctx, "alice").Return(user, nil)
	fx.addressRepo.On("FindAddressByID", ctx, addressID).Return(foreign, nil)

	label := "Hijack"
	_, err := fx.service.UpdateAddress(ctx, "alice", addressID, &usecase.UpdateAddressInput{Label: &label})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))
	fx.addressRepo.AssertNotCalled(t, "UpdateAddress")
}

func TestAddressService_DeleteAddress_NoDefaultPromotion(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "alice"}
	addressID := uuid.New()
	existing := &entity.Address{ID: addressID, UserID: user.ID, IsDefault: true}

	fx.userRepo.On("FindByUsername", ctx, "alice").Return(user, nil)
	fx.addressRepo.On("FindAddressByID", ctx, addressID).Return(existing, nil)
	fx.addressRepo.On("DeleteAddress", ctx, addressID).Return(nil)

	err := fx.service.DeleteAddress(ctx, "alice", addressID)

	require.NoError(t, err)
	// Deleting the default leaves the user with no default.
	fx.addressRepo.AssertNotCalled(t, "UpdateAddress")
	fx.addressRepo.AssertNotCalled(t, "ClearDefaultByUser")
}

func TestAddressService_ListAddresses_AnnotatesDistanceFromOrigin(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "alice"}
	addresses := []*entity.Address{
		{ID: uuid.New(), UserID: user.ID, Latitude: 25.0330, Longitude: 121.5654, IsDefault: true},
		{ID: uuid.New(), UserID: user.ID, Latitude: 25.0340, Longitude: 121.5654},
	}

	fx.userRepo.On("FindByUsername", ctx, "alice").Return(user, nil)
	fx.addressRepo.On("FindAddressesByUser", ctx, user.ID).Return(addresses, nil)

	origin := &usecase.Origin{Latitude: 25.0330, Longitude: 121.5654}
	annotated, err := fx.service.ListAddresses(ctx, "alice", origin)

	require.NoError(t, err)
	require.Len(t, annotated, 2)
	require.NotNil(t, annotated[0].DistanceMeters)
	assert.Equal(t, 0, *annotated[0].DistanceMeters)
	require.NotNil(t, annotated[1].DistanceMeters)
	// 0.001 degrees of latitude is roughly 111 meters.
	assert.InDelta(t, 111, *annotated[1].DistanceMeters, 2)
}

func TestAddressService_ListAddresses_NoOriginNoDistance(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "alice"}
	addresses := []*entity.Address{{ID: uuid.New(), UserID: user.ID}}

	fx.userRepo.On("FindByUsername", ctx, "alice").Return(user, nil)
	fx.addressRepo.On("FindAddressesByUser", ctx, user.ID).Return(addresses, nil)

	annotated, err := fx.service.ListAddresses(ctx, "alice", nil)

	require.NoError(t, err)
	require.Len(t, annotated, 1)
	assert.Nil(t, annotated[0].DistanceMeters)
}
