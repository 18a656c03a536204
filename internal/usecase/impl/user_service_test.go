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

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetUser_Success(t *testing.T) {
	userRepo := new(mockUserRepository)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewUserService(userRepo, logger)

	ctx := context.Background()
	expected := &entity.User{ID: uuid.New(), Username: "alice", Email: "alice@example.com"}
	userRepo.On("FindByUsername", ctx, "alice").Return(expected, nil)

	user, err := service.GetUser(ctx, "alice")

	require.NoError(t, err)
	assert.Equal(t, expected, user)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	userRepo := new(mockUserRepository)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewUserService(userRepo, logger)

	ctx := context.Background()
	userRepo.On("FindByUsername", ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	_, err := service.GetUser(ctx, "ghost")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
