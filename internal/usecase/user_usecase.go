package usecase

import (
	"context"

	"nosh/internal/domain/entity"
)

// UserUsecase defines the interface for user profile lookups.
type UserUsecase interface {
	// GetUser returns the user identified by username.
	GetUser(ctx context.Context, username string) (*entity.User, error)
}
