package repository

import (
	"context"

	"nosh/internal/domain/entity"
	"nosh/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for address persistence.
var (
	// ErrAddressNotFound is returned when an address is not found.
	ErrAddressNotFound = errors.New("address not found")
	// ErrDefaultAddressConflict is returned when the store rejects a second
	// default address for the same user.
	ErrDefaultAddressConflict = errors.New("user already has a default address")
)

// AddressRepository defines the interface for address-related database operations.
type AddressRepository interface {
	// CreateAddress persists a new address for a user.
	CreateAddress(ctx context.Context, address *entity.Address) error

	// FindAddressByID retrieves an address by its unique ID.
	FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindAddressesByUser retrieves all addresses for a user, default first
	// then newest first.
	FindAddressesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)

	// ClearDefaultByUser unsets IsDefault on every address of the user,
	// optionally excluding one address ID (pass uuid.Nil to clear all).
	// The write must be acknowledged before any subsequent insert/update
	// that sets a new default.
	ClearDefaultByUser(ctx context.Context, userID uuid.UUID, exceptID uuid.UUID) error

	// UpdateAddress updates an existing address record.
	UpdateAddress(ctx context.Context, address *entity.Address) error

	// DeleteAddress removes an address by its ID.
	DeleteAddress(ctx context.Context, id uuid.UUID) error
}
