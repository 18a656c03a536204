package usecase

import (
	"context"

	"nosh/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressUsecase defines the interface for address-related business operations.
// A user holds at most one default address; every write that sets a default
// clears the previous one first, inside a single transaction.
type AddressUsecase interface {
	ListAddresses(ctx context.Context, username string, origin *Origin) ([]*AddressWithDistance, error)
	CreateAddress(ctx context.Context, username string, input *CreateAddressInput) (*entity.Address, error)
	UpdateAddress(ctx context.Context, username string, addressID uuid.UUID, input *UpdateAddressInput) (*entity.Address, error)
	DeleteAddress(ctx context.Context, username string, addressID uuid.UUID) error
}

// --- Input DTOs ---

// Origin is an optional reference coordinate for distance annotation.
type Origin struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CreateAddressInput defines the data required to create an address.
type CreateAddressInput struct {
	Label       string  `json:"label" validate:"required,max=100"`
	FullAddress string  `json:"full_address" validate:"required"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Latitude    float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude   float64 `json:"longitude" validate:"min=-180,max=180"`
	IsDefault   bool    `json:"is_default"`
}

// UpdateAddressInput defines the partial field set for an address update.
// Nil fields are left untouched.
type UpdateAddressInput struct {
	Label       *string  `json:"label,omitempty" validate:"omitempty,max=100"`
	FullAddress *string  `json:"full_address,omitempty"`
	PhoneNumber *string  `json:"phone_number,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude   *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	IsDefault   *bool    `json:"is_default,omitempty"`
}

// --- Output DTOs ---

// AddressWithDistance is an address annotated with the distance in meters
// from a caller-supplied origin. Distance is computed at read time and
// never stored; it is nil when no origin was given.
type AddressWithDistance struct {
	*entity.Address
	DistanceMeters *int `json:"distance,omitempty"`
}
