package impl

import (
	"context"
	"log/slog"

	"nosh/internal/domain/entity"
	domainerrors "nosh/internal/domain/errors"
	"nosh/internal/domain/geo"
	"nosh/internal/domain/repository"
	"nosh/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// addressService implements the AddressUsecase interface. All writes that
// touch the default flag run inside one transaction and clear the previous
// default before the new one is written, so the store never holds two
// defaults for the same user.
type addressService struct {
	userRepo    repository.UserRepository
	addressRepo repository.AddressRepository
	txManager   repository.TransactionManager
	logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(
	userRepo repository.UserRepository,
	addressRepo repository.AddressRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.AddressUsecase {
	return &addressService{
		userRepo:    userRepo,
		addressRepo: addressRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// ListAddresses returns the user's addresses, default first then newest
// first. When origin is given, each address carries its distance in meters
// from the origin; the distance is computed per request and never stored.
func (srv *addressService) ListAddresses(ctx context.Context, username string, origin *usecase.Origin) ([]*usecase.AddressWithDistance, error) {
	user, err := srv.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}

	addresses, err := srv.addressRepo.FindAddressesByUser(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	annotated := make([]*usecase.AddressWithDistance, 0, len(addresses))
	for _, address := range addresses {
		entry := &usecase.AddressWithDistance{Address: address}
		if origin != nil {
			meters := geo.DistanceMeters(
				geo.Coordinate{Lat: origin.Latitude, Lng: origin.Longitude},
				geo.Coordinate{Lat: address.Latitude, Lng: address.Longitude},
			)
			entry.DistanceMeters = &meters
		}
		annotated = append(annotated, entry)
	}

	return annotated, nil
}

// CreateAddress persists a new address. When the new address is marked
// default, every other default of the user is cleared first; the clear is
// acknowledged by the store before the insert runs.
func (srv *addressService) CreateAddress(ctx context.Context, username string, input *usecase.CreateAddressInput) (*entity.Address, error) {
	user, err := srv.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}

	address := &entity.Address{
		UserID:      user.ID,
		Label:       input.Label,
		FullAddress: input.FullAddress,
		PhoneNumber: input.PhoneNumber,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		IsDefault:   input.IsDefault,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		// Clear before insert. A brief zero-default window is acceptable;
		// two defaults are not.
		if input.IsDefault {
			if err := addressRepo.ClearDefaultByUser(ctx, user.ID, uuid.Nil); err != nil {
				return errors.Wrap(err, "failed to clear previous default address")
			}
		}

		if err := addressRepo.CreateAddress(ctx, address); err != nil {
			return errors.Wrap(err, "failed to create address")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Address created", "userID", user.ID, "addressID", address.ID, "isDefault", address.IsDefault)

	return address, nil
}

// UpdateAddress applies a partial field set to an address owned by the
// user. A foreign address is indistinguishable from a missing one.
func (srv *addressService) UpdateAddress(ctx context.Context, username string, addressID uuid.UUID, input *usecase.UpdateAddressInput) (*entity.Address, error) {
	user, err := srv.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}

	var updated *entity.Address

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		address, err := addressRepo.FindAddressByID(ctx, addressID)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return errors.Wrap(domainerrors.ErrAddressNotFound, "address not found")
			}

			return errors.Wrap(err, "failed to find address")
		}
		if address.UserID != user.ID {
			return errors.Wrap(domainerrors.ErrAddressNotFound, "address not found")
		}

		if input.Label != nil {
			address.Label = *input.Label
		}
		if input.FullAddress != nil {
			address.FullAddress = *input.FullAddress
		}
		if input.PhoneNumber != nil {
			address.PhoneNumber = input.PhoneNumber
		}
		if input.Latitude != nil {
			address.Latitude = *input.Latitude
		}
		if input.Longitude != nil {
			address.Longitude = *input.Longitude
		}

		if input.IsDefault != nil {
			// Promote: clear every other default before this row becomes
			// one. Demote needs no clearing.
			if *input.IsDefault && !address.IsDefault {
				if err := addressRepo.ClearDefaultByUser(ctx, user.ID, address.ID); err != nil {
					return errors.Wrap(err, "failed to clear previous default address")
				}
			}
			address.IsDefault = *input.IsDefault
		}

		if err := addressRepo.UpdateAddress(ctx, address); err != nil {
			return errors.Wrap(err, "failed to update address")
		}
		updated = address

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteAddress removes an address owned by the user. Deleting the default
// leaves the user with no default; no other address is promoted.
func (srv *addressService) DeleteAddress(ctx context.Context, username string, addressID uuid.UUID) error {
	user, err := srv.resolveUser(ctx, username)
	if err != nil {
		return err
	}

	address, err := srv.addressRepo.FindAddressByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return errors.Wrap(domainerrors.ErrAddressNotFound, "address not found")
		}

		return errors.Wrap(err, "failed to find address")
	}
	if address.UserID != user.ID {
		return errors.Wrap(domainerrors.ErrAddressNotFound, "address not found")
	}

	if err := srv.addressRepo.DeleteAddress(ctx, addressID); err != nil {
		return errors.Wrap(err, "failed to delete address")
	}

	srv.logger.Info("Address deleted", "userID", user.ID, "addressID", addressID, "wasDefault", address.IsDefault)

	return nil
}

func (srv *addressService) resolveUser(ctx context.Context, username string) (*entity.User, error) {
	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
