package postgres

import (
	"context"

	"nosh/internal/domain/entity"
	domainerrors "nosh/internal/domain/errors"
	"nosh/internal/domain/repository"
	"nosh/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// wishlistRepository implements the domain.WishlistRepository interface.
type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository is the constructor for wishlistRepository.
func NewWishlistRepository(db *gorm.DB) repository.WishlistRepository {
	return &wishlistRepository{db: db}
}

// FindByUser retrieves all wishlist entries for a user.
func (repo *wishlistRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error) {
	var itemModels []*model.WishlistItemModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find wishlist items by user")
	}

	items := make([]*entity.WishlistItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toWishlistItemDomain(itemM))
	}

	return items, nil
}

// FindByUserAndRestaurant retrieves the entry for a (user, restaurant) pair.
func (repo *wishlistRepository) FindByUserAndRestaurant(ctx context.Context, userID, restaurantID uuid.UUID) (*entity.WishlistItem, error) {
	var itemM model.WishlistItemModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWishlistItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find wishlist item by user and restaurant")
	}

	return toWishlistItemDomain(&itemM), nil
}

// Create inserts a new wishlist entry.
func (repo *wishlistRepository) Create(ctx context.Context, item *entity.WishlistItem) error {
	itemM := &model.WishlistItemModel{
		ID:           item.ID,
		UserID:       item.UserID,
		RestaurantID: item.RestaurantID,
		CreatedAt:    item.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrWishlistDuplicate
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create wishlist item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt

	return nil
}

// Delete removes a wishlist entry by its ID.
func (repo *wishlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.WishlistItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete wishlist item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWishlistItemNotFound
	}

	return nil
}

func toWishlistItemDomain(itemM *model.WishlistItemModel) *entity.WishlistItem {
	return &entity.WishlistItem{
		ID:           itemM.ID,
		UserID:       itemM.UserID,
		RestaurantID: itemM.RestaurantID,
		CreatedAt:    itemM.CreatedAt,
	}
}
