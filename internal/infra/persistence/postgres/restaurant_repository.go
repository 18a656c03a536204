package postgres

import (
	"context"

	"nosh/internal/domain/entity"
	"nosh/internal/domain/repository"
	"nosh/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// restaurantRepository implements the domain.RestaurantRepository interface.
type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(db *gorm.DB) repository.RestaurantRepository {
	return &restaurantRepository{db: db}
}

// FindAll retrieves every restaurant with its coordinates.
func (repo *restaurantRepository) FindAll(ctx context.Context) ([]*entity.Restaurant, error) {
	var restaurantModels []*model.RestaurantModel
	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&restaurantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find restaurants")
	}

	restaurants := make([]*entity.Restaurant, 0, len(restaurantModels))
	for _, restaurantM := range restaurantModels {
		restaurants = append(restaurants, toRestaurantDomain(restaurantM))
	}

	return restaurants, nil
}

// FindByID retrieves a restaurant by its unique ID.
func (repo *restaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&restaurantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by ID")
	}

	return toRestaurantDomain(&restaurantM), nil
}

// FindMenuItems retrieves the menu of a restaurant.
func (repo *restaurantRepository) FindMenuItems(ctx context.Context, restaurantID uuid.UUID) ([]*entity.MenuItem, error) {
	var itemModels []*model.MenuItemModel
	if err := repo.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("name ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find menu items")
	}

	items := make([]*entity.MenuItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toMenuItemDomain(itemM))
	}

	return items, nil
}

// FindMenuItemByID retrieves a single menu item.
func (repo *restaurantRepository) FindMenuItemByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	var itemM model.MenuItemModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu item by ID")
	}

	return toMenuItemDomain(&itemM), nil
}

func toRestaurantDomain(restaurantM *model.RestaurantModel) *entity.Restaurant {
	return &entity.Restaurant{
		ID:          restaurantM.ID,
		Name:        restaurantM.Name,
		Description: restaurantM.Description,
		ImageURL:    restaurantM.ImageURL,
		Rating:      restaurantM.Rating,
		Latitude:    restaurantM.Latitude,
		Longitude:   restaurantM.Longitude,
		CreatedAt:   restaurantM.CreatedAt,
		UpdatedAt:   restaurantM.UpdatedAt,
	}
}

func toMenuItemDomain(itemM *model.MenuItemModel) *entity.MenuItem {
	return &entity.MenuItem{
		ID:           itemM.ID,
		RestaurantID: itemM.RestaurantID,
		Name:         itemM.Name,
		Description:  itemM.Description,
		Price:        itemM.Price,
		ImageURL:     itemM.ImageURL,
		CreatedAt:    itemM.CreatedAt,
		UpdatedAt:    itemM.UpdatedAt,
	}
}
