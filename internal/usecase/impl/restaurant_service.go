package impl

import (
	"context"
	"log/slog"
	"sort"

	"nosh/internal/domain/entity"
	domainerrors "nosh/internal/domain/errors"
	"nosh/internal/domain/geo"
	"nosh/internal/domain/repository"
	"nosh/internal/infra/spatial"
	"nosh/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

const defaultNearbyRadiusKm = 10.0

// restaurantService implements the RestaurantUsecase interface. Listings
// are annotated with the haversine distance from the user's stored
// location, rounded to 2 decimals, and sorted nearest first.
type restaurantService struct {
	userRepo       repository.UserRepository
	restaurantRepo repository.RestaurantRepository
	gridCellSizeKm float64
	logger         *slog.Logger
}

// NewRestaurantService is the constructor for restaurantService.
func NewRestaurantService(
	userRepo repository.UserRepository,
	restaurantRepo repository.RestaurantRepository,
	gridCellSizeKm float64,
	logger *slog.Logger,
) usecase.RestaurantUsecase {
	if gridCellSizeKm <= 0 {
		gridCellSizeKm = 1.0
	}

	return &restaurantService{
		userRepo:       userRepo,
		restaurantRepo: restaurantRepo,
		gridCellSizeKm: gridCellSizeKm,
		logger:         logger,
	}
}

// ListRestaurants returns every restaurant ranked by distance from the
// user's stored location.
func (srv *restaurantService) ListRestaurants(ctx context.Context, username string) ([]*usecase.RankedRestaurant, error) {
	origin, err := srv.resolveOrigin(ctx, username)
	if err != nil {
		return nil, err
	}

	restaurants, err := srv.restaurantRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	return rankByDistance(restaurants, origin), nil
}

// ListNearbyRestaurants returns the restaurants within radiusKm of the
// user's stored location, ranked by distance. Candidates come from a grid
// index so large catalogs are not scanned point by point.
func (srv *restaurantService) ListNearbyRestaurants(ctx context.Context, username string, radiusKm float64) ([]*usecase.RankedRestaurant, error) {
	if radiusKm <= 0 {
		radiusKm = defaultNearbyRadiusKm
	}

	origin, err := srv.resolveOrigin(ctx, username)
	if err != nil {
		return nil, err
	}

	restaurants, err := srv.restaurantRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	index := spatial.NewGridIndex(srv.gridCellSizeKm)
	points := make([]spatial.Point, 0, len(restaurants))
	byID := make(map[uuid.UUID]*entity.Restaurant, len(restaurants))
	for _, restaurant := range restaurants {
		points = append(points, spatial.Point{
			ID:       restaurant.ID,
			Location: orb.Point{restaurant.Longitude, restaurant.Latitude},
		})
		byID[restaurant.ID] = restaurant
	}
	index.Build(points)

	var nearby []*entity.Restaurant
	for _, id := range index.Within(orb.Point{origin.Lng, origin.Lat}, radiusKm) {
		nearby = append(nearby, byID[id])
	}

	return rankByDistance(nearby, origin), nil
}

// GetRestaurant returns one restaurant annotated with distance.
func (srv *restaurantService) GetRestaurant(ctx context.Context, username string, id uuid.UUID) (*usecase.RankedRestaurant, error) {
	origin, err := srv.resolveOrigin(ctx, username)
	if err != nil {
		return nil, err
	}

	restaurant, err := srv.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRestaurantNotFound, "restaurant not found")
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	return annotate(restaurant, origin), nil
}

// ListMenuItems returns the menu of a restaurant.
func (srv *restaurantService) ListMenuItems(ctx context.Context, restaurantID uuid.UUID) ([]*entity.MenuItem, error) {
	if _, err := srv.restaurantRepo.FindByID(ctx, restaurantID); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRestaurantNotFound, "restaurant not found")
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	items, err := srv.restaurantRepo.FindMenuItems(ctx, restaurantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu items")
	}

	return items, nil
}

func (srv *restaurantService) resolveOrigin(ctx context.Context, username string) (geo.Coordinate, error) {
	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return geo.Coordinate{}, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return geo.Coordinate{}, errors.Wrap(err, "failed to find user")
	}

	return geo.Coordinate{Lat: user.Latitude, Lng: user.Longitude}, nil
}

func annotate(restaurant *entity.Restaurant, origin geo.Coordinate) *usecase.RankedRestaurant {
	km := geo.Distance(origin, geo.Coordinate{Lat: restaurant.Latitude, Lng: restaurant.Longitude})

	return &usecase.RankedRestaurant{
		Restaurant: restaurant,
		DistanceKm: geo.RoundKm(km),
	}
}

func rankByDistance(restaurants []*entity.Restaurant, origin geo.Coordinate) []*usecase.RankedRestaurant {
	ranked := make([]*usecase.RankedRestaurant, 0, len(restaurants))
	for _, restaurant := range restaurants {
		ranked = append(ranked, annotate(restaurant, origin))
	}

	// Stable keeps the stored order for restaurants at the same rounded
	// distance.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	return ranked
}
