package main

import (
	"context"
	"log/slog"
	"os"

	"nosh/config"
	"nosh/internal/delivery"
	"nosh/internal/delivery/http"
	"nosh/internal/delivery/http/middleware"
	"nosh/internal/delivery/http/router/handler"
	"nosh/internal/domain/repository"
	"nosh/internal/domain/service"
	"nosh/internal/infra/geocache"
	"nosh/internal/infra/geocode"
	logs "nosh/internal/infra/log"
	"nosh/internal/infra/persistence/postgres"
	"nosh/internal/usecase"
	"nosh/internal/usecase/impl"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAddressRepository,
			postgres.NewRestaurantRepository,
			postgres.NewCartRepository,
			postgres.NewWishlistRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newGeocodingProvider,
			newGeocodeCache,
		),
	)
}

// newGeocodingProvider creates the external places provider client.
func newGeocodingProvider(cfg *config.Config, logger *slog.Logger) service.GeocodingProvider {
	opts := geocode.Options{}
	if cfg.Geocoding != nil {
		opts = geocode.Options{
			BaseURL:      cfg.Geocoding.BaseURL,
			APIKey:       cfg.Geocoding.APIKey,
			Radius:       cfg.Geocoding.Radius,
			StrictBounds: cfg.Geocoding.StrictBounds,
		}
	}

	return geocode.NewClient(opts, logger)
}

// newGeocodeCache picks the cache backend from config: a shared redis
// cache when configured, otherwise the in-process memoization cache.
func newGeocodeCache(cfg *config.Config, logger *slog.Logger) geocache.Cache {
	ttl := geocache.DefaultTTL
	provider := "memory"
	if cfg.Cache != nil {
		if cfg.Cache.TTL > 0 {
			ttl = cfg.Cache.TTL
		}
		if cfg.Cache.Provider != "" {
			provider = cfg.Cache.Provider
		}
	}

	if provider == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
		})

		return geocache.NewRedisCache(client, ttl, logger)
	}

	return geocache.NewMemoryCache(ttl)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewLocationService,
			impl.NewAddressService,
			newRestaurantUsecase,
			impl.NewCartService,
			impl.NewWishlistService,
			impl.NewUserService,
		),
	)
}

// newRestaurantUsecase applies the ranking configuration to the restaurant service.
func newRestaurantUsecase(
	cfg *config.Config,
	userRepo repository.UserRepository,
	restaurantRepo repository.RestaurantRepository,
	logger *slog.Logger,
) usecase.RestaurantUsecase {
	var gridCellSizeKm float64
	if cfg.Ranking != nil {
		gridCellSizeKm = cfg.Ranking.GridCellSizeKm
	}

	return impl.NewRestaurantService(userRepo, restaurantRepo, gridCellSizeKm, logger)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewLocationHandler,
			handler.NewAddressHandler,
			handler.NewRestaurantHandler,
			handler.NewCartHandler,
			handler.NewWishlistHandler,
			handler.NewUserHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
