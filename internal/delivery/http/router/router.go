// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"nosh/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LocationHandler   *handler.LocationHandler
	AddressHandler    *handler.AddressHandler
	RestaurantHandler *handler.RestaurantHandler
	CartHandler       *handler.CartHandler
	WishlistHandler   *handler.WishlistHandler
	UserHandler       *handler.UserHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	locationHandler   *handler.LocationHandler
	addressHandler    *handler.AddressHandler
	restaurantHandler *handler.RestaurantHandler
	cartHandler       *handler.CartHandler
	wishlistHandler   *handler.WishlistHandler
	userHandler       *handler.UserHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		locationHandler:   params.LocationHandler,
		addressHandler:    params.AddressHandler,
		restaurantHandler: params.RestaurantHandler,
		cartHandler:       params.CartHandler,
		wishlistHandler:   params.WishlistHandler,
		userHandler:       params.UserHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Location routes
	locationGroup := e.Group("/location")
	{
		locationGroup.GET("/autocomplete", r.locationHandler.Autocomplete)
		locationGroup.GET("/reverse-geocode", r.locationHandler.ReverseGeocode)
	}

	// Restaurant browsing routes
	restaurantGroup := e.Group("/restaurants")
	{
		restaurantGroup.GET("", r.restaurantHandler.ListRestaurants)
		restaurantGroup.GET("/nearby", r.restaurantHandler.ListNearbyRestaurants)
		restaurantGroup.GET("/:id", r.restaurantHandler.GetRestaurant)
		restaurantGroup.GET("/:id/menu", r.restaurantHandler.ListMenuItems)
	}

	// Per-user routes
	userGroup := e.Group("/users/:username")
	{
		userGroup.GET("", r.userHandler.GetUser)

		userGroup.GET("/addresses", r.addressHandler.ListAddresses)
		userGroup.POST("/addresses", r.addressHandler.CreateAddress)
		userGroup.PUT("/addresses/:id", r.addressHandler.UpdateAddress)
		userGroup.DELETE("/addresses/:id", r.addressHandler.DeleteAddress)

		userGroup.GET("/cart", r.cartHandler.ListCart)
		userGroup.POST("/cart", r.cartHandler.AddToCart)
		userGroup.PUT("/cart/:id", r.cartHandler.UpdateCartItem)
		userGroup.DELETE("/cart/:id", r.cartHandler.RemoveFromCart)

		userGroup.GET("/wishlist", r.wishlistHandler.ListWishlist)
		userGroup.POST("/wishlist", r.wishlistHandler.AddToWishlist)
		userGroup.DELETE("/wishlist/:id", r.wishlistHandler.RemoveFromWishlist)
	}
}
