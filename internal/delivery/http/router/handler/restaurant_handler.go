package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"nosh/internal/delivery/http/response"
	"nosh/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RestaurantHandlerParams holds dependencies for RestaurantHandler, injected by Fx.
type RestaurantHandlerParams struct {
	fx.In

	RestaurantUC usecase.RestaurantUsecase
	Logger       *slog.Logger
}

// RestaurantHandler holds dependencies for restaurant-related handlers
type RestaurantHandler struct {
	restaurantUC usecase.RestaurantUsecase
	logger       *slog.Logger
}

// NewRestaurantHandler is the constructor for RestaurantHandler
func NewRestaurantHandler(params RestaurantHandlerParams) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantUC: params.RestaurantUC,
		logger:       params.Logger,
	}
}

// ListRestaurants returns every restaurant ranked by distance from the
// user's stored location.
// GET /restaurants?username=...
func (h *RestaurantHandler) ListRestaurants(c echo.Context) error {
	username := c.QueryParam("username")
	if username == "" {
		return response.BadRequest(c, "MISSING_USERNAME", "username query parameter is required")
	}

	restaurants, err := h.restaurantUC.ListRestaurants(c.Request().Context(), username)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, restaurants, "Restaurants retrieved successfully")
}

// ListNearbyRestaurants returns the restaurants within a radius of the
// user's stored location.
// GET /restaurants/nearby?username=...&radius=...
func (h *RestaurantHandler) ListNearbyRestaurants(c echo.Context) error {
	username := c.QueryParam("username")
	if username == "" {
		return response.BadRequest(c, "MISSING_USERNAME", "username query parameter is required")
	}

	var radiusKm float64
	if raw := c.QueryParam("radius"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_RADIUS", "radius must be a number of kilometers")
		}
		radiusKm = parsed
	}

	restaurants, err := h.restaurantUC.ListNearbyRestaurants(c.Request().Context(), username, radiusKm)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, restaurants, "Nearby restaurants retrieved successfully")
}

// GetRestaurant returns one restaurant with its distance annotation.
// GET /restaurants/:id?username=...
func (h *RestaurantHandler) GetRestaurant(c echo.Context) error {
	username := c.QueryParam("username")
	if username == "" {
		return response.BadRequest(c, "MISSING_USERNAME", "username query parameter is required")
	}

	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid restaurant ID")
	}

	restaurant, err := h.restaurantUC.GetRestaurant(c.Request().Context(), username, restaurantID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, restaurant, "Restaurant retrieved successfully")
}

// ListMenuItems returns the menu of a restaurant.
// GET /restaurants/:id/menu
func (h *RestaurantHandler) ListMenuItems(c echo.Context) error {
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid restaurant ID")
	}

	items, err := h.restaurantUC.ListMenuItems(c.Request().Context(), restaurantID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, items, "Menu retrieved successfully")
}
