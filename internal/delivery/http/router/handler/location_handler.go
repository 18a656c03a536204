// Package handler contains the echo handlers for the HTTP delivery.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"nosh/internal/delivery/http/response"
	"nosh/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for location-related handlers
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// Autocomplete handles place autocomplete lookups.
// GET /location/autocomplete?input=...
func (h *LocationHandler) Autocomplete(c echo.Context) error {
	input := c.QueryParam("input")

	suggestions, err := h.locationUC.Autocomplete(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, suggestions, "Suggestions retrieved successfully")
}

// ReverseGeocode resolves a coordinate to an address.
// GET /location/reverse-geocode?lat=...&lng=...
func (h *LocationHandler) ReverseGeocode(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_COORDINATES", "lat must be a number")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_COORDINATES", "lng must be a number")
	}

	resolved, err := h.locationUC.ReverseGeocode(c.Request().Context(), lat, lng)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, resolved, "Address resolved successfully")
}
