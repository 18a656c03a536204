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

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
	Logger    *slog.Logger
}

// AddressHandler holds dependencies for address-related handlers
type AddressHandler struct {
	addressUC usecase.AddressUsecase
	logger    *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		logger:    params.Logger,
	}
}

// ListAddresses handles retrieving a user's addresses. With lat/lng query
// parameters each address is annotated with the distance in meters.
// GET /users/:username/addresses?lat=...&lng=...
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	username := c.Param("username")

	var origin *usecase.Origin
	latStr, lngStr := c.QueryParam("lat"), c.QueryParam("lng")
	if latStr != "" || lngStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_COORDINATES", "lat must be a number")
		}
		lng, err := strconv.ParseFloat(lngStr, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_COORDINATES", "lng must be a number")
		}
		origin = &usecase.Origin{Latitude: lat, Longitude: lng}
	}

	addresses, err := h.addressUC.ListAddresses(c.Request().Context(), username, origin)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, addresses, "Addresses retrieved successfully")
}

// CreateAddress handles creating a new address.
// POST /users/:username/addresses
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	username := c.Param("username")

	var req usecase.CreateAddressInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	address, err := h.addressUC.CreateAddress(c.Request().Context(), username, &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, address, "Address created successfully")
}

// UpdateAddress handles a partial address update.
// PUT /users/:username/addresses/:id
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	username := c.Param("username")

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	var req usecase.UpdateAddressInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	address, err := h.addressUC.UpdateAddress(c.Request().Context(), username, addressID, &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, address, "Address updated successfully")
}

// DeleteAddress handles deleting an address.
// DELETE /users/:username/addresses/:id
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	username := c.Param("username")

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	if err := h.addressUC.DeleteAddress(c.Request().Context(), username, addressID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Address deleted successfully")
}
