package handler

import (
	"log/slog"
	"net/http"

	"nosh/internal/delivery/http/response"
	"nosh/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WishlistHandlerParams holds dependencies for WishlistHandler, injected by Fx.
type WishlistHandlerParams struct {
	fx.In

	WishlistUC usecase.WishlistUsecase
	Logger     *slog.Logger
}

// WishlistHandler holds dependencies for wishlist-related handlers
type WishlistHandler struct {
	wishlistUC usecase.WishlistUsecase
	logger     *slog.Logger
}

// NewWishlistHandler is the constructor for WishlistHandler
func NewWishlistHandler(params WishlistHandlerParams) *WishlistHandler {
	return &WishlistHandler{
		wishlistUC: params.WishlistUC,
		logger:     params.Logger,
	}
}

// AddToWishlistRequest represents the request body for saving a restaurant
type AddToWishlistRequest struct {
	RestaurantID uuid.UUID `json:"restaurant_id" validate:"required"`
}

// ListWishlist handles retrieving a user's saved restaurants.
// GET /users/:username/wishlist
func (h *WishlistHandler) ListWishlist(c echo.Context) error {
	username := c.Param("username")

	items, err := h.wishlistUC.ListWishlist(c.Request().Context(), username)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, items, "Wishlist retrieved successfully")
}

// AddToWishlist handles saving a restaurant. A duplicate save is rejected
// with a conflict error.
// POST /users/:username/wishlist
func (h *WishlistHandler) AddToWishlist(c echo.Context) error {
	username := c.Param("username")

	var req AddToWishlistRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wishlist input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	item, err := h.wishlistUC.AddToWishlist(c.Request().Context(), username, req.RestaurantID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, item, "Restaurant saved successfully")
}

// RemoveFromWishlist handles deleting a wishlist entry.
// DELETE /users/:username/wishlist/:id
func (h *WishlistHandler) RemoveFromWishlist(c echo.Context) error {
	username := c.Param("username")

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid wishlist item ID")
	}

	if err := h.wishlistUC.RemoveFromWishlist(c.Request().Context(), username, itemID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Wishlist entry removed successfully")
}
