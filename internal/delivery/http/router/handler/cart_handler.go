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

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler holds dependencies for cart-related handlers
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// UpdateCartItemRequest represents the request body for a quantity update
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// ListCart handles retrieving a user's cart.
// GET /users/:username/cart
func (h *CartHandler) ListCart(c echo.Context) error {
	username := c.Param("username")

	items, err := h.cartUC.ListCart(c.Request().Context(), username)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, items, "Cart retrieved successfully")
}

// AddToCart handles adding a menu item to the cart. Adding an item that
// already has a line merges by summing quantities.
// POST /users/:username/cart
func (h *CartHandler) AddToCart(c echo.Context) error {
	username := c.Param("username")

	var req usecase.AddToCartInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	item, err := h.cartUC.AddToCart(c.Request().Context(), username, &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, item, "Cart updated successfully")
}

// UpdateCartItem handles setting the quantity of a cart line.
// PUT /users/:username/cart/:id
func (h *CartHandler) UpdateCartItem(c echo.Context) error {
	username := c.Param("username")

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cart item ID")
	}

	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	item, err := h.cartUC.UpdateCartItem(c.Request().Context(), username, itemID, req.Quantity)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, item, "Cart item updated successfully")
}

// RemoveFromCart handles deleting a cart line.
// DELETE /users/:username/cart/:id
func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	username := c.Param("username")

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cart item ID")
	}

	if err := h.cartUC.RemoveFromCart(c.Request().Context(), username, itemID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Cart item removed successfully")
}
