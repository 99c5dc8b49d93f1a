package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "lumera/internal/delivery/context"
	"lumera/internal/delivery/http/response"
	domainerrors "lumera/internal/domain/errors"
	"lumera/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// quantityRequest is the optional PUT body; an absent body means one unit.
type quantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartHandler holds dependencies for the shopping cart handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{uc: uc, logger: logger}
}

// GetCart serves the caller's cart with the running total.
func (h *CartHandler) GetCart(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return domainerrors.ErrLoginRequired
	}

	cart, err := h.uc.GetCart(c.Request().Context(), identity.UID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "")
}

// AddProduct puts a product into the cart, overwriting any existing entry.
func (h *CartHandler) AddProduct(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return domainerrors.ErrLoginRequired
	}

	var req quantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	cart, err := h.uc.AddProduct(c.Request().Context(), identity.UID, c.Param("productID"), req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Added to cart")
}

// RemoveProduct deletes a cart entry.
func (h *CartHandler) RemoveProduct(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return domainerrors.ErrLoginRequired
	}

	cart, err := h.uc.RemoveProduct(c.Request().Context(), identity.UID, c.Param("productID"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Removed from cart")
}
