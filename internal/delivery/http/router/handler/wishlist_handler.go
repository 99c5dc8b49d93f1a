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

// WishlistHandler holds dependencies for the wishlist handlers.
type WishlistHandler struct {
	uc     usecase.WishlistUsecase
	logger *slog.Logger
}

// NewWishlistHandler is the constructor for WishlistHandler, injected by Fx.
func NewWishlistHandler(uc usecase.WishlistUsecase, logger *slog.Logger) *WishlistHandler {
	return &WishlistHandler{uc: uc, logger: logger}
}

// GetWishlist serves the caller's saved items.
func (h *WishlistHandler) GetWishlist(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return domainerrors.ErrLoginRequired
	}

	items, err := h.uc.GetWishlist(c.Request().Context(), identity.UID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// AddProduct saves a product to the wishlist.
func (h *WishlistHandler) AddProduct(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return domainerrors.ErrLoginRequired
	}

	items, err := h.uc.AddProduct(c.Request().Context(), identity.UID, c.Param("productID"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "Saved to wishlist")
}

// RemoveProduct deletes a wishlist entry.
func (h *WishlistHandler) RemoveProduct(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return domainerrors.ErrLoginRequired
	}

	items, err := h.uc.RemoveProduct(c.Request().Context(), identity.UID, c.Param("productID"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "Removed from wishlist")
}

// MoveToCart promotes a saved item into the cart.
func (h *WishlistHandler) MoveToCart(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return domainerrors.ErrLoginRequired
	}

	if err := h.uc.MoveToCart(c.Request().Context(), identity.UID, c.Param("productID")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Moved to cart"}, "Moved to cart")
}
