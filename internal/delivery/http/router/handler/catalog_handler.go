package handler

import (
	"log/slog"
	"net/http"

	"lumera/internal/delivery/http/response"
	"lumera/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for the public storefront handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{uc: uc, logger: logger}
}

// ListProducts serves the shop listing with optional search and category
// query filters.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context(), usecase.ListProductsInput{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// GetProduct serves a single product page.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.uc.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// GetProductQR serves the shareable QR code for a product page.
func (h *CatalogHandler) GetProductQR(c echo.Context) error {
	png, err := h.uc.ProductShareQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListCategories serves the collection tiles.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// GetHomeContent serves the homepage content overrides with the tiles.
func (h *CatalogHandler) GetHomeContent(c echo.Context) error {
	page, err := h.uc.GetHomePage(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}
