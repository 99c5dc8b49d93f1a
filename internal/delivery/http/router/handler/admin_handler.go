package handler

import (
	"log/slog"
	"net/http"

	"lumera/internal/delivery/http/response"
	"lumera/internal/domain/entity"
	domainerrors "lumera/internal/domain/errors"
	"lumera/internal/domain/service"
	"lumera/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the management console handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{uc: uc, logger: logger}
}

// CreateProduct handles the product form submission.
func (h *AdminHandler) CreateProduct(c echo.Context) error {
	var input usecase.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created")
}

// UpdateProduct handles edits to an existing product.
func (h *AdminHandler) UpdateProduct(c echo.Context) error {
	var input usecase.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated")
}

// DeleteProduct removes a product from the catalog.
func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	if err := h.uc.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product deleted"}, "Product deleted")
}

// ImportProducts handles the bulk CSV upload. The file arrives in the "csv"
// multipart field; "default_category" optionally overrides the per-row
// category guess.
func (h *AdminHandler) ImportProducts(c echo.Context) error {
	fileHeader, err := c.FormFile("csv")
	if err != nil {
		return domainerrors.ErrImportFileRequired
	}

	file, err := fileHeader.Open()
	if err != nil {
		return domainerrors.ErrImportFailed.WrapMessage(err.Error())
	}
	defer file.Close()

	report, err := h.uc.ImportProducts(c.Request().Context(), file, c.FormValue("default_category"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report, "Import complete")
}

// CreateCategory handles the collection tile form submission.
func (h *AdminHandler) CreateCategory(c echo.Context) error {
	var input usecase.CategoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	category, err := h.uc.CreateCategory(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, category, "Category created")
}

// DeleteCategory removes a collection tile.
func (h *AdminHandler) DeleteCategory(c echo.Context) error {
	if err := h.uc.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Category deleted"}, "Category deleted")
}

// SaveHomeContent merge-writes the homepage copy overrides.
func (h *AdminHandler) SaveHomeContent(c echo.Context) error {
	var content entity.HomeContent
	if err := c.Bind(&content); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid content input")
	}

	if err := h.uc.SaveHomeContent(c.Request().Context(), &content); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, content, "Content saved")
}

// Upload hands an image to the media host and returns its public URL.
func (h *AdminHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return domainerrors.ErrUploadFileRequired
	}

	file, err := fileHeader.Open()
	if err != nil {
		return domainerrors.ErrUploadFailed
	}
	defer file.Close()

	url, err := h.uc.UploadMedia(c.Request().Context(), service.UploadFile{
		Name:        fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Reader:      file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"url": url}, "Upload complete")
}

// ListUsers serves the registered user roster.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "")
}
