package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"lumera/internal/domain/entity"
	domainerrors "lumera/internal/domain/errors"
	"lumera/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCatalogUsecase serves canned storefront data for handler tests.
type stubCatalogUsecase struct {
	products []*entity.Product
	lastList usecase.ListProductsInput
	png      []byte
}

func (s *stubCatalogUsecase) ListProducts(_ context.Context, input usecase.ListProductsInput) ([]*entity.Product, error) {
	s.lastList = input

	return s.products, nil
}

func (s *stubCatalogUsecase) GetProduct(_ context.Context, id string) (*entity.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}

	return nil, domainerrors.ErrProductNotFound
}

func (s *stubCatalogUsecase) ListCategories(_ context.Context) ([]*entity.Category, error) {
	return nil, nil
}

func (s *stubCatalogUsecase) GetHomePage(_ context.Context) (*usecase.HomePageOutput, error) {
	return &usecase.HomePageOutput{Content: &entity.HomeContent{}, Categories: []*entity.Category{}}, nil
}

func (s *stubCatalogUsecase) ProductShareQR(_ context.Context, _ string) ([]byte, error) {
	return s.png, nil
}

func TestCatalogHandler_ListProducts_PassesQueryFilters(t *testing.T) {
	stub := &stubCatalogUsecase{products: []*entity.Product{{ID: "p1", Name: "Hydra Serum"}}}
	h := NewCatalogHandler(stub, slog.Default())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/products?search=serum&category=Serums", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ListProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "serum", stub.lastList.Search)
	assert.Equal(t, "Serums", stub.lastList.Category)
	assert.Contains(t, rec.Body.String(), "Hydra Serum")
}

func TestCatalogHandler_GetProduct(t *testing.T) {
	stub := &stubCatalogUsecase{products: []*entity.Product{{ID: "p1", Name: "Hydra Serum"}}}
	h := NewCatalogHandler(stub, slog.Default())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/products/:id")
	c.SetParamNames("id")
	c.SetParamValues("p1")

	require.NoError(t, h.GetProduct(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestCatalogHandler_GetProduct_NotFoundPropagates(t *testing.T) {
	h := NewCatalogHandler(&stubCatalogUsecase{}, slog.Default())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/products/:id")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.GetProduct(c)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogHandler_GetProductQR_ServesPNG(t *testing.T) {
	stub := &stubCatalogUsecase{png: []byte{0x89, 0x50, 0x4e, 0x47}}
	h := NewCatalogHandler(stub, slog.Default())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/products/:id/qr")
	c.SetParamNames("id")
	c.SetParamValues("p1")

	require.NoError(t, h.GetProductQR(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, stub.png, rec.Body.Bytes())
}
