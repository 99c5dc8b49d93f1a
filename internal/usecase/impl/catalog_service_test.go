package impl

import (
	"context"
	"errors"
	"testing"

	"lumera/internal/domain/entity"
	domainerrors "lumera/internal/domain/errors"
	"lumera/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogFixture() []*entity.Product {
	return []*entity.Product{
		{ID: "p1", Name: "Vitamin C Serum", Category: "Serums"},
		{ID: "p2", Name: "Gentle Face Wash", Category: "Cleansers"},
		{ID: "p3", Name: "Night Repair Serum", Category: "Serums"},
		{ID: "p4", Name: "Daily Moisturizer", Category: "Moisturizers"},
	}
}

func newCatalogService(productRepo *fakeProductRepo, categoryRepo *fakeCategoryRepo, contentRepo *fakeContentRepo) usecase.CatalogUsecase {
	return NewCatalogService(productRepo, categoryRepo, contentRepo, &fakeQRCode{png: []byte("png")}, testLogger())
}

func TestCatalogService_ListProducts_NoFilters(t *testing.T) {
	svc := newCatalogService(&fakeProductRepo{products: catalogFixture()}, &fakeCategoryRepo{}, &fakeContentRepo{})

	products, err := svc.ListProducts(context.Background(), usecase.ListProductsInput{})
	require.NoError(t, err)
	assert.Len(t, products, 4)
}

func TestCatalogService_ListProducts_SearchIsCaseInsensitive(t *testing.T) {
	svc := newCatalogService(&fakeProductRepo{products: catalogFixture()}, &fakeCategoryRepo{}, &fakeContentRepo{})

	products, err := svc.ListProducts(context.Background(), usecase.ListProductsInput{Search: "SERUM"})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Vitamin C Serum", products[0].Name)
	assert.Equal(t, "Night Repair Serum", products[1].Name)
}

func TestCatalogService_ListProducts_CategoryFilter(t *testing.T) {
	svc := newCatalogService(&fakeProductRepo{products: catalogFixture()}, &fakeCategoryRepo{}, &fakeContentRepo{})

	products, err := svc.ListProducts(context.Background(), usecase.ListProductsInput{Category: "Cleansers"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p2", products[0].ID)

	// "All" bypasses the category filter entirely.
	products, err = svc.ListProducts(context.Background(), usecase.ListProductsInput{Category: entity.CategoryFilterAll})
	require.NoError(t, err)
	assert.Len(t, products, 4)
}

func TestCatalogService_ListProducts_FiltersCombine(t *testing.T) {
	svc := newCatalogService(&fakeProductRepo{products: catalogFixture()}, &fakeCategoryRepo{}, &fakeContentRepo{})

	products, err := svc.ListProducts(context.Background(), usecase.ListProductsInput{
		Search:   "serum",
		Category: "Serums",
	})
	require.NoError(t, err)
	assert.Len(t, products, 2)

	// Category mismatch wins over a name hit.
	products, err = svc.ListProducts(context.Background(), usecase.ListProductsInput{
		Search:   "serum",
		Category: "Cleansers",
	})
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestCatalogService_ListProducts_ReadFailureServesEmptyShelf(t *testing.T) {
	repo := &fakeProductRepo{listErr: errors.New("store unavailable")}
	svc := newCatalogService(repo, &fakeCategoryRepo{}, &fakeContentRepo{})

	products, err := svc.ListProducts(context.Background(), usecase.ListProductsInput{})
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	svc := newCatalogService(&fakeProductRepo{}, &fakeCategoryRepo{}, &fakeContentRepo{})

	_, err := svc.GetProduct(context.Background(), "missing")
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_GetHomePage_MissingContentYieldsEmptyDocument(t *testing.T) {
	categoryRepo := &fakeCategoryRepo{categories: []*entity.Category{
		{ID: "c1", Title: "Serums", Order: 1},
	}}
	svc := newCatalogService(&fakeProductRepo{}, categoryRepo, &fakeContentRepo{})

	page, err := svc.GetHomePage(context.Background())
	require.NoError(t, err)
	require.NotNil(t, page.Content)
	assert.Empty(t, page.Content.HeadlineLine1)
	assert.Len(t, page.Categories, 1)
}

func TestCatalogService_ProductShareQR_RequiresExistingProduct(t *testing.T) {
	svc := newCatalogService(&fakeProductRepo{products: catalogFixture()}, &fakeCategoryRepo{}, &fakeContentRepo{})

	png, err := svc.ProductShareQR(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)

	_, err = svc.ProductShareQR(context.Background(), "missing")
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestFilterProducts_SearchIsRawSubstring(t *testing.T) {
	// Whitespace in the term is matched literally, never trimmed away.
	products := filterProducts([]*entity.Product{
		{Name: "Hydra Serum"},
		{Name: "XSerum"},
	}, " serum", "")
	require.Len(t, products, 1)
	assert.Equal(t, "Hydra Serum", products[0].Name)

	assert.Empty(t, filterProducts(catalogFixture(), "  wash  ", ""))
}
