package impl

import (
	"context"
	"testing"
	"time"

	"lumera/internal/domain/entity"
	domainerrors "lumera/internal/domain/errors"
	"lumera/internal/domain/service"
	"lumera/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminService_CreateProduct(t *testing.T) {
	productRepo := &fakeProductRepo{}
	publisher := &fakePublisher{}
	svc := newAdminService(productRepo, &fakeCategoryRepo{}, &fakeContentRepo{}, newFakeUserRepo(), &fakeUploader{}, publisher)

	product, err := svc.CreateProduct(context.Background(), usecase.ProductInput{
		Name:     "Hydra Serum",
		Category: "Serums",
		Price:    549,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, product.ID)
	assert.Equal(t, entity.StockStatusInStock, product.StockStatus)
	assert.NotNil(t, product.Images)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, service.EventProductCreated, publisher.events[0].Type)
	assert.Equal(t, product.ID, publisher.events[0].ProductID)
}

func TestAdminService_CreateProduct_PublishFailureIsSwallowed(t *testing.T) {
	productRepo := &fakeProductRepo{}
	publisher := &fakePublisher{publishErr: assert.AnError}
	svc := newAdminService(productRepo, &fakeCategoryRepo{}, &fakeContentRepo{}, newFakeUserRepo(), &fakeUploader{}, publisher)

	_, err := svc.CreateProduct(context.Background(), usecase.ProductInput{Name: "Hydra Serum", Category: "Serums"})
	assert.NoError(t, err)
}

func TestAdminService_UpdateProduct_UnknownProduct(t *testing.T) {
	svc := newAdminService(&fakeProductRepo{}, &fakeCategoryRepo{}, &fakeContentRepo{}, newFakeUserRepo(), &fakeUploader{}, &fakePublisher{})

	_, err := svc.UpdateProduct(context.Background(), "missing", usecase.ProductInput{Name: "X", Category: "Serums"})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestAdminService_UpdateProduct_KeepsImagesWhenNoneSupplied(t *testing.T) {
	productRepo := &fakeProductRepo{products: []*entity.Product{{
		ID:     "p1",
		Name:   "Hydra Serum",
		Image:  "https://cdn/cover.jpg",
		Images: []string{"https://cdn/1.jpg", "https://cdn/2.jpg"},
	}}}
	svc := newAdminService(productRepo, &fakeCategoryRepo{}, &fakeContentRepo{}, newFakeUserRepo(), &fakeUploader{}, &fakePublisher{})

	product, err := svc.UpdateProduct(context.Background(), "p1", usecase.ProductInput{
		Name:     "Hydra Serum+",
		Category: "Serums",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/cover.jpg", product.Image)
	assert.Equal(t, []string{"https://cdn/1.jpg", "https://cdn/2.jpg"}, product.Images)

	// Supplying new images replaces the set.
	product, err = svc.UpdateProduct(context.Background(), "p1", usecase.ProductInput{
		Name:     "Hydra Serum+",
		Category: "Serums",
		Image:    "https://cdn/new.jpg",
		Images:   []string{"https://cdn/new.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn/new.jpg"}, product.Images)
}

func TestAdminService_UpdateProduct_PreservesCreationTimestamp(t *testing.T) {
	createdAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	productRepo := &fakeProductRepo{products: []*entity.Product{{
		ID:        "p1",
		Name:      "Hydra Serum",
		CreatedAt: createdAt,
	}}}
	svc := newAdminService(productRepo, &fakeCategoryRepo{}, &fakeContentRepo{}, newFakeUserRepo(), &fakeUploader{}, &fakePublisher{})

	product, err := svc.UpdateProduct(context.Background(), "p1", usecase.ProductInput{
		Name:     "Hydra Serum+",
		Category: "Serums",
	})
	require.NoError(t, err)
	// A zero timestamp would be rewritten to the edit time on write,
	// reshuffling the newest-first listing.
	assert.Equal(t, createdAt, product.CreatedAt)
	assert.Equal(t, createdAt, productRepo.products[0].CreatedAt)
}

func TestAdminService_DeleteProduct(t *testing.T) {
	productRepo := &fakeProductRepo{products: []*entity.Product{{ID: "p1", Name: "Hydra Serum"}}}
	publisher := &fakePublisher{}
	svc := newAdminService(productRepo, &fakeCategoryRepo{}, &fakeContentRepo{}, newFakeUserRepo(), &fakeUploader{}, publisher)

	require.NoError(t, svc.DeleteProduct(context.Background(), "p1"))
	assert.Empty(t, productRepo.products)

	err := svc.DeleteProduct(context.Background(), "p1")
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestAdminService_CreateCategory_CoercesOrderLeniently(t *testing.T) {
	categoryRepo := &fakeCategoryRepo{}
	svc := newAdminService(&fakeProductRepo{}, categoryRepo, &fakeContentRepo{}, newFakeUserRepo(), &fakeUploader{}, &fakePublisher{})

	category, err := svc.CreateCategory(context.Background(), usecase.CategoryInput{
		Title: "Serums",
		Order: "3",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, category.Order)
	assert.Equal(t, "", category.Image)

	// Unparseable order lands at zero instead of failing the form.
	category, err = svc.CreateCategory(context.Background(), usecase.CategoryInput{
		Title: "Cleansers",
		Order: "first",
	})
	require.NoError(t, err)
	assert.Zero(t, category.Order)
}

func TestAdminService_SaveHomeContent(t *testing.T) {
	contentRepo := &fakeContentRepo{}
	svc := newAdminService(&fakeProductRepo{}, &fakeCategoryRepo{}, contentRepo, newFakeUserRepo(), &fakeUploader{}, &fakePublisher{})

	err := svc.SaveHomeContent(context.Background(), &entity.HomeContent{HeadlineLine1: "Glow"})
	require.NoError(t, err)
	assert.Equal(t, "Glow", contentRepo.content.HeadlineLine1)

	contentRepo.saveErr = assert.AnError
	err = svc.SaveHomeContent(context.Background(), &entity.HomeContent{})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONTENT_SAVE_FAILED", appErr.ErrorCode())
}

func TestAdminService_UploadMedia(t *testing.T) {
	svc := newAdminService(&fakeProductRepo{}, &fakeCategoryRepo{}, &fakeContentRepo{}, newFakeUserRepo(), &fakeUploader{url: "https://cdn/img.jpg"}, &fakePublisher{})

	url, err := svc.UploadMedia(context.Background(), service.UploadFile{Name: "img.jpg"})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/img.jpg", url)

	failing := newAdminService(&fakeProductRepo{}, &fakeCategoryRepo{}, &fakeContentRepo{}, newFakeUserRepo(), &fakeUploader{uploadErr: assert.AnError}, &fakePublisher{})
	_, err = failing.UploadMedia(context.Background(), service.UploadFile{Name: "img.jpg"})
	assert.ErrorIs(t, err, domainerrors.ErrUploadFailed)
}
