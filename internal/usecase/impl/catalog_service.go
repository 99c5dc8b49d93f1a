// Package impl provides the concrete implementations of the usecase interfaces.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "lumera/internal/delivery/context"
	"lumera/internal/domain/entity"
	domainerrors "lumera/internal/domain/errors"
	"lumera/internal/domain/repository"
	"lumera/internal/domain/service"
	"lumera/internal/errors"
	"lumera/internal/usecase"
)

type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	contentRepo  repository.ContentRepository
	qrcodeSvc    service.QRCodeService
	logger       *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	contentRepo repository.ContentRepository,
	qrcodeSvc service.QRCodeService,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		contentRepo:  contentRepo,
		qrcodeSvc:    qrcodeSvc,
		logger:       logger,
	}
}

// ListProducts returns the catalog narrowed by the input filters. A failed
// read degrades to an empty shelf so the storefront keeps rendering.
func (s *catalogService) ListProducts(ctx context.Context, input usecase.ListProductsInput) ([]*entity.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
		logger.Error("product listing failed, serving empty shelf",
			slog.Any("error", err),
		)

		return []*entity.Product{}, nil
	}

	return filterProducts(products, input.Search, input.Category), nil
}

// GetProduct returns a single product by ID.
func (s *catalogService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.WithStack(err)
	}

	return product, nil
}

// ListCategories returns the homepage collection tiles in display order.
func (s *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return categories, nil
}

// GetHomePage bundles the content overrides with the category tiles. A
// never-written content document yields an empty one; a failed category read
// degrades to no tiles.
func (s *catalogService) GetHomePage(ctx context.Context) (*usecase.HomePageOutput, error) {
	content, err := s.contentRepo.GetHome(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrContentNotFound) {
			return nil, errors.WithStack(err)
		}
		content = &entity.HomeContent{}
	}

	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
		logger.Error("category listing failed, homepage renders without tiles",
			slog.Any("error", err),
		)
		categories = []*entity.Category{}
	}

	return &usecase.HomePageOutput{
		Content:    content,
		Categories: categories,
	}, nil
}

// ProductShareQR renders a PNG QR code linking to the product page. The
// product must exist; dead QR codes help nobody.
func (s *catalogService) ProductShareQR(ctx context.Context, id string) ([]byte, error) {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return nil, err
	}

	png, err := s.qrcodeSvc.ProductShareQR(id)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return png, nil
}

// filterProducts applies the search and category filters in memory. Search
// matches the product name case-insensitively as a raw substring, whitespace
// included; category matches the tag exactly, with "All" (or empty) bypassing
// the filter. Order is preserved.
func filterProducts(products []*entity.Product, search, category string) []*entity.Product {
	term := strings.ToLower(search)
	filterByCategory := category != "" && category != entity.CategoryFilterAll

	filtered := make([]*entity.Product, 0, len(products))
	for _, product := range products {
		if term != "" && !strings.Contains(strings.ToLower(product.Name), term) {
			continue
		}
		if filterByCategory && product.Category != category {
			continue
		}
		filtered = append(filtered, product)
	}

	return filtered
}
