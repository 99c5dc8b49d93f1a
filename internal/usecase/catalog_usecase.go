// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"lumera/internal/domain/entity"
)

// ListProductsInput carries the optional storefront filters. Both filters are
// applied in memory after the full listing is read.
type ListProductsInput struct {
	// Search keeps products whose name contains the term, case-insensitively.
	// Empty means no name filter.
	Search string

	// Category keeps products whose category tag matches exactly.
	// Empty or "All" means no category filter.
	Category string
}

// HomePageOutput bundles everything the storefront landing page renders.
type HomePageOutput struct {
	Content    *entity.HomeContent `json:"content"`
	Categories []*entity.Category  `json:"categories"`
}

// CatalogUsecase defines the read-side operations of the public storefront.
type CatalogUsecase interface {
	// ListProducts returns the catalog, newest first, narrowed by the input
	// filters. A failed read degrades to an empty listing.
	ListProducts(ctx context.Context, input ListProductsInput) ([]*entity.Product, error)

	// GetProduct returns a single product by ID.
	GetProduct(ctx context.Context, id string) (*entity.Product, error)

	// ListCategories returns the homepage collection tiles in display order.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// GetHomePage returns the homepage content overrides plus the category
	// tiles. Missing content yields an empty document, not an error.
	GetHomePage(ctx context.Context) (*HomePageOutput, error)

	// ProductShareQR renders a PNG QR code linking to the product page.
	ProductShareQR(ctx context.Context, id string) ([]byte, error)
}
