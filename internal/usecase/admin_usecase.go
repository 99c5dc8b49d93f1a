package usecase

import (
	"context"
	"io"

	"lumera/internal/domain/entity"
	"lumera/internal/domain/service"
)

// --- Input DTOs ---

// ProductInput defines the data required to create or update a product.
type ProductInput struct {
	Name          string   `json:"name" validate:"required"`
	Category      string   `json:"category" validate:"required"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" validate:"gte=0"`
	OriginalPrice float64  `json:"original_price" validate:"gte=0"`
	Discount      float64  `json:"discount"`
	StockStatus   string   `json:"stock_status"`
	SuitableFor   string   `json:"suitable_for"`
	Rating        float64  `json:"rating" validate:"gte=0,lte=5"`
	NetQuantity   string   `json:"net_quantity"`
	Ingredients   string   `json:"ingredients"`
	HowToUse      string   `json:"how_to_use"`
	Image         string   `json:"image"`
	Images        []string `json:"images"`
}

// CategoryInput defines the data required to create a collection tile.
// Order arrives as free text from the console form and is coerced leniently.
type CategoryInput struct {
	Title    string `json:"title" validate:"required"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image"`
	Order    string `json:"order"`
}

// --- Output DTOs ---

// ImportReport summarizes one bulk CSV import run.
type ImportReport struct {
	Created  int      `json:"created"`
	Skipped  int      `json:"skipped"`
	Products []string `json:"products"`
}

// AdminUsecase defines the interface for the management console operations.
// Every catalog mutation also announces itself on the event bus; publish
// failures are logged and swallowed, never surfaced to the console.
type AdminUsecase interface {
	// CreateProduct persists a new product and returns it with its ID.
	CreateProduct(ctx context.Context, input ProductInput) (*entity.Product, error)

	// UpdateProduct replaces an existing product document.
	UpdateProduct(ctx context.Context, id string, input ProductInput) (*entity.Product, error)

	// DeleteProduct removes a product.
	DeleteProduct(ctx context.Context, id string) error

	// ImportProducts reads a CSV stream and creates one product per usable
	// row. Rows without a name are skipped silently; the first store error
	// aborts the run, keeping rows already written. A non-empty
	// defaultCategory overrides the name-based category guess.
	ImportProducts(ctx context.Context, csv io.Reader, defaultCategory string) (*ImportReport, error)

	// CreateCategory persists a new collection tile.
	CreateCategory(ctx context.Context, input CategoryInput) (*entity.Category, error)

	// DeleteCategory removes a collection tile.
	DeleteCategory(ctx context.Context, id string) error

	// SaveHomeContent merge-writes the homepage content overrides.
	SaveHomeContent(ctx context.Context, content *entity.HomeContent) error

	// UploadMedia hands a file to the media host and returns its public URL.
	UploadMedia(ctx context.Context, file service.UploadFile) (string, error)

	// ListUsers returns every registered user, newest first.
	ListUsers(ctx context.Context) ([]*entity.User, error)
}
