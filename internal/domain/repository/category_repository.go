package repository

import (
	"context"

	"lumera/internal/domain/entity"
)

// CategoryRepository defines the standard operations for category persistence.
type CategoryRepository interface {
	// List retrieves all categories ordered by display order, ascending.
	List(ctx context.Context) ([]*entity.Category, error)

	// Create persists a new category and returns the store-assigned ID.
	Create(ctx context.Context, category *entity.Category) (string, error)

	// Delete removes a category document.
	Delete(ctx context.Context, id string) error
}
