// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"lumera/internal/domain/entity"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for product persistence.
// The application layer will depend on this interface, not the concrete implementation.
type ProductRepository interface {
	// List retrieves all products ordered by creation time, newest first.
	List(ctx context.Context) ([]*entity.Product, error)

	// FindByID retrieves a single product by its document ID.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// Create persists a new product and returns the store-assigned ID.
	Create(ctx context.Context, product *entity.Product) (string, error)

	// Update replaces an existing product document.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product document. Returns ErrProductNotFound when no
	// document with that ID exists.
	Delete(ctx context.Context, id string) error
}
