package firestore

import (
	"context"

	"lumera/internal/domain/entity"
	"lumera/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

type categoryRepository struct {
	client *firestore.Client
}

// NewCategoryRepository creates a Firestore-backed CategoryRepository.
func NewCategoryRepository(client *firestore.Client) repository.CategoryRepository {
	return &categoryRepository{client: client}
}

// List retrieves all categories in ascending display order.
func (r *categoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	iter := r.client.Collection(categoriesCollection).
		OrderBy(orderField, firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var categories []*entity.Category
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate categories")
		}

		category := new(entity.Category)
		if err := doc.DataTo(category); err != nil {
			return nil, errors.Wrapf(err, "failed to decode category %s", doc.Ref.ID)
		}
		category.ID = doc.Ref.ID
		categories = append(categories, category)
	}

	return categories, nil
}

// Create persists a new category with a store-assigned ID and server timestamp.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) (string, error) {
	ref := r.client.Collection(categoriesCollection).NewDoc()
	if _, err := ref.Create(ctx, category); err != nil {
		return "", errors.Wrap(err, "failed to create category")
	}
	category.ID = ref.ID

	return ref.ID, nil
}

// Delete removes the category document.
func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.client.Collection(categoriesCollection).Doc(id).Delete(ctx); err != nil {
		return errors.Wrapf(err, "failed to delete category %s", id)
	}

	return nil
}
