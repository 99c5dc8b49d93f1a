package firestore

import (
	"context"

	"lumera/internal/domain/entity"
	"lumera/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type productRepository struct {
	client *firestore.Client
}

// NewProductRepository creates a Firestore-backed ProductRepository.
func NewProductRepository(client *firestore.Client) repository.ProductRepository {
	return &productRepository{client: client}
}

// List retrieves all products, newest first.
func (r *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	iter := r.client.Collection(productsCollection).
		OrderBy(createdAtField, firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var products []*entity.Product
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate products")
		}

		product := new(entity.Product)
		if err := doc.DataTo(product); err != nil {
			return nil, errors.Wrapf(err, "failed to decode product %s", doc.Ref.ID)
		}
		product.ID = doc.Ref.ID
		products = append(products, product)
	}

	return products, nil
}

// FindByID retrieves a single product document.
func (r *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := r.client.Collection(productsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrapf(err, "failed to get product %s", id)
	}

	product := new(entity.Product)
	if err := doc.DataTo(product); err != nil {
		return nil, errors.Wrapf(err, "failed to decode product %s", id)
	}
	product.ID = doc.Ref.ID

	return product, nil
}

// Create persists a new product with a store-assigned ID and server timestamp.
func (r *productRepository) Create(ctx context.Context, product *entity.Product) (string, error) {
	ref := r.client.Collection(productsCollection).NewDoc()
	if _, err := ref.Create(ctx, product); err != nil {
		return "", errors.Wrap(err, "failed to create product")
	}
	product.ID = ref.ID

	return ref.ID, nil
}

// Update replaces the product document. CreatedAt carries the value read from
// the store, so the server timestamp is preserved.
func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	if _, err := r.client.Collection(productsCollection).Doc(product.ID).Set(ctx, product); err != nil {
		return errors.Wrapf(err, "failed to update product %s", product.ID)
	}

	return nil
}

// Delete removes the product document. The Exists precondition makes deletes
// of unknown IDs fail instead of succeeding silently.
func (r *productRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.client.Collection(productsCollection).Doc(id).Delete(ctx, firestore.Exists); err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrProductNotFound
		}

		return errors.Wrapf(err, "failed to delete product %s", id)
	}

	return nil
}
