package firestore

import (
	"context"

	"lumera/internal/domain/entity"
	"lumera/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

type cartRepository struct {
	client *firestore.Client
}

// NewCartRepository creates a Firestore-backed CartRepository.
func NewCartRepository(client *firestore.Client) repository.CartRepository {
	return &cartRepository{client: client}
}

func (r *cartRepository) items(uid string) *firestore.CollectionRef {
	return r.client.Collection(usersCollection).Doc(uid).Collection(cartCollection)
}

// ListItems retrieves every item in users/{uid}/cart.
func (r *cartRepository) ListItems(ctx context.Context, uid string) ([]*entity.CartItem, error) {
	iter := r.items(uid).Documents(ctx)
	defer iter.Stop()

	var items []*entity.CartItem
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate cart items")
		}

		item := new(entity.CartItem)
		if err := doc.DataTo(item); err != nil {
			return nil, errors.Wrapf(err, "failed to decode cart item %s", doc.Ref.ID)
		}
		item.ProductID = doc.Ref.ID
		items = append(items, item)
	}

	return items, nil
}

// PutItem writes users/{uid}/cart/{productID}. The product ID keying makes
// re-adds overwrite instead of duplicate.
func (r *cartRepository) PutItem(ctx context.Context, uid string, item *entity.CartItem) error {
	if _, err := r.items(uid).Doc(item.ProductID).Set(ctx, item); err != nil {
		return errors.Wrapf(err, "failed to put cart item %s", item.ProductID)
	}

	return nil
}

// RemoveItem deletes users/{uid}/cart/{productID}.
func (r *cartRepository) RemoveItem(ctx context.Context, uid string, productID string) error {
	if _, err := r.items(uid).Doc(productID).Delete(ctx); err != nil {
		return errors.Wrapf(err, "failed to remove cart item %s", productID)
	}

	return nil
}

type wishlistRepository struct {
	client *firestore.Client
}

// NewWishlistRepository creates a Firestore-backed WishlistRepository.
func NewWishlistRepository(client *firestore.Client) repository.WishlistRepository {
	return &wishlistRepository{client: client}
}

func (r *wishlistRepository) items(uid string) *firestore.CollectionRef {
	return r.client.Collection(usersCollection).Doc(uid).Collection(wishlistCollection)
}

// ListItems retrieves every item in users/{uid}/wishlist.
func (r *wishlistRepository) ListItems(ctx context.Context, uid string) ([]*entity.WishlistItem, error) {
	iter := r.items(uid).Documents(ctx)
	defer iter.Stop()

	var items []*entity.WishlistItem
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate wishlist items")
		}

		item := new(entity.WishlistItem)
		if err := doc.DataTo(item); err != nil {
			return nil, errors.Wrapf(err, "failed to decode wishlist item %s", doc.Ref.ID)
		}
		item.ProductID = doc.Ref.ID
		items = append(items, item)
	}

	return items, nil
}

// PutItem writes users/{uid}/wishlist/{productID}, overwriting any existing entry.
func (r *wishlistRepository) PutItem(ctx context.Context, uid string, item *entity.WishlistItem) error {
	if _, err := r.items(uid).Doc(item.ProductID).Set(ctx, item); err != nil {
		return errors.Wrapf(err, "failed to put wishlist item %s", item.ProductID)
	}

	return nil
}

// RemoveItem deletes users/{uid}/wishlist/{productID}.
func (r *wishlistRepository) RemoveItem(ctx context.Context, uid string, productID string) error {
	if _, err := r.items(uid).Doc(productID).Delete(ctx); err != nil {
		return errors.Wrapf(err, "failed to remove wishlist item %s", productID)
	}

	return nil
}
