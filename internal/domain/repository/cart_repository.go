package repository

import (
	"context"

	"lumera/internal/domain/entity"
)

// CartRepository manages the per-user cart subcollection. Items are keyed by
// product ID, so Put is idempotent: re-adding overwrites the existing entry.
type CartRepository interface {
	// ListItems retrieves every item in users/{uid}/cart.
	ListItems(ctx context.Context, uid string) ([]*entity.CartItem, error)

	// PutItem writes users/{uid}/cart/{productID}, overwriting any existing entry.
	PutItem(ctx context.Context, uid string, item *entity.CartItem) error

	// RemoveItem deletes users/{uid}/cart/{productID}.
	RemoveItem(ctx context.Context, uid string, productID string) error
}

// WishlistRepository manages the per-user wishlist subcollection with the same
// keying scheme as the cart.
type WishlistRepository interface {
	// ListItems retrieves every item in users/{uid}/wishlist.
	ListItems(ctx context.Context, uid string) ([]*entity.WishlistItem, error)

	// PutItem writes users/{uid}/wishlist/{productID}, overwriting any existing entry.
	PutItem(ctx context.Context, uid string, item *entity.WishlistItem) error

	// RemoveItem deletes users/{uid}/wishlist/{productID}.
	RemoveItem(ctx context.Context, uid string, productID string) error
}
