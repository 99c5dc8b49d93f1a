package usecase

import (
	"context"

	"lumera/internal/domain/entity"
)

// CartOutput is the cart listing plus its running total.
type CartOutput struct {
	Items []*entity.CartItem `json:"items"`
	Total float64            `json:"total"`
}

// CartUsecase defines the interface for shopping cart operations. Items are
// keyed by product ID, so adding is idempotent rather than accumulating.
type CartUsecase interface {
	// GetCart returns the user's cart items and total.
	GetCart(ctx context.Context, uid string) (*CartOutput, error)

	// AddProduct snapshots the product into the cart. Quantity <= 0 is
	// treated as 1. Re-adding overwrites the existing entry.
	AddProduct(ctx context.Context, uid, productID string, quantity int) (*CartOutput, error)

	// RemoveProduct deletes the cart entry for the product. Removing an
	// absent product is a no-op.
	RemoveProduct(ctx context.Context, uid, productID string) (*CartOutput, error)
}

// WishlistUsecase defines the interface for wishlist operations, keyed the
// same way as the cart.
type WishlistUsecase interface {
	// GetWishlist returns the user's saved items.
	GetWishlist(ctx context.Context, uid string) ([]*entity.WishlistItem, error)

	// AddProduct snapshots the product into the wishlist.
	AddProduct(ctx context.Context, uid, productID string) ([]*entity.WishlistItem, error)

	// RemoveProduct deletes the wishlist entry for the product.
	RemoveProduct(ctx context.Context, uid, productID string) ([]*entity.WishlistItem, error)

	// MoveToCart copies the saved item into the cart with quantity 1, then
	// removes it from the wishlist. The cart write happens first, so a
	// failure never loses the item.
	MoveToCart(ctx context.Context, uid, productID string) error
}
