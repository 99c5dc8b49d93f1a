package usecase

import (
	"context"

	"lumera/internal/domain/entity"
)

// AccountOutput is the account overview rendered by the profile page.
type AccountOutput struct {
	User          *entity.User    `json:"user"`
	CartCount     int             `json:"cart_count"`
	WishlistCount int             `json:"wishlist_count"`
	OrderCount    int             `json:"order_count"`
	RecentOrders  []*entity.Order `json:"recent_orders"`
}

// AccountUsecase defines the interface for the signed-in user's profile view.
type AccountUsecase interface {
	// GetAccount returns the user record with cart/wishlist/order counts and
	// the most recent orders. The user record is created lazily if the
	// account predates this service.
	GetAccount(ctx context.Context, identity *entity.Identity) (*AccountOutput, error)

	// ListOrders returns the user's full order history, newest first.
	ListOrders(ctx context.Context, uid string) ([]*entity.Order, error)
}
