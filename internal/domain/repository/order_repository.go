package repository

import (
	"context"

	"lumera/internal/domain/entity"
)

// OrderRepository reads the per-user orders subcollection. Orders are never
// written by this service.
type OrderRepository interface {
	// ListRecent retrieves up to limit orders from users/{uid}/orders,
	// newest first. limit <= 0 means no limit.
	ListRecent(ctx context.Context, uid string, limit int) ([]*entity.Order, error)
}
