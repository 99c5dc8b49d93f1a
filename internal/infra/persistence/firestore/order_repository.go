package firestore

import (
	"context"

	"lumera/internal/domain/entity"
	"lumera/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

type orderRepository struct {
	client *firestore.Client
}

// NewOrderRepository creates a Firestore-backed OrderRepository.
func NewOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &orderRepository{client: client}
}

// ListRecent retrieves up to limit orders from users/{uid}/orders, newest first.
func (r *orderRepository) ListRecent(ctx context.Context, uid string, limit int) ([]*entity.Order, error) {
	query := r.client.Collection(usersCollection).Doc(uid).Collection(ordersCollection).
		OrderBy(createdAtField, firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var orders []*entity.Order
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate orders")
		}

		order := new(entity.Order)
		if err := doc.DataTo(order); err != nil {
			return nil, errors.Wrapf(err, "failed to decode order %s", doc.Ref.ID)
		}
		order.ID = doc.Ref.ID
		orders = append(orders, order)
	}

	return orders, nil
}
