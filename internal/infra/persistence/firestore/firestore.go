// Package firestore implements the repository interfaces on top of the
// Firestore document store. Every operation is a direct call against the
// external store; nothing is cached across requests.
package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Collection paths used by this service.
const (
	productsCollection   = "products"
	categoriesCollection = "categories"
	contentCollection    = "content"
	usersCollection      = "users"
	cartCollection       = "cart"
	wishlistCollection   = "wishlist"
	ordersCollection     = "orders"

	homeContentDoc = "home"
	createdAtField = "createdAt"
	orderField     = "order"
)

// ClientParams holds dependencies for the Firestore client, injected by Fx.
type ClientParams struct {
	fx.In
	fx.Lifecycle

	Ctx context.Context
	App *firebase.App
}

// NewClient opens the Firestore client from the shared Firebase app and closes
// it on shutdown.
func NewClient(params ClientParams) (*firestore.Client, error) {
	client, err := params.App.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}
