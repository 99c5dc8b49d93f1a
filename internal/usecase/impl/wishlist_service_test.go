package impl

import (
	"context"
	"testing"

	"lumera/internal/domain/entity"
	domainerrors "lumera/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistService_AddAndRemove(t *testing.T) {
	productRepo := &fakeProductRepo{products: []*entity.Product{
		{ID: "p1", Name: "Hydra Serum", Price: 549},
	}}
	svc := NewWishlistService(newFakeWishlistRepo(), newFakeCartRepo(), productRepo, testLogger())

	items, err := svc.AddProduct(context.Background(), "u1", "p1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Hydra Serum", items[0].Name)

	items, err = svc.RemoveProduct(context.Background(), "u1", "p1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestWishlistService_MoveToCart(t *testing.T) {
	productRepo := &fakeProductRepo{products: []*entity.Product{
		{ID: "p1", Name: "Hydra Serum", Price: 549},
	}}
	wishlistRepo := newFakeWishlistRepo()
	cartRepo := newFakeCartRepo()
	svc := NewWishlistService(wishlistRepo, cartRepo, productRepo, testLogger())

	_, err := svc.AddProduct(context.Background(), "u1", "p1")
	require.NoError(t, err)

	// Delisting the product must not block the move; the wishlist snapshot
	// carries everything the cart needs.
	productRepo.products = nil

	err = svc.MoveToCart(context.Background(), "u1", "p1")
	require.NoError(t, err)

	cartItems, err := cartRepo.ListItems(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, cartItems, 1)
	assert.Equal(t, "Hydra Serum", cartItems[0].Name)
	assert.Equal(t, 1, cartItems[0].Quantity)

	wishlistItems, err := wishlistRepo.ListItems(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, wishlistItems)
}

func TestWishlistService_MoveToCart_AbsentItem(t *testing.T) {
	svc := NewWishlistService(newFakeWishlistRepo(), newFakeCartRepo(), &fakeProductRepo{}, testLogger())

	err := svc.MoveToCart(context.Background(), "u1", "missing")
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestWishlistService_MoveToCart_CartWriteFailureKeepsWishlistEntry(t *testing.T) {
	productRepo := &fakeProductRepo{products: []*entity.Product{
		{ID: "p1", Name: "Hydra Serum", Price: 549},
	}}
	wishlistRepo := newFakeWishlistRepo()
	cartRepo := newFakeCartRepo()
	svc := NewWishlistService(wishlistRepo, cartRepo, productRepo, testLogger())

	_, err := svc.AddProduct(context.Background(), "u1", "p1")
	require.NoError(t, err)

	cartRepo.putErr = assert.AnError

	err = svc.MoveToCart(context.Background(), "u1", "p1")
	require.Error(t, err)

	items, err := wishlistRepo.ListItems(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
