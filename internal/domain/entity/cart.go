package entity

import (
	"time"
)

// CartItem is a product snapshot under users/{uid}/cart. The document ID is
// the product ID, so re-adding the same product overwrites instead of
// duplicating.
type CartItem struct {
	ProductID string    `json:"product_id" firestore:"-"`
	Name      string    `json:"name" firestore:"name"`
	Price     float64   `json:"price" firestore:"price"`
	Image     string    `json:"image" firestore:"image"`
	Quantity  int       `json:"quantity" firestore:"quantity"`
	AddedAt   time.Time `json:"added_at" firestore:"addedAt"`
}

// WishlistItem mirrors CartItem under users/{uid}/wishlist, again keyed by
// product ID.
type WishlistItem struct {
	ProductID string    `json:"product_id" firestore:"-"`
	Name      string    `json:"name" firestore:"name"`
	Price     float64   `json:"price" firestore:"price"`
	Image     string    `json:"image" firestore:"image"`
	AddedAt   time.Time `json:"added_at" firestore:"addedAt"`
}

// CartTotal sums price times quantity over the items. Items written before
// quantities existed carry zero; they count as a single unit.
func CartTotal(items []*CartItem) float64 {
	var total float64
	for _, item := range items {
		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}
		total += item.Price * float64(qty)
	}

	return total
}
