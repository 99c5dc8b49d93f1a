// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// Stock status labels rendered as badges by the storefront.
const (
	StockStatusInStock    = "In Stock"
	StockStatusLowStock   = "Low Stock"
	StockStatusOutOfStock = "Out of Stock"
)

// Product is a catalog item. The document ID is assigned by the store and is
// not persisted inside the document itself.
//
// Price may exceed OriginalPrice; the source system neither rejects nor
// normalizes that combination, so neither do we.
type Product struct {
	ID            string    `json:"id" firestore:"-"`
	Name          string    `json:"name" firestore:"name"`
	Category      string    `json:"category" firestore:"category"`
	Description   string    `json:"description" firestore:"description"`
	Price         float64   `json:"price" firestore:"price"`
	OriginalPrice float64   `json:"original_price" firestore:"original_price"`
	Discount      float64   `json:"discount" firestore:"discount"`
	StockStatus   string    `json:"stock_status" firestore:"stock_status"`
	SuitableFor   string    `json:"suitable_for" firestore:"suitable_for"`
	Rating        float64   `json:"rating" firestore:"rating"`
	NetQuantity   string    `json:"net_quantity" firestore:"net_quantity"`
	Ingredients   string    `json:"ingredients" firestore:"ingredients"`
	HowToUse      string    `json:"how_to_use" firestore:"how_to_use"`
	Image         string    `json:"image" firestore:"image"`
	Images        []string  `json:"images" firestore:"images"`
	CreatedAt     time.Time `json:"created_at" firestore:"createdAt,serverTimestamp"`
}

// PrimaryImage returns the cover image URL, falling back to the first entry of
// the image list when the dedicated field is empty.
func (p *Product) PrimaryImage() string {
	if p.Image != "" {
		return p.Image
	}
	if len(p.Images) > 0 {
		return p.Images[0]
	}

	return ""
}
