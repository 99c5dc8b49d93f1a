package entity

import (
	"time"
)

// Category is a homepage collection tile. Order drives the ascending display
// sort on the storefront.
type Category struct {
	ID        string    `json:"id" firestore:"-"`
	Title     string    `json:"title" firestore:"title"`
	Subtitle  string    `json:"subtitle" firestore:"subtitle"`
	Image     string    `json:"image" firestore:"image"`
	Order     int       `json:"order" firestore:"order"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt,serverTimestamp"`
}

// CatalogCategories is the fixed set of category tags a product may carry.
// "All" is a filter sentinel, not a member of this set.
var CatalogCategories = []string{
	"Cleansers",
	"Serums",
	"Moisturizers",
	"Treatments",
	"Sunscreen",
	"Eye Care",
}

// CategoryFilterAll bypasses the category filter on listings.
const CategoryFilterAll = "All"
