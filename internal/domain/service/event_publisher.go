package service

import (
	"context"
)

// Catalog event types.
const (
	EventProductCreated  = "product.created"
	EventProductUpdated  = "product.updated"
	EventProductDeleted  = "product.deleted"
	EventCategoryCreated = "category.created"
	EventCategoryDeleted = "category.deleted"
	EventCatalogImported = "catalog.imported"
)

// CatalogEvent announces a catalog mutation to downstream consumers
// (cache refreshers, feeds, analytics).
type CatalogEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	Type      string `json:"type"`
	ProductID string `json:"product_id,omitempty"`
	Name      string `json:"name,omitempty"`
	Category  string `json:"category,omitempty"`
	Count     int    `json:"count,omitempty"` // Row count for bulk imports
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCatalogEvent publishes a catalog mutation event.
	PublishCatalogEvent(ctx context.Context, event *CatalogEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
