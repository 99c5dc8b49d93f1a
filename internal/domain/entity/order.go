package entity

import (
	"time"
)

// Order statuses as rendered by the account and admin panels.
const (
	OrderStatusPaid      = "Paid"
	OrderStatusPending   = "Pending"
	OrderStatusShipped   = "Shipped"
	OrderStatusDelivered = "Delivered"
)

// Order lives under users/{uid}/orders and is read-only in this service;
// there is no order-creation flow (checkout is out of scope).
type Order struct {
	ID        string    `json:"id" firestore:"-"`
	Total     float64   `json:"total" firestore:"total"`
	Status    string    `json:"status" firestore:"status"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
