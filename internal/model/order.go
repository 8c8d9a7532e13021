package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OrderStore defines read operations for orders.
type OrderStore interface {
	// GetByUserID returns the user's orders sorted by order date ascending.
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]Order, error)
	// GetGlobalOrderCounts returns the number of orders per product across
	// all users, for popularity scoring.
	GetGlobalOrderCounts(ctx context.Context) (map[uuid.UUID]int, error)
}

// Order represents a single purchase of one product by one user.
type Order struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	ProductID  uuid.UUID
	Quantity   int
	TotalPrice float64
	OrderDate  time.Time
	Status     OrderStatus
}

// OrderStatus enumerates order lifecycle states.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Cancelled reports whether the order was cancelled. Cancelled orders
// carry no behavioral signal for profiles and predictions.
func (o Order) Cancelled() bool {
	return o.Status == OrderStatusCancelled
}
