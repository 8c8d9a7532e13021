package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProductStore defines read operations for products.
type ProductStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (Product, error)
	GetAll(ctx context.Context) ([]Product, error)
	Search(ctx context.Context, text string) ([]Product, error)
}

// Product represents a catalog product.
type Product struct {
	ID            uuid.UUID
	Name          string
	Category      string
	Price         float64
	StockQuantity int
	CreatedAt     time.Time
}
