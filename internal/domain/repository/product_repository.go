package repository

import (
	"context"

	"marketplace/internal/domain/entity"
)

// ProductRepository defines the interface for reading catalog products.
// Failures carry a *errors.TransportError somewhere in their chain.
type ProductRepository interface {
	// GetAllProducts retrieves every product, in backend order
	GetAllProducts(ctx context.Context) ([]entity.Product, error)

	// GetProductByID retrieves a single product
	GetProductByID(ctx context.Context, productID string) (entity.Product, error)
}
