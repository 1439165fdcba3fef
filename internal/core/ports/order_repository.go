package ports

import (
	"context"

	"punarvasthra/internal/core/domain/model/kernel"
	"punarvasthra/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for catalog order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order number must be unique; a duplicate is a storage error.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
