package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations return only committed snapshots; an in-flight transition
// on another unit of work is never observable through Get.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier. Returns an
	// errs.ObjectNotFoundError for an unknown id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllEnRoute retrieves every order currently being delivered.
	// Used by the live map aggregation and the stale tracking monitor.
	GetAllEnRoute(ctx context.Context) ([]*order.Order, error)
}
