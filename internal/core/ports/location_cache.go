package ports

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
)

// LocationCache is a fast projection of the latest accepted courier
// position per order. It exists so customer tracking screens and the
// administrator live map can poll without touching the order store.
//
// The cache is best-effort: the committed order row remains authoritative
// and readers fall back to it on a miss. Implementations may evict
// entries at any time.
type LocationCache interface {
	// Put records the latest accepted point for an order.
	Put(ctx context.Context, orderID kernel.UUID, point kernel.GeoPoint, reportedAt time.Time) error

	// Get returns the cached point for an order, or found=false on a miss.
	Get(ctx context.Context, orderID kernel.UUID) (point kernel.GeoPoint, reportedAt time.Time, found bool, err error)
}
