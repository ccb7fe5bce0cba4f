package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// GetOrderLocationQueryHandler retrieves an order's latest courier
// position. The location cache is consulted first; on a miss the handler
// falls back to the committed order row, which stays authoritative.
type GetOrderLocationQueryHandler struct {
	db    *gorm.DB
	cache ports.LocationCache
}

// NewGetOrderLocationQueryHandler creates a handler for live position
// queries. The cache may be nil when no fast projection is deployed.
func NewGetOrderLocationQueryHandler(db *gorm.DB, cache ports.LocationCache) GetOrderLocationQueryHandler {
	return GetOrderLocationQueryHandler{
		db:    db,
		cache: cache,
	}
}

// Handle executes the query. Returns an errs.ObjectNotFoundError when the
// order is unknown or has no accepted position yet.
func (h GetOrderLocationQueryHandler) Handle(
	ctx context.Context,
	query GetOrderLocationQuery,
) (GetOrderLocationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderLocationQueryResponse{}, err
	}

	if h.cache != nil {
		point, reportedAt, found, err := h.cache.Get(ctx, query.OrderID())
		if err == nil && found {
			return GetOrderLocationQueryResponse{
				OrderID:    query.OrderID(),
				Point:      point,
				ReportedAt: reportedAt,
			}, nil
		}
		// Cache failures degrade to the order row.
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			last_lat,
			last_lng,
			last_reported_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var lastLat, lastLng *float64
	var lastReportedAt *time.Time

	err := row.Scan(&lastLat, &lastLng, &lastReportedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderLocationQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return GetOrderLocationQueryResponse{}, err
	}

	if lastLat == nil || lastLng == nil || lastReportedAt == nil {
		return GetOrderLocationQueryResponse{}, errs.NewObjectNotFoundError("order location", query.OrderID().String())
	}

	point, err := kernel.NewGeoPoint(*lastLat, *lastLng)
	if err != nil {
		return GetOrderLocationQueryResponse{}, err
	}

	return GetOrderLocationQueryResponse{
		OrderID:    query.OrderID(),
		Point:      point,
		ReportedAt: *lastReportedAt,
	}, nil
}
