package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// GetActiveCouriersQueryHandler aggregates the freshest reported position
// per courier over en-route orders. A courier delivering several orders
// appears once, with whichever order produced the latest accepted report.
type GetActiveCouriersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveCouriersQueryHandler creates a handler for the live map
// projection.
func NewGetActiveCouriersQueryHandler(db *gorm.DB) GetActiveCouriersQueryHandler {
	return GetActiveCouriersQueryHandler{db: db}
}

// Handle executes the query. Couriers with no accepted report yet are
// absent from the result.
func (h GetActiveCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveCouriersQuery,
) ([]GetActiveCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT DISTINCT ON (courier_id)
			courier_id,
			id,
			last_lat,
			last_lng,
			last_reported_at
		FROM orders
		WHERE status = ?
			AND courier_id IS NOT NULL
			AND last_reported_at IS NOT NULL
		ORDER BY courier_id, last_reported_at DESC
	`, order.EnRoute).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	couriers := make([]GetActiveCouriersQueryResponse, 0)

	for rows.Next() {
		var resp GetActiveCouriersQueryResponse
		var courierID, orderID uuid.UUID
		var lat, lng float64
		var reportedAt time.Time

		if err = rows.Scan(&courierID, &orderID, &lat, &lng, &reportedAt); err != nil {
			return nil, err
		}

		if resp.CourierID, err = kernel.UUIDFromBytes(courierID[:]); err != nil {
			return nil, err
		}
		if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if resp.Point, err = kernel.NewGeoPoint(lat, lng); err != nil {
			return nil, err
		}
		resp.ReportedAt = reportedAt

		couriers = append(couriers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return couriers, nil
}
