package queries

import (
	"context"

	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/order"
)

// GetCourierOrdersQueryHandler retrieves a courier's active workload.
type GetCourierOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierOrdersQueryHandler creates a handler for courier workload
// queries.
func NewGetCourierOrdersQueryHandler(db *gorm.DB) GetCourierOrdersQueryHandler {
	return GetCourierOrdersQueryHandler{db: db}
}

// Handle executes the query. Terminal orders are excluded; the courier's
// app only needs what is still in play, oldest first.
func (h GetCourierOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCourierOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanOrderSummaries(h.db.WithContext(ctx).Raw(`
		SELECT `+orderSummaryColumns+`
		FROM orders
		WHERE courier_id = ? AND status IN (?, ?)
		ORDER BY created_at
	`, query.CourierID().Bytes(), order.Pending, order.EnRoute))
}
