// Package queries contains the read side of the dispatch core. Query
// handlers read committed rows directly through GORM and never touch
// domain aggregates: an in-flight command on another transaction is not
// observable here.
package queries

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderSummaryResponse is the list-view projection of an order shared by
// the customer, courier and administrator order listings.
type OrderSummaryResponse struct {
	ID            kernel.UUID
	CustomerName  string
	DeliveryZone  string
	DeliveryFee   float64
	Subtotal      float64
	Total         float64
	Status        order.Status
	PaymentStatus order.PaymentStatus
	CourierID     *kernel.UUID
	CreatedAt     time.Time
}

const orderSummaryColumns = `
	id,
	customer_name,
	delivery_zone,
	delivery_fee,
	subtotal,
	total,
	status,
	payment_status,
	courier_id,
	created_at
`

// scanOrderSummaries drains rows produced by a SELECT over
// orderSummaryColumns into response values.
func scanOrderSummaries(rows *gorm.DB) ([]OrderSummaryResponse, error) {
	sqlRows, err := rows.Rows()
	if err != nil {
		return nil, err
	}
	defer sqlRows.Close()

	summaries := make([]OrderSummaryResponse, 0)

	for sqlRows.Next() {
		var summary OrderSummaryResponse
		var id uuid.UUID
		var courierID *uuid.UUID
		var status, paymentStatus int

		if err = sqlRows.Scan(
			&id,
			&summary.CustomerName,
			&summary.DeliveryZone,
			&summary.DeliveryFee,
			&summary.Subtotal,
			&summary.Total,
			&status,
			&paymentStatus,
			&courierID,
			&summary.CreatedAt,
		); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		summary.ID = orderID

		if courierID != nil {
			cID, cErr := kernel.UUIDFromBytes((*courierID)[:])
			if cErr != nil {
				return nil, cErr
			}
			summary.CourierID = &cID
		}

		summary.Status = order.Status(status)
		summary.PaymentStatus = order.PaymentStatus(paymentStatus)
		summaries = append(summaries, summary)
	}

	if err = sqlRows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
