package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetOrderLocationQueryIsNotConstructed = errors.New(
	"GetOrderLocationQuery must be created via NewGetOrderLocationQuery constructor",
)

// GetOrderLocationQuery retrieves the latest accepted courier position
// for one order. Backs the customer tracking screen's polling path.
type GetOrderLocationQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderLocationQuery creates a query for one order's last position.
func NewGetOrderLocationQuery(orderID kernel.UUID) (GetOrderLocationQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderLocationQuery{}, err
	}

	return GetOrderLocationQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderLocationQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderLocationQueryIsNotConstructed)
}

// OrderID returns the tracked order's identifier.
func (q GetOrderLocationQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderLocationQueryResponse is the latest accepted position of the
// courier delivering an order.
type GetOrderLocationQueryResponse struct {
	OrderID    kernel.UUID
	Point      kernel.GeoPoint
	ReportedAt time.Time
}
