package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the full detail view of one order, including
// its item snapshots and the last known courier position.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order's details.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the detail view of one order.
type GetOrderQueryResponse struct {
	ID             kernel.UUID
	CustomerID     kernel.UUID
	CustomerName   string
	CustomerPhone  string
	Items          []OrderItemResponse
	Destination    kernel.GeoPoint
	DeliveryZone   string
	DeliveryFee    float64
	Subtotal       float64
	Total          float64
	Status         order.Status
	PaymentMethod  order.PaymentMethod
	PaymentStatus  order.PaymentStatus
	CourierID      *kernel.UUID
	LastKnownPoint *kernel.GeoPoint
	LastReportedAt *time.Time
	CreatedAt      time.Time
}

// OrderItemResponse is one purchased item snapshot.
type OrderItemResponse struct {
	ProductID kernel.UUID
	Name      string
	UnitPrice float64
	Quantity  int
}
