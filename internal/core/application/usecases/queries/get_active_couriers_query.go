package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetActiveCouriersQueryIsNotConstructed = errors.New(
	"GetActiveCouriersQuery must be created via NewGetActiveCouriersQuery constructor",
)

// GetActiveCouriersQuery retrieves one latest known position per courier
// across every order currently being delivered. Backs the administrator
// live map.
type GetActiveCouriersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveCouriersQuery creates a query for the live map projection.
func NewGetActiveCouriersQuery() GetActiveCouriersQuery {
	return GetActiveCouriersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveCouriersQueryIsNotConstructed)
}

// GetActiveCouriersQueryResponse is one courier's freshest position
// across their en-route orders.
type GetActiveCouriersQueryResponse struct {
	CourierID  kernel.UUID
	OrderID    kernel.UUID
	Point      kernel.GeoPoint
	ReportedAt time.Time
}
