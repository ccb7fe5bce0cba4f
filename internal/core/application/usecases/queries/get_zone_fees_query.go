package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrGetZoneFeesQueryIsNotConstructed = errors.New(
	"GetZoneFeesQuery must be created via NewGetZoneFeesQuery constructor",
)

// GetZoneFeesQuery retrieves the full delivery fee table for the
// administrator pricing screen.
type GetZoneFeesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetZoneFeesQuery creates a query for the fee table.
func NewGetZoneFeesQuery() GetZoneFeesQuery {
	return GetZoneFeesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetZoneFeesQuery) Validate() error {
	return q.guard.Validate(ErrGetZoneFeesQueryIsNotConstructed)
}

// GetZoneFeesQueryResponse is one row of the delivery fee table.
type GetZoneFeesQueryResponse struct {
	Zone string
	Fee  float64
}
