package ports

import (
	"context"

	"dispatch/internal/core/domain/model/pricing"
)

// ZoneFeeRepository defines the persistence contract for the zone fee
// table. The table is small and read often: every checkout consults it
// through the fee resolver, while administrators edit it rarely.
type ZoneFeeRepository interface {
	// Upsert creates or replaces the row for the entry's zone.
	Upsert(ctx context.Context, entry pricing.ZoneFee) error

	// FeeForZone looks up a zone's fee by case-insensitive exact match.
	// A missing row is (0, false, nil), not an error.
	FeeForZone(ctx context.Context, zone string) (fee float64, found bool, err error)

	// GetAll returns every row of the table.
	GetAll(ctx context.Context) ([]pricing.ZoneFee, error)
}
