package services

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
)

// ErrFeeUnavailable indicates that no delivery fee could be produced for
// the given coordinates: geocoding found no zone, or the geocoder itself
// failed. Checkout must refuse to place the order in this case rather
// than default to a fee of zero or any other value.
var ErrFeeUnavailable = errors.New("delivery fee unavailable for location")

// Geocoder resolves geographic coordinates to a delivery zone name.
// An ordinary "no zone here" answer is (zone="", found=false, err=nil);
// a non-nil error means the geocoder itself failed.
type Geocoder interface {
	ResolveZone(ctx context.Context, point kernel.GeoPoint) (zone string, found bool, err error)
}

// FeeTable is read access to the zone fee table. Lookup is by zone name,
// case-insensitive exact match.
type FeeTable interface {
	FeeForZone(ctx context.Context, zone string) (fee float64, found bool, err error)
}

// ResolvedFee is a successfully priced delivery location.
type ResolvedFee struct {
	Zone string
	Fee  float64
}

// FeeResolver computes the delivery fee for checkout coordinates. It is a
// pure function of its inputs and the current fee table: it never mutates
// anything and never retries — retry policy belongs to the caller.
//
// Outcomes:
//   - zone resolved and priced: that zone's fee
//   - zone resolved but absent from the table: fee 0 (recognized but
//     unpriced — a normal result, distinct from unavailable)
//   - no zone resolved, or geocoder failure: ErrFeeUnavailable
type FeeResolver struct {
	geocoder Geocoder
	feeTable FeeTable
}

// NewFeeResolver creates a FeeResolver over the given collaborators.
func NewFeeResolver(geocoder Geocoder, feeTable FeeTable) FeeResolver {
	return FeeResolver{
		geocoder: geocoder,
		feeTable: feeTable,
	}
}

// Resolve prices the given point. The context bounds the geocoder call;
// pass one with a deadline so a stalled geocoder cannot block checkout
// indefinitely.
func (r FeeResolver) Resolve(ctx context.Context, point kernel.GeoPoint) (ResolvedFee, error) {
	if err := point.Validate(); err != nil {
		return ResolvedFee{}, err
	}

	zone, found, err := r.geocoder.ResolveZone(ctx, point)
	if err != nil {
		return ResolvedFee{}, fmt.Errorf("%w: %w", ErrFeeUnavailable, err)
	}
	if !found {
		return ResolvedFee{}, fmt.Errorf("%w: no zone for %s", ErrFeeUnavailable, point)
	}

	fee, priced, err := r.feeTable.FeeForZone(ctx, zone)
	if err != nil {
		return ResolvedFee{}, err
	}
	if !priced {
		// Zone recognized, just not priced yet: deliver for free rather
		// than refuse. Not the same thing as an unresolved location.
		return ResolvedFee{Zone: zone, Fee: 0}, nil
	}

	return ResolvedFee{Zone: zone, Fee: fee}, nil
}
