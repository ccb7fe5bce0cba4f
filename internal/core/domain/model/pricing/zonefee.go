// Package pricing contains the zone fee table entries used to price
// deliveries. A ZoneFee maps an administrative delivery zone to the fee a
// customer pays for delivery into that zone. The table is edited by
// administrators; fee changes never touch orders that were already placed,
// because orders copy the resolved fee at checkout.
package pricing

import (
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrZoneFeeIsNotConstructed is returned when a ZoneFee was not created
// through the NewZoneFee constructor.
var ErrZoneFeeIsNotConstructed = errors.New("ZoneFee must be created via NewZoneFee constructor")

// ZoneFee is one row of the zone fee table: a zone name and the delivery
// fee charged for it. Zone matching is case-insensitive exact match; no
// fuzzy matching.
type ZoneFee struct { //nolint:recvcheck //using for validation
	zone string
	fee  float64

	guard guard.ConstructorGuard
}

// NewZoneFee creates a table row. The zone name is trimmed and must be
// non-empty; the fee must be non-negative.
func NewZoneFee(zone string, fee float64) (ZoneFee, error) {
	zf := ZoneFee{
		guard: guard.NewConstructorGuard(),
	}

	zone = strings.TrimSpace(zone)
	if zone == "" {
		return ZoneFee{}, errs.NewValueIsRequiredError("zone")
	}
	if fee < 0 {
		return ZoneFee{}, errs.NewValueIsInvalidErrorWithCause("fee is invalid",
			fmt.Errorf("%g is negative", fee))
	}

	zf.zone = zone
	zf.fee = fee
	return zf, nil
}

// Validate ensures the ZoneFee was created via NewZoneFee.
func (z ZoneFee) Validate() error {
	return z.guard.Validate(ErrZoneFeeIsNotConstructed)
}

// Zone returns the zone name as entered by the administrator.
func (z ZoneFee) Zone() string {
	return z.zone
}

// Fee returns the delivery fee for the zone.
func (z ZoneFee) Fee() float64 {
	return z.fee
}

// NormalizedZone returns the lowercase form used as the table key.
func (z ZoneFee) NormalizedZone() string {
	return NormalizeZone(z.zone)
}

// Matches reports whether the given zone name refers to this row,
// ignoring case and surrounding whitespace.
func (z ZoneFee) Matches(zone string) bool {
	return NormalizeZone(zone) == z.NormalizedZone()
}

// NormalizeZone produces the canonical lookup key for a zone name.
func NormalizeZone(zone string) string {
	return strings.ToLower(strings.TrimSpace(zone))
}
