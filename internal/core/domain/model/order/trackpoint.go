package order

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrTrackPointIsNotConstructed is returned when a TrackPoint was not
// created through the NewTrackPoint constructor.
var ErrTrackPointIsNotConstructed = errors.New("TrackPoint must be created via NewTrackPoint constructor")

// TrackPoint is a single accepted courier position report: where the
// courier was and when the device said so. The timestamp is the device
// report time, not the arrival time, so ordering survives network delays.
type TrackPoint struct { //nolint:recvcheck //using for validation
	point      kernel.GeoPoint
	reportedAt time.Time

	guard guard.ConstructorGuard
}

// NewTrackPoint creates a TrackPoint from a valid position and a non-zero
// report timestamp.
func NewTrackPoint(point kernel.GeoPoint, reportedAt time.Time) (TrackPoint, error) {
	tp := TrackPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := point.Validate(); err != nil {
		return TrackPoint{}, err
	}
	if reportedAt.IsZero() {
		return TrackPoint{}, errs.NewValueIsRequiredError("reportedAt")
	}

	tp.point = point
	tp.reportedAt = reportedAt
	return tp, nil
}

// Validate ensures the TrackPoint was created via NewTrackPoint.
func (t TrackPoint) Validate() error {
	return t.guard.Validate(ErrTrackPointIsNotConstructed)
}

// Point returns the reported position.
func (t TrackPoint) Point() kernel.GeoPoint {
	return t.point
}

// ReportedAt returns the device report timestamp.
func (t TrackPoint) ReportedAt() time.Time {
	return t.reportedAt
}

// IsNewerThan reports whether this point's timestamp is strictly after
// the other's. Equal timestamps are not newer, so a duplicate report is
// treated as stale.
func (t TrackPoint) IsNewerThan(other TrackPoint) bool {
	return t.reportedAt.After(other.reportedAt)
}
