package commands

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrReportLocationCommandIsNotConstructed = errors.New(
		"ReportLocationCommand must be created via NewReportLocationCommand constructor",
	)
	ErrReportedAtIsRequired = errors.New("reported at timestamp is required")
)

// ReportLocationCommand represents one position sample from the courier's
// device during an active delivery. Samples arrive frequently and may
// arrive out of order; the aggregate drops the stale ones.
type ReportLocationCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	courierID  kernel.UUID
	point      kernel.GeoPoint
	reportedAt time.Time

	guard guard.ConstructorGuard
}

// NewReportLocationCommand creates a location report command. Returns an
// error if an id or the point is invalid, or the timestamp is zero.
func NewReportLocationCommand(
	orderID kernel.UUID,
	courierID kernel.UUID,
	point kernel.GeoPoint,
	reportedAt time.Time,
) (ReportLocationCommand, error) {
	cmd := ReportLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCourierID(courierID),
		cmd.setPoint(point),
		cmd.setReportedAt(reportedAt),
	); err != nil {
		return ReportLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportLocationCommand) Validate() error {
	return c.guard.Validate(ErrReportLocationCommandIsNotConstructed)
}

// OrderID returns the order being tracked.
func (c ReportLocationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the reporting courier.
func (c ReportLocationCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Point returns the reported coordinates.
func (c ReportLocationCommand) Point() kernel.GeoPoint {
	return c.point
}

// ReportedAt returns when the device captured the sample.
func (c ReportLocationCommand) ReportedAt() time.Time {
	return c.reportedAt
}

func (c *ReportLocationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReportLocationCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *ReportLocationCommand) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}

	c.point = point
	return nil
}

func (c *ReportLocationCommand) setReportedAt(reportedAt time.Time) error {
	if reportedAt.IsZero() {
		return ErrReportedAtIsRequired
	}

	c.reportedAt = reportedAt
	return nil
}
