package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrFinishDeliveryCommandIsNotConstructed = errors.New(
	"FinishDeliveryCommand must be created via NewFinishDeliveryCommand constructor",
)

// FinishDeliveryCommand represents the assigned courier confirming the
// hand-over of an order to the customer.
type FinishDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewFinishDeliveryCommand creates a finish-delivery command. Returns an
// error if either id is invalid.
func NewFinishDeliveryCommand(orderID kernel.UUID, courierID kernel.UUID) (FinishDeliveryCommand, error) {
	cmd := FinishDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCourierID(courierID),
	); err != nil {
		return FinishDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FinishDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrFinishDeliveryCommandIsNotConstructed)
}

// OrderID returns the order being handed over.
func (c FinishDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the courier confirming the hand-over.
func (c FinishDeliveryCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *FinishDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *FinishDeliveryCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
