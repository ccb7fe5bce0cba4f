package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/pricing"
	"dispatch/internal/pkg/guard"
)

var ErrSetZoneFeeCommandIsNotConstructed = errors.New(
	"SetZoneFeeCommand must be created via NewSetZoneFeeCommand constructor",
)

// SetZoneFeeCommand represents an administrator creating or updating one
// zone's delivery fee. A fee change applies to future checkouts only;
// already placed orders keep their frozen fee.
type SetZoneFeeCommand struct { //nolint:recvcheck //using for validation
	entry pricing.ZoneFee

	guard guard.ConstructorGuard
}

// NewSetZoneFeeCommand creates a fee table edit command. Returns an error
// if the zone name is blank or the fee is negative.
func NewSetZoneFeeCommand(zone string, fee float64) (SetZoneFeeCommand, error) {
	entry, err := pricing.NewZoneFee(zone, fee)
	if err != nil {
		return SetZoneFeeCommand{}, err
	}

	return SetZoneFeeCommand{
		entry: entry,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetZoneFeeCommand) Validate() error {
	return c.guard.Validate(ErrSetZoneFeeCommandIsNotConstructed)
}

// Entry returns the zone fee row to upsert.
func (c SetZoneFeeCommand) Entry() pricing.ZoneFee {
	return c.entry
}
