package commands

import (
	"context"
)

// SetZoneFeeCommandHandler upserts one row of the zone fee table.
type SetZoneFeeCommandHandler struct {
	uowFactory ZoneFeeUoWFactory
}

// NewSetZoneFeeCommandHandler creates a handler for fee table edits.
func NewSetZoneFeeCommandHandler(uowFactory ZoneFeeUoWFactory) SetZoneFeeCommandHandler {
	return SetZoneFeeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the fee table edit.
func (h SetZoneFeeCommandHandler) Handle(ctx context.Context, cmd SetZoneFeeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ZoneFeeRepository().Upsert(ctx, cmd.Entry()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
