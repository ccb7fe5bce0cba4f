package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/locks"
)

// AssignCourierCommandHandler puts a courier in charge of an order. The
// aggregate decides whether the order's current status admits an
// assignment; the handler only supplies the transaction and the per-order
// serialization.
type AssignCourierCommandHandler struct {
	uowFactory OrderUoWFactory
	orderLocks *locks.KeyedMutex
}

// NewAssignCourierCommandHandler creates a handler for courier assignment.
func NewAssignCourierCommandHandler(uowFactory OrderUoWFactory, orderLocks *locks.KeyedMutex) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
		orderLocks: orderLocks,
	}
}

// Handle processes the assignment command and returns the updated order.
// Returns order.ErrInvalidState wrapped when the order is already
// delivered or cancelled.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	h.orderLocks.Lock(cmd.OrderID().String())
	defer h.orderLocks.Unlock(cmd.OrderID().String())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Assign(cmd.CourierID()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
