package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/locks"
)

// MarkPaidCommandHandler settles the payment of a delivered order.
// Returns order.ErrNotDelivered wrapped when the order has not been
// handed over yet; settling an already paid order is a no-op.
type MarkPaidCommandHandler struct {
	uowFactory OrderUoWFactory
	orderLocks *locks.KeyedMutex
}

// NewMarkPaidCommandHandler creates a handler for payment settlement.
func NewMarkPaidCommandHandler(uowFactory OrderUoWFactory, orderLocks *locks.KeyedMutex) MarkPaidCommandHandler {
	return MarkPaidCommandHandler{
		uowFactory: uowFactory,
		orderLocks: orderLocks,
	}
}

// Handle processes the settlement command and returns the updated order.
func (h MarkPaidCommandHandler) Handle(ctx context.Context, cmd MarkPaidCommand) (*order.Order, error) {
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

	if err = aggregate.MarkPaid(); err != nil {
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
