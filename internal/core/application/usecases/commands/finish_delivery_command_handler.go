package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/locks"
)

// FinishDeliveryCommandHandler moves an EnRoute order to Delivered. Once
// committed the order is terminal and further transitions are refused by
// the aggregate.
type FinishDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	orderLocks *locks.KeyedMutex
}

// NewFinishDeliveryCommandHandler creates a handler for delivery hand-overs.
func NewFinishDeliveryCommandHandler(uowFactory OrderUoWFactory, orderLocks *locks.KeyedMutex) FinishDeliveryCommandHandler {
	return FinishDeliveryCommandHandler{
		uowFactory: uowFactory,
		orderLocks: orderLocks,
	}
}

// Handle processes the finish-delivery command and returns the updated order.
func (h FinishDeliveryCommandHandler) Handle(ctx context.Context, cmd FinishDeliveryCommand) (*order.Order, error) {
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

	if err = aggregate.FinishDelivery(cmd.CourierID()); err != nil {
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
