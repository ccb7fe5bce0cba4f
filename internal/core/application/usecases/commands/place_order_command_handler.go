package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
)

// PlaceOrderCommandHandler handles the business logic for checkout. It
// prices the destination through the fee resolver, then persists the new
// order in a transaction. When the destination cannot be priced the
// checkout is refused and nothing is written: the handler returns
// services.ErrFeeUnavailable and the caller tells the customer the
// address is outside the delivery area.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, feeResolver, 3*time.Second)
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
//	fmt.Printf("order %s placed, total %.2f", placed.ID(), placed.Total())
type PlaceOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	feeResolver services.FeeResolver
	geoTimeout  time.Duration
}

// NewPlaceOrderCommandHandler creates a handler for checkout operations.
// geoTimeout bounds the geocoder call so a stalled geocoding service
// turns into a refused checkout instead of a hung request.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	feeResolver services.FeeResolver,
	geoTimeout time.Duration,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory:  uowFactory,
		feeResolver: feeResolver,
		geoTimeout:  geoTimeout,
	}
}

// Handle processes the checkout command and returns the placed order.
// The fee is resolved before the transaction opens: a refused checkout
// never touches storage.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	geoCtx, cancel := context.WithTimeout(ctx, h.geoTimeout)
	defer cancel()

	resolved, err := h.feeResolver.Resolve(geoCtx, cmd.Destination())
	if err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.CustomerName(),
		cmd.CustomerPhone(),
		cmd.Items(),
		cmd.Destination(),
		resolved.Zone,
		resolved.Fee,
		cmd.PaymentMethod(),
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}
