package commands

import (
	"context"

	"dispatch/internal/core/application/tracking"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/locks"
)

// ReportLocationCommandHandler applies one courier position sample to an
// order. An accepted sample is committed, published to the live tracking
// feed, and written to the location cache; a stale sample is dropped
// without error so the courier's device never sees a failure for an
// ordinary out-of-order fix.
//
// The feed publish and the cache write happen only after commit, so
// watchers never observe a position that storage later rolled back.
type ReportLocationCommandHandler struct {
	uowFactory OrderUoWFactory
	orderLocks *locks.KeyedMutex
	feed       *tracking.Feed
	cache      ports.LocationCache
}

// NewReportLocationCommandHandler creates a handler for courier position
// reports. The cache may be nil when no fast projection is deployed.
func NewReportLocationCommandHandler(
	uowFactory OrderUoWFactory,
	orderLocks *locks.KeyedMutex,
	feed *tracking.Feed,
	cache ports.LocationCache,
) ReportLocationCommandHandler {
	return ReportLocationCommandHandler{
		uowFactory: uowFactory,
		orderLocks: orderLocks,
		feed:       feed,
		cache:      cache,
	}
}

// Handle processes one position sample. Returns accepted=false with a nil
// error when the sample is stale. Returns order.ErrInvalidState wrapped
// when the order is not being delivered, and order.ErrNotAssigned wrapped
// when the reporting courier is not the one in charge.
func (h ReportLocationCommandHandler) Handle(ctx context.Context, cmd ReportLocationCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	point, err := order.NewTrackPoint(cmd.Point(), cmd.ReportedAt())
	if err != nil {
		return false, err
	}

	h.orderLocks.Lock(cmd.OrderID().String())
	defer h.orderLocks.Unlock(cmd.OrderID().String())

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return false, err
	}

	accepted, err := aggregate.ReportLocation(cmd.CourierID(), point)
	if err != nil {
		return false, err
	}
	if !accepted {
		return false, nil
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	h.feed.Publish(cmd.OrderID(), point)
	if h.cache != nil {
		// Best effort: the committed order row stays authoritative and
		// readers fall back to it on a miss.
		_ = h.cache.Put(ctx, cmd.OrderID(), cmd.Point(), cmd.ReportedAt())
	}

	return true, nil
}
