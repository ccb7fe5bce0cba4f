// Package tracking provides the in-process live-location feed. A courier's
// accepted position reports are fanned out to whoever is watching that
// order: the customer's tracking screen and the administrator live map.
//
// The feed is a subscription, not a blocking call: a watcher subscribes,
// receives zero or more updates, and terminates by cancelling its context.
// Publishing never blocks on a slow consumer — a subscriber that cannot
// keep up misses intermediate points and only ever lags, it does not stall
// the courier's report path.
package tracking

import (
	"context"
	"sync"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// subscriberBuffer is the per-subscriber channel capacity. One pending
// point is enough: a tracking screen only wants the latest position.
const subscriberBuffer = 1

// Feed fans courier track points out to per-order subscribers.
// The zero value is not usable; create with NewFeed.
type Feed struct {
	mu   sync.RWMutex
	subs map[string]map[chan order.TrackPoint]struct{}
}

// NewFeed creates an empty feed.
func NewFeed() *Feed {
	return &Feed{
		subs: make(map[string]map[chan order.TrackPoint]struct{}),
	}
}

// Subscribe registers a watcher for one order's position updates. The
// returned channel yields points until ctx is cancelled, then closes.
// Points published before Subscribe are not replayed; use the location
// query for the current point and the subscription for what follows.
func (f *Feed) Subscribe(ctx context.Context, orderID kernel.UUID) <-chan order.TrackPoint {
	ch := make(chan order.TrackPoint, subscriberBuffer)
	key := orderID.String()

	f.mu.Lock()
	set, ok := f.subs[key]
	if !ok {
		set = make(map[chan order.TrackPoint]struct{})
		f.subs[key] = set
	}
	set[ch] = struct{}{}
	f.mu.Unlock()

	go func() {
		<-ctx.Done()

		f.mu.Lock()
		if set, ok := f.subs[key]; ok {
			delete(set, ch)
			if len(set) == 0 {
				delete(f.subs, key)
			}
		}
		f.mu.Unlock()

		close(ch)
	}()

	return ch
}

// Publish delivers a point to every subscriber of the order. A subscriber
// whose buffer is full has its pending point replaced by the newer one.
func (f *Feed) Publish(orderID kernel.UUID, point order.TrackPoint) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for ch := range f.subs[orderID.String()] {
		select {
		case ch <- point:
		default:
			// Drain the stale pending point, then offer the fresh one.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- point:
			default:
			}
		}
	}
}
