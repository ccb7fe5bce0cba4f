package tracking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

func trackPoint(t *testing.T, lat float64, lng float64) order.TrackPoint {
	t.Helper()

	point, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	tp, err := order.NewTrackPoint(point, time.Now())
	require.NoError(t, err)
	return tp
}

func Test_Feed_DeliversToSubscriber(t *testing.T) {
	feed := NewFeed()
	orderID := kernel.NewUUID()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := feed.Subscribe(ctx, orderID)
	published := trackPoint(t, 23.1136, -82.3666)
	feed.Publish(orderID, published)

	select {
	case got := <-ch:
		equal, err := got.Point().IsEqual(published.Point())
		require.NoError(t, err)
		assert.True(t, equal)
	case <-time.After(time.Second):
		t.Fatal("expected a published point")
	}
}

func Test_Feed_DoesNotCrossOrders(t *testing.T) {
	feed := NewFeed()
	watched := kernel.NewUUID()
	other := kernel.NewUUID()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := feed.Subscribe(ctx, watched)
	feed.Publish(other, trackPoint(t, 23.1136, -82.3666))

	select {
	case <-ch:
		t.Fatal("got a point for an order nobody published to")
	case <-time.After(50 * time.Millisecond):
	}
}

func Test_Feed_SlowSubscriberKeepsLatest(t *testing.T) {
	feed := NewFeed()
	orderID := kernel.NewUUID()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := feed.Subscribe(ctx, orderID)
	feed.Publish(orderID, trackPoint(t, 23.1136, -82.3666))
	latest := trackPoint(t, 23.1200, -82.3600)
	feed.Publish(orderID, latest)

	select {
	case got := <-ch:
		equal, err := got.Point().IsEqual(latest.Point())
		require.NoError(t, err)
		assert.True(t, equal)
	case <-time.After(time.Second):
		t.Fatal("expected the latest point")
	}
}

func Test_Feed_CancelClosesChannel(t *testing.T) {
	feed := NewFeed()
	orderID := kernel.NewUUID()
	ctx, cancel := context.WithCancel(context.Background())

	ch := feed.Subscribe(ctx, orderID)
	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("expected the channel to close on cancel")
	}

	// Publishing after unsubscribe must not panic.
	feed.Publish(orderID, trackPoint(t, 23.1136, -82.3666))
}
