// Package redis implements the location cache over Redis. The cache holds
// the latest accepted courier position per order so tracking screens can
// poll without hitting the order store; entries expire on their own once
// reports stop arriving.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"dispatch/internal/core/domain/model/kernel"
)

// DefaultTTL is how long a cached position outlives its last refresh.
// Chosen to comfortably cover the report interval of a live delivery;
// once a delivery ends the entry simply ages out.
const DefaultTTL = 5 * time.Minute

type cachedLocation struct {
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	ReportedAt time.Time `json:"reported_at"`
}

// LocationCache implements ports.LocationCache over one Redis client.
type LocationCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLocationCache creates a cache over the Redis instance at addr.
func NewLocationCache(addr string, ttl time.Duration) *LocationCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &LocationCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

// Put records the latest accepted point for an order.
func (c *LocationCache) Put(ctx context.Context, orderID kernel.UUID, point kernel.GeoPoint, reportedAt time.Time) error {
	payload, err := json.Marshal(cachedLocation{
		Lat:        point.Lat(),
		Lng:        point.Lng(),
		ReportedAt: reportedAt,
	})
	if err != nil {
		return err
	}

	return c.client.Set(ctx, locationKey(orderID), payload, c.ttl).Err()
}

// Get returns the cached point for an order, or found=false on a miss.
func (c *LocationCache) Get(ctx context.Context, orderID kernel.UUID) (kernel.GeoPoint, time.Time, bool, error) {
	raw, err := c.client.Get(ctx, locationKey(orderID)).Result()
	if errors.Is(err, redis.Nil) {
		return kernel.GeoPoint{}, time.Time{}, false, nil
	}
	if err != nil {
		return kernel.GeoPoint{}, time.Time{}, false, err
	}

	var cached cachedLocation
	if err = json.Unmarshal([]byte(raw), &cached); err != nil {
		return kernel.GeoPoint{}, time.Time{}, false, err
	}

	point, err := kernel.NewGeoPoint(cached.Lat, cached.Lng)
	if err != nil {
		return kernel.GeoPoint{}, time.Time{}, false, err
	}

	return point, cached.ReportedAt, true, nil
}

// Close releases the underlying Redis connection.
func (c *LocationCache) Close() error {
	return c.client.Close()
}

func locationKey(orderID kernel.UUID) string {
	return fmt.Sprintf("dispatch:location:%s", orderID)
}
