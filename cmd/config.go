package cmd

import "time"

// Config carries everything the composition root needs to wire the
// application. Values come from the environment; see cmd/app/main.go.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// GeoServiceURL is the base URL of the reverse geocoding service.
	GeoServiceURL string
	// GeoTimeout bounds a single reverse geocoding call during checkout.
	GeoTimeout time.Duration

	// RedisAddr is the location cache address. Empty disables the cache;
	// location reads then always hit the order store.
	RedisAddr string
	// LocationCacheTTL is how long a cached position stays valid.
	LocationCacheTTL time.Duration

	// StaleTrackingThreshold is how long an en-route order may go without
	// a position report before the monitoring job flags it.
	StaleTrackingThreshold time.Duration
}
