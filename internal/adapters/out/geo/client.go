// Package geo implements zone resolution against a reverse-geocoding
// HTTP service with a Nominatim-compatible response shape. The resolved
// municipality is the delivery zone used for fee lookup.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"dispatch/internal/core/domain/model/kernel"
)

// Client resolves coordinates to a zone name over HTTP. It implements
// the fee resolver's Geocoder contract.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a geocoding client for the service at baseURL.
// The timeout caps each request end to end; callers usually also pass a
// context with a deadline.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// reverseResponse mirrors the subset of the Nominatim reverse geocoding
// payload the dispatch core cares about. The municipality is the zone;
// sparser address payloads fall back to city, then county.
type reverseResponse struct {
	Address struct {
		Municipality string `json:"municipality"`
		City         string `json:"city"`
		County       string `json:"county"`
	} `json:"address"`
}

// ResolveZone resolves coordinates to a delivery zone name. A location
// the service recognizes but cannot place in any municipality yields
// found=false with a nil error; transport and decoding failures are
// returned as errors.
func (c *Client) ResolveZone(ctx context.Context, point kernel.GeoPoint) (string, bool, error) {
	endpoint := fmt.Sprintf("%s/reverse?format=jsonv2&lat=%s&lon=%s",
		c.baseURL,
		url.QueryEscape(fmt.Sprintf("%f", point.Lat())),
		url.QueryEscape(fmt.Sprintf("%f", point.Lng())),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", false, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", false, fmt.Errorf("geocoding service returned status %d", resp.StatusCode)
	}

	var decoded reverseResponse
	if err = json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", false, err
	}

	zone := decoded.Address.Municipality
	if zone == "" {
		zone = decoded.Address.City
	}
	if zone == "" {
		zone = decoded.Address.County
	}
	if zone == "" {
		return "", false, nil
	}

	return zone, true, nil
}
