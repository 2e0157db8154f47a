// Package geoip resolves an IP address to a country name through an
// ipapi.co-compatible HTTP endpoint.
package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Resolver maps an IP address to a country name. Implementations return an
// error (or an empty string) when the lookup fails; callers decide the
// fallback.
type Resolver interface {
	Country(ctx context.Context, ip string) (string, error)
}

// Client queries `GET <base>/<ip>/json/` and reads the country_name field.
type Client struct {
	base string
	http *http.Client
}

// NewClient creates a Client for the given API base URL, e.g.
// "https://ipapi.co".
func NewClient(base string) *Client {
	return &Client{
		base: strings.TrimSuffix(strings.TrimSpace(base), "/"),
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Country(ctx context.Context, ip string) (string, error) {
	endpoint := c.base + "/" + url.PathEscape(strings.TrimSpace(ip)) + "/json/"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geoip lookup: HTTP %d", resp.StatusCode)
	}

	var body struct {
		CountryName string `json:"country_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	return strings.TrimSpace(body.CountryName), nil
}
