package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"traveldesk-admin/internal/domain/entity"
	"traveldesk-admin/internal/domain/repository"
	"traveldesk-admin/pkg/logger"

	"golang.org/x/oauth2/clientcredentials"
)

// Client talks to the core platform REST API. Requests are authenticated
// with OAuth2 client credentials; the token is refreshed transparently by
// the underlying http client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger
}

// NewClient creates a new platform API client
func NewClient(ctx context.Context, baseURL, tokenURL, clientID, clientSecret string, logger logger.Logger) repository.PlatformAPI {
	httpClient := &http.Client{Timeout: 15 * time.Second}

	if clientID != "" && clientSecret != "" {
		cfg := &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenURL,
		}
		httpClient = cfg.Client(ctx)
		httpClient.Timeout = 15 * time.Second
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// UpdateBookingStatus patches a booking's status through the platform API
func (c *Client) UpdateBookingStatus(ctx context.Context, bookingID, status string) error {
	body, _ := json.Marshal(map[string]string{"status": status})
	path := fmt.Sprintf("/api/v1/booking/update-status/%s", url.PathEscape(bookingID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("platform api returned %d for booking %s", resp.StatusCode, bookingID)
	}
	return nil
}

// Hotels fetches the hotel catalog
func (c *Client) Hotels(ctx context.Context) ([]entity.Hotel, error) {
	var payload struct {
		Hotels []entity.Hotel `json:"hotels"`
	}
	if err := c.getJSON(ctx, "/api/v1/admin/hotels", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Hotels, nil
}

// Vehicles fetches the vehicle catalog for one transport type
func (c *Client) Vehicles(ctx context.Context, vehicleType string) ([]entity.Vehicle, error) {
	var payload struct {
		Vehicles []entity.Vehicle `json:"vehicles"`
	}
	params := url.Values{"type": []string{vehicleType}}
	if err := c.getJSON(ctx, "/api/v1/admin/vehicles", params, &payload); err != nil {
		return nil, err
	}
	return payload.Vehicles, nil
}

// Packages fetches the tour package catalog
func (c *Client) Packages(ctx context.Context) ([]entity.Package, error) {
	var payload struct {
		Packages []entity.Package `json:"packages"`
	}
	if err := c.getJSON(ctx, "/api/v1/admin/packages", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Packages, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("platform api returned %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}
