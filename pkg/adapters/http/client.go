package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/dhwrwm/intergalactic-booking-wizard/pkg/domain"
	"github.com/dhwrwm/intergalactic-booking-wizard/pkg/ports"
)

// Client talks to a remote instance of this API. It implements both the
// catalog and booking ports, which is how a wizard host reaches its
// external collaborators over HTTP.
type Client struct {
	baseURL string
	hc      *http.Client

	mu     sync.Mutex
	cached []domain.Destination
}

// Compile-time port checks.
var (
	_ ports.DestinationCatalog = (*Client)(nil)
	_ ports.BookingService     = (*Client)(nil)
)

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.hc = hc
		}
	}
}

// NewClient creates a client for the API at baseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List fetches the destination catalog. The catalog is reference data, so
// the first successful fetch is cached for the client's lifetime.
func (c *Client) List(ctx context.Context) ([]domain.Destination, error) {
	c.mu.Lock()
	if c.cached != nil {
		out := make([]domain.Destination, len(c.cached))
		copy(out, c.cached)
		c.mu.Unlock()
		return out, nil
	}
	c.mu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/destinations", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch destinations: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch destinations: status %d", resp.StatusCode)
	}

	var destinations []domain.Destination
	if err := json.NewDecoder(resp.Body).Decode(&destinations); err != nil {
		return nil, fmt.Errorf("failed to decode destinations: %w", err)
	}

	c.mu.Lock()
	c.cached = destinations
	c.mu.Unlock()

	out := make([]domain.Destination, len(destinations))
	copy(out, destinations)
	return out, nil
}

// Get resolves one destination from the cached catalog.
func (c *Client) Get(ctx context.Context, id domain.DestinationID) (domain.Destination, error) {
	destinations, err := c.List(ctx)
	if err != nil {
		return domain.Destination{}, err
	}
	for _, d := range destinations {
		if d.ID == id {
			return d, nil
		}
	}
	return domain.Destination{}, domain.ErrDestinationNotFound
}

// Book submits a booking request. A 400 with a parseable body is a normal
// rejection (Success=false), not an error; anything else unexpected is a
// transport failure.
func (c *Client) Book(ctx context.Context, breq domain.BookingRequest) (domain.BookingResponse, error) {
	body, err := json.Marshal(breq)
	if err != nil {
		return domain.BookingResponse{}, fmt.Errorf("failed to marshal booking request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/bookings", bytes.NewReader(body))
	if err != nil {
		return domain.BookingResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return domain.BookingResponse{}, fmt.Errorf("booking request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusBadRequest {
		return domain.BookingResponse{}, fmt.Errorf("booking request failed: status %d", resp.StatusCode)
	}

	var out domain.BookingResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return domain.BookingResponse{}, fmt.Errorf("failed to decode booking response: %w", err)
	}
	return out, nil
}
