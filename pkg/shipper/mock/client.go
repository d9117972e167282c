// Package mock provides a mock shipper implementation for testing.
package mock

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/tournevent/ratequote/pkg/shipper"
)

// Client is a mock shipper for testing.
type Client struct {
	name string

	// Rates maps service codes to the cost returned for them.
	// Codes missing from the map get a "no rate" error.
	Rates map[string]decimal.Decimal

	mu    sync.Mutex
	calls []string
}

// New creates a new mock shipper.
func New(name string) *Client {
	return &Client{
		name:  name,
		Rates: map[string]decimal.Decimal{},
	}
}

// WithRate sets the cost returned for code.
func (c *Client) WithRate(code, amount string) *Client {
	c.Rates[code] = decimal.RequireFromString(amount)
	return c
}

// Name returns the carrier name.
func (c *Client) Name() string {
	return c.name
}

// GetQuote returns the configured rate for the requested service code.
func (c *Client) GetQuote(ctx context.Context, req *shipper.QuoteRequest) *shipper.QuoteResult {
	c.mu.Lock()
	c.calls = append(c.calls, req.ServiceCode)
	c.mu.Unlock()

	amount, ok := c.Rates[req.ServiceCode]
	if !ok {
		return &shipper.QuoteResult{Error: shipper.ErrNoRate.Error() + ": " + req.ServiceCode}
	}
	return &shipper.QuoteResult{Cost: &amount}
}

// Calls returns the service codes quoted so far.
func (c *Client) Calls() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.calls...)
}

var _ shipper.Shipper = (*Client)(nil)
