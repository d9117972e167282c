// Package shipper provides an abstraction layer for shipping carriers.
package shipper

import (
	"context"
)

// Shipper defines the interface that all rating carriers must implement.
type Shipper interface {
	// Name returns the carrier identifier (e.g., "fedex").
	Name() string

	// GetQuote quotes one service code for a shipment.
	// It never fails: problems are reported through QuoteResult.Error.
	GetQuote(ctx context.Context, req *QuoteRequest) *QuoteResult
}
