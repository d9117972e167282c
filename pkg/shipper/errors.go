package shipper

import (
	"errors"
	"fmt"
)

// ShipperError represents an error from a shipping carrier.
type ShipperError struct {
	Carrier string
	Code    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ShipperError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s error (%s): %s: %v", e.Carrier, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s error (%s): %s", e.Carrier, e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *ShipperError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is for ShipperError.
func (e *ShipperError) Is(target error) bool {
	t, ok := target.(*ShipperError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewShipperError creates a new ShipperError.
func NewShipperError(carrier, code, message string) *ShipperError {
	return &ShipperError{
		Carrier: carrier,
		Code:    code,
		Message: message,
	}
}

// WithCause adds a cause to the error.
func (e *ShipperError) WithCause(err error) *ShipperError {
	e.Cause = err
	return e
}

// Sentinel errors for the quotation outcomes.
var (
	// ErrTransport indicates the carrier could not be reached or answered with a fault.
	ErrTransport = errors.New("carrier transport failure")

	// ErrCarrierReported indicates the carrier answered with an error severity.
	ErrCarrierReported = errors.New("carrier reported error")

	// ErrCurrencyUnavailable indicates rates were returned but none in a currency known to the store.
	ErrCurrencyUnavailable = errors.New("currency unavailable")

	// ErrNoRate indicates the response holds no rate for the requested service.
	ErrNoRate = errors.New("no rate for service")

	// ErrCarrierNotFound indicates the requested carrier is not registered.
	ErrCarrierNotFound = errors.New("carrier not found")
)

// Kind classifies err into a short label for metrics and logs.
func Kind(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrTransport):
		return "transport"
	case errors.Is(err, ErrCarrierReported):
		return "carrier"
	case errors.Is(err, ErrCurrencyUnavailable):
		return "currency"
	case errors.Is(err, ErrNoRate):
		return "no_rate"
	case errors.Is(err, ErrCarrierNotFound):
		return "carrier_not_found"
	default:
		return "unknown"
	}
}
