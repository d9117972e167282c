package shipper_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tournevent/ratequote/pkg/shipper"
)

func TestShipperError_Error(t *testing.T) {
	err := shipper.NewShipperError("fedex", "SOAP_FAULT", "Authentication failed")
	assert.Equal(t, "fedex error (SOAP_FAULT): Authentication failed", err.Error())
}

func TestShipperError_ErrorWithCause(t *testing.T) {
	cause := errors.New("network timeout")
	err := shipper.NewShipperError("fedex", "API_ERROR", "API call failed").WithCause(cause)
	assert.Contains(t, err.Error(), "API call failed")
	assert.Contains(t, err.Error(), "network timeout")
}

func TestShipperError_Unwrap(t *testing.T) {
	err := shipper.NewShipperError("fedex", "API_ERROR", "API call failed").WithCause(shipper.ErrTransport)
	assert.True(t, errors.Is(err, shipper.ErrTransport))
}

func TestShipperError_Is(t *testing.T) {
	err1 := shipper.NewShipperError("fedex", "INVALID_ADDRESS", "Invalid postal code")
	err2 := shipper.NewShipperError("other", "INVALID_ADDRESS", "Different message")
	err3 := shipper.NewShipperError("fedex", "DIFFERENT_CODE", "Different error")

	assert.True(t, errors.Is(err1, err2))
	assert.False(t, errors.Is(err1, err3))
}

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "none"},
		{"transport", fmt.Errorf("dial: %w", shipper.ErrTransport), "transport"},
		{"carrier", shipper.ErrCarrierReported, "carrier"},
		{"currency", fmt.Errorf("x: %w", shipper.ErrCurrencyUnavailable), "currency"},
		{"no rate", shipper.ErrNoRate, "no_rate"},
		{"carrier not found", shipper.ErrCarrierNotFound, "carrier_not_found"},
		{"other", errors.New("boom"), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shipper.Kind(tt.err))
		})
	}
}

func TestMessages_Translate(t *testing.T) {
	msg := shipper.DefaultMessages.Translate(shipper.MsgCurrencyIsMissing, map[string]string{
		"[currency]": "USD, CAD",
	})
	assert.Contains(t, msg, "(USD, CAD)")
	assert.NotContains(t, msg, "[currency]")
}

func TestMessages_TranslateUnknownKey(t *testing.T) {
	assert.Equal(t, "unknown.key", shipper.DefaultMessages.Translate("unknown.key", nil))
}
