package fedex

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MockAPIClient is a mock implementation of APIClient for testing.
type MockAPIClient struct {
	SimulateErrors  bool
	SimulateLatency time.Duration

	OnGetRates func(ctx context.Context, req *RateRequest) (*RateReply, error)
}

// NewMockAPIClient creates a new mock API client with default behavior.
func NewMockAPIClient() *MockAPIClient {
	return &MockAPIClient{}
}

// GetRates returns a successful reply rating the requested service in USD
// and CAD. The amounts depend only on the request, so repeated calls agree.
func (m *MockAPIClient) GetRates(ctx context.Context, req *RateRequest) (*RateReply, error) {
	if m.SimulateLatency > 0 {
		select {
		case <-time.After(m.SimulateLatency):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if m.SimulateErrors {
		return nil, &APIError{Code: "MOCK_ERROR", Description: "Simulated API error"}
	}

	if m.OnGetRates != nil {
		return m.OnGetRates(ctx, req)
	}

	var pounds float64
	for _, item := range req.RequestedShipment.RequestedPackageLineItems {
		pounds += item.Weight.Value
	}
	for _, item := range req.RequestedShipment.LineItems {
		pounds += item.Weight.Value
	}

	usd := decimal.NewFromFloat(9.95).Add(decimal.NewFromFloat(pounds).Mul(decimal.NewFromFloat(1.25))).Round(2)
	cad := usd.Mul(decimal.NewFromFloat(1.35)).Round(2)

	return &RateReply{
		HighestSeverity: "SUCCESS",
		Notifications: OneOrMany[Notification]{
			{Severity: "SUCCESS", Source: "crs", Code: "0", Message: "Request was successfully processed."},
		},
		RateReplyDetails: OneOrMany[RateReplyDetail]{
			{
				ServiceType: req.RequestedShipment.ServiceType,
				RatedShipmentDetails: OneOrMany[RatedShipmentDetail]{
					{ShipmentRateDetail: ShipmentRateDetail{
						RateType:       "PAYOR_ACCOUNT_PACKAGE",
						TotalNetCharge: Money{Currency: "USD", Amount: usd},
					}},
					{ShipmentRateDetail: ShipmentRateDetail{
						RateType:       "PREFERRED_ACCOUNT_PACKAGE",
						TotalNetCharge: Money{Currency: "CAD", Amount: cad},
					}},
				},
			},
		},
	}, nil
}

var _ APIClient = (*MockAPIClient)(nil)
