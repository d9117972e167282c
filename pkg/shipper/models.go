package shipper

import (
	"github.com/shopspring/decimal"
)

// AddressType values recognised on destination addresses.
const (
	AddressResidential = "residential"
	AddressCommercial  = "commercial"
)

// Address represents a shipping address as stored by the merchant.
// Every field may be empty; carriers fill in their own defaults.
type Address struct {
	Street      string `json:"address" mapstructure:"address"`
	City        string `json:"city" mapstructure:"city"`
	State       string `json:"state" mapstructure:"state"`
	PostalCode  string `json:"zipcode" mapstructure:"zipcode"`
	Country     string `json:"country" mapstructure:"country"` // ISO 3166-1 alpha-2
	Name        string `json:"name" mapstructure:"name"`
	AddressType string `json:"address_type,omitempty" mapstructure:"address_type"`
}

// Dimensions holds box dimensions in inches. Zero means unknown.
type Dimensions struct {
	Length float64 `json:"length" mapstructure:"length"`
	Width  float64 `json:"width" mapstructure:"width"`
	Height float64 `json:"height" mapstructure:"height"`
}

// Package is one explicit package of a shipment.
type Package struct {
	// Weight is expressed in the store weight unit.
	Weight float64    `json:"weight" mapstructure:"weight"`
	Cost   float64    `json:"cost" mapstructure:"cost"`
	Box    Dimensions `json:"shipping_params" mapstructure:"shipping_params"`
}

// PackageInfo describes what is being shipped and where.
//
// When Packages is empty the shipment is a single aggregate package made of
// Weight and Cost, boxed with the shipment-level default dimensions.
type PackageInfo struct {
	Origination Address   `json:"origination" mapstructure:"origination"`
	Location    Address   `json:"location" mapstructure:"location"`
	Weight      float64   `json:"W" mapstructure:"W"`
	Cost        float64   `json:"C" mapstructure:"C"`
	Packages    []Package `json:"packages,omitempty" mapstructure:"packages"`
}

// IsAggregate reports whether the shipment uses the single aggregate package form.
func (p PackageInfo) IsAggregate() bool {
	return len(p.Packages) == 0
}

// QuoteRequest is the carrier-neutral request for one service code.
type QuoteRequest struct {
	ServiceCode string      `json:"service_code" mapstructure:"service_code"`
	Package     PackageInfo `json:"package" mapstructure:"package"`
	// Box overrides the carrier's configured default box dimensions when non-zero.
	Box Dimensions `json:"box" mapstructure:"box"`
}

// QuoteResult is the outcome of a single quotation.
// Exactly one of Cost and Error is meaningful.
type QuoteResult struct {
	Cost         *decimal.Decimal `json:"cost,omitempty"`
	Error        string           `json:"error,omitempty"`
	DeliveryTime string           `json:"delivery_time,omitempty"`
}

// OK reports whether the quotation produced a cost.
func (r *QuoteResult) OK() bool {
	return r != nil && r.Cost != nil
}
