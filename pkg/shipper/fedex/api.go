package fedex

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"

	"github.com/shopspring/decimal"
	"github.com/tournevent/ratequote/pkg/shipper"
)

// APIClient defines the transport for the FedEx Rate service.
// This abstraction allows for mock implementations during testing
// and the SOAP implementation in production.
type APIClient interface {
	// GetRates sends a RateRequest and returns the carrier's RateReply.
	// Carrier-side errors reported inside a well-formed reply are not
	// returned as error; only transport and protocol faults are.
	GetRates(ctx context.Context, req *RateRequest) (*RateReply, error)
}

// Rate service version spoken by this package.
const (
	rateNamespace = "http://fedex.com/ws/rate/v22"
	serviceID     = "crs"
	majorVersion  = 22
)

// ============================================================================
// Request types (match the FedEx RateService v22 schema)
// ============================================================================

// RateRequest is the outbound rate quotation request.
type RateRequest struct {
	XMLName                 xml.Name `xml:"http://fedex.com/ws/rate/v22 RateRequest" json:"-"`
	WebAuthenticationDetail WebAuthenticationDetail
	ClientDetail            ClientDetail
	TransactionDetail       TransactionDetail
	Version                 VersionID
	RequestedShipment       RequestedShipment
}

// WebAuthenticationDetail carries the developer key credentials.
type WebAuthenticationDetail struct {
	UserCredential UserCredential
}

// UserCredential is a key/password pair.
type UserCredential struct {
	Key      string
	Password string
}

// ClientDetail identifies the FedEx account and meter.
type ClientDetail struct {
	AccountNumber string
	MeterNumber   string
}

// TransactionDetail is echoed back by the carrier.
type TransactionDetail struct {
	CustomerTransactionID string `xml:"CustomerTransactionId" json:"CustomerTransactionId"`
}

// VersionID names the service version the request targets.
type VersionID struct {
	ServiceID    string `xml:"ServiceId" json:"ServiceId"`
	Major        int
	Intermediate int
	Minor        int
}

// RequestedShipment describes the shipment being rated.
type RequestedShipment struct {
	DropoffType            string
	ServiceType            string
	PackagingType          string
	PreferredCurrency      string
	Shipper                Party
	Recipient              Party
	ShippingChargesPayment Payment
	RateRequestTypes       string

	// Standard shipments.
	PackageCount              *int                       `xml:",omitempty" json:",omitempty"`
	RequestedPackageLineItems []RequestedPackageLineItem `xml:",omitempty" json:",omitempty"`

	// Freight shipments.
	LineItems []FreightLineItem `xml:",omitempty" json:",omitempty"`
}

// Party is the shipper or the recipient.
type Party struct {
	Address PartyAddress
}

// PartyAddress is an address in the form FedEx accepts.
type PartyAddress struct {
	StreetLines         string
	City                string
	StateOrProvinceCode string
	PostalCode          string
	CountryCode         string
	Residential         *bool `xml:",omitempty" json:",omitempty"`
}

// Payment describes who pays the shipping charges.
type Payment struct {
	PaymentType string
	Payor       Payor
}

// Payor is the paying party.
type Payor struct {
	ResponsibleParty ResponsibleParty
}

// ResponsibleParty is identified by its account number.
type ResponsibleParty struct {
	AccountNumber string
}

// RequestedPackageLineItem is one package of a standard shipment.
type RequestedPackageLineItem struct {
	SequenceNumber    int
	GroupPackageCount int
	Weight            Weight
	Dimensions        Dimensions
}

// FreightLineItem is one package of a freight shipment.
type FreightLineItem struct {
	FreightClass string
	Weight       Weight
	Dimensions   Dimensions
}

// Weight is a package weight.
type Weight struct {
	Units string
	Value float64
}

// Dimensions are package dimensions.
type Dimensions struct {
	Length float64
	Width  float64
	Height float64
	Units  string
}

// ============================================================================
// Reply types
// ============================================================================

// RateReply is the carrier's answer to a RateRequest.
type RateReply struct {
	HighestSeverity  string
	Notifications    OneOrMany[Notification]
	RateReplyDetails OneOrMany[RateReplyDetail]
}

// Notification is a message attached to a reply.
type Notification struct {
	Severity         string
	Source           string
	Code             string
	Message          string
	LocalizedMessage string
}

// RateReplyDetail holds the rates of one service type.
type RateReplyDetail struct {
	ServiceType          string
	RatedShipmentDetails OneOrMany[RatedShipmentDetail]
}

// RatedShipmentDetail is one rating variant, typically one per currency.
type RatedShipmentDetail struct {
	ShipmentRateDetail ShipmentRateDetail
}

// ShipmentRateDetail carries the totals of a variant.
type ShipmentRateDetail struct {
	RateType       string
	TotalNetCharge Money
}

// Money is an amount in a currency.
type Money struct {
	Currency string
	Amount   decimal.Decimal
}

// OneOrMany holds a reply node that the carrier sends either as a single
// object or as a list. XML decoding appends repeated elements natively;
// JSON decoding accepts both shapes.
type OneOrMany[T any] []T

// UnmarshalJSON implements json.Unmarshaler.
func (m *OneOrMany[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*m = nil
		return nil
	case data[0] == '[':
		var many []T
		if err := json.Unmarshal(data, &many); err != nil {
			return err
		}
		*m = many
		return nil
	default:
		var one T
		if err := json.Unmarshal(data, &one); err != nil {
			return err
		}
		*m = OneOrMany[T]{one}
		return nil
	}
}

// APIError represents a protocol-level error from the FedEx API,
// such as a SOAP fault or an unparseable reply.
type APIError struct {
	Code        string
	Description string
}

func (e *APIError) Error() string {
	return e.Code + ": " + e.Description
}

// Unwrap classifies every APIError as a transport failure.
func (e *APIError) Unwrap() error {
	return shipper.ErrTransport
}
