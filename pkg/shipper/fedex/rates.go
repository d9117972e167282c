package fedex

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tournevent/ratequote/pkg/currency"
	"github.com/tournevent/ratequote/pkg/shipper"
)

const severityError = "ERROR"

// RatedAmount is one (currency, amount) pair reported for a service type.
type RatedAmount struct {
	Currency string
	Amount   decimal.Decimal
}

// Rates are the amounts of a reply grouped by service type.
type Rates struct {
	services map[string][]RatedAmount

	// Currencies lists every distinct currency of the reply in encounter order.
	Currencies []string
}

// CurrencyUnavailableError is returned when a service was rated only in
// currencies the store does not know.
type CurrencyUnavailableError struct {
	Currencies []string
}

func (e *CurrencyUnavailableError) Error() string {
	return fmt.Sprintf("%s: %s", shipper.ErrCurrencyUnavailable, strings.Join(e.Currencies, ", "))
}

func (e *CurrencyUnavailableError) Unwrap() error {
	return shipper.ErrCurrencyUnavailable
}

// CollectRates gathers the amounts of every rated shipment detail of reply.
// A currency reported twice for one service keeps its first position and
// its last amount.
func CollectRates(reply *RateReply) Rates {
	rates := Rates{services: make(map[string][]RatedAmount)}
	if reply == nil {
		return rates
	}

	seen := make(map[string]bool)
	for _, detail := range reply.RateReplyDetails {
		amounts := rates.services[detail.ServiceType]
		for _, rated := range detail.RatedShipmentDetails {
			charge := rated.ShipmentRateDetail.TotalNetCharge
			amounts = setAmount(amounts, charge.Currency, charge.Amount)
			if !seen[charge.Currency] {
				seen[charge.Currency] = true
				rates.Currencies = append(rates.Currencies, charge.Currency)
			}
		}
		rates.services[detail.ServiceType] = amounts
	}

	return rates
}

func setAmount(amounts []RatedAmount, code string, amount decimal.Decimal) []RatedAmount {
	for i := range amounts {
		if amounts[i].Currency == code {
			amounts[i].Amount = amount
			return amounts
		}
	}
	return append(amounts, RatedAmount{Currency: code, Amount: amount})
}

// Empty reports whether no service was rated.
func (r Rates) Empty() bool {
	return len(r.services) == 0
}

// Lookup returns the amounts for serviceCode, trying the exact code first
// and then the international ground fallback.
func (r Rates) Lookup(serviceCode string) ([]RatedAmount, bool) {
	if amounts, ok := r.services[serviceCode]; ok {
		return amounts, true
	}
	if alt, ok := internationalGroundFallback(serviceCode); ok {
		if amounts, ok := r.services[alt]; ok {
			return amounts, true
		}
	}
	return nil, false
}

// internationalGroundFallback handles FedEx rating international ground
// requests under the domestic "FEDEX_GROUND" service type.
func internationalGroundFallback(serviceCode string) (string, bool) {
	const intl, domestic = "INTERNATIONAL_", "FEDEX_"
	if !strings.Contains(serviceCode, intl) {
		return "", false
	}
	return strings.ReplaceAll(serviceCode, intl, domestic), true
}

// Resolve returns the cost of serviceCode in the primary currency of table.
//
// It fails with shipper.ErrNoRate when the service was not rated and with
// *CurrencyUnavailableError when none of its currencies is known.
func (r Rates) Resolve(serviceCode string, table currency.Table) (decimal.Decimal, error) {
	amounts, ok := r.Lookup(serviceCode)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", shipper.ErrNoRate, serviceCode)
	}

	for _, rated := range primaryFirst(amounts, table.Primary()) {
		if c, ok := table.Lookup(rated.Currency); ok {
			return currency.Convert(table, c, rated.Amount), nil
		}
	}

	return decimal.Zero, &CurrencyUnavailableError{Currencies: r.Currencies}
}

// primaryFirst moves the primary currency in front, keeping the order of the rest.
func primaryFirst(amounts []RatedAmount, primary string) []RatedAmount {
	out := make([]RatedAmount, 0, len(amounts))
	for _, a := range amounts {
		if strings.EqualFold(a.Currency, primary) {
			out = append(out, a)
		}
	}
	for _, a := range amounts {
		if !strings.EqualFold(a.Currency, primary) {
			out = append(out, a)
		}
	}
	return out
}

// CarrierErrors returns the messages of a reply whose highest severity is ERROR.
func CarrierErrors(reply *RateReply) []string {
	if reply == nil || reply.HighestSeverity != severityError {
		return nil
	}

	var msgs []string
	for _, n := range reply.Notifications {
		msg := n.LocalizedMessage
		if msg == "" {
			msg = n.Message
		}
		if msg != "" {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}
