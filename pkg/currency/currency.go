// Package currency exposes the store's currency table as a read-only lookup.
package currency

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency is one store currency. Coefficient is the value of one unit
// expressed in the primary currency, so the primary currency has 1.
type Currency struct {
	Code        string
	Coefficient decimal.Decimal
}

// Table is the store currency table.
type Table interface {
	// Lookup returns the currency with the given code, if the store knows it.
	Lookup(code string) (Currency, bool)

	// Primary returns the code of the store's primary currency.
	Primary() string
}

// Static is an immutable in-memory Table.
type Static struct {
	primary    string
	currencies map[string]Currency
}

// NewStatic builds a table from currency coefficients.
// The primary currency does not have to be listed.
func NewStatic(primary string, coefficients map[string]decimal.Decimal) *Static {
	t := &Static{
		primary:    strings.ToUpper(primary),
		currencies: make(map[string]Currency, len(coefficients)),
	}
	for code, coef := range coefficients {
		code = strings.ToUpper(code)
		t.currencies[code] = Currency{Code: code, Coefficient: coef}
	}
	return t
}

// ParseCoefficients converts "CODE" -> "decimal" pairs (as read from the
// environment) into coefficients.
func ParseCoefficients(raw map[string]string) (map[string]decimal.Decimal, error) {
	out := make(map[string]decimal.Decimal, len(raw))
	for code, value := range raw {
		coef, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("currency %s: invalid coefficient %q: %w", code, value, err)
		}
		if !coef.IsPositive() {
			return nil, fmt.Errorf("currency %s: coefficient must be positive, got %s", code, value)
		}
		out[strings.ToUpper(strings.TrimSpace(code))] = coef
	}
	return out, nil
}

// Lookup implements Table.
func (t *Static) Lookup(code string) (Currency, bool) {
	c, ok := t.currencies[strings.ToUpper(code)]
	return c, ok
}

// Primary implements Table.
func (t *Static) Primary() string {
	return t.primary
}

// Codes returns the known currency codes in alphabetical order.
func (t *Static) Codes() []string {
	codes := make([]string, 0, len(t.currencies))
	for code := range t.currencies {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// PrimaryCoefficient returns the coefficient of the primary currency.
// A store whose table omits its own primary currency is treated as having
// coefficient 1 for it.
func PrimaryCoefficient(t Table) decimal.Decimal {
	if c, ok := t.Lookup(t.Primary()); ok && c.Coefficient.IsPositive() {
		return c.Coefficient
	}
	return decimal.NewFromInt(1)
}

// Convert expresses amount, given in currency c, in the primary currency of t.
func Convert(t Table, c Currency, amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(c.Coefficient).Div(PrimaryCoefficient(t))
}

var _ Table = (*Static)(nil)
