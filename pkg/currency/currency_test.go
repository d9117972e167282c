package currency_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/ratequote/pkg/currency"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestStatic_Lookup(t *testing.T) {
	table := currency.NewStatic("usd", map[string]decimal.Decimal{
		"USD": dec("1"),
		"cad": dec("0.74"),
	})

	assert.Equal(t, "USD", table.Primary())

	cad, ok := table.Lookup("CAD")
	require.True(t, ok)
	assert.True(t, cad.Coefficient.Equal(dec("0.74")))

	_, ok = table.Lookup("EUR")
	assert.False(t, ok)

	assert.Equal(t, []string{"CAD", "USD"}, table.Codes())
}

func TestConvert(t *testing.T) {
	table := currency.NewStatic("EUR", map[string]decimal.Decimal{
		"EUR": dec("2"),
		"USD": dec("1"),
	})
	usd, _ := table.Lookup("USD")

	got := currency.Convert(table, usd, dec("10"))
	assert.True(t, got.Equal(dec("5")), "got %s", got)
}

func TestConvert_PrimaryMissingFromTable(t *testing.T) {
	table := currency.NewStatic("USD", map[string]decimal.Decimal{
		"CAD": dec("0.74"),
	})
	cad, _ := table.Lookup("CAD")

	got := currency.Convert(table, cad, dec("13.00"))
	assert.True(t, got.Equal(dec("9.62")), "got %s", got)
}

func TestParseCoefficients(t *testing.T) {
	got, err := currency.ParseCoefficients(map[string]string{"usd": "1", "CAD": " 0.74 "})
	require.NoError(t, err)
	assert.True(t, got["USD"].Equal(dec("1")))
	assert.True(t, got["CAD"].Equal(dec("0.74")))
}

func TestParseCoefficients_Invalid(t *testing.T) {
	_, err := currency.ParseCoefficients(map[string]string{"USD": "one"})
	assert.Error(t, err)

	_, err = currency.ParseCoefficients(map[string]string{"USD": "0"})
	assert.Error(t, err)
}
