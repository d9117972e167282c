package shipper

import (
	"strings"
)

// Message keys understood by the default catalog.
const (
	MsgCurrencyIsMissing = "shippings.fedex.currency_is_missing"
)

// Localizer turns a message key and its parameters into user-facing text.
type Localizer interface {
	Translate(key string, params map[string]string) string
}

// Messages is a single-language catalog. Placeholders in a template are
// written as the parameter name itself, e.g. "[currency]".
type Messages map[string]string

// DefaultMessages is the English catalog.
var DefaultMessages = Messages{
	MsgCurrencyIsMissing: "The shipping rate could not be calculated: none of the currencies returned by the carrier ([currency]) is available in the store.",
}

// Translate implements Localizer. Unknown keys are returned as is.
func (m Messages) Translate(key string, params map[string]string) string {
	tmpl, ok := m[key]
	if !ok {
		return key
	}
	if len(params) == 0 {
		return tmpl
	}

	pairs := make([]string, 0, len(params)*2)
	for k, v := range params {
		pairs = append(pairs, k, v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
