package fedex

import (
	"regexp"
	"strings"
)

// wordChar matches a single Unicode word character.
var wordChar = regexp.MustCompile(`[\p{L}\p{M}\p{Nd}\p{Pc}]`)

// FormatPostalCode strips everything but word characters from a postal code,
// so "A1B 2C3" becomes "A1B2C3".
func FormatPostalCode(code string) string {
	return strings.Join(wordChar.FindAllString(code, -1), "")
}
