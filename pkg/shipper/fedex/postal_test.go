package fedex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tournevent/ratequote/pkg/shipper/fedex"
)

func TestFormatPostalCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"A1B 2C3", "A1B2C3"},
		{"90210-1234", "902101234"},
		{"SW1A_1AA", "SW1A_1AA"},
		{"", ""},
		{"---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, fedex.FormatPostalCode(tt.in))
		})
	}
}
