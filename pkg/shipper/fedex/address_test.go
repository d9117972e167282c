package fedex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/ratequote/pkg/shipper"
	"github.com/tournevent/ratequote/pkg/shipper/fedex"
)

func TestNormalizeAddress_Fields(t *testing.T) {
	addr := shipper.Address{
		Street:     "123 Main St",
		City:       "Toronto",
		State:      "Ontario",
		PostalCode: "M5V 1A1",
		Country:    "CA",
	}

	party := fedex.NormalizeAddress(addr, fedex.KindShipper, "")

	assert.Equal(t, fedex.PartyAddress{
		StreetLines:         "123 Main St",
		City:                "Toronto",
		StateOrProvinceCode: "",
		PostalCode:          "M5V1A1",
		CountryCode:         "CA",
	}, party.Address)
}

func TestNormalizeAddress_ShortStateKept(t *testing.T) {
	party := fedex.NormalizeAddress(shipper.Address{State: "ON"}, fedex.KindShipper, "")
	assert.Equal(t, "ON", party.Address.StateOrProvinceCode)
}

func TestNormalizeAddress_Empty(t *testing.T) {
	party := fedex.NormalizeAddress(shipper.Address{}, fedex.KindShipper, "")
	assert.Equal(t, fedex.PartyAddress{}, party.Address)
}

func TestNormalizeAddress_Residential(t *testing.T) {
	tests := []struct {
		name        string
		kind        fedex.AddressKind
		addressType string
		serviceCode string
		want        *bool
	}{
		{"home delivery", fedex.KindRecipient, shipper.AddressCommercial, fedex.ServiceGroundHomeDelivery, boolPtr(true)},
		{"no address type", fedex.KindRecipient, "", "PRIORITY_OVERNIGHT", boolPtr(true)},
		{"residential type", fedex.KindRecipient, shipper.AddressResidential, "PRIORITY_OVERNIGHT", boolPtr(true)},
		{"ground overrides missing type", fedex.KindRecipient, "", fedex.ServiceFedexGround, boolPtr(false)},
		{"ground overrides residential", fedex.KindRecipient, shipper.AddressResidential, fedex.ServiceFedexGround, boolPtr(false)},
		{"commercial elsewhere", fedex.KindRecipient, shipper.AddressCommercial, "PRIORITY_OVERNIGHT", nil},
		{"shipper never flagged", fedex.KindShipper, "", fedex.ServiceGroundHomeDelivery, nil},
		{"shipper ground", fedex.KindShipper, "", fedex.ServiceFedexGround, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			party := fedex.NormalizeAddress(shipper.Address{AddressType: tt.addressType}, tt.kind, tt.serviceCode)
			if tt.want == nil {
				assert.Nil(t, party.Address.Residential)
				return
			}
			require.NotNil(t, party.Address.Residential)
			assert.Equal(t, *tt.want, *party.Address.Residential)
		})
	}
}

func boolPtr(b bool) *bool {
	return &b
}
