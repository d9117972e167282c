package fedex

import (
	"github.com/tournevent/ratequote/pkg/shipper"
)

// AddressKind tells which side of the shipment an address is on.
type AddressKind int

const (
	KindShipper AddressKind = iota
	KindRecipient
)

// Service codes with residential delivery rules.
const (
	ServiceGroundHomeDelivery = "GROUND_HOME_DELIVERY"
	ServiceFedexGround        = "FEDEX_GROUND"
)

// NormalizeAddress builds the carrier address block.
//
// State codes longer than two characters are sent empty. Recipients are
// residential for home delivery, for addresses without a type and for
// residential addresses; FEDEX_GROUND always rates them as commercial.
// Shippers never carry the flag.
func NormalizeAddress(addr shipper.Address, kind AddressKind, serviceCode string) Party {
	state := addr.State
	if len(state) > 2 {
		state = ""
	}

	party := Party{
		Address: PartyAddress{
			StreetLines:         addr.Street,
			City:                addr.City,
			StateOrProvinceCode: state,
			PostalCode:          FormatPostalCode(addr.PostalCode),
			CountryCode:         addr.Country,
		},
	}

	if kind != KindRecipient {
		return party
	}

	if serviceCode == ServiceGroundHomeDelivery || addr.AddressType == "" || addr.AddressType == shipper.AddressResidential {
		party.Address.Residential = boolPtr(true)
	}
	if serviceCode == ServiceFedexGround {
		party.Address.Residential = boolPtr(false)
	}

	return party
}

func boolPtr(b bool) *bool {
	return &b
}
