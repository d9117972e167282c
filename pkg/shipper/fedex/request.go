package fedex

import (
	"github.com/tournevent/ratequote/pkg/shipper"
)

// Static request values.
const (
	customerTransactionID = "Rates Request"
	paymentTypeSender     = "SENDER"
	rateRequestPreferred  = "PREFERRED"
)

// Settings are the FedEx service parameters of a shipping method.
type Settings struct {
	UserKey         string             `mapstructure:"user_key"`
	UserKeyPassword string             `mapstructure:"user_key_password"`
	AccountNumber   string             `mapstructure:"account_number"`
	MeterNumber     string             `mapstructure:"meter_number"`
	DropOffType     string             `mapstructure:"drop_off_type"`
	PackageType     string             `mapstructure:"package_type"`
	TestMode        bool               `mapstructure:"test_mode"`
	Box             shipper.Dimensions `mapstructure:"box"`
}

// ShipmentInfo is everything needed to quote one service code.
type ShipmentInfo struct {
	Settings    Settings            `mapstructure:"service_params"`
	Package     shipper.PackageInfo `mapstructure:"package_info"`
	ServiceCode string              `mapstructure:"service_code"`
}

// BuildRateRequest composes the full rate request for info. Malformed
// settings are passed through as is; the carrier rejects them.
func BuildRateRequest(info *ShipmentInfo, primaryCurrency string, conv WeightConverter) *RateRequest {
	s := info.Settings

	req := &RateRequest{
		WebAuthenticationDetail: WebAuthenticationDetail{
			UserCredential: UserCredential{
				Key:      s.UserKey,
				Password: s.UserKeyPassword,
			},
		},
		ClientDetail: ClientDetail{
			AccountNumber: s.AccountNumber,
			MeterNumber:   s.MeterNumber,
		},
		TransactionDetail: TransactionDetail{
			CustomerTransactionID: customerTransactionID,
		},
		Version: VersionID{
			ServiceID: serviceID,
			Major:     majorVersion,
		},
		RequestedShipment: RequestedShipment{
			DropoffType:       s.DropOffType,
			ServiceType:       info.ServiceCode,
			PackagingType:     s.PackageType,
			PreferredCurrency: primaryCurrency,
			Shipper:           NormalizeAddress(info.Package.Origination, KindShipper, ""),
			Recipient:         NormalizeAddress(info.Package.Location, KindRecipient, info.ServiceCode),
			ShippingChargesPayment: Payment{
				PaymentType: paymentTypeSender,
				Payor: Payor{
					ResponsibleParty: ResponsibleParty{AccountNumber: s.AccountNumber},
				},
			},
			RateRequestTypes: rateRequestPreferred,
		},
	}

	AssemblePackages(info.Package, s.Box, ModeStandard, conv).apply(&req.RequestedShipment)

	return req
}
