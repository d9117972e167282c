package fedex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/ratequote/pkg/shipper"
	"github.com/tournevent/ratequote/pkg/shipper/fedex"
)

func testShipment(serviceCode string) *fedex.ShipmentInfo {
	return &fedex.ShipmentInfo{
		Settings: fedex.Settings{
			UserKey:         "key",
			UserKeyPassword: "secret",
			AccountNumber:   "510087000",
			MeterNumber:     "119000000",
			DropOffType:     "REGULAR_PICKUP",
			PackageType:     "YOUR_PACKAGING",
			Box:             defaultBox,
		},
		Package: shipper.PackageInfo{
			Origination: shipper.Address{City: "Memphis", State: "TN", PostalCode: "38115", Country: "US"},
			Location:    shipper.Address{City: "Beverly Hills", State: "CA", PostalCode: "90210", Country: "US"},
			Weight:      2,
		},
		ServiceCode: serviceCode,
	}
}

func TestBuildRateRequest(t *testing.T) {
	req := fedex.BuildRateRequest(testShipment("FEDEX_GROUND"), "USD", pounds)

	assert.Equal(t, fedex.UserCredential{Key: "key", Password: "secret"}, req.WebAuthenticationDetail.UserCredential)
	assert.Equal(t, fedex.ClientDetail{AccountNumber: "510087000", MeterNumber: "119000000"}, req.ClientDetail)
	assert.Equal(t, "Rates Request", req.TransactionDetail.CustomerTransactionID)
	assert.Equal(t, fedex.VersionID{ServiceID: "crs", Major: 22}, req.Version)

	rs := req.RequestedShipment
	assert.Equal(t, "REGULAR_PICKUP", rs.DropoffType)
	assert.Equal(t, "FEDEX_GROUND", rs.ServiceType)
	assert.Equal(t, "YOUR_PACKAGING", rs.PackagingType)
	assert.Equal(t, "USD", rs.PreferredCurrency)
	assert.Equal(t, "PREFERRED", rs.RateRequestTypes)
	assert.Equal(t, "SENDER", rs.ShippingChargesPayment.PaymentType)
	assert.Equal(t, "510087000", rs.ShippingChargesPayment.Payor.ResponsibleParty.AccountNumber)

	assert.Nil(t, rs.Shipper.Address.Residential)
	require.NotNil(t, rs.Recipient.Address.Residential)
	assert.False(t, *rs.Recipient.Address.Residential)

	require.Len(t, rs.RequestedPackageLineItems, 1)
	assert.Equal(t, 2.0, rs.RequestedPackageLineItems[0].Weight.Value)
	assert.Empty(t, rs.LineItems)
}

func TestBuildRateRequest_IsDeterministic(t *testing.T) {
	a := fedex.BuildRateRequest(testShipment("GROUND_HOME_DELIVERY"), "USD", pounds)
	b := fedex.BuildRateRequest(testShipment("GROUND_HOME_DELIVERY"), "USD", pounds)

	assert.Equal(t, a, b)
}
