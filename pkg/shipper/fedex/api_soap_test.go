package fedex_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/ratequote/pkg/shipper"
	"github.com/tournevent/ratequote/pkg/shipper/fedex"
)

const rateReplyEnvelope = `<?xml version="1.0" encoding="UTF-8"?>
<SOAP-ENV:Envelope xmlns:SOAP-ENV="http://schemas.xmlsoap.org/soap/envelope/">
  <SOAP-ENV:Header/>
  <SOAP-ENV:Body>
    <RateReply xmlns="http://fedex.com/ws/rate/v22">
      <HighestSeverity>NOTE</HighestSeverity>
      <Notifications>
        <Severity>NOTE</Severity>
        <Source>crs</Source>
        <Code>819</Code>
        <Message>The origin state/province code has been changed.</Message>
      </Notifications>
      <RateReplyDetails>
        <ServiceType>FEDEX_GROUND</ServiceType>
        <RatedShipmentDetails>
          <ShipmentRateDetail>
            <RateType>PAYOR_ACCOUNT_PACKAGE</RateType>
            <TotalNetCharge><Currency>USD</Currency><Amount>10.00</Amount></TotalNetCharge>
          </ShipmentRateDetail>
        </RatedShipmentDetails>
        <RatedShipmentDetails>
          <ShipmentRateDetail>
            <RateType>PREFERRED_ACCOUNT_PACKAGE</RateType>
            <TotalNetCharge><Currency>CAD</Currency><Amount>13.00</Amount></TotalNetCharge>
          </ShipmentRateDetail>
        </RatedShipmentDetails>
      </RateReplyDetails>
      <RateReplyDetails>
        <ServiceType>FEDEX_2_DAY</ServiceType>
        <RatedShipmentDetails>
          <ShipmentRateDetail>
            <TotalNetCharge><Currency>USD</Currency><Amount>31.75</Amount></TotalNetCharge>
          </ShipmentRateDetail>
        </RatedShipmentDetails>
      </RateReplyDetails>
    </RateReply>
  </SOAP-ENV:Body>
</SOAP-ENV:Envelope>`

const faultEnvelope = `<?xml version="1.0" encoding="UTF-8"?>
<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/">
  <soapenv:Body>
    <soapenv:Fault>
      <faultcode>soapenv:Server</faultcode>
      <faultstring>Fault</faultstring>
    </soapenv:Fault>
  </soapenv:Body>
</soapenv:Envelope>`

func TestSOAPAPIClient_GetRates(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "http://fedex.com/ws/rate/v22/getRates", r.Header.Get("SOAPAction"))
		assert.Contains(t, r.Header.Get("Content-Type"), "text/xml")
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		_, _ = io.WriteString(w, rateReplyEnvelope)
	}))
	defer srv.Close()

	client := fedex.NewSOAPAPIClient(fedex.SOAPAPIClientConfig{URL: srv.URL})
	req := fedex.BuildRateRequest(testShipment("FEDEX_GROUND"), "USD", pounds)

	reply, err := client.GetRates(context.Background(), req)
	require.NoError(t, err)

	assert.Contains(t, body, `<RateRequest xmlns="http://fedex.com/ws/rate/v22">`)
	assert.Contains(t, body, "<ServiceId>crs</ServiceId>")
	assert.Contains(t, body, "<CustomerTransactionId>Rates Request</CustomerTransactionId>")
	assert.Contains(t, body, "<Residential>false</Residential>")

	assert.Equal(t, "NOTE", reply.HighestSeverity)
	require.Len(t, reply.Notifications, 1)
	require.Len(t, reply.RateReplyDetails, 2)
	require.Len(t, reply.RateReplyDetails[0].RatedShipmentDetails, 2)

	rates := fedex.CollectRates(reply)
	assert.Equal(t, []string{"USD", "CAD"}, rates.Currencies)

	cost, err := rates.Resolve("FEDEX_2_DAY", usdStore())
	require.NoError(t, err)
	assert.True(t, cost.Equal(dec("31.75")))
}

func TestSOAPAPIClient_GetRates_Fault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, faultEnvelope)
	}))
	defer srv.Close()

	client := fedex.NewSOAPAPIClient(fedex.SOAPAPIClientConfig{URL: srv.URL})

	_, err := client.GetRates(context.Background(), fedex.BuildRateRequest(testShipment("FEDEX_GROUND"), "USD", pounds))
	require.Error(t, err)

	var apiErr *fedex.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "soapenv:Server", apiErr.Code)
	assert.Equal(t, "Fault", apiErr.Description)
	assert.True(t, errors.Is(err, shipper.ErrTransport))
}

func TestSOAPAPIClient_GetRates_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := fedex.NewSOAPAPIClient(fedex.SOAPAPIClientConfig{URL: srv.URL})

	_, err := client.GetRates(context.Background(), fedex.BuildRateRequest(testShipment("FEDEX_GROUND"), "USD", pounds))

	var apiErr *fedex.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "HTTP_502", apiErr.Code)
}

func TestSOAPAPIClient_GetRates_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := fedex.NewSOAPAPIClient(fedex.SOAPAPIClientConfig{URL: url})

	_, err := client.GetRates(context.Background(), fedex.BuildRateRequest(testShipment("FEDEX_GROUND"), "USD", pounds))

	require.Error(t, err)
	assert.True(t, errors.Is(err, shipper.ErrTransport))
	assert.Equal(t, "transport", shipper.Kind(err))
}

func TestEndpointURL(t *testing.T) {
	assert.Equal(t, fedex.URLDevelopment, fedex.EndpointURL(true))
	assert.Equal(t, fedex.URLProduction, fedex.EndpointURL(false))
}
