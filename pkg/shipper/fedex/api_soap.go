package fedex

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"text/template"
	"time"

	"github.com/tournevent/ratequote/pkg/shipper"
)

// FedEx Web Services endpoints.
const (
	URLProduction  = "https://ws.fedex.com:443/web-services"
	URLDevelopment = "https://wsbeta.fedex.com:443/web-services"

	soapActionGetRates = rateNamespace + "/getRates"
)

// EndpointURL returns the endpoint for production or test mode.
func EndpointURL(testMode bool) string {
	if testMode {
		return URLDevelopment
	}
	return URLProduction
}

// SOAPAPIClient is the production implementation of APIClient using SOAP.
type SOAPAPIClient struct {
	url        string
	httpClient *http.Client
}

// SOAPAPIClientConfig holds configuration for the SOAP client.
type SOAPAPIClientConfig struct {
	URL     string
	Timeout time.Duration
}

// NewSOAPAPIClient creates a new SOAP-based API client for production use.
func NewSOAPAPIClient(cfg SOAPAPIClientConfig) *SOAPAPIClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &SOAPAPIClient{
		url: cfg.URL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetRates sends a RateRequest to the FedEx RateService.
func (c *SOAPAPIClient) GetRates(ctx context.Context, req *RateRequest) (*RateReply, error) {
	soapBody, err := buildEnvelope(req)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.doSOAPRequest(ctx, soapActionGetRates, soapBody)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, parseSOAPError(resp)
	}

	return parseRateReply(resp.Body)
}

func (c *SOAPAPIClient) doSOAPRequest(ctx context.Context, action string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("SOAPAction", action)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", shipper.ErrTransport, err)
	}
	return resp, nil
}

// ============================================================================
// SOAP envelope
// ============================================================================

var envelopeTemplate = template.Must(template.New("envelope").Parse(`<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
{{.}}
  </soap:Body>
</soap:Envelope>`))

func buildEnvelope(req *RateRequest) ([]byte, error) {
	body, err := xml.MarshalIndent(req, "    ", "  ")
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := envelopeTemplate.Execute(&buf, string(body)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type soapEnvelope struct {
	XMLName xml.Name `xml:"Envelope"`
	Body    soapBody `xml:"Body"`
}

type soapBody struct {
	Fault     *soapFault `xml:"Fault,omitempty"`
	RateReply *RateReply `xml:"RateReply,omitempty"`
}

type soapFault struct {
	Code   string `xml:"faultcode"`
	String string `xml:"faultstring"`
}

// ============================================================================
// SOAP response parsing
// ============================================================================

func parseSOAPError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var env soapEnvelope
	if err := xml.Unmarshal(body, &env); err == nil && env.Body.Fault != nil {
		return &APIError{
			Code:        env.Body.Fault.Code,
			Description: env.Body.Fault.String,
		}
	}

	return &APIError{
		Code:        fmt.Sprintf("HTTP_%d", resp.StatusCode),
		Description: string(body),
	}
}

func parseRateReply(body io.Reader) (*RateReply, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", shipper.ErrTransport, err)
	}

	var env soapEnvelope
	if err := xml.Unmarshal(data, &env); err != nil {
		return nil, &APIError{
			Code:        "PARSE_ERROR",
			Description: err.Error(),
		}
	}

	if env.Body.Fault != nil {
		return nil, &APIError{
			Code:        env.Body.Fault.Code,
			Description: env.Body.Fault.String,
		}
	}

	if env.Body.RateReply == nil {
		return nil, &APIError{
			Code:        "PARSE_ERROR",
			Description: "No RateReply in response",
		}
	}

	return env.Body.RateReply, nil
}

var _ APIClient = (*SOAPAPIClient)(nil)
