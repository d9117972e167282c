// Package fedex provides rate quotations from the FedEx Web Services Rate API.
package fedex

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tournevent/ratequote/pkg/currency"
	"github.com/tournevent/ratequote/pkg/shipper"
	"github.com/tournevent/ratequote/pkg/weight"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	carrierName = "fedex"
	tracerName  = "github.com/tournevent/ratequote/pkg/shipper/fedex"

	// DefaultServiceCode is quoted when a request names no service.
	DefaultServiceCode = ServiceGroundHomeDelivery

	// TrackingURL is the public tracking page, formatted with a tracking number.
	TrackingURL = "https://www.fedex.com/apps/fedextrack/?action=track&trackingnumber=%s"
)

// Config holds FedEx configuration.
type Config struct {
	Settings

	// URL overrides the endpoint selected by Settings.TestMode.
	URL          string
	Timeout      time.Duration
	GramsPerUnit float64 // store weight unit
	UseMock      bool
}

// Client quotes FedEx services. It keeps no per-quotation state, so one
// Client may serve concurrent quotations.
type Client struct {
	config     Config
	apiClient  APIClient
	currencies currency.Table
	weights    WeightConverter
	localizer  shipper.Localizer
	logger     *otelzap.Logger
	tracer     trace.Tracer
}

// New creates a new FedEx client.
// If cfg.UseMock is true, it uses a mock API client for testing.
// Otherwise, it uses the SOAP API client.
func New(cfg Config, currencies currency.Table, logger *otelzap.Logger, tracer trace.Tracer) *Client {
	var apiClient APIClient

	if cfg.UseMock {
		apiClient = NewMockAPIClient()
	} else {
		url := cfg.URL
		if url == "" {
			url = EndpointURL(cfg.TestMode)
		}
		apiClient = NewSOAPAPIClient(SOAPAPIClientConfig{
			URL:     url,
			Timeout: cfg.Timeout,
		})
	}

	return NewWithAPIClient(cfg, apiClient, currencies, logger, tracer)
}

// NewWithAPIClient creates a new FedEx client with a custom API client.
// This is useful for injecting mock clients in tests.
func NewWithAPIClient(cfg Config, apiClient APIClient, currencies currency.Table, logger *otelzap.Logger, tracer trace.Tracer) *Client {
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}
	return &Client{
		config:     cfg,
		apiClient:  apiClient,
		currencies: currencies,
		weights:    weight.NewConverter(cfg.GramsPerUnit),
		localizer:  shipper.DefaultMessages,
		logger:     logger,
		tracer:     tracer,
	}
}

// WithLocalizer replaces the catalog used for user-facing messages.
func (c *Client) WithLocalizer(l shipper.Localizer) *Client {
	c.localizer = l
	return c
}

// TrackingLink returns the public tracking page of a shipment.
func TrackingLink(trackingNumber string) string {
	return fmt.Sprintf(TrackingURL, url.QueryEscape(trackingNumber))
}

// Name returns the carrier name.
func (c *Client) Name() string {
	return carrierName
}

// GetQuote quotes req with the configured service settings.
func (c *Client) GetQuote(ctx context.Context, req *shipper.QuoteRequest) *shipper.QuoteResult {
	info := &ShipmentInfo{
		Settings:    c.config.Settings,
		Package:     req.Package,
		ServiceCode: req.ServiceCode,
	}
	if info.ServiceCode == "" {
		info.ServiceCode = DefaultServiceCode
	}
	if req.Box.Length > 0 {
		info.Settings.Box.Length = req.Box.Length
	}
	if req.Box.Width > 0 {
		info.Settings.Box.Width = req.Box.Width
	}
	if req.Box.Height > 0 {
		info.Settings.Box.Height = req.Box.Height
	}

	return c.Quote(ctx, info)
}

// Quote builds the rate request for info, sends it and reduces the reply to
// a single cost in the store's primary currency. It never fails; every
// problem ends up in the result's Error.
func (c *Client) Quote(ctx context.Context, info *ShipmentInfo) *shipper.QuoteResult {
	quoteID := uuid.NewString()
	ctx, span := c.tracer.Start(ctx, "fedex.Quote", trace.WithAttributes(
		attribute.String("fedex.quote_id", quoteID),
		attribute.String("fedex.service_code", info.ServiceCode),
	))
	defer span.End()

	c.logger.Info("Getting FedEx quote",
		zap.String("quote_id", quoteID),
		zap.String("service_code", info.ServiceCode),
		zap.String("origin_postal", info.Package.Origination.PostalCode),
		zap.String("destination_postal", info.Package.Location.PostalCode),
		zap.Int("package_count", len(info.Package.Packages)),
	)

	var diag diagnostics

	req := BuildRateRequest(info, c.currencies.Primary(), c.weights)

	reply, err := c.apiClient.GetRates(ctx, req)
	if err != nil {
		c.logger.Error("FedEx API error",
			zap.String("quote_id", quoteID),
			zap.String("kind", shipper.Kind(err)),
			zap.Error(err),
		)
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport failure")
		diag.add(err.Error())
		return &shipper.QuoteResult{Error: diag.String()}
	}

	result := c.processReply(reply, info.ServiceCode, &diag)
	if !result.OK() {
		c.logger.Warn("FedEx quote not resolved",
			zap.String("quote_id", quoteID),
			zap.String("service_code", info.ServiceCode),
			zap.String("error", result.Error),
		)
		span.SetStatus(codes.Error, "no cost")
	}
	return result
}

func (c *Client) processReply(reply *RateReply, serviceCode string, diag *diagnostics) *shipper.QuoteResult {
	cost, err := CollectRates(reply).Resolve(serviceCode, c.currencies)
	if err == nil {
		return &shipper.QuoteResult{Cost: &cost}
	}

	var currencyErr *CurrencyUnavailableError
	if errors.As(err, &currencyErr) {
		return &shipper.QuoteResult{
			Error: c.localizer.Translate(shipper.MsgCurrencyIsMissing, map[string]string{
				"[currency]": strings.Join(currencyErr.Currencies, ", "),
			}),
		}
	}

	if msgs := CarrierErrors(reply); len(msgs) > 0 {
		carrierErr := shipper.NewShipperError(carrierName, reply.HighestSeverity, strings.Join(msgs, "; ")).
			WithCause(shipper.ErrCarrierReported)
		c.logger.Warn("FedEx reported an error",
			zap.String("kind", shipper.Kind(carrierErr)),
			zap.Error(carrierErr),
		)
		diag.add(msgs...)
	}
	return &shipper.QuoteResult{Error: diag.String()}
}

// diagnostics collects the error messages of one quotation.
type diagnostics struct {
	errs []string
}

func (d *diagnostics) add(msgs ...string) {
	for _, m := range msgs {
		if m != "" {
			d.errs = append(d.errs, m)
		}
	}
}

func (d *diagnostics) String() string {
	return strings.Join(d.errs, "; ")
}

var _ shipper.Shipper = (*Client)(nil)
