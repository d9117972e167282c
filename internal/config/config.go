package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.opentelemetry.io/otel/attribute"
)

// Config holds all configuration for the service.
type Config struct {
	// Server
	Port     int    `envconfig:"PORT" default:"80"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// FedEx
	FedexUserKey         string        `envconfig:"FEDEX_USER_KEY"`
	FedexUserKeyPassword string        `envconfig:"FEDEX_USER_KEY_PASSWORD"`
	FedexAccountNumber   string        `envconfig:"FEDEX_ACCOUNT_NUMBER"`
	FedexMeterNumber     string        `envconfig:"FEDEX_METER_NUMBER"`
	FedexDropOffType     string        `envconfig:"FEDEX_DROP_OFF_TYPE" default:"REGULAR_PICKUP"`
	FedexPackageType     string        `envconfig:"FEDEX_PACKAGE_TYPE" default:"YOUR_PACKAGING"`
	FedexTestMode        bool          `envconfig:"FEDEX_TEST_MODE" default:"false"`
	FedexURL             string        `envconfig:"FEDEX_URL"`
	FedexTimeout         time.Duration `envconfig:"FEDEX_TIMEOUT" default:"30s"`
	FedexBoxLength       float64       `envconfig:"FEDEX_BOX_LENGTH"`
	FedexBoxWidth        float64       `envconfig:"FEDEX_BOX_WIDTH"`
	FedexBoxHeight       float64       `envconfig:"FEDEX_BOX_HEIGHT"`
	FedexEnabled         bool          `envconfig:"FEDEX_ENABLED" default:"true"`
	FedexUseMock         bool          `envconfig:"FEDEX_USE_MOCK" default:"false"`

	// Store
	CurrencyPrimary      string            `envconfig:"CURRENCY_PRIMARY" default:"USD"`
	CurrencyCoefficients map[string]string `envconfig:"CURRENCY_COEFFICIENTS" default:"USD:1"`
	DatabaseURL          string            `envconfig:"DATABASE_URL"`
	WeightGramsPerUnit   float64           `envconfig:"WEIGHT_GRAMS_PER_UNIT" default:"453.6"`

	// Telemetry
	OTELEnabled  bool   `envconfig:"OTEL_ENABLED" default:"true"`
	OTELEndpoint string `envconfig:"OTEL_ENDPOINT" default:"http://localhost:4318"`
	ServiceName  string `envconfig:"SERVICE_NAME" default:"ratequote"`
	Version      string `envconfig:"SERVICE_VERSION" default:"0.0.1"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}

// Attributes returns OpenTelemetry attributes for this configuration.
func (c *Config) Attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("service.name", c.ServiceName),
		attribute.String("service.version", c.Version),
		attribute.Bool("fedex.enabled", c.FedexEnabled),
		attribute.Bool("fedex.test_mode", c.FedexTestMode),
		attribute.String("currency.primary", c.CurrencyPrimary),
		attribute.Bool("currency.from_database", c.DatabaseURL != ""),
	}
}
