package main

import (
	"context"
	"fmt"

	"github.com/tournevent/ratequote/internal/config"
	"github.com/tournevent/ratequote/internal/db"
	"github.com/tournevent/ratequote/internal/telemetry"
	"github.com/tournevent/ratequote/pkg/currency"
	"github.com/tournevent/ratequote/pkg/shipper"
	"github.com/tournevent/ratequote/pkg/shipper/fedex"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

func loadConfig() (*config.Config, error) {
	return config.Load()
}

func initLogger(level string) (*otelzap.Logger, error) {
	return telemetry.NewLogger(level)
}

func initTracer(ctx context.Context, cfg *config.Config) (trace.Tracer, func(context.Context) error, error) {
	if !cfg.OTELEnabled {
		return nil, func(context.Context) error { return nil }, nil
	}

	return telemetry.InitTracer(ctx, cfg.OTELEndpoint, cfg.ServiceName, cfg.Version)
}

// loadCurrencies reads the store currency table from Postgres when a
// database is configured, and from the environment otherwise.
func loadCurrencies(ctx context.Context, cfg *config.Config, logger *otelzap.Logger) (currency.Table, error) {
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		defer pool.Close()

		table, err := currency.LoadPostgres(ctx, pool)
		if err != nil {
			return nil, fmt.Errorf("loading currencies: %w", err)
		}
		logger.Info("Loaded currencies from database",
			zap.String("primary", table.Primary()),
			zap.Strings("codes", table.Codes()),
		)
		return table, nil
	}

	coefficients, err := currency.ParseCoefficients(cfg.CurrencyCoefficients)
	if err != nil {
		return nil, fmt.Errorf("loading currencies: %w", err)
	}
	table := currency.NewStatic(cfg.CurrencyPrimary, coefficients)
	logger.Info("Loaded currencies from environment",
		zap.String("primary", table.Primary()),
		zap.Strings("codes", table.Codes()),
	)
	return table, nil
}

func fedexSettings(cfg *config.Config) fedex.Settings {
	return fedex.Settings{
		UserKey:         cfg.FedexUserKey,
		UserKeyPassword: cfg.FedexUserKeyPassword,
		AccountNumber:   cfg.FedexAccountNumber,
		MeterNumber:     cfg.FedexMeterNumber,
		DropOffType:     cfg.FedexDropOffType,
		PackageType:     cfg.FedexPackageType,
		TestMode:        cfg.FedexTestMode,
		Box: shipper.Dimensions{
			Length: cfg.FedexBoxLength,
			Width:  cfg.FedexBoxWidth,
			Height: cfg.FedexBoxHeight,
		},
	}
}

func newFedexClient(cfg *config.Config, currencies currency.Table, logger *otelzap.Logger, tracer trace.Tracer) *fedex.Client {
	return fedex.New(fedex.Config{
		Settings:     fedexSettings(cfg),
		URL:          cfg.FedexURL,
		Timeout:      cfg.FedexTimeout,
		GramsPerUnit: cfg.WeightGramsPerUnit,
		UseMock:      cfg.FedexUseMock,
	}, currencies, logger, tracer)
}

func initShipperRegistry(cfg *config.Config, currencies currency.Table, logger *otelzap.Logger, tracer trace.Tracer) *shipper.Registry {
	registry := shipper.NewRegistry()

	// Register enabled carriers
	if cfg.FedexEnabled {
		registry.Register(newFedexClient(cfg, currencies, logger, tracer))
	}

	return registry
}
