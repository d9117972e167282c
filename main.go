package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/tournevent/ratequote/internal/server"
	"github.com/tournevent/ratequote/pkg/shipper/fedex"
	"go.uber.org/zap"
)

var version = "0.0.1"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "ratequote",
	Short:   "FedEx shipping rate quotation service",
	Version: version,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP quotation server",
	RunE:  runServe,
}

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Quote one shipment described in a JSON or YAML file",
	RunE:  runQuote,
}

func init() {
	quoteCmd.Flags().StringP("file", "f", "", "shipment file (JSON or YAML)")
	_ = quoteCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(quoteCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// Load configuration
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Initialize telemetry
	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	tracer, tracerShutdown, err := initTracer(ctx, cfg)
	if err != nil {
		logger.Warn("Failed to initialize tracer", zap.Error(err))
	} else {
		defer tracerShutdown(context.Background())
	}

	currencies, err := loadCurrencies(ctx, cfg, logger)
	if err != nil {
		return err
	}

	registry := initShipperRegistry(cfg, currencies, logger, tracer)

	logger.Info("Starting rate quotation service",
		zap.Int("port", cfg.Port),
		zap.String("version", cfg.Version),
		zap.Strings("carriers", registry.Names()),
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Start HTTP server
	srv := server.New(server.Config{Port: cfg.Port}, registry, logger, reg)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func runQuote(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	path, _ := cmd.Flags().GetString("file")
	info, err := loadShipment(path, fedexSettings(cfg))
	if err != nil {
		return err
	}

	currencies, err := loadCurrencies(ctx, cfg, logger)
	if err != nil {
		return err
	}

	client := fedex.New(fedex.Config{
		Settings:     info.Settings,
		URL:          cfg.FedexURL,
		Timeout:      cfg.FedexTimeout,
		GramsPerUnit: cfg.WeightGramsPerUnit,
		UseMock:      cfg.FedexUseMock,
	}, currencies, logger, nil)

	result := client.Quote(ctx, info)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
