package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tournevent/ratequote/internal/telemetry"
	"github.com/tournevent/ratequote/pkg/shipper"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Server is the HTTP server for the quotation service.
type Server struct {
	port     int
	registry *shipper.Registry
	logger   *otelzap.Logger
	metrics  *telemetry.Metrics
	gatherer prometheus.Gatherer
}

// Config holds server configuration.
type Config struct {
	Port int
}

// New creates a new server instance. Metrics are registered with reg,
// which also backs the /metrics endpoint.
func New(cfg Config, registry *shipper.Registry, logger *otelzap.Logger, reg *prometheus.Registry) *Server {
	return &Server{
		port:     cfg.Port,
		registry: registry,
		logger:   logger,
		metrics:  telemetry.NewMetrics(reg),
		gatherer: reg,
	}
}

// Handler returns the HTTP routes of the service.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	r.Post("/v1/quotes", s.handleQuotes)

	return r
}

// Run starts the HTTP server and blocks until context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting server", zap.Int("port", s.port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for context cancellation or error
	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

type quotesRequest struct {
	Carrier      string              `json:"carrier"`
	ServiceCodes []string            `json:"service_codes"`
	Package      shipper.PackageInfo `json:"package"`
	Box          shipper.Dimensions  `json:"box"`
}

type quotesResponse struct {
	Quotes map[string]*shipper.QuoteResult `json:"quotes"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleQuotes(w http.ResponseWriter, r *http.Request) {
	var req quotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON: " + err.Error()})
		return
	}
	if len(req.ServiceCodes) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "service_codes must not be empty"})
		return
	}

	ctx := r.Context()
	start := time.Now()

	quoteReq := &shipper.QuoteRequest{Package: req.Package, Box: req.Box}
	results, err := s.registry.QuoteServices(ctx, req.Carrier, quoteReq, req.ServiceCodes)
	if errors.Is(err, shipper.ErrCarrierNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		s.logger.Ctx(ctx).Error("Quotation failed",
			zap.String("carrier", req.Carrier),
			zap.Error(err),
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	s.metrics.RecordDuration(req.Carrier, time.Since(start).Seconds())
	for code, result := range results {
		s.metrics.RecordQuote(req.Carrier, code, result.OK())
	}

	s.logger.Ctx(ctx).Info("Quotation completed",
		zap.String("request_id", middleware.GetReqID(ctx)),
		zap.String("carrier", req.Carrier),
		zap.Strings("service_codes", req.ServiceCodes),
		zap.Duration("duration", time.Since(start)),
	)

	writeJSON(w, http.StatusOK, quotesResponse{Quotes: results})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
