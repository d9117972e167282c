package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	QuotesTotal   *prometheus.CounterVec
	QuoteDuration *prometheus.HistogramVec
	CarrierErrors *prometheus.CounterVec
}

// NewMetrics creates the metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		QuotesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ratequote_quotes_total",
				Help: "Total number of quotations by carrier, service code, and outcome",
			},
			[]string{"carrier", "service_code", "outcome"},
		),
		QuoteDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ratequote_quote_duration_seconds",
				Help:    "Quotation request duration in seconds by carrier",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"carrier"},
		),
		CarrierErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ratequote_carrier_errors_total",
				Help: "Total failed quotations by carrier",
			},
			[]string{"carrier"},
		),
	}
}

// RecordQuote records the outcome of one service code quotation.
func (m *Metrics) RecordQuote(carrier, serviceCode string, ok bool) {
	outcome := "success"
	if !ok {
		outcome = "error"
		m.CarrierErrors.WithLabelValues(carrier).Inc()
	}
	m.QuotesTotal.WithLabelValues(carrier, serviceCode, outcome).Inc()
}

// RecordDuration records how long a quotation request took.
func (m *Metrics) RecordDuration(carrier string, seconds float64) {
	m.QuoteDuration.WithLabelValues(carrier).Observe(seconds)
}
