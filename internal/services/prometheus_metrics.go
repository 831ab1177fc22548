package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	receiptsProcessed      *prometheus.CounterVec
	receiptDuration        prometheus.Histogram
	receiptConfidence      *prometheus.HistogramVec
	visionAttempts         *prometheus.CounterVec
	visionRequestDuration  prometheus.Histogram
	expensesDeleted        *prometheus.CounterVec
	dashboardDuration      prometheus.Histogram
	authenticationOutcomes *prometheus.CounterVec
	apiErrors              *prometheus.CounterVec
}

// NewPrometheusMetrics registers every collector on reg
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		receiptsProcessed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "receipts_processed_total",
				Help: "Total number of receipts processed by outcome",
			},
			[]string{"outcome"},
		),
		receiptDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "receipt_processing_duration_seconds",
				Help:    "End-to-end receipt processing duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
			},
		),
		receiptConfidence: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "receipt_confidence_score",
				Help:    "Confidence score of stored receipts",
				Buckets: prometheus.LinearBuckets(0.1, 0.1, 10),
			},
			[]string{"outcome"},
		),
		visionAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vision_attempts_total",
				Help: "Total number of vision model attempts by result",
			},
			[]string{"result"},
		),
		visionRequestDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "vision_request_duration_seconds",
				Help:    "Vision model request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		expensesDeleted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expenses_deleted_total",
				Help: "Total number of expense deletions by result",
			},
			[]string{"result"},
		),
		dashboardDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dashboard_aggregation_duration_milliseconds",
				Help:    "Dashboard aggregation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		authenticationOutcomes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
		apiErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "api_errors_total",
				Help: "Total number of API error responses",
			},
			[]string{"code", "status"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "receipt.processed":
		if outcome := tags["outcome"]; outcome != "" {
			m.receiptsProcessed.WithLabelValues(outcome).Inc()
		}
	case "vision.attempt":
		if result := tags["result"]; result != "" {
			m.visionAttempts.WithLabelValues(result).Inc()
		}
	case "expense.deleted":
		if result := tags["result"]; result != "" {
			m.expensesDeleted.WithLabelValues(result).Inc()
		}
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationOutcomes.WithLabelValues(eventType).Inc()
		}
	case "api.error":
		m.apiErrors.WithLabelValues(tags["code"], tags["status"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "receipt.processing":
		m.receiptDuration.Observe(duration.Seconds())
	case "vision.request":
		m.visionRequestDuration.Observe(duration.Seconds())
	case "dashboard.aggregation":
		m.dashboardDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "receipt.confidence":
		m.receiptConfidence.WithLabelValues(tags["outcome"]).Observe(value)
	}
}
