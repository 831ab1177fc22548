package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"receipt-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetrics_Counters(t *testing.T) {
	metrics := NewPrometheusMetrics(prometheus.NewRegistry())

	metrics.IncrementCounter("receipt.processed", map[string]string{"outcome": "fallback"})
	metrics.IncrementCounter("receipt.processed", map[string]string{"outcome": "fallback"})
	metrics.IncrementCounter("vision.attempt", map[string]string{"result": "error"})
	metrics.IncrementCounter("expense.deleted", map[string]string{"result": "not_found"})
	metrics.IncrementCounter("api.error", map[string]string{"code": "AUTH_002", "status": "401"})
	metrics.IncrementCounter("unknown.metric", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.receiptsProcessed.WithLabelValues("fallback")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.visionAttempts.WithLabelValues("error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.expensesDeleted.WithLabelValues("not_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.apiErrors.WithLabelValues("AUTH_002", "401")))
}

func TestPrometheusMetrics_EmptyLabelIsIgnored(t *testing.T) {
	metrics := NewPrometheusMetrics(prometheus.NewRegistry())

	metrics.IncrementCounter("receipt.processed", map[string]string{})

	assert.Equal(t, 0, testutil.CollectAndCount(metrics.receiptsProcessed))
}

func TestPrometheusMetrics_Durations(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(reg)

	metrics.RecordProcessingTime("vision.request", 1500*time.Millisecond)
	metrics.RecordProcessingTime("receipt.processing", 3*time.Second)
	metrics.RecordGauge("receipt.confidence", 0.9, map[string]string{"outcome": "extracted"})

	count, err := testutil.GatherAndCount(reg, "vision_request_duration_seconds", "receipt_processing_duration_seconds", "receipt_confidence_score")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestNewPrometheusMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewPrometheusMetrics(prometheus.NewRegistry())
		NewPrometheusMetrics(prometheus.NewRegistry())
	})
}

func TestAuditLogger_WritesStructuredEvents(t *testing.T) {
	var buf bytes.Buffer
	audit := NewAuditLogger(slog.New(slog.NewJSONHandler(&buf, nil)))
	ctx := WithTraceID(context.Background(), "trace-123")

	expense := &models.Expense{ID: uuid.New(), UserID: uuid.New(), Category: models.CategoryFuel, ConfidenceScore: 0.8, LeakageRiskScore: 2}
	audit.LogExpenseCreated(ctx, expense, false)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "expense.created", entry["event_type"])
	assert.Equal(t, expense.ID.String(), entry["expense_id"])
	assert.Equal(t, "trace-123", entry["correlation_id"])

	buf.Reset()
	audit.LogExtractionAttemptFailed(ctx, 2, 3, errors.New("quota"), 4*time.Second)
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "receipt.attempt_failed", entry["event_type"])
	assert.Equal(t, "quota", entry["error"])
}

func TestTraceIDFromContext(t *testing.T) {
	assert.Equal(t, "", TraceIDFromContext(context.Background()))
	assert.Equal(t, "abc", TraceIDFromContext(WithTraceID(context.Background(), "abc")))
}
