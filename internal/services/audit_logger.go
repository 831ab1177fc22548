package services

import (
	"context"
	"log/slog"
	"time"

	"receipt-ledger/internal/models"

	"github.com/google/uuid"
)

type traceIDKey struct{}

// WithTraceID stores the request's trace id on ctx
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace id stored by WithTraceID, or ""
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if traceID, ok := ctx.Value(traceIDKey{}).(string); ok {
		return traceID
	}
	return ""
}

type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) *AuditLogger {
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogExtractionAttemptFailed(ctx context.Context, attempt, maxAttempts int, err error, backoff time.Duration) {
	al.logger.WarnContext(ctx, "receipt extraction attempt failed",
		slog.String("event_type", "receipt.attempt_failed"),
		slog.Int("attempt", attempt),
		slog.Int("max_attempts", maxAttempts),
		slog.String("error", err.Error()),
		slog.Duration("backoff", backoff),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", TraceIDFromContext(ctx)),
	)
}

func (al *AuditLogger) LogExtractionFallbackUsed(ctx context.Context, attempts int) {
	al.logger.WarnContext(ctx, "receipt extraction fallback used",
		slog.String("event_type", "receipt.fallback_used"),
		slog.Int("attempts", attempts),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", TraceIDFromContext(ctx)),
	)
}

func (al *AuditLogger) LogCorrectionsApplied(ctx context.Context, userID uuid.UUID, corrections []models.Correction) {
	fields := make([]string, 0, len(corrections))
	for _, c := range corrections {
		fields = append(fields, c.Field)
	}

	al.logger.InfoContext(ctx, "receipt extraction corrected",
		slog.String("event_type", "receipt.corrections_applied"),
		slog.String("user_id", userID.String()),
		slog.Int("count", len(corrections)),
		slog.Any("fields", fields),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", TraceIDFromContext(ctx)),
	)
}

func (al *AuditLogger) LogExpenseCreated(ctx context.Context, expense *models.Expense, fallback bool) {
	al.logger.InfoContext(ctx, "expense created",
		slog.String("event_type", "expense.created"),
		slog.String("user_id", expense.UserID.String()),
		slog.String("expense_id", expense.ID.String()),
		slog.String("category", expense.Category),
		slog.Float64("confidence_score", expense.ConfidenceScore),
		slog.Int("leakage_risk_score", expense.LeakageRiskScore),
		slog.Bool("fallback", fallback),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", TraceIDFromContext(ctx)),
	)
}

func (al *AuditLogger) LogExpenseDeleted(ctx context.Context, userID, expenseID uuid.UUID) {
	al.logger.InfoContext(ctx, "expense deleted",
		slog.String("event_type", "expense.deleted"),
		slog.String("user_id", userID.String()),
		slog.String("expense_id", expenseID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", TraceIDFromContext(ctx)),
	)
}

func (al *AuditLogger) LogAuthenticationFailed(ctx context.Context, reason string) {
	al.logger.WarnContext(ctx, "authentication failed",
		slog.String("event_type", "auth.failed"),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", TraceIDFromContext(ctx)),
	)
}
