package services

import (
	"context"
	"time"

	"receipt-ledger/internal/models"

	"github.com/google/uuid"
)

// IdentityVerifierInterface resolves a bearer token into the caller's identity.
// Implementations return ErrInvalidCredential for tokens the provider rejects.
type IdentityVerifierInterface interface {
	Verify(ctx context.Context, token string) (*models.Identity, error)
}

// VisionClientInterface sends one prompt plus image to the vision model and returns its text answer
type VisionClientInterface interface {
	GenerateContent(ctx context.Context, prompt string, image models.ReceiptImage) (string, error)
}

// ReceiptExtractorInterface turns a receipt image into a loosely typed candidate record.
// It never fails: exhausted retries yield the fallback record.
type ReceiptExtractorInterface interface {
	Extract(ctx context.Context, image models.ReceiptImage) models.ExtractionResult
}

// ReceiptServiceInterface runs the extraction pipeline and stores the result for the owner
type ReceiptServiceInterface interface {
	ProcessReceipt(ctx context.Context, userID uuid.UUID, imageBase64 string) (*models.Expense, error)
}

// ExpenseServiceInterface exposes owner-scoped reads and deletes
type ExpenseServiceInterface interface {
	ListExpenses(ctx context.Context, userID uuid.UUID) ([]models.Expense, error)
	ListFlagged(ctx context.Context, userID uuid.UUID) ([]models.Expense, error)
	DeleteExpense(ctx context.Context, userID, expenseID uuid.UUID) error
}

// DashboardServiceInterface computes the calendar-year dashboard
type DashboardServiceInterface interface {
	GetDashboard(ctx context.Context, userID uuid.UUID) (*models.DashboardSummary, error)
}

// AuditLoggerInterface emits structured audit events
type AuditLoggerInterface interface {
	LogExtractionAttemptFailed(ctx context.Context, attempt, maxAttempts int, err error, backoff time.Duration)
	LogExtractionFallbackUsed(ctx context.Context, attempts int)
	LogCorrectionsApplied(ctx context.Context, userID uuid.UUID, corrections []models.Correction)
	LogExpenseCreated(ctx context.Context, expense *models.Expense, fallback bool)
	LogExpenseDeleted(ctx context.Context, userID, expenseID uuid.UUID)
	LogAuthenticationFailed(ctx context.Context, reason string)
}

// MetricsRecorderInterface records counters, durations and observed values
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
