package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"receipt-ledger/internal/events"
	"receipt-ledger/internal/models"
	"receipt-ledger/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ErrSaveExpense wraps any failure to persist a processed receipt
var ErrSaveExpense = errors.New("failed to save expense")

// ReceiptService turns an uploaded receipt image into a stored expense
type ReceiptService struct {
	extractor ReceiptExtractorInterface
	repo      repositories.ExpenseRepositoryInterface
	publisher events.Publisher
	audit     AuditLoggerInterface
	metrics   MetricsRecorderInterface
	logger    *slog.Logger
	now       func() time.Time
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	extractor ReceiptExtractorInterface,
	repo repositories.ExpenseRepositoryInterface,
	publisher events.Publisher,
	audit AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) *ReceiptService {
	return &ReceiptService{
		extractor: extractor,
		repo:      repo,
		publisher: publisher,
		audit:     audit,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}
}

// ProcessReceipt extracts, validates and stores one receipt for userID.
// Errors match ErrInvalidImage, ErrMissingField or ErrSaveExpense.
func (s *ReceiptService) ProcessReceipt(ctx context.Context, userID uuid.UUID, imageBase64 string) (*models.Expense, error) {
	start := time.Now()
	defer func() {
		s.metrics.RecordProcessingTime("receipt.processing", time.Since(start))
	}()

	image, err := ParseReceiptImage(imageBase64)
	if err != nil {
		s.metrics.IncrementCounter("receipt.processed", map[string]string{"outcome": "invalid_image"})
		return nil, err
	}

	result := s.extractor.Extract(ctx, image)

	validated, corrections, err := ValidateExtraction(result.Raw, s.now())
	if err != nil {
		s.metrics.IncrementCounter("receipt.processed", map[string]string{"outcome": "invalid_extraction"})
		s.logger.WarnContext(ctx, "extraction failed validation",
			"user_id", userID,
			"attempts", result.Attempts,
			"error", err,
		)
		return nil, err
	}
	if len(corrections) > 0 {
		s.audit.LogCorrectionsApplied(ctx, userID, corrections)
	}

	expense, err := s.buildExpense(userID, validated, result.Raw)
	if err != nil {
		s.metrics.IncrementCounter("receipt.processed", map[string]string{"outcome": "store_failed"})
		return nil, fmt.Errorf("%w: %w", ErrSaveExpense, err)
	}

	if err := s.repo.Create(ctx, expense); err != nil {
		s.metrics.IncrementCounter("receipt.processed", map[string]string{"outcome": "store_failed"})
		s.logger.ErrorContext(ctx, "failed to store expense", "user_id", userID, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrSaveExpense, err)
	}

	outcome := "extracted"
	if result.Fallback {
		outcome = "fallback"
	}
	s.metrics.IncrementCounter("receipt.processed", map[string]string{"outcome": outcome})
	s.metrics.RecordGauge("receipt.confidence", expense.ConfidenceScore, map[string]string{"outcome": outcome})
	s.audit.LogExpenseCreated(ctx, expense, result.Fallback)

	if err := s.publisher.Publish(ctx, events.NewExpenseCreatedEvent(expense, result.Fallback)); err != nil {
		s.logger.WarnContext(ctx, "failed to publish expense event", "expense_id", expense.ID, "error", err)
	}

	return expense, nil
}

func (s *ReceiptService) buildExpense(userID uuid.UUID, record models.ReceiptExtraction, raw models.RawExtraction) (*models.Expense, error) {
	date, err := time.Parse(models.DateLayout, record.Date)
	if err != nil {
		return nil, fmt.Errorf("parse extraction date: %w", err)
	}

	rawJSON, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("marshal raw extraction: %w", err)
	}

	return &models.Expense{
		UserID:                userID,
		Merchant:              record.Merchant,
		Date:                  datatypes.Date(date),
		Category:              record.Category,
		TotalAmountStr:        record.TotalAmountStr,
		TotalAmountNumeric:    ParseCurrency(record.TotalAmountStr),
		GSTAmountStr:          record.GSTAmountStr,
		GSTAmountNumeric:      ParseCurrency(record.GSTAmountStr),
		OtherTaxAmountStr:     record.OtherTaxAmountStr,
		OtherTaxAmountNumeric: ParseCurrency(record.OtherTaxAmountStr),
		TaxDeductible:         record.TaxDeductible,
		ConfidenceScore:       record.ConfidenceScore,
		LeakageRiskScore:      record.LeakageRiskScore,
		FlagReason:            record.FlagReason,
		SavingsInsight:        record.SavingsInsight,
		RawExtraction:         datatypes.JSON(rawJSON),
	}, nil
}
