package services

import (
	"context"
	"errors"
	"log/slog"

	"receipt-ledger/internal/events"
	"receipt-ledger/internal/models"
	"receipt-ledger/internal/repositories"

	"github.com/google/uuid"
)

// ExpenseService serves owner-scoped expense reads and deletes
type ExpenseService struct {
	repo      repositories.ExpenseRepositoryInterface
	publisher events.Publisher
	audit     AuditLoggerInterface
	metrics   MetricsRecorderInterface
	logger    *slog.Logger
}

// NewExpenseService creates a new expense service
func NewExpenseService(
	repo repositories.ExpenseRepositoryInterface,
	publisher events.Publisher,
	audit AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) *ExpenseService {
	return &ExpenseService{
		repo:      repo,
		publisher: publisher,
		audit:     audit,
		metrics:   metrics,
		logger:    logger,
	}
}

// ListExpenses returns every expense of userID, newest date first
func (s *ExpenseService) ListExpenses(ctx context.Context, userID uuid.UUID) ([]models.Expense, error) {
	return s.repo.ListByOwner(ctx, userID)
}

// ListFlagged returns the high-risk expenses of userID, most recently created first
func (s *ExpenseService) ListFlagged(ctx context.Context, userID uuid.UUID) ([]models.Expense, error) {
	return s.repo.ListFlagged(ctx, userID)
}

// DeleteExpense removes one expense owned by userID.
// repositories.ErrExpenseNotFound covers both a missing row and a row owned by someone else.
func (s *ExpenseService) DeleteExpense(ctx context.Context, userID, expenseID uuid.UUID) error {
	if err := s.repo.DeleteByOwner(ctx, userID, expenseID); err != nil {
		result := "error"
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			result = "not_found"
		}
		s.metrics.IncrementCounter("expense.deleted", map[string]string{"result": result})
		return err
	}

	s.metrics.IncrementCounter("expense.deleted", map[string]string{"result": "success"})
	s.audit.LogExpenseDeleted(ctx, userID, expenseID)

	if err := s.publisher.Publish(ctx, events.NewExpenseDeletedEvent(userID, expenseID)); err != nil {
		s.logger.WarnContext(ctx, "failed to publish expense event", "expense_id", expenseID, "error", err)
	}

	return nil
}
