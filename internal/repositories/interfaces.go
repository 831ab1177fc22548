package repositories

import (
	"context"

	"receipt-ledger/internal/models"

	"github.com/google/uuid"
)

// ExpenseRepositoryInterface is the owner-scoped gateway over the expenses table.
// Every method takes the caller's id and filters on it.
type ExpenseRepositoryInterface interface {
	Create(ctx context.Context, expense *models.Expense) error
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.Expense, error)
	ListFlagged(ctx context.Context, userID uuid.UUID) ([]models.Expense, error)
	ListForAggregation(ctx context.Context, userID uuid.UUID, filters models.ExpenseFilters) ([]models.Expense, error)
	DeleteByOwner(ctx context.Context, userID, expenseID uuid.UUID) error
}
