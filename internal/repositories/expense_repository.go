package repositories

import (
	"context"
	"errors"
	"fmt"

	"receipt-ledger/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrExpenseNotFound = errors.New("expense not found")
	ErrMissingOwner    = errors.New("owner id is required")
)

// aggregationColumns are the only columns callers may project in ListForAggregation
var aggregationColumns = map[string]bool{
	"id":                       true,
	"date":                     true,
	"category":                 true,
	"total_amount_numeric":     true,
	"gst_amount_numeric":       true,
	"other_tax_amount_numeric": true,
	"tax_deductible":           true,
	"leakage_risk_score":       true,
	"created_at":               true,
}

// expenseRepository implements ExpenseRepositoryInterface
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) ExpenseRepositoryInterface {
	return &expenseRepository{
		db: db,
	}
}

// Create persists a fully validated expense; ID and CreatedAt are filled by the model hook
func (r *expenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	if expense.UserID == uuid.Nil {
		return ErrMissingOwner
	}
	if err := r.db.WithContext(ctx).Create(expense).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// ListByOwner returns every expense of the owner, newest date first
func (r *expenseRepository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.Expense, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingOwner
	}

	expenses := []models.Expense{}
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Order("created_at DESC").
		Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

// ListFlagged returns the owner's high-risk expenses, most recently created first
func (r *expenseRepository) ListFlagged(ctx context.Context, userID uuid.UUID) ([]models.Expense, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingOwner
	}

	expenses := []models.Expense{}
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("leakage_risk_score >= ?", models.HighRiskThreshold).
		Order("created_at DESC").
		Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to list flagged expenses: %w", err)
	}
	return expenses, nil
}

// ListForAggregation returns owned expenses dated within [From, To], projecting only the requested columns
func (r *expenseRepository) ListForAggregation(ctx context.Context, userID uuid.UUID, filters models.ExpenseFilters) ([]models.Expense, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingOwner
	}

	query := r.db.WithContext(ctx).
		Model(&models.Expense{}).
		Where("user_id = ?", userID).
		Where("date >= ? AND date <= ?", filters.From, filters.To)

	if len(filters.Columns) > 0 {
		for _, column := range filters.Columns {
			if !aggregationColumns[column] {
				return nil, fmt.Errorf("column %q cannot be selected for aggregation", column)
			}
		}
		query = query.Select(filters.Columns)
	}

	if filters.MinRiskScore != nil {
		query = query.Where("leakage_risk_score >= ?", *filters.MinRiskScore)
	}

	expenses := []models.Expense{}
	if err := query.Order("date ASC").Order("created_at ASC").Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to list expenses for aggregation: %w", err)
	}
	return expenses, nil
}

// DeleteByOwner removes the expense only when the caller owns it.
// Zero affected rows (wrong id, wrong owner, or already deleted) is reported as ErrExpenseNotFound.
func (r *expenseRepository) DeleteByOwner(ctx context.Context, userID, expenseID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrMissingOwner
	}

	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("id = ?", expenseID).
		Delete(&models.Expense{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrExpenseNotFound
	}
	return nil
}
