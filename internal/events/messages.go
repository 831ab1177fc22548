package events

import (
	"encoding/json"
	"time"

	"receipt-ledger/internal/models"

	"github.com/google/uuid"
)

// Event types double as routing keys on the topic exchange
const (
	ExpenseCreated = "expense.created"
	ExpenseDeleted = "expense.deleted"
)

// ExpenseEvent is a lightweight notification about a change to one expense.
// Consumers fetch the full row themselves.
type ExpenseEvent struct {
	Type             string    `json:"type"`
	ExpenseID        uuid.UUID `json:"expense_id"`
	UserID           uuid.UUID `json:"user_id"`
	Category         string    `json:"category,omitempty"`
	TotalAmount      string    `json:"total_amount,omitempty"`
	LeakageRiskScore *int      `json:"leakage_risk_score,omitempty"`
	Fallback         bool      `json:"fallback,omitempty"`
	Timestamp        time.Time `json:"timestamp"`
}

// NewExpenseCreatedEvent describes a freshly stored expense
func NewExpenseCreatedEvent(expense *models.Expense, fallback bool) *ExpenseEvent {
	risk := expense.LeakageRiskScore
	return &ExpenseEvent{
		Type:             ExpenseCreated,
		ExpenseID:        expense.ID,
		UserID:           expense.UserID,
		Category:         expense.Category,
		TotalAmount:      expense.TotalAmountNumeric.StringFixed(2),
		LeakageRiskScore: &risk,
		Fallback:         fallback,
		Timestamp:        time.Now().UTC(),
	}
}

// NewExpenseDeletedEvent describes a removed expense
func NewExpenseDeletedEvent(userID, expenseID uuid.UUID) *ExpenseEvent {
	return &ExpenseEvent{
		Type:      ExpenseDeleted,
		ExpenseID: expenseID,
		UserID:    userID,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON converts the event to JSON bytes
func (e *ExpenseEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}
