package dto

import (
	"time"

	"receipt-ledger/internal/models"

	"github.com/google/uuid"
)

// ExpenseResponse is the wire shape of a stored expense.
// Numeric amounts are JSON numbers with two decimals; date is YYYY-MM-DD.
type ExpenseResponse struct {
	ID                    uuid.UUID `json:"id"`
	UserID                uuid.UUID `json:"user_id"`
	Merchant              string    `json:"merchant"`
	Date                  string    `json:"date"`
	Category              string    `json:"category"`
	TotalAmountStr        string    `json:"total_amount_str"`
	TotalAmountNumeric    float64   `json:"total_amount_numeric"`
	GSTAmountStr          string    `json:"gst_amount_str"`
	GSTAmountNumeric      float64   `json:"gst_amount_numeric"`
	OtherTaxAmountStr     string    `json:"other_tax_amount_str"`
	OtherTaxAmountNumeric float64   `json:"other_tax_amount_numeric"`
	TaxDeductible         bool      `json:"tax_deductible"`
	ConfidenceScore       float64   `json:"confidence_score"`
	LeakageRiskScore      int       `json:"leakage_risk_score"`
	RiskLevel             string    `json:"risk_level"`
	FlagReason            string    `json:"flag_reason"`
	SavingsInsight        string    `json:"savings_insight"`
	CreatedAt             time.Time `json:"created_at"`
}

// ExpenseListResponse wraps GET /expenses
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// NewExpenseResponse converts a stored expense to its wire shape
func NewExpenseResponse(expense *models.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:                    expense.ID,
		UserID:                expense.UserID,
		Merchant:              expense.Merchant,
		Date:                  expense.DateString(),
		Category:              expense.Category,
		TotalAmountStr:        expense.TotalAmountStr,
		TotalAmountNumeric:    expense.TotalAmountNumeric.Round(2).InexactFloat64(),
		GSTAmountStr:          expense.GSTAmountStr,
		GSTAmountNumeric:      expense.GSTAmountNumeric.Round(2).InexactFloat64(),
		OtherTaxAmountStr:     expense.OtherTaxAmountStr,
		OtherTaxAmountNumeric: expense.OtherTaxAmountNumeric.Round(2).InexactFloat64(),
		TaxDeductible:         expense.TaxDeductible,
		ConfidenceScore:       expense.ConfidenceScore,
		LeakageRiskScore:      expense.LeakageRiskScore,
		RiskLevel:             expense.RiskLevel(),
		FlagReason:            expense.FlagReason,
		SavingsInsight:        expense.SavingsInsight,
		CreatedAt:             expense.CreatedAt,
	}
}

// NewExpenseResponses converts a slice, never returning nil so the JSON is [] rather than null
func NewExpenseResponses(expenses []models.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		responses = append(responses, NewExpenseResponse(&expenses[i]))
	}
	return responses
}
