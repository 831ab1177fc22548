package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func validExpense() Expense {
	return Expense{
		UserID:                uuid.New(),
		Merchant:              "Shell Station 42",
		Date:                  datatypes.Date(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)),
		Category:              CategoryFuel,
		TotalAmountStr:        "₹1,500.00",
		TotalAmountNumeric:    decimal.RequireFromString("1500.00"),
		GSTAmountStr:          "₹270.00",
		GSTAmountNumeric:      decimal.RequireFromString("270.00"),
		OtherTaxAmountStr:     "₹0.00",
		OtherTaxAmountNumeric: decimal.Zero,
		ConfidenceScore:       0.92,
		LeakageRiskScore:      2,
	}
}

func TestExpense_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(e *Expense)
		wantErr error
	}{
		{name: "valid expense", mutate: func(e *Expense) {}},
		{name: "missing owner", mutate: func(e *Expense) { e.UserID = uuid.Nil }, wantErr: ErrMissingOwner},
		{name: "unknown category", mutate: func(e *Expense) { e.Category = "Groceries" }, wantErr: ErrInvalidCategory},
		{name: "lowercase category", mutate: func(e *Expense) { e.Category = "fuel" }, wantErr: ErrInvalidCategory},
		{name: "risk above range", mutate: func(e *Expense) { e.LeakageRiskScore = 11 }, wantErr: ErrRiskOutOfRange},
		{name: "risk below range", mutate: func(e *Expense) { e.LeakageRiskScore = -1 }, wantErr: ErrRiskOutOfRange},
		{name: "risk at upper bound", mutate: func(e *Expense) { e.LeakageRiskScore = 10 }},
		{name: "confidence above range", mutate: func(e *Expense) { e.ConfidenceScore = 1.01 }, wantErr: ErrConfidenceOutRange},
		{name: "confidence zero", mutate: func(e *Expense) { e.ConfidenceScore = 0 }},
		{
			name:    "negative gst",
			mutate:  func(e *Expense) { e.GSTAmountNumeric = decimal.NewFromInt(-1) },
			wantErr: ErrNegativeAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expense := validExpense()
			tt.mutate(&expense)

			err := expense.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExpense_BeforeCreate(t *testing.T) {
	expense := validExpense()

	require.NoError(t, expense.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, expense.ID)
	assert.False(t, expense.CreatedAt.IsZero())

	preset := validExpense()
	presetID := uuid.New()
	presetAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	preset.ID = presetID
	preset.CreatedAt = presetAt

	require.NoError(t, preset.BeforeCreate(nil))
	assert.Equal(t, presetID, preset.ID)
	assert.Equal(t, presetAt, preset.CreatedAt)
}

func TestExpense_BeforeCreateRejectsInvalid(t *testing.T) {
	expense := validExpense()
	expense.UserID = uuid.Nil

	assert.ErrorIs(t, expense.BeforeCreate(nil), ErrMissingOwner)
}

func TestRiskLevelFor(t *testing.T) {
	cases := map[int]string{
		0:  RiskLevelLow,
		3:  RiskLevelLow,
		4:  RiskLevelModerate,
		6:  RiskLevelModerate,
		7:  RiskLevelHigh,
		10: RiskLevelHigh,
	}
	for score, want := range cases {
		assert.Equal(t, want, RiskLevelFor(score), "score %d", score)
	}
}

func TestExpense_FlaggedAndDate(t *testing.T) {
	expense := validExpense()
	assert.False(t, expense.IsFlagged())
	assert.Equal(t, RiskLevelLow, expense.RiskLevel())

	expense.LeakageRiskScore = HighRiskThreshold
	assert.True(t, expense.IsFlagged())
	assert.Equal(t, "2026-03-14", expense.DateString())
	assert.Equal(t, "expenses", expense.TableName())
}

func TestNormalizeCategory(t *testing.T) {
	got, ok := NormalizeCategory("  entertainment ")
	assert.True(t, ok)
	assert.Equal(t, CategoryEntertainment, got)

	_, ok = NormalizeCategory("Groceries")
	assert.False(t, ok)

	assert.Len(t, AllCategories(), 11)
	assert.True(t, IsValidCategory(CategoryOther))
}

func TestYearRange(t *testing.T) {
	from, to := YearRange(2026)
	assert.Equal(t, "2026-01-01", from.Format(DateLayout))
	assert.Equal(t, "2026-12-31", to.Format(DateLayout))
}

func TestReceiptExtraction_Raw(t *testing.T) {
	record := ReceiptExtraction{Merchant: "Cafe", LeakageRiskScore: 4, TaxDeductible: true}
	raw := record.Raw()

	for _, field := range RequiredExtractionFields {
		assert.Contains(t, raw, field)
	}
	assert.Equal(t, "Cafe", raw[FieldMerchant])
	assert.Equal(t, 4, raw[FieldLeakageRiskScore])
	assert.Equal(t, true, raw[FieldTaxDeductible])
}
