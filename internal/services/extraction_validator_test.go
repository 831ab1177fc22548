package services

import (
	"errors"
	"testing"
	"time"

	"receipt-ledger/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validatorToday = time.Date(2026, time.October, 17, 9, 30, 0, 0, time.UTC)

func completeExtraction() models.RawExtraction {
	return models.RawExtraction{
		"merchant":          "Cafe Coffee Day",
		"totalAmountStr":    "₹450.00",
		"date":              "2026-10-02",
		"category":          "Meals",
		"gstAmountStr":      "₹22.50",
		"otherTaxAmountStr": "₹0.00",
		"taxDeductible":     true,
		"confidenceScore":   0.92,
		"leakageRiskScore":  float64(4),
		"flagReason":        "Business meal",
		"savingsInsight":    "Use a corporate card for meal discounts",
	}
}

func correctedFields(corrections []models.Correction) []string {
	fields := make([]string, 0, len(corrections))
	for _, c := range corrections {
		fields = append(fields, c.Field)
	}
	return fields
}

func TestValidateExtraction_CleanRecordPassesThrough(t *testing.T) {
	record, corrections, err := ValidateExtraction(completeExtraction(), validatorToday)

	require.NoError(t, err)
	assert.Empty(t, corrections)
	assert.Equal(t, "Cafe Coffee Day", record.Merchant)
	assert.Equal(t, "₹450.00", record.TotalAmountStr)
	assert.Equal(t, "2026-10-02", record.Date)
	assert.Equal(t, models.CategoryMeals, record.Category)
	assert.True(t, record.TaxDeductible)
	assert.Equal(t, 0.92, record.ConfidenceScore)
	assert.Equal(t, 4, record.LeakageRiskScore)
	assert.Equal(t, "Use a corporate card for meal discounts", record.SavingsInsight)
}

func TestValidateExtraction_MissingRequiredField(t *testing.T) {
	for _, field := range models.RequiredExtractionFields {
		t.Run(field, func(t *testing.T) {
			raw := completeExtraction()
			delete(raw, field)

			_, _, err := ValidateExtraction(raw, validatorToday)

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMissingField))
			assert.Equal(t, "missing required field: "+field, err.Error())
		})
	}
}

func TestValidateExtraction_NullCountsAsMissing(t *testing.T) {
	raw := completeExtraction()
	raw["flagReason"] = nil

	_, _, err := ValidateExtraction(raw, validatorToday)

	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "flagReason", missing.Field)
}

func TestValidateExtraction_SavingsInsightOptional(t *testing.T) {
	raw := completeExtraction()
	delete(raw, "savingsInsight")

	record, corrections, err := ValidateExtraction(raw, validatorToday)

	require.NoError(t, err)
	assert.Equal(t, DefaultSavingsInsight, record.SavingsInsight)
	assert.Equal(t, []string{models.FieldSavingsInsight}, correctedFields(corrections))
}

func TestValidateExtraction_RiskScore(t *testing.T) {
	tests := []struct {
		name      string
		input     interface{}
		expected  int
		corrected bool
	}{
		{"in range", float64(7), 7, false},
		{"zero stays zero", float64(0), 0, false},
		{"zero string stays zero", "0", 0, false},
		{"above range clamps", float64(15), 10, true},
		{"below range clamps", float64(-2), 0, true},
		{"fraction truncates", 7.8, 7, false},
		{"numeric string", "8", 8, false},
		{"string with suffix", "9/10", 9, false},
		{"unparseable defaults", "high", DefaultLeakageRiskScore, true},
		{"boolean defaults", true, DefaultLeakageRiskScore, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := completeExtraction()
			raw["leakageRiskScore"] = tt.input

			record, corrections, err := ValidateExtraction(raw, validatorToday)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, record.LeakageRiskScore)
			assert.Equal(t, tt.corrected, contains(correctedFields(corrections), models.FieldLeakageRiskScore))
		})
	}
}

func TestValidateExtraction_ConfidenceScore(t *testing.T) {
	tests := []struct {
		name      string
		input     interface{}
		expected  float64
		corrected bool
	}{
		{"in range", 0.75, 0.75, false},
		{"zero stays zero", float64(0), 0, false},
		{"zero string stays zero", "0", 0, false},
		{"above range clamps", 1.4, 1, true},
		{"below range clamps", -0.2, 0, true},
		{"numeric string", "0.6", 0.6, false},
		{"percent string reads leading number", "85%", 1, true},
		{"unparseable defaults", "unknown", DefaultConfidenceScore, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := completeExtraction()
			raw["confidenceScore"] = tt.input

			record, corrections, err := ValidateExtraction(raw, validatorToday)

			require.NoError(t, err)
			assert.InDelta(t, tt.expected, record.ConfidenceScore, 1e-9)
			assert.Equal(t, tt.corrected, contains(correctedFields(corrections), models.FieldConfidenceScore))
		})
	}
}

func TestValidateExtraction_Category(t *testing.T) {
	raw := completeExtraction()
	raw["category"] = "Groceries"

	record, corrections, err := ValidateExtraction(raw, validatorToday)

	require.NoError(t, err)
	assert.Equal(t, models.CategoryOther, record.Category)
	require.Len(t, corrections, 1)
	assert.Equal(t, "Groceries", corrections[0].From)
	assert.Equal(t, models.CategoryOther, corrections[0].To)

	raw["category"] = "software"
	record, _, err = ValidateExtraction(raw, validatorToday)
	require.NoError(t, err)
	assert.Equal(t, models.CategorySoftware, record.Category)
}

func TestValidateExtraction_Date(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected string
	}{
		{"iso date", "2026-01-31", "2026-01-31"},
		{"timestamp keeps the date", "2026-02-14T18:45:00Z", "2026-02-14"},
		{"free text falls back to today", "14th Feb", "2026-10-17"},
		{"impossible date falls back to today", "2026-02-30", "2026-10-17"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := completeExtraction()
			raw["date"] = tt.input

			record, _, err := ValidateExtraction(raw, validatorToday)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, record.Date)
		})
	}
}

func TestValidateExtraction_TaxDeductible(t *testing.T) {
	raw := completeExtraction()
	raw["taxDeductible"] = "true"

	record, corrections, err := ValidateExtraction(raw, validatorToday)

	require.NoError(t, err)
	assert.True(t, record.TaxDeductible)
	assert.Contains(t, correctedFields(corrections), models.FieldTaxDeductible)

	raw["taxDeductible"] = "maybe"
	record, _, err = ValidateExtraction(raw, validatorToday)
	require.NoError(t, err)
	assert.False(t, record.TaxDeductible)
}

func TestValidateExtraction_NumericAmountsAreStringified(t *testing.T) {
	raw := completeExtraction()
	raw["totalAmountStr"] = float64(1500)

	record, _, err := ValidateExtraction(raw, validatorToday)

	require.NoError(t, err)
	assert.Equal(t, "1500", record.TotalAmountStr)
}

func TestValidateExtraction_BlankMerchantIsKept(t *testing.T) {
	raw := completeExtraction()
	raw["merchant"] = "   "

	record, corrections, err := ValidateExtraction(raw, validatorToday)

	require.NoError(t, err)
	assert.Equal(t, "", record.Merchant)
	assert.NotContains(t, correctedFields(corrections), models.FieldMerchant)
}

func TestValidateExtraction_FallbackRecordIsValid(t *testing.T) {
	record, corrections, err := ValidateExtraction(FallbackExtraction(validatorToday).Raw(), validatorToday)

	require.NoError(t, err)
	assert.Empty(t, corrections)
	assert.Equal(t, FallbackExtraction(validatorToday), record)
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
