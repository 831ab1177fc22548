package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"receipt-ledger/internal/models"
)

const (
	// DefaultConfidenceScore replaces a confidence the model left unusable
	DefaultConfidenceScore = 0.5
	// DefaultLeakageRiskScore replaces a risk score the model left unusable
	DefaultLeakageRiskScore = 5
	// DefaultSavingsInsight is stored when the model offers no insight
	DefaultSavingsInsight = "No insight provided"
	// UnknownMerchant names the vendor on the fallback record
	UnknownMerchant = "Unknown Merchant"
)

// ErrMissingField is matched by errors.Is for every MissingFieldError
var ErrMissingField = errors.New("missing required field")

// MissingFieldError names the first required field absent from an extraction
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

var (
	leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	leadingInt   = regexp.MustCompile(`^[+-]?\d+`)
)

// ValidateExtraction checks that every required field is present, then repairs the candidate
// into a record the store accepts. Repairs never fail the call; each one is reported as a Correction.
func ValidateExtraction(raw models.RawExtraction, today time.Time) (models.ReceiptExtraction, []models.Correction, error) {
	for _, field := range models.RequiredExtractionFields {
		if value, ok := raw[field]; !ok || value == nil {
			return models.ReceiptExtraction{}, nil, &MissingFieldError{Field: field}
		}
	}

	var corrections []models.Correction
	correct := func(field string, from, to interface{}, reason string) {
		corrections = append(corrections, models.Correction{Field: field, From: from, To: to, Reason: reason})
	}

	result := models.ReceiptExtraction{
		TotalAmountStr:    stringify(raw[models.FieldTotalAmountStr]),
		GSTAmountStr:      stringify(raw[models.FieldGSTAmountStr]),
		OtherTaxAmountStr: stringify(raw[models.FieldOtherTaxAmountStr]),
		FlagReason:        strings.TrimSpace(stringify(raw[models.FieldFlagReason])),
	}

	result.Merchant = strings.TrimSpace(stringify(raw[models.FieldMerchant]))

	result.Date = coerceDate(raw[models.FieldDate], today)
	if result.Date != stringify(raw[models.FieldDate]) {
		correct(models.FieldDate, raw[models.FieldDate], result.Date, "unparseable date")
	}

	category, ok := models.NormalizeCategory(stringify(raw[models.FieldCategory]))
	if !ok {
		category = models.CategoryOther
		correct(models.FieldCategory, raw[models.FieldCategory], category, "unknown category")
	} else if category != raw[models.FieldCategory] {
		correct(models.FieldCategory, raw[models.FieldCategory], category, "category spelling normalized")
	}
	result.Category = category

	deductible, exact := coerceBool(raw[models.FieldTaxDeductible])
	if !exact {
		correct(models.FieldTaxDeductible, raw[models.FieldTaxDeductible], deductible, "non-boolean tax flag")
	}
	result.TaxDeductible = deductible

	// A parsed 0 is a real score for both fields; only unparseable values take the defaults.
	confidence, parsed := coerceFloat(raw[models.FieldConfidenceScore])
	switch {
	case !parsed:
		correct(models.FieldConfidenceScore, raw[models.FieldConfidenceScore], DefaultConfidenceScore, "unparseable confidence")
		confidence = DefaultConfidenceScore
	case confidence < 0 || confidence > 1:
		clamped := math.Min(1, math.Max(0, confidence))
		correct(models.FieldConfidenceScore, raw[models.FieldConfidenceScore], clamped, "confidence out of range")
		confidence = clamped
	}
	result.ConfidenceScore = confidence

	risk, parsed := coerceInt(raw[models.FieldLeakageRiskScore])
	switch {
	case !parsed:
		correct(models.FieldLeakageRiskScore, raw[models.FieldLeakageRiskScore], DefaultLeakageRiskScore, "unparseable risk score")
		risk = DefaultLeakageRiskScore
	case risk < models.MinLeakageRiskScore || risk > models.MaxLeakageRiskScore:
		clamped := min(models.MaxLeakageRiskScore, max(models.MinLeakageRiskScore, risk))
		correct(models.FieldLeakageRiskScore, raw[models.FieldLeakageRiskScore], clamped, "risk score out of range")
		risk = clamped
	}
	result.LeakageRiskScore = risk

	result.SavingsInsight = strings.TrimSpace(stringify(raw[models.FieldSavingsInsight]))
	if result.SavingsInsight == "" {
		correct(models.FieldSavingsInsight, raw[models.FieldSavingsInsight], DefaultSavingsInsight, "missing insight")
		result.SavingsInsight = DefaultSavingsInsight
	}

	return result, corrections, nil
}

func stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func coerceDate(value interface{}, today time.Time) string {
	text := strings.TrimSpace(stringify(value))
	if _, err := time.Parse(models.DateLayout, text); err == nil {
		return text
	}
	if ts, err := time.Parse(time.RFC3339, text); err == nil {
		return ts.Format(models.DateLayout)
	}
	return today.Format(models.DateLayout)
}

// coerceBool reports false as its second result when the value was not a real boolean
func coerceBool(value interface{}) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		return err == nil && parsed, false
	case float64:
		return v != 0, false
	default:
		return false, false
	}
}

func coerceFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, !math.IsNaN(v) && !math.IsInf(v, 0)
	case int:
		return float64(v), true
	case json.Number:
		return coerceFloat(v.String())
	case string:
		match := leadingFloat.FindString(strings.TrimSpace(v))
		if match == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(match, 64)
		return parsed, err == nil
	default:
		return 0, false
	}
}

func coerceInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) {
			return 0, false
		}
		return int(math.Trunc(math.Max(math.MinInt32, math.Min(math.MaxInt32, v)))), true
	case int:
		return v, true
	case json.Number:
		return coerceInt(v.String())
	case string:
		match := leadingInt.FindString(strings.TrimSpace(v))
		if match == "" {
			return 0, false
		}
		parsed, err := strconv.Atoi(match)
		return parsed, err == nil
	default:
		return 0, false
	}
}
