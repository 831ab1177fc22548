package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"receipt-ledger/internal/config"
	"receipt-ledger/internal/models"
)

// ReceiptPrompt is sent verbatim with every receipt image
const ReceiptPrompt = `
You are an expert financial analyst and OCR system. Analyze the receipt image and extract the following information in JSON format:

{
  "merchant": "Name of the vendor/merchant",
  "totalAmountStr": "Total amount with currency symbol (e.g., '₹1,500.00')",
  "date": "Transaction date in YYYY-MM-DD format",
  "category": "Expense category (Fuel, Meals, Supplies, Travel, Software, Office, Utilities, Marketing, Entertainment, Transportation, Other)",
  "gstAmountStr": "GST amount with currency or '₹0.00' if none",
  "otherTaxAmountStr": "Other taxes with currency or '₹0.00' if none",
  "taxDeductible": true/false,
  "confidenceScore": 0.0-1.0,
  "leakageRiskScore": 0-10,
  "flagReason": "Reason for risk score",
  "savingsInsight": "Actionable financial insight (max 15 words)"
}

LEAKAGE RISK SCORING GUIDE:
- 0-3: Essential business expense (office supplies, fuel, utilities)
- 4-6: Moderate risk (business meals, standard software)
- 7-10: High risk (luxury items, excessive entertainment, premium subscriptions)

Return ONLY valid JSON. No additional text.
`

// Fallback record values
const (
	FallbackAmount          = "₹0.00"
	FallbackConfidenceScore = 0.1
	FallbackRiskScore       = 5
	FallbackFlagReason      = "Unable to analyze receipt image"
	FallbackSavingsInsight  = "Please verify expense details manually"
)

var ErrNoJSONObject = errors.New("no JSON object found in response")

// FallbackExtraction is the canned record used when the model cannot be reached or understood
func FallbackExtraction(today time.Time) models.ReceiptExtraction {
	return models.ReceiptExtraction{
		Merchant:          UnknownMerchant,
		TotalAmountStr:    FallbackAmount,
		Date:              today.Format(models.DateLayout),
		Category:          models.CategoryOther,
		GSTAmountStr:      FallbackAmount,
		OtherTaxAmountStr: FallbackAmount,
		TaxDeductible:     false,
		ConfidenceScore:   FallbackConfidenceScore,
		LeakageRiskScore:  FallbackRiskScore,
		FlagReason:        FallbackFlagReason,
		SavingsInsight:    FallbackSavingsInsight,
	}
}

// ExtractJSONObject returns the first balanced {...} span of text that decodes as a JSON object.
// Braces inside string literals are ignored while matching.
func ExtractJSONObject(text string) (models.RawExtraction, error) {
	for start := strings.IndexByte(text, '{'); start >= 0; {
		if end := matchBrace(text, start); end > start {
			var raw models.RawExtraction
			if err := json.Unmarshal([]byte(text[start:end+1]), &raw); err == nil && raw != nil {
				return raw, nil
			}
		}

		next := strings.IndexByte(text[start+1:], '{')
		if next < 0 {
			break
		}
		start += next + 1
	}

	return nil, ErrNoJSONObject
}

// matchBrace returns the index of the brace closing the one at start, or -1
func matchBrace(text string, start int) int {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

// ReceiptExtractor asks the vision model for a receipt record, retrying with backoff
type ReceiptExtractor struct {
	vision  VisionClientInterface
	policy  RetryPolicy
	audit   AuditLoggerInterface
	metrics MetricsRecorderInterface
	logger  *slog.Logger
	now     func() time.Time
}

// NewReceiptExtractor creates a new receipt extractor
func NewReceiptExtractor(
	vision VisionClientInterface,
	cfg *config.VisionConfig,
	audit AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) *ReceiptExtractor {
	return &ReceiptExtractor{
		vision: vision,
		policy: RetryPolicy{
			MaxAttempts: cfg.MaxAttempts,
			Backoff:     ExponentialBackoff(cfg.BackoffBase),
			Sleep:       SleepContext,
		},
		audit:   audit,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}
}

// Extract never fails; when every attempt fails the fallback record is returned with Fallback set
func (e *ReceiptExtractor) Extract(ctx context.Context, image models.ReceiptImage) models.ExtractionResult {
	policy := e.policy
	policy.OnFailure = func(attempt int, err error, delay time.Duration) {
		e.metrics.IncrementCounter("vision.attempt", map[string]string{"result": "error"})
		e.audit.LogExtractionAttemptFailed(ctx, attempt, policy.MaxAttempts, err, delay)
	}

	outcome := Retry(ctx, policy,
		func(ctx context.Context, attempt int) (models.RawExtraction, error) {
			text, err := e.vision.GenerateContent(ctx, ReceiptPrompt, image)
			if err != nil {
				return nil, err
			}
			raw, err := ExtractJSONObject(text)
			if err != nil {
				return nil, fmt.Errorf("attempt %d: %w", attempt, err)
			}
			e.metrics.IncrementCounter("vision.attempt", map[string]string{"result": "success"})
			return raw, nil
		},
		func(lastErr error) models.RawExtraction {
			return FallbackExtraction(e.now()).Raw()
		},
	)

	if outcome.Fallback {
		e.logger.WarnContext(ctx, "receipt extraction fell back to placeholder record",
			"attempts", outcome.Attempts,
			"error", outcome.LastErr,
		)
		e.audit.LogExtractionFallbackUsed(ctx, outcome.Attempts)
	}

	return models.ExtractionResult{
		Raw:      outcome.Value,
		Attempts: outcome.Attempts,
		Fallback: outcome.Fallback,
	}
}
