package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	MinLeakageRiskScore = 0
	MaxLeakageRiskScore = 10

	// HighRiskThreshold is the score at or above which an expense is flagged
	HighRiskThreshold     = 7
	ModerateRiskThreshold = 4

	RiskLevelHigh     = "high"
	RiskLevelModerate = "moderate"
	RiskLevelLow      = "low"

	DateLayout = "2006-01-02"
)

var (
	ErrMissingOwner       = errors.New("expense owner is required")
	ErrInvalidCategory    = errors.New("invalid expense category")
	ErrRiskOutOfRange     = errors.New("leakage risk score must be between 0 and 10")
	ErrConfidenceOutRange = errors.New("confidence score must be between 0 and 1")
	ErrNegativeAmount     = errors.New("expense amounts cannot be negative")
)

// Expense is a receipt-derived spending record owned by exactly one user.
// Numeric amounts are derived from their display strings at insert time and never updated.
type Expense struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID                uuid.UUID       `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	Merchant              string          `gorm:"type:varchar(255);not null" json:"merchant"`
	Date                  datatypes.Date  `gorm:"not null;index" json:"date"`
	Category              string          `gorm:"type:varchar(50);not null" json:"category"`
	TotalAmountStr        string          `gorm:"column:total_amount_str;type:varchar(64)" json:"total_amount_str"`
	TotalAmountNumeric    decimal.Decimal `gorm:"column:total_amount_numeric;type:decimal(12,2);not null;default:0" json:"total_amount_numeric"`
	GSTAmountStr          string          `gorm:"column:gst_amount_str;type:varchar(64)" json:"gst_amount_str"`
	GSTAmountNumeric      decimal.Decimal `gorm:"column:gst_amount_numeric;type:decimal(12,2);not null;default:0" json:"gst_amount_numeric"`
	OtherTaxAmountStr     string          `gorm:"column:other_tax_amount_str;type:varchar(64)" json:"other_tax_amount_str"`
	OtherTaxAmountNumeric decimal.Decimal `gorm:"column:other_tax_amount_numeric;type:decimal(12,2);not null;default:0" json:"other_tax_amount_numeric"`
	TaxDeductible         bool            `gorm:"not null;default:false" json:"tax_deductible"`
	ConfidenceScore       float64         `gorm:"type:numeric(3,2);not null" json:"confidence_score"`
	LeakageRiskScore      int             `gorm:"type:smallint;not null;index" json:"leakage_risk_score"`
	FlagReason            string          `gorm:"type:text" json:"flag_reason"`
	SavingsInsight        string          `gorm:"type:text" json:"savings_insight"`
	RawExtraction         datatypes.JSON  `gorm:"type:jsonb" json:"-"`
	CreatedAt             time.Time       `gorm:"not null;index" json:"created_at"`
}

// BeforeCreate hook for Expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	// Set timestamp if not already set (for tests)
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	return e.Validate()
}

// Validate checks the invariants every persisted expense must hold
func (e *Expense) Validate() error {
	if e.UserID == uuid.Nil {
		return ErrMissingOwner
	}

	if !IsValidCategory(e.Category) {
		return ErrInvalidCategory
	}

	if e.LeakageRiskScore < MinLeakageRiskScore || e.LeakageRiskScore > MaxLeakageRiskScore {
		return ErrRiskOutOfRange
	}

	if e.ConfidenceScore < 0 || e.ConfidenceScore > 1 {
		return ErrConfidenceOutRange
	}

	if e.TotalAmountNumeric.IsNegative() || e.GSTAmountNumeric.IsNegative() || e.OtherTaxAmountNumeric.IsNegative() {
		return ErrNegativeAmount
	}

	return nil
}

// IsFlagged reports whether the expense meets the high-risk threshold
func (e *Expense) IsFlagged() bool {
	return e.LeakageRiskScore >= HighRiskThreshold
}

// RiskLevel buckets the leakage risk score the way the dashboard colors it
func (e *Expense) RiskLevel() string {
	return RiskLevelFor(e.LeakageRiskScore)
}

// DateString renders the calendar date as YYYY-MM-DD
func (e *Expense) DateString() string {
	return time.Time(e.Date).Format(DateLayout)
}

// TableName returns the table name for Expense
func (e *Expense) TableName() string {
	return "expenses"
}

// RiskLevelFor maps a leakage risk score onto high/moderate/low
func RiskLevelFor(score int) string {
	switch {
	case score >= HighRiskThreshold:
		return RiskLevelHigh
	case score >= ModerateRiskThreshold:
		return RiskLevelModerate
	default:
		return RiskLevelLow
	}
}
