package database

import (
	"testing"
	"time"

	"receipt-ledger/internal/config"
	"receipt-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens a migrated in-memory sqlite database.
// The pool is pinned to one connection because every new sqlite :memory: connection is a fresh database.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = testDB.Close()
	})

	return testDB
}

// TestExpenseOption customizes an expense built by CreateTestExpense
type TestExpenseOption func(*models.Expense)

func WithDate(date time.Time) TestExpenseOption {
	return func(e *models.Expense) { e.Date = datatypes.Date(date) }
}

func WithRisk(score int) TestExpenseOption {
	return func(e *models.Expense) { e.LeakageRiskScore = score }
}

func WithCategory(category string) TestExpenseOption {
	return func(e *models.Expense) { e.Category = category }
}

func WithAmounts(total, gst, other string) TestExpenseOption {
	return func(e *models.Expense) {
		e.TotalAmountStr = "₹" + total
		e.TotalAmountNumeric = decimal.RequireFromString(total)
		e.GSTAmountStr = "₹" + gst
		e.GSTAmountNumeric = decimal.RequireFromString(gst)
		e.OtherTaxAmountStr = "₹" + other
		e.OtherTaxAmountNumeric = decimal.RequireFromString(other)
	}
}

func WithCreatedAt(at time.Time) TestExpenseOption {
	return func(e *models.Expense) { e.CreatedAt = at }
}

// CreateTestExpense inserts an expense for the owner with sensible defaults
func CreateTestExpense(t *testing.T, db *DB, owner uuid.UUID, opts ...TestExpenseOption) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:                owner,
		Merchant:              "Test Merchant",
		Date:                  datatypes.Date(time.Now().UTC()),
		Category:              models.CategoryOffice,
		TotalAmountStr:        "₹100.00",
		TotalAmountNumeric:    decimal.RequireFromString("100.00"),
		GSTAmountStr:          "₹18.00",
		GSTAmountNumeric:      decimal.RequireFromString("18.00"),
		OtherTaxAmountStr:     "₹0.00",
		OtherTaxAmountNumeric: decimal.Zero,
		ConfidenceScore:       0.9,
		LeakageRiskScore:      2,
		FlagReason:            "Essential office purchase",
		SavingsInsight:        "Buy in bulk",
	}
	for _, opt := range opts {
		opt(expense)
	}

	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}

	return expense
}

// CleanupTestDB removes every expense row
func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if err := db.Exec("DELETE FROM expenses").Error; err != nil {
		t.Logf("failed to cleanup table expenses: %v", err)
	}
}
