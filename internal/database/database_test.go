package database

import (
	"context"
	"testing"

	"receipt-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestDB_MigratesExpenses(t *testing.T) {
	db := SetupTestDB(t)

	assert.True(t, db.Migrator().HasTable(&models.Expense{}))
	for _, column := range []string{"user_id", "total_amount_numeric", "gst_amount_str", "leakage_risk_score", "raw_extraction"} {
		assert.True(t, db.Migrator().HasColumn(&models.Expense{}, column), "missing column %s", column)
	}
}

func TestCreateIndexes(t *testing.T) {
	db := SetupTestDB(t)

	require.NoError(t, db.CreateIndexes())
	assert.True(t, db.Migrator().HasIndex(&models.Expense{}, "idx_expenses_flagged"))

	// idempotent
	require.NoError(t, db.CreateIndexes())
}

func TestHealthCheck(t *testing.T) {
	db := SetupTestDB(t)

	assert.NoError(t, db.HealthCheck(context.Background()))
}

func TestCreateTestExpense_RoundTrip(t *testing.T) {
	db := SetupTestDB(t)
	owner := uuid.New()

	created := CreateTestExpense(t, db, owner, WithRisk(8), WithAmounts("250.50", "45.09", "0"))

	var loaded models.Expense
	require.NoError(t, db.First(&loaded, "id = ?", created.ID).Error)
	assert.Equal(t, owner, loaded.UserID)
	assert.Equal(t, 8, loaded.LeakageRiskScore)
	assert.True(t, loaded.TotalAmountNumeric.Equal(created.TotalAmountNumeric))
	assert.Equal(t, created.DateString(), loaded.DateString())

	CleanupTestDB(t, db)
	var count int64
	require.NoError(t, db.Model(&models.Expense{}).Count(&count).Error)
	assert.Zero(t, count)
}
