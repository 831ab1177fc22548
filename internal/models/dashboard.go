package models

import "github.com/shopspring/decimal"

const TopLeakageCategoryLimit = 5

// CategoryAmount is one entry of the high-risk category ranking
type CategoryAmount struct {
	Category string
	Amount   decimal.Decimal
}

// DashboardSummary holds the calendar-year aggregates for one owner
type DashboardSummary struct {
	Year                 int
	TotalExpensesYTD     decimal.Decimal
	TotalGSTClaimed      decimal.Decimal
	TotalOtherTaxes      decimal.Decimal
	RiskScoreAverage     decimal.Decimal
	TopLeakageCategories []CategoryAmount
}
