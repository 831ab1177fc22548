package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"receipt-ledger/internal/models"
	"receipt-ledger/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// DashboardService computes year-to-date aggregates over the caller's expenses
type DashboardService struct {
	repo    repositories.ExpenseRepositoryInterface
	metrics MetricsRecorderInterface
	logger  *slog.Logger
	now     func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	repo repositories.ExpenseRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) *DashboardService {
	return &DashboardService{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}
}

// GetDashboard runs the five aggregation queries concurrently; any failure fails the whole dashboard.
// The year is the server's local calendar year, Jan 1 through Dec 31 inclusive. Receipt dates
// repaired or defaulted by the pipeline come from the same local clock.
func (s *DashboardService) GetDashboard(ctx context.Context, userID uuid.UUID) (*models.DashboardSummary, error) {
	start := time.Now()
	defer func() {
		s.metrics.RecordProcessingTime("dashboard.aggregation", time.Since(start))
	}()

	year := s.now().Year()
	from, to := models.YearRange(year)
	minRisk := models.HighRiskThreshold

	var totals, gst, otherTaxes, risks, highRisk []models.Expense
	query := func(dest *[]models.Expense, filters models.ExpenseFilters) func() error {
		return func() error {
			rows, err := s.repo.ListForAggregation(ctx, userID, filters)
			if err != nil {
				return err
			}
			*dest = rows
			return nil
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(query(&totals, models.ExpenseFilters{From: from, To: to, Columns: []string{"total_amount_numeric"}}))
	g.Go(query(&gst, models.ExpenseFilters{From: from, To: to, Columns: []string{"gst_amount_numeric"}}))
	g.Go(query(&otherTaxes, models.ExpenseFilters{From: from, To: to, Columns: []string{"other_tax_amount_numeric"}}))
	g.Go(query(&risks, models.ExpenseFilters{From: from, To: to, Columns: []string{"leakage_risk_score"}}))
	g.Go(query(&highRisk, models.ExpenseFilters{
		From:         from,
		To:           to,
		MinRiskScore: &minRisk,
		Columns:      []string{"category", "total_amount_numeric", "leakage_risk_score"},
	}))

	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "dashboard aggregation failed", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to aggregate dashboard: %w", err)
	}

	return &models.DashboardSummary{
		Year:                 year,
		TotalExpensesYTD:     sumAmounts(totals, func(e models.Expense) decimal.Decimal { return e.TotalAmountNumeric }),
		TotalGSTClaimed:      sumAmounts(gst, func(e models.Expense) decimal.Decimal { return e.GSTAmountNumeric }),
		TotalOtherTaxes:      sumAmounts(otherTaxes, func(e models.Expense) decimal.Decimal { return e.OtherTaxAmountNumeric }),
		RiskScoreAverage:     averageRisk(risks),
		TopLeakageCategories: topLeakageCategories(highRisk, models.TopLeakageCategoryLimit),
	}, nil
}

func sumAmounts(rows []models.Expense, amount func(models.Expense) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(amount(row))
	}
	return total
}

// averageRisk is the mean risk score rounded to two decimals, zero when there are no rows
func averageRisk(rows []models.Expense) decimal.Decimal {
	if len(rows) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, row := range rows {
		sum = sum.Add(decimal.NewFromInt(int64(row.LeakageRiskScore)))
	}
	return sum.Div(decimal.NewFromInt(int64(len(rows)))).Round(2)
}

// topLeakageCategories sums amounts per category and keeps the largest limit entries.
// Ties keep the order in which categories first appeared.
func topLeakageCategories(rows []models.Expense, limit int) []models.CategoryAmount {
	index := make(map[string]int)
	ranking := make([]models.CategoryAmount, 0)

	for _, row := range rows {
		i, seen := index[row.Category]
		if !seen {
			i = len(ranking)
			index[row.Category] = i
			ranking = append(ranking, models.CategoryAmount{Category: row.Category, Amount: decimal.Zero})
		}
		ranking[i].Amount = ranking[i].Amount.Add(row.TotalAmountNumeric)
	}

	sort.SliceStable(ranking, func(a, b int) bool {
		return ranking[a].Amount.GreaterThan(ranking[b].Amount)
	})

	if len(ranking) > limit {
		ranking = ranking[:limit]
	}
	return ranking
}
