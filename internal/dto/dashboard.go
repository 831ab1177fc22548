package dto

import "receipt-ledger/internal/models"

// CategoryAmountResponse is one entry of topLeakageCategories
type CategoryAmountResponse struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// DashboardResponse is the body of GET /expenses/dashboard
type DashboardResponse struct {
	TotalExpensesYTD     float64                  `json:"totalExpensesYTD"`
	TotalGSTClaimed      float64                  `json:"totalGSTClaimed"`
	TotalOtherTaxes      float64                  `json:"totalOtherTaxes"`
	RiskScoreAverage     float64                  `json:"riskScoreAverage"`
	TopLeakageCategories []CategoryAmountResponse `json:"topLeakageCategories"`
}

func NewDashboardResponse(summary *models.DashboardSummary) DashboardResponse {
	top := make([]CategoryAmountResponse, 0, len(summary.TopLeakageCategories))
	for _, entry := range summary.TopLeakageCategories {
		top = append(top, CategoryAmountResponse{
			Category: entry.Category,
			Amount:   entry.Amount.Round(2).InexactFloat64(),
		})
	}

	return DashboardResponse{
		TotalExpensesYTD:     summary.TotalExpensesYTD.Round(2).InexactFloat64(),
		TotalGSTClaimed:      summary.TotalGSTClaimed.Round(2).InexactFloat64(),
		TotalOtherTaxes:      summary.TotalOtherTaxes.Round(2).InexactFloat64(),
		RiskScoreAverage:     summary.RiskScoreAverage.Round(2).InexactFloat64(),
		TopLeakageCategories: top,
	}
}
