package dto

import (
	"github.com/grana-app/grana_backend/internal/core/domain"
	"github.com/grana-app/grana_backend/internal/utils/moneyfmt"
	"github.com/shopspring/decimal"
)

// CategorySummaryResponse is one expense category's slice of a period summary.
type CategorySummaryResponse struct {
	Category   string          `json:"category"`
	Total      decimal.Decimal `json:"total"`
	Percentage decimal.Decimal `json:"percentage"`
	Count      int             `json:"count"`
}

// SummaryResponse represents the period summary report response. All amounts
// are in the user's display currency.
type SummaryResponse struct {
	PeriodStart     string                    `json:"periodStart"`
	PeriodEnd       string                    `json:"periodEnd"`
	DisplayCurrency string                    `json:"displayCurrency"`
	TotalIncome     decimal.Decimal           `json:"totalIncome"`
	TotalExpenses   decimal.Decimal           `json:"totalExpenses"`
	NetResult       decimal.Decimal           `json:"netResult"`
	Formatted       SummaryFormatted          `json:"formatted"`
	ByCategory      []CategorySummaryResponse `json:"byCategory"`
	RatesStale      bool                      `json:"ratesStale"`
}

// SummaryFormatted carries display-ready strings for the headline figures.
type SummaryFormatted struct {
	TotalIncome   string `json:"totalIncome"`
	TotalExpenses string `json:"totalExpenses"`
	NetResult     string `json:"netResult"`
}

// ComparisonResponse pairs the current period with the previous one plus
// percentage deltas per metric.
type ComparisonResponse struct {
	Current          SummaryResponse `json:"current"`
	Previous         SummaryResponse `json:"previous"`
	IncomeChangePct  decimal.Decimal `json:"incomeChangePct"`
	ExpenseChangePct decimal.Decimal `json:"expenseChangePct"`
	NetChangePct     decimal.Decimal `json:"netChangePct"`
}

// ToSummaryResponse converts a domain aggregation result to a response DTO,
// attaching display-formatted figures for the given display currency.
func ToSummaryResponse(result *domain.AggregationResult, currency domain.Currency) SummaryResponse {
	byCategory := make([]CategorySummaryResponse, len(result.ByCategory))
	for i, cat := range result.ByCategory {
		byCategory[i] = CategorySummaryResponse{
			Category:   cat.Category,
			Total:      cat.Total,
			Percentage: cat.Percentage,
			Count:      cat.Count,
		}
	}

	return SummaryResponse{
		PeriodStart:     result.PeriodStart.Format("2006-01-02"),
		PeriodEnd:       result.PeriodEnd.Format("2006-01-02"),
		DisplayCurrency: result.DisplayCurrency,
		TotalIncome:     result.TotalIncome,
		TotalExpenses:   result.TotalExpenses,
		NetResult:       result.NetResult,
		Formatted: SummaryFormatted{
			TotalIncome:   moneyfmt.FormatWithCurrency(result.TotalIncome, currency),
			TotalExpenses: moneyfmt.FormatWithCurrency(result.TotalExpenses, currency),
			NetResult:     moneyfmt.FormatWithCurrency(result.NetResult, currency),
		},
		ByCategory: byCategory,
		RatesStale: result.RatesStale,
	}
}

// ToComparisonResponse converts a domain period comparison to a response DTO.
func ToComparisonResponse(cmp *domain.PeriodComparison, currency domain.Currency) ComparisonResponse {
	return ComparisonResponse{
		Current:          ToSummaryResponse(&cmp.Current, currency),
		Previous:         ToSummaryResponse(&cmp.Previous, currency),
		IncomeChangePct:  cmp.IncomeChangePct,
		ExpenseChangePct: cmp.ExpenseChangePct,
		NetChangePct:     cmp.NetChangePct,
	}
}
