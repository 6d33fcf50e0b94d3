package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategorySummary is one expense category's slice of a period summary.
type CategorySummary struct {
	Category   string          `json:"category"`
	Total      decimal.Decimal `json:"total"`      // Converted into the display currency
	Percentage decimal.Decimal `json:"percentage"` // Share of total expenses; 0 when expenses are 0
	Count      int             `json:"count"`
}

// AggregationResult summarizes a period's transactions in the user's display
// currency. It is recomputed on every query and never persisted.
type AggregationResult struct {
	TotalIncome     decimal.Decimal   `json:"totalIncome"`
	TotalExpenses   decimal.Decimal   `json:"totalExpenses"`
	NetResult       decimal.Decimal   `json:"netResult"`
	ByCategory      []CategorySummary `json:"byCategory"`
	PeriodStart     time.Time         `json:"periodStart"`
	PeriodEnd       time.Time         `json:"periodEnd"`
	DisplayCurrency string            `json:"displayCurrency"`
	RatesStale      bool              `json:"ratesStale"` // Advisory; amounts are still converted
}

// PeriodComparison pairs a period summary with the preceding period and the
// percentage change per metric. A zero previous value yields a 0% change.
type PeriodComparison struct {
	Current          AggregationResult `json:"current"`
	Previous         AggregationResult `json:"previous"`
	IncomeChangePct  decimal.Decimal   `json:"incomeChangePct"`
	ExpenseChangePct decimal.Decimal   `json:"expenseChangePct"`
	NetChangePct     decimal.Decimal   `json:"netChangePct"`
}

// PercentChange computes (current-previous)/previous*100, yielding 0 instead
// of blowing up when the previous value is not strictly positive.
func PercentChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Round(2)
}
