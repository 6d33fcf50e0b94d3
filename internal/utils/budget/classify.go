package budget

import (
	"github.com/grana-app/grana_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	halfway    = decimal.NewFromFloat(0.5)
	comfort    = decimal.NewFromFloat(0.8)
	wholeLimit = decimal.NewFromInt(1)
)

// Classify maps spend against a limit onto a budget status. Breakpoints are
// fixed product behavior, not configurable per user:
//
//	ratio <= 0.5 -> EXCELLENT
//	ratio <= 0.8 -> GOOD
//	ratio <  1.0 -> WARNING
//	ratio >= 1.0 -> CRITICAL
//
// Comparisons are decimal so the boundaries are exact.
func Classify(spent, limit decimal.Decimal) domain.BudgetStatus {
	if limit.LessThanOrEqual(decimal.Zero) {
		// A zero or negative limit is already blown by any spend at all.
		if spent.GreaterThan(decimal.Zero) {
			return domain.BudgetCritical
		}
		return domain.BudgetExcellent
	}

	ratio := spent.Div(limit)
	switch {
	case ratio.LessThanOrEqual(halfway):
		return domain.BudgetExcellent
	case ratio.LessThanOrEqual(comfort):
		return domain.BudgetGood
	case ratio.LessThan(wholeLimit):
		return domain.BudgetWarning
	default:
		return domain.BudgetCritical
	}
}
