package budget_test

import (
	"testing"

	"github.com/grana-app/grana_backend/internal/core/domain"
	"github.com/grana-app/grana_backend/internal/utils/budget"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		spent string
		limit string
		want  domain.BudgetStatus
	}{
		{"no spend", "0", "100", domain.BudgetExcellent},
		{"exactly half", "50", "100", domain.BudgetExcellent},
		{"just over half", "50.01", "100", domain.BudgetGood},
		{"exactly eighty percent", "80", "100", domain.BudgetGood},
		{"just over eighty percent", "80.01", "100", domain.BudgetWarning},
		{"just under the limit", "99.99", "100", domain.BudgetWarning},
		{"exactly at the limit", "100", "100", domain.BudgetCritical},
		{"over the limit", "150", "100", domain.BudgetCritical},
		{"zero limit with spend", "1", "0", domain.BudgetCritical},
		{"zero limit without spend", "0", "0", domain.BudgetExcellent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := budget.Classify(
				decimal.RequireFromString(tt.spent),
				decimal.RequireFromString(tt.limit),
			)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_BoundariesAreDecimalExact(t *testing.T) {
	// 0.1+0.2 style float drift must not push a boundary value over.
	spent := decimal.RequireFromString("0.1").Add(decimal.RequireFromString("0.2")).Mul(decimal.NewFromInt(100))
	limit := decimal.NewFromInt(60) // ratio exactly 0.5

	assert.Equal(t, domain.BudgetExcellent, budget.Classify(spent, limit))
}
