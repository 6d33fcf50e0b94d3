package domain_test

import (
	"testing"

	"github.com/grana-app/grana_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		previous string
		want     string
	}{
		{"increase", "150", "100", "50"},
		{"decrease", "50", "100", "-50"},
		{"unchanged", "100", "100", "0"},
		{"zero previous yields zero", "100", "0", "0"},
		{"negative previous yields zero", "100", "-50", "0"},
		{"rounds to two places", "100", "3", "3233.33"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.PercentChange(
				decimal.RequireFromString(tt.current),
				decimal.RequireFromString(tt.previous),
			)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestTransaction_SignedAmount(t *testing.T) {
	income := domain.Transaction{Amount: decimal.NewFromInt(10), TransactionType: domain.Income}
	expense := domain.Transaction{Amount: decimal.NewFromInt(10), TransactionType: domain.Expense}

	assert.True(t, income.SignedAmount().Equal(decimal.NewFromInt(10)))
	assert.True(t, expense.SignedAmount().Equal(decimal.NewFromInt(-10)))
}

func TestTransaction_NormalizeDefaultsCurrency(t *testing.T) {
	txn := domain.Transaction{Amount: decimal.NewFromInt(10)}

	txn.Normalize()

	assert.Equal(t, domain.BaseCurrencyCode, txn.CurrencyCode)
}
