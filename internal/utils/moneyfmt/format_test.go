package moneyfmt_test

import (
	"testing"

	"github.com/grana-app/grana_backend/internal/core/domain"
	"github.com/grana-app/grana_backend/internal/utils/moneyfmt"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatWithCurrency(t *testing.T) {
	brl := domain.Currency{CurrencyCode: "BRL", Symbol: "R$", Precision: 2}

	assert.Equal(t, "R$ 1234.57", moneyfmt.FormatWithCurrency(decimal.RequireFromString("1234.567"), brl))
	assert.Equal(t, "R$ 0.00", moneyfmt.FormatWithCurrency(decimal.Zero, brl))
	assert.Equal(t, "R$ -12.50", moneyfmt.FormatWithCurrency(decimal.RequireFromString("-12.5"), brl))
}

func TestFormatWithCurrency_KeepsTrailingZeros(t *testing.T) {
	brl := domain.Currency{CurrencyCode: "BRL", Symbol: "R$", Precision: 2}

	// Amounts always render at the currency's full precision.
	assert.Equal(t, "R$ 12.50", moneyfmt.FormatWithCurrency(decimal.RequireFromString("12.5"), brl))
	assert.Equal(t, "R$ 100.00", moneyfmt.FormatWithCurrency(decimal.NewFromInt(100), brl))
}

func TestFormatWithPrecision(t *testing.T) {
	assert.Equal(t, "10.56", moneyfmt.FormatWithPrecision(decimal.RequireFromString("10.555"), 2))
	assert.Equal(t, "10.50", moneyfmt.FormatWithPrecision(decimal.RequireFromString("10.5"), 2))
	assert.Equal(t, "11", moneyfmt.FormatWithPrecision(decimal.RequireFromString("10.555"), 0))
}
