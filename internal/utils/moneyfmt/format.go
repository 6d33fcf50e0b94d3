package moneyfmt

import (
	"github.com/grana-app/grana_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatWithCurrency renders an amount with the currency's symbol and
// precision. Trailing zeros are kept so every amount shows the currency's
// full precision.
// Example: 1234.567 with BRL (symbol "R$", precision 2) returns "R$ 1234.57"
// Example: 12.5 with BRL returns "R$ 12.50"
func FormatWithCurrency(amount decimal.Decimal, currency domain.Currency) string {
	return currency.Symbol + " " + amount.StringFixed(int32(currency.Precision))
}

// FormatWithPrecision formats an amount with the given precision, for callers
// that only have the precision value at hand.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
