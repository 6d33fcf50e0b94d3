package dto

import (
	"github.com/shopspring/decimal"
)

// ConvertResponse is the result of a one-off currency conversion.
type ConvertResponse struct {
	Amount          decimal.Decimal `json:"amount"`
	FromCurrency    string          `json:"fromCurrency"`
	ToCurrency      string          `json:"toCurrency"`
	Rate            decimal.Decimal `json:"rate"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
	Formatted       string          `json:"formatted"`
	RatesStale      bool            `json:"ratesStale"`
}
