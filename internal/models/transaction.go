package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents an income or expense row.
// Amount is always non-negative; the sign is conveyed by TransactionType.
type Transaction struct {
	TransactionID   string          `json:"transactionID"` // Primary Key (UUID)
	UserID          string          `json:"userID"`
	WalletID        string          `json:"walletID"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionType string          `json:"transactionType"` // INCOME or EXPENSE
	CurrencyCode    string          `json:"currencyCode"`
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	TransactionDate time.Time       `json:"transactionDate"` // DATE column
	AuditFields
}
