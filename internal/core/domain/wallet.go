package domain

import "github.com/shopspring/decimal"

// Wallet groups transactions for a user, e.g. "Cash", "Nubank", "EUR savings".
type Wallet struct {
	WalletID     string `json:"walletID"` // Primary Key (UUID)
	UserID       string `json:"userID"`   // FK -> User.userID
	Name         string `json:"name"`
	CurrencyCode string `json:"currencyCode"` // Currency new transactions default to
	AuditFields
}

// WalletBalance is the net of a wallet's transactions converted into the
// user's display currency. Computed on demand, never persisted.
type WalletBalance struct {
	Wallet          Wallet          `json:"wallet"`
	Balance         decimal.Decimal `json:"balance"`
	DisplayCurrency string          `json:"displayCurrency"`
}
