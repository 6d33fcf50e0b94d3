package models

// Wallet represents a wallet row.
type Wallet struct {
	WalletID     string `json:"walletID"` // Primary Key (UUID)
	UserID       string `json:"userID"`
	Name         string `json:"name"`
	CurrencyCode string `json:"currencyCode"`
	AuditFields
}
