package models

// Currency represents a supported currency row.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g., "BRL")
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	Precision    int    `json:"precision"`
	AuditFields
}
