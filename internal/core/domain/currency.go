package domain

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g., "BRL")
	Symbol       string `json:"symbol"`       // e.g., "R$"
	Name         string `json:"name"`         // e.g., "Brazilian Real"
	Precision    int    `json:"precision"`    // Decimal places shown for the currency
	AuditFields
}
