package domain

import "time"

// BaseCurrencyCode is the currency assumed for any transaction recorded
// without an explicit currency tag.
const BaseCurrencyCode = "BRL"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID reference
}
