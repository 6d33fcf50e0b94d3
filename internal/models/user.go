package models

// User holds the profile row fields this service cares about.
type User struct {
	UserID                string `json:"userID"` // Primary Key (UUID)
	Name                  string `json:"name"`
	PreferredCurrencyCode string `json:"preferredCurrencyCode"`
	AuditFields
}
