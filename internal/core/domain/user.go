package domain

// User holds the profile fields this service cares about. Authentication
// lives elsewhere; the backend trusts the identity it is handed.
type User struct {
	UserID                string `json:"userID"` // Primary Key (UUID)
	Name                  string `json:"name"`
	PreferredCurrencyCode string `json:"preferredCurrencyCode"` // Display currency for all amounts
	AuditFields
}
