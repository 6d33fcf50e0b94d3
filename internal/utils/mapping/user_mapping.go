package mapping

import (
	"github.com/grana-app/grana_backend/internal/core/domain"
	"github.com/grana-app/grana_backend/internal/models"
)

// ToModelUser converts a domain user to its model representation.
func ToModelUser(user domain.User) models.User {
	return models.User{
		UserID:                user.UserID,
		Name:                  user.Name,
		PreferredCurrencyCode: user.PreferredCurrencyCode,
		AuditFields:           ToModelAuditFields(user.AuditFields),
	}
}

// ToDomainUser converts a model user to its domain representation.
func ToDomainUser(user models.User) domain.User {
	return domain.User{
		UserID:                user.UserID,
		Name:                  user.Name,
		PreferredCurrencyCode: user.PreferredCurrencyCode,
		AuditFields:           ToDomainAuditFields(user.AuditFields),
	}
}
