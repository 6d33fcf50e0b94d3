package mapping

import (
	"github.com/grana-app/grana_backend/internal/core/domain"
	"github.com/grana-app/grana_backend/internal/models"
)

// ToModelAuditFields converts domain audit fields to the model representation.
func ToModelAuditFields(fields domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     fields.CreatedAt,
		CreatedBy:     fields.CreatedBy,
		LastUpdatedAt: fields.LastUpdatedAt,
		LastUpdatedBy: fields.LastUpdatedBy,
	}
}

// ToDomainAuditFields converts model audit fields to the domain representation.
func ToDomainAuditFields(fields models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     fields.CreatedAt,
		CreatedBy:     fields.CreatedBy,
		LastUpdatedAt: fields.LastUpdatedAt,
		LastUpdatedBy: fields.LastUpdatedBy,
	}
}
