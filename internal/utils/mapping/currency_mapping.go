package mapping

import (
	"github.com/grana-app/grana_backend/internal/core/domain"
	"github.com/grana-app/grana_backend/internal/models"
)

// ToModelCurrency converts a domain currency to its model representation.
func ToModelCurrency(currency domain.Currency) models.Currency {
	return models.Currency{
		CurrencyCode: currency.CurrencyCode,
		Symbol:       currency.Symbol,
		Name:         currency.Name,
		Precision:    currency.Precision,
		AuditFields:  ToModelAuditFields(currency.AuditFields),
	}
}

// ToDomainCurrency converts a model currency to its domain representation.
func ToDomainCurrency(currency models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyCode: currency.CurrencyCode,
		Symbol:       currency.Symbol,
		Name:         currency.Name,
		Precision:    currency.Precision,
		AuditFields:  ToDomainAuditFields(currency.AuditFields),
	}
}

// ToDomainCurrencySlice converts a slice of model currencies to domain currencies.
func ToDomainCurrencySlice(currencies []models.Currency) []domain.Currency {
	result := make([]domain.Currency, len(currencies))
	for i, c := range currencies {
		result[i] = ToDomainCurrency(c)
	}
	return result
}
