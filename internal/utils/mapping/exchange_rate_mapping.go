package mapping

import (
	"github.com/grana-app/grana_backend/internal/core/domain"
	"github.com/grana-app/grana_backend/internal/models"
)

// ToModelExchangeRate converts a domain exchange rate to its model representation.
func ToModelExchangeRate(rate domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		ExchangeRateID:   rate.ExchangeRateID,
		FromCurrencyCode: rate.FromCurrencyCode,
		ToCurrencyCode:   rate.ToCurrencyCode,
		Rate:             rate.Rate,
		DateEffective:    rate.DateEffective,
		AuditFields:      ToModelAuditFields(rate.AuditFields),
	}
}

// ToDomainExchangeRate converts a model exchange rate to its domain representation.
func ToDomainExchangeRate(rate models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		ExchangeRateID:   rate.ExchangeRateID,
		FromCurrencyCode: rate.FromCurrencyCode,
		ToCurrencyCode:   rate.ToCurrencyCode,
		Rate:             rate.Rate,
		DateEffective:    rate.DateEffective,
		AuditFields:      ToDomainAuditFields(rate.AuditFields),
	}
}

// ToDomainExchangeRateSlice converts a slice of model rates to domain rates.
func ToDomainExchangeRateSlice(rates []models.ExchangeRate) []domain.ExchangeRate {
	result := make([]domain.ExchangeRate, len(rates))
	for i, r := range rates {
		result[i] = ToDomainExchangeRate(r)
	}
	return result
}
