package services

import (
	"context"
	"time"

	"github.com/grana-app/grana_backend/internal/core/domain"
	"github.com/grana-app/grana_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// RateSource is the external FX provider boundary. The backend refresh flow
// pulls from it and replaces the in-memory rate table wholesale.
type RateSource interface {
	FetchRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// RateProviderSvc is the conversion surface the aggregation core consumes.
// Lookups fail open: a missing pair falls back to a static table and finally
// to the identity rate, so conversion never blocks presentation.
type RateProviderSvc interface {
	// GetRate returns the directional rate for a pair; identity when from == to.
	GetRate(fromCurrencyCode, toCurrencyCode string) decimal.Decimal

	// Convert converts an amount between currencies, rounding once to two
	// decimal places at the point of conversion. Identity conversions return
	// the amount unchanged.
	Convert(amount decimal.Decimal, fromCurrencyCode, toCurrencyCode string) decimal.Decimal

	// IsStale reports whether the newest rate data is older than the
	// staleness threshold. Advisory only.
	IsStale() bool

	// LastRefreshed returns the instant of the last successful refresh.
	LastRefreshed() time.Time

	// Refresh fetches fresh rates and replaces the table. Concurrent calls
	// coalesce into a single in-flight request.
	Refresh(ctx context.Context) error

	// OnRefresh registers a callback fired after each successful refresh and
	// returns an unsubscribe handle.
	OnRefresh(fn func()) (unsubscribe func())
}

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetExchangeRate retrieves the stored rate between two currencies.
	GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// CreateExchangeRate persists a new exchange rate.
	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
