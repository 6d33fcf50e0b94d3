package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/grana-app/grana_backend/internal/apperrors"
	"github.com/grana-app/grana_backend/internal/core/domain"
	portsrepo "github.com/grana-app/grana_backend/internal/core/ports/repositories"
	"github.com/grana-app/grana_backend/internal/models"
	"github.com/grana-app/grana_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExchangeRateRepository struct {
	BaseRepository
}

// newPgxExchangeRateRepository creates a new repository for exchange rate data.
func newPgxExchangeRateRepository(pool *pgxpool.Pool) portsrepo.ExchangeRateRepositoryFacade {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

// SaveExchangeRate inserts a rate, updating in place when a rate for the same
// pair and effective date already exists.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	modelRate := mapping.ToModelExchangeRate(rate)

	query := `
		INSERT INTO exchange_rates (exchange_rate_id, from_currency_code, to_currency_code, rate, date_effective, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (from_currency_code, to_currency_code, date_effective) DO UPDATE SET
			rate = EXCLUDED.rate,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`

	_, err := r.Pool.Exec(ctx, query,
		modelRate.ExchangeRateID,
		modelRate.FromCurrencyCode,
		modelRate.ToCurrencyCode,
		modelRate.Rate,
		modelRate.DateEffective,
		modelRate.CreatedAt,
		modelRate.CreatedBy,
		modelRate.LastUpdatedAt,
		modelRate.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to save exchange rate %s->%s: %w", modelRate.FromCurrencyCode, modelRate.ToCurrencyCode, err)
	}
	return nil
}

// SaveExchangeRates persists a refresh batch inside a single transaction so a
// partial provider snapshot never lands.
func (r *PgxExchangeRateRepository) SaveExchangeRates(ctx context.Context, rates []domain.ExchangeRate) error {
	if len(rates) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	query := `
		INSERT INTO exchange_rates (exchange_rate_id, from_currency_code, to_currency_code, rate, date_effective, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (from_currency_code, to_currency_code, date_effective) DO UPDATE SET
			rate = EXCLUDED.rate,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`

	for _, rate := range rates {
		modelRate := mapping.ToModelExchangeRate(rate)
		_, err := tx.Exec(ctx, query,
			modelRate.ExchangeRateID,
			modelRate.FromCurrencyCode,
			modelRate.ToCurrencyCode,
			modelRate.Rate,
			modelRate.DateEffective,
			modelRate.CreatedAt,
			modelRate.CreatedBy,
			modelRate.LastUpdatedAt,
			modelRate.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to save exchange rate batch entry %s->%s: %w", modelRate.FromCurrencyCode, modelRate.ToCurrencyCode, err)
		}
	}

	return r.Commit(ctx, tx)
}

// FindExchangeRate retrieves the latest stored rate for a directional pair.
// The opposite pair is a distinct row and is never consulted.
func (r *PgxExchangeRateRepository) FindExchangeRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error) {
	query := `
		SELECT exchange_rate_id, from_currency_code, to_currency_code, rate, date_effective, created_at, created_by, last_updated_at, last_updated_by
		FROM exchange_rates
		WHERE from_currency_code = $1 AND to_currency_code = $2
		ORDER BY date_effective DESC
		LIMIT 1;
	`
	var modelRate models.ExchangeRate
	err := r.Pool.QueryRow(ctx, query, fromCurrencyCode, toCurrencyCode).Scan(
		&modelRate.ExchangeRateID,
		&modelRate.FromCurrencyCode,
		&modelRate.ToCurrencyCode,
		&modelRate.Rate,
		&modelRate.DateEffective,
		&modelRate.CreatedAt,
		&modelRate.CreatedBy,
		&modelRate.LastUpdatedAt,
		&modelRate.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find exchange rate %s->%s: %w", fromCurrencyCode, toCurrencyCode, err)
	}

	domainRate := mapping.ToDomainExchangeRate(modelRate)
	return &domainRate, nil
}

// ListLatestRates retrieves the most recent rate per directional pair.
func (r *PgxExchangeRateRepository) ListLatestRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	query := `
		SELECT DISTINCT ON (from_currency_code, to_currency_code)
			exchange_rate_id, from_currency_code, to_currency_code, rate, date_effective, created_at, created_by, last_updated_at, last_updated_by
		FROM exchange_rates
		ORDER BY from_currency_code, to_currency_code, date_effective DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest exchange rates: %w", err)
	}
	defer rows.Close()

	modelRates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExchangeRate, error) {
		var rate models.ExchangeRate
		err := row.Scan(
			&rate.ExchangeRateID,
			&rate.FromCurrencyCode,
			&rate.ToCurrencyCode,
			&rate.Rate,
			&rate.DateEffective,
			&rate.CreatedAt,
			&rate.CreatedBy,
			&rate.LastUpdatedAt,
			&rate.LastUpdatedBy,
		)
		return rate, err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.ExchangeRate{}, nil
		}
		return nil, fmt.Errorf("failed to scan latest exchange rates: %w", err)
	}

	return mapping.ToDomainExchangeRateSlice(modelRates), nil
}
