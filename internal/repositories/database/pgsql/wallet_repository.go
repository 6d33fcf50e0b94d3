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

type PgxWalletRepository struct {
	BaseRepository
}

// newPgxWalletRepository creates a new repository for wallet data.
func newPgxWalletRepository(pool *pgxpool.Pool) portsrepo.WalletRepositoryFacade {
	return &PgxWalletRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.WalletRepositoryFacade = (*PgxWalletRepository)(nil)

// SaveWallet persists a new wallet.
func (r *PgxWalletRepository) SaveWallet(ctx context.Context, wallet domain.Wallet) error {
	modelWallet := mapping.ToModelWallet(wallet)

	query := `
		INSERT INTO wallets (wallet_id, user_id, name, currency_code, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelWallet.WalletID,
		modelWallet.UserID,
		modelWallet.Name,
		modelWallet.CurrencyCode,
		modelWallet.CreatedAt,
		modelWallet.CreatedBy,
		modelWallet.LastUpdatedAt,
		modelWallet.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to save wallet %s: %w", modelWallet.WalletID, err)
	}
	return nil
}

// FindWalletByID retrieves a wallet by its ID.
func (r *PgxWalletRepository) FindWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	query := `
		SELECT wallet_id, user_id, name, currency_code, created_at, created_by, last_updated_at, last_updated_by
		FROM wallets
		WHERE wallet_id = $1;
	`
	var modelWallet models.Wallet
	err := r.Pool.QueryRow(ctx, query, walletID).Scan(
		&modelWallet.WalletID,
		&modelWallet.UserID,
		&modelWallet.Name,
		&modelWallet.CurrencyCode,
		&modelWallet.CreatedAt,
		&modelWallet.CreatedBy,
		&modelWallet.LastUpdatedAt,
		&modelWallet.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find wallet %s: %w", walletID, err)
	}

	domainWallet := mapping.ToDomainWallet(modelWallet)
	return &domainWallet, nil
}

// ListWallets retrieves all wallets owned by a user.
func (r *PgxWalletRepository) ListWallets(ctx context.Context, userID string) ([]domain.Wallet, error) {
	query := `
		SELECT wallet_id, user_id, name, currency_code, created_at, created_by, last_updated_at, last_updated_by
		FROM wallets
		WHERE user_id = $1
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query wallets for user %s: %w", userID, err)
	}
	defer rows.Close()

	modelWallets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Wallet, error) {
		var wallet models.Wallet
		err := row.Scan(
			&wallet.WalletID,
			&wallet.UserID,
			&wallet.Name,
			&wallet.CurrencyCode,
			&wallet.CreatedAt,
			&wallet.CreatedBy,
			&wallet.LastUpdatedAt,
			&wallet.LastUpdatedBy,
		)
		return wallet, err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Wallet{}, nil
		}
		return nil, fmt.Errorf("failed to scan wallets: %w", err)
	}

	return mapping.ToDomainWalletSlice(modelWallets), nil
}
