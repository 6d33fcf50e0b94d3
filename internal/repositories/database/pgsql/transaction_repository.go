package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/grana-app/grana_backend/internal/core/domain"
	portsrepo "github.com/grana-app/grana_backend/internal/core/ports/repositories"
	"github.com/grana-app/grana_backend/internal/models"
	"github.com/grana-app/grana_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, user_id, wallet_id, amount, transaction_type, COALESCE(currency_code, ''), category, description, transaction_date, created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.CollectableRow) (models.Transaction, error) {
	var txn models.Transaction
	err := row.Scan(
		&txn.TransactionID,
		&txn.UserID,
		&txn.WalletID,
		&txn.Amount,
		&txn.TransactionType,
		&txn.CurrencyCode,
		&txn.Category,
		&txn.Description,
		&txn.TransactionDate,
		&txn.CreatedAt,
		&txn.CreatedBy,
		&txn.LastUpdatedAt,
		&txn.LastUpdatedBy,
	)
	return txn, err
}

// SaveTransaction persists a new transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	modelTxn := mapping.ToModelTransaction(txn)

	query := `
		INSERT INTO transactions (transaction_id, user_id, wallet_id, amount, transaction_type, currency_code, category, description, transaction_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelTxn.TransactionID,
		modelTxn.UserID,
		modelTxn.WalletID,
		modelTxn.Amount,
		modelTxn.TransactionType,
		modelTxn.CurrencyCode,
		modelTxn.Category,
		modelTxn.Description,
		modelTxn.TransactionDate,
		modelTxn.CreatedAt,
		modelTxn.CreatedBy,
		modelTxn.LastUpdatedAt,
		modelTxn.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", modelTxn.TransactionID, err)
	}
	return nil
}

// ListTransactions retrieves a user's transactions, filtered by calendar date
// when a period is given. Rows with no currency come back normalized to the
// base currency via the domain mapping.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, userID string, period domain.Period) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1
		ORDER BY transaction_date, created_at;
	`
	args := []any{userID}

	if !period.IsZero() {
		query = `
			SELECT ` + transactionColumns + `
			FROM transactions
			WHERE user_id = $1 AND transaction_date >= $2 AND transaction_date <= $3
			ORDER BY transaction_date, created_at;
		`
		args = append(args, period.Start, period.End)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	modelTxns, err := pgx.CollectRows(rows, scanTransaction)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Transaction{}, nil
		}
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

// ListTransactionsByWallet retrieves all transactions recorded in one wallet.
func (r *PgxTransactionRepository) ListTransactionsByWallet(ctx context.Context, walletID string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE wallet_id = $1
		ORDER BY transaction_date, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, walletID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for wallet %s: %w", walletID, err)
	}
	defer rows.Close()

	modelTxns, err := pgx.CollectRows(rows, scanTransaction)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Transaction{}, nil
		}
		return nil, fmt.Errorf("failed to scan wallet transactions: %w", err)
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nil
}
