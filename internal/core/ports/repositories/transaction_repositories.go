package repositories

import (
	"context"

	"github.com/grana-app/grana_backend/internal/core/domain"
)

// TransactionReader defines read operations for transaction data.
// This core never mutates transactions it did not create itself.
type TransactionReader interface {
	// ListTransactions retrieves a user's transactions whose calendar date
	// falls inside the period. A zero period means no date filtering.
	// Returned transactions are normalized: missing currency codes have
	// already been defaulted to the base currency.
	ListTransactions(ctx context.Context, userID string, period domain.Period) ([]domain.Transaction, error)

	// ListTransactionsByWallet retrieves all transactions of one wallet.
	ListTransactionsByWallet(ctx context.Context, walletID string) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
