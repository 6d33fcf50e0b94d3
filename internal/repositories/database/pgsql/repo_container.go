package pgsql

import (
	portsrepo "github.com/grana-app/grana_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	currencyRepo := newPgxCurrencyRepository(dbPool)
	exchangeRateRepo := newPgxExchangeRateRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool)
	goalRepo := newPgxGoalRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	walletRepo := newPgxWalletRepository(dbPool)

	return portsrepo.RepositoryProvider{
		CurrencyRepo:     currencyRepo,
		ExchangeRateRepo: exchangeRateRepo,
		TransactionRepo:  transactionRepo,
		GoalRepo:         goalRepo,
		UserRepo:         userRepo,
		WalletRepo:       walletRepo,
	}
}
