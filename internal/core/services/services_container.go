package services

import (
	portsrepo "github.com/grana-app/grana_backend/internal/core/ports/repositories"
	portssvc "github.com/grana-app/grana_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. The rate table is constructed by the caller and
// shared by reference with every service that converts amounts.
func NewServiceContainer(repos portsrepo.RepositoryProvider, rateTable *RateTable) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Rates = rateTable
	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.User = NewUserService(repos.UserRepo, repos.CurrencyRepo)
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo, container.Currency, rateTable)
	container.Reporting = NewReportingService(repos.TransactionRepo, container.User, rateTable)
	container.Goal = NewGoalService(repos.GoalRepo, container.Reporting, container.User)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.WalletRepo)
	container.Wallet = NewWalletService(repos.WalletRepo, repos.TransactionRepo, container.User, rateTable)

	return container
}
