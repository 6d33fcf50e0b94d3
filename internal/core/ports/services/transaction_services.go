package services

import (
	"context"

	"github.com/grana-app/grana_backend/internal/core/domain"
	"github.com/grana-app/grana_backend/internal/dto"
)

// TransactionReaderSvc defines read operations for transactions
type TransactionReaderSvc interface {
	// ListTransactions retrieves a user's transactions for a period.
	// A zero period lists everything.
	ListTransactions(ctx context.Context, userID string, period domain.Period) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines write operations for transactions
type TransactionWriterSvc interface {
	// CreateTransaction records an income or expense entry.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
