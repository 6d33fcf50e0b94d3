package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/grana-app/grana_backend/internal/apperrors"
	"github.com/grana-app/grana_backend/internal/core/domain"
	portsrepo "github.com/grana-app/grana_backend/internal/core/ports/repositories"
	portssvc "github.com/grana-app/grana_backend/internal/core/ports/services"
	"github.com/grana-app/grana_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type transactionService struct {
	BaseService
	txnRepo    portsrepo.TransactionRepositoryFacade
	walletRepo portsrepo.WalletReader
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, walletRepo portsrepo.WalletReader) portssvc.TransactionSvcFacade {
	return &transactionService{
		txnRepo:    txnRepo,
		walletRepo: walletRepo,
	}
}

// Ensure transactionService implements the TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction records an income or expense entry. Amounts are always
// non-negative; the sign is conveyed by the transaction type. A missing
// currency defaults to the wallet's currency, then the base currency. This
// is the single normalization point for currency defaulting on the write
// path.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	if req.Amount.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be non-negative", apperrors.ErrValidation)
	}

	wallet, err := s.walletRepo.FindWalletByID(ctx, req.WalletID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: wallet '%s' not found", apperrors.ErrValidation, req.WalletID)
		}
		return nil, fmt.Errorf("failed to validate wallet: %w", err)
	}
	if wallet.UserID != userID {
		return nil, fmt.Errorf("%w: wallet does not belong to user", apperrors.ErrForbidden)
	}

	txnDate, err := time.Parse("2006-01-02", req.TransactionDate)
	if err != nil {
		return nil, fmt.Errorf("%w: transaction date must be YYYY-MM-DD", apperrors.ErrValidation)
	}

	currency := strings.ToUpper(req.CurrencyCode)
	if currency == "" {
		currency = wallet.CurrencyCode
	}
	if currency == "" {
		currency = domain.BaseCurrencyCode
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		UserID:          userID,
		WalletID:        req.WalletID,
		Amount:          req.Amount,
		TransactionType: domain.TransactionType(req.TransactionType),
		CurrencyCode:    currency,
		Category:        req.Category,
		Description:     req.Description,
		TransactionDate: domain.DateOnly(txnDate),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction",
			slog.String("user_id", userID), slog.String("wallet_id", req.WalletID))
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &txn, nil
}

// ListTransactions retrieves a user's transactions for a period.
func (s *transactionService) ListTransactions(ctx context.Context, userID string, period domain.Period) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactions(ctx, userID, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}
