package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/grana-app/grana_backend/internal/core/domain"
	portsrepo "github.com/grana-app/grana_backend/internal/core/ports/repositories"
	portssvc "github.com/grana-app/grana_backend/internal/core/ports/services"
	"github.com/grana-app/grana_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type walletService struct {
	BaseService
	walletRepo portsrepo.WalletRepositoryFacade
	txnRepo    portsrepo.TransactionReader
	userSvc    portssvc.UserReaderSvc
	rates      portssvc.RateProviderSvc
}

// NewWalletService creates a new wallet service.
func NewWalletService(walletRepo portsrepo.WalletRepositoryFacade, txnRepo portsrepo.TransactionReader, userSvc portssvc.UserReaderSvc, rates portssvc.RateProviderSvc) portssvc.WalletSvcFacade {
	return &walletService{
		walletRepo: walletRepo,
		txnRepo:    txnRepo,
		userSvc:    userSvc,
		rates:      rates,
	}
}

// Ensure walletService implements the WalletSvcFacade interface
var _ portssvc.WalletSvcFacade = (*walletService)(nil)

// CreateWallet persists a new wallet for the user.
func (s *walletService) CreateWallet(ctx context.Context, req dto.CreateWalletRequest, userID string) (*domain.Wallet, error) {
	currency := strings.ToUpper(req.CurrencyCode)
	if currency == "" {
		currency = domain.BaseCurrencyCode
	}

	now := time.Now()
	wallet := domain.Wallet{
		WalletID:     uuid.NewString(),
		UserID:       userID,
		Name:         req.Name,
		CurrencyCode: currency,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.walletRepo.SaveWallet(ctx, wallet); err != nil {
		s.LogError(ctx, err, "Failed to save wallet", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	return &wallet, nil
}

// ListWallets retrieves all wallets owned by the user.
func (s *walletService) ListWallets(ctx context.Context, userID string) ([]domain.Wallet, error) {
	wallets, err := s.walletRepo.ListWallets(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list wallets", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}
	if wallets == nil {
		return []domain.Wallet{}, nil
	}
	return wallets, nil
}

// Balances computes every wallet's net balance in the display currency:
// income adds, expenses subtract, each transaction converted at current rates
// before summing.
func (s *walletService) Balances(ctx context.Context, userID string) ([]domain.WalletBalance, error) {
	wallets, err := s.ListWallets(ctx, userID)
	if err != nil {
		return nil, err
	}

	displayCurrency := s.userSvc.DisplayCurrency(ctx, userID)

	balances := make([]domain.WalletBalance, len(wallets))
	for i, wallet := range wallets {
		txns, err := s.txnRepo.ListTransactionsByWallet(ctx, wallet.WalletID)
		if err != nil {
			s.LogError(ctx, err, "Failed to list wallet transactions",
				slog.String("wallet_id", wallet.WalletID))
			return nil, fmt.Errorf("failed to list wallet transactions: %w", err)
		}

		balance := decimal.Zero
		for _, txn := range txns {
			txn.Normalize()
			converted := s.rates.Convert(txn.Amount, txn.CurrencyCode, displayCurrency.CurrencyCode)
			if txn.TransactionType == domain.Expense {
				balance = balance.Sub(converted)
			} else {
				balance = balance.Add(converted)
			}
		}

		balances[i] = domain.WalletBalance{
			Wallet:          wallet,
			Balance:         balance,
			DisplayCurrency: displayCurrency.CurrencyCode,
		}
	}

	return balances, nil
}
