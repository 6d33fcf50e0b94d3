package services

import (
	"context"

	"github.com/grana-app/grana_backend/internal/core/domain"
	"github.com/grana-app/grana_backend/internal/dto"
)

// WalletReaderSvc defines read operations for wallets
type WalletReaderSvc interface {
	// ListWallets retrieves all wallets owned by a user.
	ListWallets(ctx context.Context, userID string) ([]domain.Wallet, error)

	// Balances computes every wallet's net balance converted into the
	// user's display currency at current rates.
	Balances(ctx context.Context, userID string) ([]domain.WalletBalance, error)
}

// WalletWriterSvc defines write operations for wallets
type WalletWriterSvc interface {
	// CreateWallet persists a new wallet.
	CreateWallet(ctx context.Context, req dto.CreateWalletRequest, userID string) (*domain.Wallet, error)
}

// WalletSvcFacade combines all wallet-related service interfaces
type WalletSvcFacade interface {
	WalletReaderSvc
	WalletWriterSvc
}
