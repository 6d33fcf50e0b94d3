package repositories

import (
	"context"

	"github.com/grana-app/grana_backend/internal/core/domain"
)

// WalletReader defines read operations for wallet data
type WalletReader interface {
	// FindWalletByID retrieves a wallet by its ID.
	FindWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error)

	// ListWallets retrieves all wallets owned by a user.
	ListWallets(ctx context.Context, userID string) ([]domain.Wallet, error)
}

// WalletWriter defines write operations for wallet data
type WalletWriter interface {
	// SaveWallet persists a new wallet.
	SaveWallet(ctx context.Context, wallet domain.Wallet) error
}

// WalletRepositoryFacade combines all wallet-related repository interfaces
type WalletRepositoryFacade interface {
	WalletReader
	WalletWriter
}
