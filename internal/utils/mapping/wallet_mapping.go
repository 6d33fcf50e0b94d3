package mapping

import (
	"github.com/grana-app/grana_backend/internal/core/domain"
	"github.com/grana-app/grana_backend/internal/models"
)

// ToModelWallet converts a domain wallet to its model representation.
func ToModelWallet(wallet domain.Wallet) models.Wallet {
	return models.Wallet{
		WalletID:     wallet.WalletID,
		UserID:       wallet.UserID,
		Name:         wallet.Name,
		CurrencyCode: wallet.CurrencyCode,
		AuditFields:  ToModelAuditFields(wallet.AuditFields),
	}
}

// ToDomainWallet converts a model wallet to its domain representation.
func ToDomainWallet(wallet models.Wallet) domain.Wallet {
	return domain.Wallet{
		WalletID:     wallet.WalletID,
		UserID:       wallet.UserID,
		Name:         wallet.Name,
		CurrencyCode: wallet.CurrencyCode,
		AuditFields:  ToDomainAuditFields(wallet.AuditFields),
	}
}

// ToDomainWalletSlice converts a slice of model wallets to domain wallets.
func ToDomainWalletSlice(wallets []models.Wallet) []domain.Wallet {
	result := make([]domain.Wallet, len(wallets))
	for i, w := range wallets {
		result[i] = ToDomainWallet(w)
	}
	return result
}
