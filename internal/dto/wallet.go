package dto

import (
	"github.com/grana-app/grana_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateWalletRequest defines the structure for creating a wallet.
type CreateWalletRequest struct {
	Name         string `json:"name" binding:"required"`
	CurrencyCode string `json:"currencyCode" binding:"omitempty,currencycode"`
}

// WalletResponse defines the structure for API responses containing wallet details.
type WalletResponse struct {
	WalletID     string `json:"walletID"`
	Name         string `json:"name"`
	CurrencyCode string `json:"currencyCode"`
}

// WalletBalanceResponse is a wallet's net balance in the display currency.
type WalletBalanceResponse struct {
	Wallet          WalletResponse  `json:"wallet"`
	Balance         decimal.Decimal `json:"balance"`
	DisplayCurrency string          `json:"displayCurrency"`
}

// ToWalletResponse converts a domain.Wallet to WalletResponse DTO
func ToWalletResponse(wallet *domain.Wallet) WalletResponse {
	return WalletResponse{
		WalletID:     wallet.WalletID,
		Name:         wallet.Name,
		CurrencyCode: wallet.CurrencyCode,
	}
}

// ToListWalletResponse converts a slice of domain wallets to response DTOs.
func ToListWalletResponse(wallets []domain.Wallet) []WalletResponse {
	responses := make([]WalletResponse, len(wallets))
	for i := range wallets {
		responses[i] = ToWalletResponse(&wallets[i])
	}
	return responses
}

// ToWalletBalanceResponse converts domain wallet balances to response DTOs.
func ToWalletBalanceResponse(balances []domain.WalletBalance) []WalletBalanceResponse {
	responses := make([]WalletBalanceResponse, len(balances))
	for i, b := range balances {
		responses[i] = WalletBalanceResponse{
			Wallet:          ToWalletResponse(&b.Wallet),
			Balance:         b.Balance,
			DisplayCurrency: b.DisplayCurrency,
		}
	}
	return responses
}
