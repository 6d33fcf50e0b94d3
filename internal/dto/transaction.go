package dto

import (
	"time"

	"github.com/grana-app/grana_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the structure for recording a transaction.
// TransactionDate is a calendar date; CurrencyCode may be omitted, in which
// case the base currency is assumed at the ingestion boundary.
type CreateTransactionRequest struct {
	WalletID        string          `json:"walletID" binding:"required,uuid"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	TransactionType string          `json:"transactionType" binding:"required,oneof=INCOME EXPENSE"`
	CurrencyCode    string          `json:"currencyCode" binding:"omitempty,currencycode"`
	Category        string          `json:"category" binding:"required"`
	Description     string          `json:"description"`
	TransactionDate string          `json:"transactionDate" binding:"required,datetime=2006-01-02"`
}

// TransactionResponse defines the structure for API responses containing transaction details.
type TransactionResponse struct {
	TransactionID   string          `json:"transactionID"`
	WalletID        string          `json:"walletID"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionType string          `json:"transactionType"`
	CurrencyCode    string          `json:"currencyCode"`
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	TransactionDate string          `json:"transactionDate"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		WalletID:        txn.WalletID,
		Amount:          txn.Amount,
		TransactionType: string(txn.TransactionType),
		CurrencyCode:    txn.CurrencyCode,
		Category:        txn.Category,
		Description:     txn.Description,
		TransactionDate: txn.TransactionDate.Format("2006-01-02"),
		CreatedAt:       txn.CreatedAt,
	}
}

// ToListTransactionResponse converts a slice of domain transactions to response DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}
