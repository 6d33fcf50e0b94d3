package mapping

import (
	"github.com/grana-app/grana_backend/internal/core/domain"
	"github.com/grana-app/grana_backend/internal/models"
)

// ToModelTransaction converts a domain transaction to its model representation.
func ToModelTransaction(txn domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   txn.TransactionID,
		UserID:          txn.UserID,
		WalletID:        txn.WalletID,
		Amount:          txn.Amount,
		TransactionType: string(txn.TransactionType),
		CurrencyCode:    txn.CurrencyCode,
		Category:        txn.Category,
		Description:     txn.Description,
		TransactionDate: txn.TransactionDate,
		AuditFields:     ToModelAuditFields(txn.AuditFields),
	}
}

// ToDomainTransaction converts a model transaction to its domain
// representation, normalizing defaults on the way out so consumers never see
// a transaction without a currency.
func ToDomainTransaction(txn models.Transaction) domain.Transaction {
	result := domain.Transaction{
		TransactionID:   txn.TransactionID,
		UserID:          txn.UserID,
		WalletID:        txn.WalletID,
		Amount:          txn.Amount,
		TransactionType: domain.TransactionType(txn.TransactionType),
		CurrencyCode:    txn.CurrencyCode,
		Category:        txn.Category,
		Description:     txn.Description,
		TransactionDate: txn.TransactionDate,
		AuditFields:     ToDomainAuditFields(txn.AuditFields),
	}
	result.Normalize()
	return result
}

// ToDomainTransactionSlice converts a slice of model transactions to domain
// transactions, normalizing each one.
func ToDomainTransactionSlice(txns []models.Transaction) []domain.Transaction {
	result := make([]domain.Transaction, len(txns))
	for i, t := range txns {
		result[i] = ToDomainTransaction(t)
	}
	return result
}
