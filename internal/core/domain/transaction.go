package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is income or an expense.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// Transaction represents a single income or expense entry in a wallet.
// Amount is always non-negative; the sign is conveyed by TransactionType.
type Transaction struct {
	TransactionID   string          `json:"transactionID"` // Primary Key (UUID)
	UserID          string          `json:"userID"`        // FK -> User.userID
	WalletID        string          `json:"walletID"`      // FK -> Wallet.walletID
	Amount          decimal.Decimal `json:"amount"`        // Non-negative
	TransactionType TransactionType `json:"transactionType"`
	CurrencyCode    string          `json:"currencyCode"` // Defaults to BaseCurrencyCode when absent
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	TransactionDate time.Time       `json:"transactionDate"` // Calendar date, midnight UTC
	AuditFields
}

// SignedAmount returns the amount with the sign implied by the transaction
// type: positive for income, negative for expenses.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.TransactionType == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Normalize fills defaults the aggregation layer relies on: transactions
// recorded without a currency are assumed to be in the base currency, and
// dates are collapsed to calendar dates in UTC.
func (t *Transaction) Normalize() {
	if t.CurrencyCode == "" {
		t.CurrencyCode = BaseCurrencyCode
	}
	t.TransactionDate = DateOnly(t.TransactionDate)
}
