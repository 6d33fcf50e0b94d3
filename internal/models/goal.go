package models

import "github.com/shopspring/decimal"

// CategoryGoal represents a spending limit row for one expense category.
type CategoryGoal struct {
	GoalID      string          `json:"goalID"` // Primary Key (UUID)
	UserID      string          `json:"userID"`
	Category    string          `json:"category"`
	BudgetLimit decimal.Decimal `json:"budgetLimit"`
	Period      string          `json:"period"`
	AuditFields
}
