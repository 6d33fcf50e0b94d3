package domain

import "github.com/shopspring/decimal"

// GoalPeriod is the recurrence of a spending goal.
type GoalPeriod string

const (
	GoalPeriodMonthly GoalPeriod = "MONTHLY"
)

// BudgetStatus classifies spend against a goal's limit.
type BudgetStatus string

const (
	BudgetExcellent BudgetStatus = "EXCELLENT" // spent/limit <= 50%
	BudgetGood      BudgetStatus = "GOOD"      // spent/limit <= 80%
	BudgetWarning   BudgetStatus = "WARNING"   // spent/limit < 100%
	BudgetCritical  BudgetStatus = "CRITICAL"  // spent/limit >= 100%
)

// CategoryGoal is a spending limit for one expense category.
// BudgetLimit is denominated in the user's display currency.
type CategoryGoal struct {
	GoalID      string          `json:"goalID"` // Primary Key (UUID)
	UserID      string          `json:"userID"` // FK -> User.userID
	Category    string          `json:"category"`
	BudgetLimit decimal.Decimal `json:"budgetLimit"`
	Period      GoalPeriod      `json:"period"`
	AuditFields
}

// GoalProgress is the evaluation of a goal for one period. Spent is derived,
// never stored: it is recomputed from transactions at current exchange rates
// on every evaluation, so past-period status can shift after a rate refresh.
type GoalProgress struct {
	Goal            CategoryGoal    `json:"goal"`
	Spent           decimal.Decimal `json:"spent"`
	Status          BudgetStatus    `json:"status"`
	DisplayCurrency string          `json:"displayCurrency"`
}
