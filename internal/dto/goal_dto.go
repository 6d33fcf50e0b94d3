package dto

import (
	"github.com/grana-app/grana_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateGoalRequest defines the structure for configuring a category goal.
// BudgetLimit is denominated in the user's display currency.
type CreateGoalRequest struct {
	Category    string          `json:"category" binding:"required"`
	BudgetLimit decimal.Decimal `json:"budgetLimit" binding:"required"`
	Period      string          `json:"period" binding:"omitempty,oneof=MONTHLY"`
}

// GoalResponse defines the structure for API responses containing goal details.
type GoalResponse struct {
	GoalID      string          `json:"goalID"`
	Category    string          `json:"category"`
	BudgetLimit decimal.Decimal `json:"budgetLimit"`
	Period      string          `json:"period"`
}

// GoalProgressResponse is the evaluation of one goal for a period.
type GoalProgressResponse struct {
	Goal            GoalResponse    `json:"goal"`
	Spent           decimal.Decimal `json:"spent"`
	Status          string          `json:"status"`
	DisplayCurrency string          `json:"displayCurrency"`
}

// ToGoalResponse converts a domain.CategoryGoal to GoalResponse DTO
func ToGoalResponse(goal *domain.CategoryGoal) GoalResponse {
	return GoalResponse{
		GoalID:      goal.GoalID,
		Category:    goal.Category,
		BudgetLimit: goal.BudgetLimit,
		Period:      string(goal.Period),
	}
}

// ToListGoalResponse converts a slice of domain goals to response DTOs.
func ToListGoalResponse(goals []domain.CategoryGoal) []GoalResponse {
	responses := make([]GoalResponse, len(goals))
	for i := range goals {
		responses[i] = ToGoalResponse(&goals[i])
	}
	return responses
}

// ToGoalProgressResponse converts domain goal progress rows to response DTOs.
func ToGoalProgressResponse(progress []domain.GoalProgress) []GoalProgressResponse {
	responses := make([]GoalProgressResponse, len(progress))
	for i, p := range progress {
		responses[i] = GoalProgressResponse{
			Goal:            ToGoalResponse(&p.Goal),
			Spent:           p.Spent,
			Status:          string(p.Status),
			DisplayCurrency: p.DisplayCurrency,
		}
	}
	return responses
}
