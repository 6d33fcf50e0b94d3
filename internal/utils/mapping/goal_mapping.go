package mapping

import (
	"github.com/grana-app/grana_backend/internal/core/domain"
	"github.com/grana-app/grana_backend/internal/models"
)

// ToModelCategoryGoal converts a domain goal to its model representation.
func ToModelCategoryGoal(goal domain.CategoryGoal) models.CategoryGoal {
	return models.CategoryGoal{
		GoalID:      goal.GoalID,
		UserID:      goal.UserID,
		Category:    goal.Category,
		BudgetLimit: goal.BudgetLimit,
		Period:      string(goal.Period),
		AuditFields: ToModelAuditFields(goal.AuditFields),
	}
}

// ToDomainCategoryGoal converts a model goal to its domain representation.
func ToDomainCategoryGoal(goal models.CategoryGoal) domain.CategoryGoal {
	return domain.CategoryGoal{
		GoalID:      goal.GoalID,
		UserID:      goal.UserID,
		Category:    goal.Category,
		BudgetLimit: goal.BudgetLimit,
		Period:      domain.GoalPeriod(goal.Period),
		AuditFields: ToDomainAuditFields(goal.AuditFields),
	}
}

// ToDomainCategoryGoalSlice converts a slice of model goals to domain goals.
func ToDomainCategoryGoalSlice(goals []models.CategoryGoal) []domain.CategoryGoal {
	result := make([]domain.CategoryGoal, len(goals))
	for i, g := range goals {
		result[i] = ToDomainCategoryGoal(g)
	}
	return result
}
