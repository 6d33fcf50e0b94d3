package repositories

import (
	"context"

	"github.com/grana-app/grana_backend/internal/core/domain"
)

// GoalReader defines read operations for category goal data
type GoalReader interface {
	// FindGoalByID retrieves a goal by its ID.
	FindGoalByID(ctx context.Context, goalID string) (*domain.CategoryGoal, error)

	// ListGoals retrieves all goals configured by a user.
	ListGoals(ctx context.Context, userID string) ([]domain.CategoryGoal, error)
}

// GoalWriter defines write operations for category goal data
type GoalWriter interface {
	// SaveGoal persists a new goal.
	SaveGoal(ctx context.Context, goal domain.CategoryGoal) error

	// DeleteGoal removes a goal.
	DeleteGoal(ctx context.Context, goalID string) error
}

// GoalRepositoryFacade combines all goal-related repository interfaces
type GoalRepositoryFacade interface {
	GoalReader
	GoalWriter
}
