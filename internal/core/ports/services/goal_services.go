package services

import (
	"context"

	"github.com/grana-app/grana_backend/internal/core/domain"
	"github.com/grana-app/grana_backend/internal/dto"
)

// GoalReaderSvc defines read operations for category goals
type GoalReaderSvc interface {
	// ListGoals retrieves all goals configured by a user.
	ListGoals(ctx context.Context, userID string) ([]domain.CategoryGoal, error)

	// Progress evaluates every goal of the user against the period's spend,
	// converted into the display currency at current rates.
	Progress(ctx context.Context, userID string, period domain.Period) ([]domain.GoalProgress, error)
}

// GoalWriterSvc defines write operations for category goals
type GoalWriterSvc interface {
	// CreateGoal persists a new goal.
	CreateGoal(ctx context.Context, req dto.CreateGoalRequest, userID string) (*domain.CategoryGoal, error)

	// DeleteGoal removes one of the user's goals.
	DeleteGoal(ctx context.Context, goalID, userID string) error
}

// GoalSvcFacade combines all goal-related service interfaces
type GoalSvcFacade interface {
	GoalReaderSvc
	GoalWriterSvc
}
