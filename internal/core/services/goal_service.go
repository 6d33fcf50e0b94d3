package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/grana-app/grana_backend/internal/apperrors"
	"github.com/grana-app/grana_backend/internal/core/domain"
	portsrepo "github.com/grana-app/grana_backend/internal/core/ports/repositories"
	portssvc "github.com/grana-app/grana_backend/internal/core/ports/services"
	"github.com/grana-app/grana_backend/internal/dto"
	"github.com/grana-app/grana_backend/internal/utils/budget"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// goalService manages category spending goals and evaluates them against
// fresh aggregation results. Spent amounts are derived on every call using
// current exchange rates: a rate refresh can retroactively shift the status
// of a past period. That is display-time valuation, not a bookkeeping ledger.
type goalService struct {
	BaseService
	goalRepo  portsrepo.GoalRepositoryFacade
	reporting portssvc.ReportingSvcFacade
	userSvc   portssvc.UserReaderSvc
}

// NewGoalService creates a new goal service.
func NewGoalService(goalRepo portsrepo.GoalRepositoryFacade, reporting portssvc.ReportingSvcFacade, userSvc portssvc.UserReaderSvc) portssvc.GoalSvcFacade {
	return &goalService{
		goalRepo:  goalRepo,
		reporting: reporting,
		userSvc:   userSvc,
	}
}

// Ensure goalService implements the GoalSvcFacade interface
var _ portssvc.GoalSvcFacade = (*goalService)(nil)

// CreateGoal persists a new category goal for the user.
func (s *goalService) CreateGoal(ctx context.Context, req dto.CreateGoalRequest, userID string) (*domain.CategoryGoal, error) {
	if req.BudgetLimit.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: budget limit must be positive", apperrors.ErrValidation)
	}

	period := domain.GoalPeriod(req.Period)
	if period == "" {
		period = domain.GoalPeriodMonthly
	}

	now := time.Now()
	goal := domain.CategoryGoal{
		GoalID:      uuid.NewString(),
		UserID:      userID,
		Category:    req.Category,
		BudgetLimit: req.BudgetLimit,
		Period:      period,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		s.LogError(ctx, err, "Failed to save goal", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &goal, nil
}

// ListGoals retrieves all goals configured by the user.
func (s *goalService) ListGoals(ctx context.Context, userID string) ([]domain.CategoryGoal, error) {
	goals, err := s.goalRepo.ListGoals(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list goals", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	if goals == nil {
		return []domain.CategoryGoal{}, nil
	}
	return goals, nil
}

// DeleteGoal removes a goal after confirming it belongs to the acting user.
func (s *goalService) DeleteGoal(ctx context.Context, goalID, userID string) error {
	goal, err := s.goalRepo.FindGoalByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to find goal for deletion", slog.String("goal_id", goalID))
		return fmt.Errorf("failed to find goal: %w", err)
	}
	if goal.UserID != userID {
		return fmt.Errorf("%w: goal does not belong to user", apperrors.ErrForbidden)
	}

	if err := s.goalRepo.DeleteGoal(ctx, goalID); err != nil {
		s.LogError(ctx, err, "Failed to delete goal", slog.String("goal_id", goalID))
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	return nil
}

// Progress evaluates every goal of the user against the period's aggregated
// expense per category, in the display currency.
func (s *goalService) Progress(ctx context.Context, userID string, period domain.Period) ([]domain.GoalProgress, error) {
	goals, err := s.ListGoals(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(goals) == 0 {
		return []domain.GoalProgress{}, nil
	}

	summary, err := s.reporting.Summary(ctx, userID, period)
	if err != nil {
		return nil, err
	}

	spentByCategory := make(map[string]decimal.Decimal, len(summary.ByCategory))
	for _, cat := range summary.ByCategory {
		spentByCategory[cat.Category] = cat.Total
	}

	progress := make([]domain.GoalProgress, len(goals))
	for i, goal := range goals {
		spent, ok := spentByCategory[goal.Category]
		if !ok {
			spent = decimal.Zero
		}
		progress[i] = domain.GoalProgress{
			Goal:            goal,
			Spent:           spent,
			Status:          budget.Classify(spent, goal.BudgetLimit),
			DisplayCurrency: summary.DisplayCurrency,
		}
	}

	return progress, nil
}
