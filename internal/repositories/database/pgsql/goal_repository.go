package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/grana-app/grana_backend/internal/apperrors"
	"github.com/grana-app/grana_backend/internal/core/domain"
	portsrepo "github.com/grana-app/grana_backend/internal/core/ports/repositories"
	"github.com/grana-app/grana_backend/internal/models"
	"github.com/grana-app/grana_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxGoalRepository struct {
	BaseRepository
}

// newPgxGoalRepository creates a new repository for category goal data.
func newPgxGoalRepository(pool *pgxpool.Pool) portsrepo.GoalRepositoryFacade {
	return &PgxGoalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.GoalRepositoryFacade = (*PgxGoalRepository)(nil)

// SaveGoal persists a new goal. One goal per (user, category, period).
func (r *PgxGoalRepository) SaveGoal(ctx context.Context, goal domain.CategoryGoal) error {
	modelGoal := mapping.ToModelCategoryGoal(goal)

	query := `
		INSERT INTO category_goals (goal_id, user_id, category, budget_limit, period, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id, category, period) DO UPDATE SET
			budget_limit = EXCLUDED.budget_limit,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`

	_, err := r.Pool.Exec(ctx, query,
		modelGoal.GoalID,
		modelGoal.UserID,
		modelGoal.Category,
		modelGoal.BudgetLimit,
		modelGoal.Period,
		modelGoal.CreatedAt,
		modelGoal.CreatedBy,
		modelGoal.LastUpdatedAt,
		modelGoal.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to save goal for category %s: %w", modelGoal.Category, err)
	}
	return nil
}

// FindGoalByID retrieves a goal by its ID.
func (r *PgxGoalRepository) FindGoalByID(ctx context.Context, goalID string) (*domain.CategoryGoal, error) {
	query := `
		SELECT goal_id, user_id, category, budget_limit, period, created_at, created_by, last_updated_at, last_updated_by
		FROM category_goals
		WHERE goal_id = $1;
	`
	var modelGoal models.CategoryGoal
	err := r.Pool.QueryRow(ctx, query, goalID).Scan(
		&modelGoal.GoalID,
		&modelGoal.UserID,
		&modelGoal.Category,
		&modelGoal.BudgetLimit,
		&modelGoal.Period,
		&modelGoal.CreatedAt,
		&modelGoal.CreatedBy,
		&modelGoal.LastUpdatedAt,
		&modelGoal.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find goal %s: %w", goalID, err)
	}

	domainGoal := mapping.ToDomainCategoryGoal(modelGoal)
	return &domainGoal, nil
}

// ListGoals retrieves all goals configured by a user.
func (r *PgxGoalRepository) ListGoals(ctx context.Context, userID string) ([]domain.CategoryGoal, error) {
	query := `
		SELECT goal_id, user_id, category, budget_limit, period, created_at, created_by, last_updated_at, last_updated_by
		FROM category_goals
		WHERE user_id = $1
		ORDER BY category;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals for user %s: %w", userID, err)
	}
	defer rows.Close()

	modelGoals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CategoryGoal, error) {
		var goal models.CategoryGoal
		err := row.Scan(
			&goal.GoalID,
			&goal.UserID,
			&goal.Category,
			&goal.BudgetLimit,
			&goal.Period,
			&goal.CreatedAt,
			&goal.CreatedBy,
			&goal.LastUpdatedAt,
			&goal.LastUpdatedBy,
		)
		return goal, err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.CategoryGoal{}, nil
		}
		return nil, fmt.Errorf("failed to scan goals: %w", err)
	}

	return mapping.ToDomainCategoryGoalSlice(modelGoals), nil
}

// DeleteGoal removes a goal.
func (r *PgxGoalRepository) DeleteGoal(ctx context.Context, goalID string) error {
	query := `DELETE FROM category_goals WHERE goal_id = $1;`

	tag, err := r.Pool.Exec(ctx, query, goalID)
	if err != nil {
		return fmt.Errorf("failed to delete goal %s: %w", goalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
