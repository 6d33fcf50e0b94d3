package services

import (
	"context"

	"github.com/grana-app/grana_backend/internal/core/domain"
)

// ReportingSvcFacade defines operations for period summaries in the user's
// display currency. Results are computed fresh on every call.
type ReportingSvcFacade interface {
	// Summary aggregates a user's transactions for the period: income and
	// expense totals, net result and per-category expense breakdown.
	Summary(ctx context.Context, userID string, period domain.Period) (*domain.AggregationResult, error)

	// SummaryWithComparison additionally computes the previous period and
	// percentage deltas per metric.
	SummaryWithComparison(ctx context.Context, userID string, period domain.Period) (*domain.PeriodComparison, error)
}
