package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/grana-app/grana_backend/internal/core/domain"
	portsrepo "github.com/grana-app/grana_backend/internal/core/ports/repositories"
	portssvc "github.com/grana-app/grana_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// reportingService aggregates a user's transactions into period summaries in
// the display currency. Every call computes a fresh result; nothing is cached
// beyond the rate table itself.
type reportingService struct {
	BaseService
	txnRepo portsrepo.TransactionReader
	userSvc portssvc.UserReaderSvc
	rates   portssvc.RateProviderSvc
}

// NewReportingService creates a new reporting service.
func NewReportingService(txnRepo portsrepo.TransactionReader, userSvc portssvc.UserReaderSvc, rates portssvc.RateProviderSvc) portssvc.ReportingSvcFacade {
	return &reportingService{
		txnRepo: txnRepo,
		userSvc: userSvc,
		rates:   rates,
	}
}

// Ensure reportingService implements the ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// Summary aggregates the user's transactions for the period.
func (s *reportingService) Summary(ctx context.Context, userID string, period domain.Period) (*domain.AggregationResult, error) {
	displayCurrency := s.userSvc.DisplayCurrency(ctx, userID)

	txns, err := s.txnRepo.ListTransactions(ctx, userID, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for summary",
			slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to retrieve transactions: %w", err)
	}

	result := s.aggregate(txns, period, displayCurrency.CurrencyCode)

	s.LogDebug(ctx, "Period summary computed",
		slog.String("user_id", userID),
		slog.String("display_currency", displayCurrency.CurrencyCode),
		slog.Int("transactions", len(txns)))
	return result, nil
}

// SummaryWithComparison aggregates the period and its predecessor and emits
// percentage deltas per metric. A zero previous value yields a 0% delta.
func (s *reportingService) SummaryWithComparison(ctx context.Context, userID string, period domain.Period) (*domain.PeriodComparison, error) {
	current, err := s.Summary(ctx, userID, period)
	if err != nil {
		return nil, err
	}

	previous, err := s.Summary(ctx, userID, period.Previous())
	if err != nil {
		return nil, err
	}

	return &domain.PeriodComparison{
		Current:          *current,
		Previous:         *previous,
		IncomeChangePct:  domain.PercentChange(current.TotalIncome, previous.TotalIncome),
		ExpenseChangePct: domain.PercentChange(current.TotalExpenses, previous.TotalExpenses),
		NetChangePct:     domain.PercentChange(current.NetResult, previous.NetResult),
	}, nil
}

// aggregate is the pure reduction: filter to the period, convert each amount
// into the display currency, partition by type and break expenses down per
// category. It never fails; empty input yields a zero result.
func (s *reportingService) aggregate(txns []domain.Transaction, period domain.Period, displayCurrency string) *domain.AggregationResult {
	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero

	type categoryAccum struct {
		total decimal.Decimal
		count int
	}
	categoryTotals := make(map[string]*categoryAccum)
	categoryOrder := make([]string, 0)

	for _, txn := range txns {
		txn.Normalize()
		if !period.IsZero() && !period.Contains(txn.TransactionDate) {
			continue
		}

		converted := s.rates.Convert(txn.Amount, txn.CurrencyCode, displayCurrency)

		switch txn.TransactionType {
		case domain.Income:
			totalIncome = totalIncome.Add(converted)
		case domain.Expense:
			totalExpenses = totalExpenses.Add(converted)
			accum, ok := categoryTotals[txn.Category]
			if !ok {
				accum = &categoryAccum{}
				categoryTotals[txn.Category] = accum
				categoryOrder = append(categoryOrder, txn.Category)
			}
			accum.total = accum.total.Add(converted)
			accum.count++
		}
	}

	byCategory := make([]domain.CategorySummary, 0, len(categoryOrder))
	for _, category := range categoryOrder {
		accum := categoryTotals[category]
		percentage := decimal.Zero
		if totalExpenses.GreaterThan(decimal.Zero) {
			percentage = accum.total.Div(totalExpenses).Mul(decimal.NewFromInt(100)).Round(2)
		}
		byCategory = append(byCategory, domain.CategorySummary{
			Category:   category,
			Total:      accum.total,
			Percentage: percentage,
			Count:      accum.count,
		})
	}

	// Descending by total; the stable sort keeps first-occurrence order on
	// ties.
	sort.SliceStable(byCategory, func(i, j int) bool {
		return byCategory[i].Total.GreaterThan(byCategory[j].Total)
	})

	return &domain.AggregationResult{
		TotalIncome:     totalIncome,
		TotalExpenses:   totalExpenses,
		NetResult:       totalIncome.Sub(totalExpenses),
		ByCategory:      byCategory,
		PeriodStart:     period.Start,
		PeriodEnd:       period.End,
		DisplayCurrency: displayCurrency,
		RatesStale:      s.rates.IsStale(),
	}
}
