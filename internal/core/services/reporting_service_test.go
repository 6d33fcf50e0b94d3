package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/grana-app/grana_backend/internal/core/domain"
	portssvc "github.com/grana-app/grana_backend/internal/core/ports/services"
	"github.com/grana-app/grana_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockTransactionReader is a mock type for the TransactionReader interface
type MockTransactionReader struct {
	mock.Mock
}

func (m *MockTransactionReader) ListTransactions(ctx context.Context, userID string, period domain.Period) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionReader) ListTransactionsByWallet(ctx context.Context, walletID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// MockUserReaderSvc is a mock type for the UserReaderSvc interface
type MockUserReaderSvc struct {
	mock.Mock
}

func (m *MockUserReaderSvc) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserReaderSvc) DisplayCurrency(ctx context.Context, userID string) domain.Currency {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Currency)
}

// stubRateProvider is a fixed-rate RateProviderSvc for aggregation tests.
type stubRateProvider struct {
	rates map[string]decimal.Decimal // key "FROM>TO"
	stale bool
}

func (s *stubRateProvider) GetRate(from, to string) decimal.Decimal {
	if from == to {
		return decimal.NewFromInt(1)
	}
	if rate, ok := s.rates[from+">"+to]; ok {
		return rate
	}
	return decimal.NewFromInt(1)
}

func (s *stubRateProvider) Convert(amount decimal.Decimal, from, to string) decimal.Decimal {
	rate := s.GetRate(from, to)
	if rate.Equal(decimal.NewFromInt(1)) {
		return amount
	}
	return amount.Mul(rate).Round(2)
}

func (s *stubRateProvider) IsStale() bool             { return s.stale }
func (s *stubRateProvider) LastRefreshed() time.Time  { return time.Time{} }
func (s *stubRateProvider) Refresh(context.Context) error {
	return nil
}
func (s *stubRateProvider) OnRefresh(func()) func() { return func() {} }

// --- Test Suite Setup ---

type ReportingServiceTestSuite struct {
	suite.Suite
	mockTxnRepo *MockTransactionReader
	mockUserSvc *MockUserReaderSvc
	rates       *stubRateProvider
	period      domain.Period
	userID      string
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionReader)
	suite.mockUserSvc = new(MockUserReaderSvc)
	suite.rates = &stubRateProvider{rates: map[string]decimal.Decimal{
		"USD>BRL": decimal.NewFromInt(5),
	}}
	suite.period = domain.MonthPeriod(2025, time.June)
	suite.userID = "user-1"
}

func (suite *ReportingServiceTestSuite) newService() portssvc.ReportingSvcFacade {
	return services.NewReportingService(suite.mockTxnRepo, suite.mockUserSvc, suite.rates)
}

func (suite *ReportingServiceTestSuite) expectBRLDisplay() {
	suite.mockUserSvc.On("DisplayCurrency", mock.Anything, suite.userID).Return(domain.Currency{
		CurrencyCode: "BRL", Symbol: "R$", Precision: 2,
	})
}

func txnOn(day time.Time, txnType domain.TransactionType, amount, currency, category string) domain.Transaction {
	return domain.Transaction{
		TransactionID:   category + "-" + amount,
		UserID:          "user-1",
		WalletID:        "wallet-1",
		Amount:          decimal.RequireFromString(amount),
		TransactionType: txnType,
		CurrencyCode:    currency,
		Category:        category,
		TransactionDate: day,
	}
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestSummary_TotalsAndNet() {
	day := suite.period.Start.AddDate(0, 0, 10)
	suite.expectBRLDisplay()
	suite.mockTxnRepo.On("ListTransactions", mock.Anything, suite.userID, suite.period).Return([]domain.Transaction{
		txnOn(day, domain.Income, "50", "BRL", "Salary"),
		txnOn(day, domain.Expense, "100", "BRL", "Food"),
	}, nil).Once()

	result, err := suite.newService().Summary(context.Background(), suite.userID, suite.period)

	suite.Require().NoError(err)
	suite.True(result.TotalIncome.Equal(decimal.NewFromInt(50)))
	suite.True(result.TotalExpenses.Equal(decimal.NewFromInt(100)))
	suite.True(result.NetResult.Equal(decimal.NewFromInt(-50)))
	suite.Equal("BRL", result.DisplayCurrency)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestSummary_ConvertsCrossCurrency() {
	day := suite.period.Start.AddDate(0, 0, 5)
	suite.expectBRLDisplay()
	suite.mockTxnRepo.On("ListTransactions", mock.Anything, suite.userID, suite.period).Return([]domain.Transaction{
		txnOn(day, domain.Expense, "10", "USD", "Travel"), // 10 * 5 = 50 BRL
		txnOn(day, domain.Expense, "20", "BRL", "Travel"),
	}, nil).Once()

	result, err := suite.newService().Summary(context.Background(), suite.userID, suite.period)

	suite.Require().NoError(err)
	suite.True(result.TotalExpenses.Equal(decimal.NewFromInt(70)))
}

func (suite *ReportingServiceTestSuite) TestSummary_MissingCurrencyDefaultsToBase() {
	day := suite.period.Start
	suite.expectBRLDisplay()
	suite.mockTxnRepo.On("ListTransactions", mock.Anything, suite.userID, suite.period).Return([]domain.Transaction{
		txnOn(day, domain.Expense, "30", "", "Food"),
	}, nil).Once()

	result, err := suite.newService().Summary(context.Background(), suite.userID, suite.period)

	suite.Require().NoError(err)
	// Empty currency is treated as BRL; display is BRL, so no conversion.
	suite.True(result.TotalExpenses.Equal(decimal.NewFromInt(30)))
}

func (suite *ReportingServiceTestSuite) TestSummary_FiltersByCalendarDate() {
	suite.expectBRLDisplay()
	suite.mockTxnRepo.On("ListTransactions", mock.Anything, suite.userID, suite.period).Return([]domain.Transaction{
		txnOn(suite.period.Start, domain.Expense, "10", "BRL", "Food"),
		txnOn(suite.period.End, domain.Expense, "10", "BRL", "Food"),
		txnOn(suite.period.End.AddDate(0, 0, 1), domain.Expense, "99", "BRL", "Food"),
		txnOn(suite.period.Start.AddDate(0, 0, -1), domain.Expense, "99", "BRL", "Food"),
	}, nil).Once()

	result, err := suite.newService().Summary(context.Background(), suite.userID, suite.period)

	suite.Require().NoError(err)
	// Boundary dates are inclusive, neighbors are out.
	suite.True(result.TotalExpenses.Equal(decimal.NewFromInt(20)))
}

func (suite *ReportingServiceTestSuite) TestSummary_CategoryBreakdownSortedDescending() {
	day := suite.period.Start
	suite.expectBRLDisplay()
	suite.mockTxnRepo.On("ListTransactions", mock.Anything, suite.userID, suite.period).Return([]domain.Transaction{
		txnOn(day, domain.Expense, "25", "BRL", "Food"),
		txnOn(day, domain.Expense, "50", "BRL", "Rent"),
		txnOn(day, domain.Expense, "25", "BRL", "Transport"),
	}, nil).Once()

	result, err := suite.newService().Summary(context.Background(), suite.userID, suite.period)

	suite.Require().NoError(err)
	suite.Require().Len(result.ByCategory, 3)
	suite.Equal("Rent", result.ByCategory[0].Category)
	// Equal totals keep first-occurrence order.
	suite.Equal("Food", result.ByCategory[1].Category)
	suite.Equal("Transport", result.ByCategory[2].Category)

	suite.True(result.ByCategory[0].Percentage.Equal(decimal.NewFromInt(50)))
	suite.True(result.ByCategory[1].Percentage.Equal(decimal.NewFromInt(25)))
	suite.True(result.ByCategory[2].Percentage.Equal(decimal.NewFromInt(25)))
}

func (suite *ReportingServiceTestSuite) TestSummary_ZeroExpensesMeansZeroPercentages() {
	day := suite.period.Start
	suite.expectBRLDisplay()
	suite.mockTxnRepo.On("ListTransactions", mock.Anything, suite.userID, suite.period).Return([]domain.Transaction{
		txnOn(day, domain.Income, "100", "BRL", "Salary"),
	}, nil).Once()

	result, err := suite.newService().Summary(context.Background(), suite.userID, suite.period)

	suite.Require().NoError(err)
	suite.True(result.TotalExpenses.IsZero())
	suite.Empty(result.ByCategory)
}

func (suite *ReportingServiceTestSuite) TestSummary_EmptyInputYieldsZeroResult() {
	suite.expectBRLDisplay()
	suite.mockTxnRepo.On("ListTransactions", mock.Anything, suite.userID, suite.period).Return([]domain.Transaction{}, nil).Once()

	result, err := suite.newService().Summary(context.Background(), suite.userID, suite.period)

	suite.Require().NoError(err)
	suite.True(result.TotalIncome.IsZero())
	suite.True(result.TotalExpenses.IsZero())
	suite.True(result.NetResult.IsZero())
	suite.Empty(result.ByCategory)
}

func (suite *ReportingServiceTestSuite) TestSummary_CarriesStaleFlag() {
	suite.rates.stale = true
	suite.expectBRLDisplay()
	suite.mockTxnRepo.On("ListTransactions", mock.Anything, suite.userID, suite.period).Return([]domain.Transaction{}, nil).Once()

	result, err := suite.newService().Summary(context.Background(), suite.userID, suite.period)

	suite.Require().NoError(err)
	suite.True(result.RatesStale)
}

func (suite *ReportingServiceTestSuite) TestSummaryWithComparison_ZeroPreviousYieldsZeroDelta() {
	day := suite.period.Start
	previous := suite.period.Previous()
	suite.expectBRLDisplay()
	suite.mockTxnRepo.On("ListTransactions", mock.Anything, suite.userID, suite.period).Return([]domain.Transaction{
		txnOn(day, domain.Income, "100", "BRL", "Salary"),
		txnOn(day, domain.Expense, "40", "BRL", "Food"),
	}, nil).Once()
	suite.mockTxnRepo.On("ListTransactions", mock.Anything, suite.userID, previous).Return([]domain.Transaction{}, nil).Once()

	cmp, err := suite.newService().SummaryWithComparison(context.Background(), suite.userID, suite.period)

	suite.Require().NoError(err)
	suite.True(cmp.IncomeChangePct.IsZero())
	suite.True(cmp.ExpenseChangePct.IsZero())
	suite.True(cmp.NetChangePct.IsZero())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestSummaryWithComparison_ComputesDeltas() {
	previous := suite.period.Previous()
	suite.expectBRLDisplay()
	suite.mockTxnRepo.On("ListTransactions", mock.Anything, suite.userID, suite.period).Return([]domain.Transaction{
		txnOn(suite.period.Start, domain.Income, "150", "BRL", "Salary"),
		txnOn(suite.period.Start, domain.Expense, "50", "BRL", "Food"),
	}, nil).Once()
	suite.mockTxnRepo.On("ListTransactions", mock.Anything, suite.userID, previous).Return([]domain.Transaction{
		txnOn(previous.Start, domain.Income, "100", "BRL", "Salary"),
		txnOn(previous.Start, domain.Expense, "100", "BRL", "Food"),
	}, nil).Once()

	cmp, err := suite.newService().SummaryWithComparison(context.Background(), suite.userID, suite.period)

	suite.Require().NoError(err)
	suite.True(cmp.IncomeChangePct.Equal(decimal.NewFromInt(50)))
	suite.True(cmp.ExpenseChangePct.Equal(decimal.NewFromInt(-50)))
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
