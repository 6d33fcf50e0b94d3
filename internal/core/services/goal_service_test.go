package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/grana-app/grana_backend/internal/apperrors"
	"github.com/grana-app/grana_backend/internal/core/domain"
	"github.com/grana-app/grana_backend/internal/core/services"
	"github.com/grana-app/grana_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockGoalRepository is a mock type for the GoalRepositoryFacade interface
type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) FindGoalByID(ctx context.Context, goalID string) (*domain.CategoryGoal, error) {
	args := m.Called(ctx, goalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CategoryGoal), args.Error(1)
}

func (m *MockGoalRepository) ListGoals(ctx context.Context, userID string) ([]domain.CategoryGoal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryGoal), args.Error(1)
}

func (m *MockGoalRepository) SaveGoal(ctx context.Context, goal domain.CategoryGoal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) DeleteGoal(ctx context.Context, goalID string) error {
	args := m.Called(ctx, goalID)
	return args.Error(0)
}

// MockReportingSvc is a mock type for the ReportingSvcFacade interface
type MockReportingSvc struct {
	mock.Mock
}

func (m *MockReportingSvc) Summary(ctx context.Context, userID string, period domain.Period) (*domain.AggregationResult, error) {
	args := m.Called(ctx, userID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AggregationResult), args.Error(1)
}

func (m *MockReportingSvc) SummaryWithComparison(ctx context.Context, userID string, period domain.Period) (*domain.PeriodComparison, error) {
	args := m.Called(ctx, userID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PeriodComparison), args.Error(1)
}

// --- Test Suite Setup ---

type GoalServiceTestSuite struct {
	suite.Suite
	mockRepo      *MockGoalRepository
	mockReporting *MockReportingSvc
	mockUserSvc   *MockUserReaderSvc
	service       portsGoalSvc
	period        domain.Period
	userID        string
}

type portsGoalSvc interface {
	CreateGoal(ctx context.Context, req dto.CreateGoalRequest, userID string) (*domain.CategoryGoal, error)
	ListGoals(ctx context.Context, userID string) ([]domain.CategoryGoal, error)
	DeleteGoal(ctx context.Context, goalID, userID string) error
	Progress(ctx context.Context, userID string, period domain.Period) ([]domain.GoalProgress, error)
}

func (suite *GoalServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockGoalRepository)
	suite.mockReporting = new(MockReportingSvc)
	suite.mockUserSvc = new(MockUserReaderSvc)
	suite.service = services.NewGoalService(suite.mockRepo, suite.mockReporting, suite.mockUserSvc)
	suite.period = domain.MonthPeriod(2025, time.June)
	suite.userID = uuid.NewString()
}

func (suite *GoalServiceTestSuite) goalFor(category string, limit int64) domain.CategoryGoal {
	return domain.CategoryGoal{
		GoalID:      uuid.NewString(),
		UserID:      suite.userID,
		Category:    category,
		BudgetLimit: decimal.NewFromInt(limit),
		Period:      domain.GoalPeriodMonthly,
	}
}

func (suite *GoalServiceTestSuite) expectSummary(byCategory ...domain.CategorySummary) {
	suite.mockReporting.On("Summary", mock.Anything, suite.userID, suite.period).Return(&domain.AggregationResult{
		ByCategory:      byCategory,
		DisplayCurrency: "BRL",
	}, nil).Once()
}

// --- Test Cases ---

func (suite *GoalServiceTestSuite) TestCreateGoal_Success() {
	ctx := context.Background()
	req := dto.CreateGoalRequest{
		Category:    "Food",
		BudgetLimit: decimal.NewFromInt(500),
	}

	suite.mockRepo.On("SaveGoal", ctx, mock.AnythingOfType("domain.CategoryGoal")).Return(nil).Once()

	createdGoal, err := suite.service.CreateGoal(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(createdGoal)
	suite.NotEmpty(createdGoal.GoalID)
	suite.Equal("Food", createdGoal.Category)
	suite.Equal(domain.GoalPeriodMonthly, createdGoal.Period)
	suite.Equal(suite.userID, createdGoal.CreatedBy)
	suite.WithinDuration(time.Now(), createdGoal.CreatedAt, time.Second)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *GoalServiceTestSuite) TestCreateGoal_RejectsNonPositiveLimit() {
	req := dto.CreateGoalRequest{
		Category:    "Food",
		BudgetLimit: decimal.Zero,
	}

	createdGoal, err := suite.service.CreateGoal(context.Background(), req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(createdGoal)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveGoal")
}

func (suite *GoalServiceTestSuite) TestListGoals_NilBecomesEmpty() {
	suite.mockRepo.On("ListGoals", mock.Anything, suite.userID).Return([]domain.CategoryGoal(nil), nil).Once()

	goals, err := suite.service.ListGoals(context.Background(), suite.userID)

	suite.Require().NoError(err)
	suite.NotNil(goals)
	suite.Empty(goals)
}

func (suite *GoalServiceTestSuite) TestDeleteGoal_RejectsForeignGoal() {
	goal := suite.goalFor("Food", 500)
	goal.UserID = uuid.NewString()

	suite.mockRepo.On("FindGoalByID", mock.Anything, goal.GoalID).Return(&goal, nil).Once()

	err := suite.service.DeleteGoal(context.Background(), goal.GoalID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteGoal")
}

func (suite *GoalServiceTestSuite) TestDeleteGoal_PropagatesNotFound() {
	goalID := uuid.NewString()
	suite.mockRepo.On("FindGoalByID", mock.Anything, goalID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteGoal(context.Background(), goalID, suite.userID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *GoalServiceTestSuite) TestProgress_ClassifiesAtBreakpoints() {
	goals := []domain.CategoryGoal{
		suite.goalFor("Food", 100),      // spent 50 -> ratio 0.5 -> EXCELLENT
		suite.goalFor("Transport", 100), // spent 80 -> ratio 0.8 -> GOOD
		suite.goalFor("Leisure", 100),   // spent 99 -> ratio 0.99 -> WARNING
		suite.goalFor("Rent", 100),      // spent 100 -> ratio 1.0 -> CRITICAL
	}
	suite.mockRepo.On("ListGoals", mock.Anything, suite.userID).Return(goals, nil).Once()
	suite.expectSummary(
		domain.CategorySummary{Category: "Food", Total: decimal.NewFromInt(50)},
		domain.CategorySummary{Category: "Transport", Total: decimal.NewFromInt(80)},
		domain.CategorySummary{Category: "Leisure", Total: decimal.NewFromInt(99)},
		domain.CategorySummary{Category: "Rent", Total: decimal.NewFromInt(100)},
	)

	progress, err := suite.service.Progress(context.Background(), suite.userID, suite.period)

	suite.Require().NoError(err)
	suite.Require().Len(progress, 4)
	suite.Equal(domain.BudgetExcellent, progress[0].Status)
	suite.Equal(domain.BudgetGood, progress[1].Status)
	suite.Equal(domain.BudgetWarning, progress[2].Status)
	suite.Equal(domain.BudgetCritical, progress[3].Status)
	suite.Equal("BRL", progress[0].DisplayCurrency)
}

func (suite *GoalServiceTestSuite) TestProgress_NoSpendIsExcellent() {
	goals := []domain.CategoryGoal{suite.goalFor("Food", 100)}
	suite.mockRepo.On("ListGoals", mock.Anything, suite.userID).Return(goals, nil).Once()
	suite.expectSummary()

	progress, err := suite.service.Progress(context.Background(), suite.userID, suite.period)

	suite.Require().NoError(err)
	suite.Require().Len(progress, 1)
	suite.True(progress[0].Spent.IsZero())
	suite.Equal(domain.BudgetExcellent, progress[0].Status)
}

func (suite *GoalServiceTestSuite) TestProgress_NoGoalsSkipsAggregation() {
	suite.mockRepo.On("ListGoals", mock.Anything, suite.userID).Return([]domain.CategoryGoal{}, nil).Once()

	progress, err := suite.service.Progress(context.Background(), suite.userID, suite.period)

	suite.Require().NoError(err)
	suite.Empty(progress)
	suite.mockReporting.AssertNotCalled(suite.T(), "Summary")
}

func TestGoalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GoalServiceTestSuite))
}
