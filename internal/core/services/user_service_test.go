package services_test

import (
	"context"
	"testing"

	"github.com/grana-app/grana_backend/internal/apperrors"
	"github.com/grana-app/grana_backend/internal/core/domain"
	"github.com/grana-app/grana_backend/internal/core/services"
	"github.com/grana-app/grana_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePreferredCurrency(ctx context.Context, userID, currencyCode, updatedBy string) error {
	args := m.Called(ctx, userID, currencyCode, updatedBy)
	return args.Error(0)
}

// MockCurrencyReader is a mock type for the CurrencyReader interface
type MockCurrencyReader struct {
	mock.Mock
}

func (m *MockCurrencyReader) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyReader) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Test Suite Setup ---

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo     *MockUserRepository
	mockCurrencyRepo *MockCurrencyReader
	service          portsUserSvc
	userID           string
}

type portsUserSvc interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	DisplayCurrency(ctx context.Context, userID string) domain.Currency
	SetPreferredCurrency(ctx context.Context, userID, currencyCode string) error
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockCurrencyRepo = new(MockCurrencyReader)
	suite.service = services.NewUserService(suite.mockUserRepo, suite.mockCurrencyRepo)
	suite.userID = uuid.NewString()
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestCreateUser_DefaultsToBaseCurrency() {
	suite.mockUserRepo.On("SaveUser", mock.Anything, mock.AnythingOfType("domain.User")).Return(nil).Once()

	user, err := suite.service.CreateUser(context.Background(), dto.CreateUserRequest{Name: "Ana"})

	suite.Require().NoError(err)
	suite.Equal(domain.BaseCurrencyCode, user.PreferredCurrencyCode)
	suite.NotEmpty(user.UserID)
}

func (suite *UserServiceTestSuite) TestDisplayCurrency_EmptyUserIDFallsBack() {
	currency := suite.service.DisplayCurrency(context.Background(), "")

	suite.Equal(domain.BaseCurrencyCode, currency.CurrencyCode)
	suite.Equal("R$", currency.Symbol)
	suite.Equal(2, currency.Precision)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByID")
}

func (suite *UserServiceTestSuite) TestDisplayCurrency_UnknownUserFallsBack() {
	suite.mockUserRepo.On("FindUserByID", mock.Anything, suite.userID).Return(nil, apperrors.ErrNotFound).Once()

	currency := suite.service.DisplayCurrency(context.Background(), suite.userID)

	suite.Equal(domain.BaseCurrencyCode, currency.CurrencyCode)
}

func (suite *UserServiceTestSuite) TestDisplayCurrency_ResolvesPreference() {
	suite.mockUserRepo.On("FindUserByID", mock.Anything, suite.userID).Return(&domain.User{
		UserID:                suite.userID,
		PreferredCurrencyCode: "USD",
	}, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", mock.Anything, "USD").Return(&domain.Currency{
		CurrencyCode: "USD", Symbol: "$", Precision: 2,
	}, nil).Once()

	currency := suite.service.DisplayCurrency(context.Background(), suite.userID)

	suite.Equal("USD", currency.CurrencyCode)
	suite.Equal("$", currency.Symbol)
}

func (suite *UserServiceTestSuite) TestDisplayCurrency_UncataloguedPreferenceUsesCodeAsSymbol() {
	suite.mockUserRepo.On("FindUserByID", mock.Anything, suite.userID).Return(&domain.User{
		UserID:                suite.userID,
		PreferredCurrencyCode: "JPY",
	}, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", mock.Anything, "JPY").Return(nil, apperrors.ErrNotFound).Once()

	currency := suite.service.DisplayCurrency(context.Background(), suite.userID)

	suite.Equal("JPY", currency.CurrencyCode)
	suite.Equal("JPY", currency.Symbol)
	suite.Equal(2, currency.Precision)
}

func (suite *UserServiceTestSuite) TestSetPreferredCurrency_RejectsUnknownCode() {
	suite.mockCurrencyRepo.On("FindCurrencyByCode", mock.Anything, "XXX").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.SetPreferredCurrency(context.Background(), suite.userID, "xxx")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdatePreferredCurrency")
}

func (suite *UserServiceTestSuite) TestSetPreferredCurrency_UppercasesAndPersists() {
	suite.mockCurrencyRepo.On("FindCurrencyByCode", mock.Anything, "USD").Return(&domain.Currency{
		CurrencyCode: "USD", Symbol: "$", Precision: 2,
	}, nil).Once()
	suite.mockUserRepo.On("UpdatePreferredCurrency", mock.Anything, suite.userID, "USD", suite.userID).Return(nil).Once()

	err := suite.service.SetPreferredCurrency(context.Background(), suite.userID, "usd")

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
