package services_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/grana-app/grana_backend/internal/core/domain"
	"github.com/grana-app/grana_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockExchangeRateRepository is a mock type for the ExchangeRateRepositoryFacade interface
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) FindExchangeRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, fromCurrencyCode, toCurrencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) ListLatestRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockExchangeRateRepository) SaveExchangeRates(ctx context.Context, rates []domain.ExchangeRate) error {
	args := m.Called(ctx, rates)
	return args.Error(0)
}

// stubRateSource is a controllable RateSource. When blockUntil is set, each
// FetchRates call waits for the channel to close before returning.
type stubRateSource struct {
	rates      []domain.ExchangeRate
	err        error
	blockUntil chan struct{}
	calls      atomic.Int32
}

func (s *stubRateSource) FetchRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	s.calls.Add(1)
	if s.blockUntil != nil {
		<-s.blockUntil
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.rates, nil
}

var errRepoDown = errors.New("repository unavailable")

// --- Test Suite Setup ---

type RateTableTestSuite struct {
	suite.Suite
	mockRepo *MockExchangeRateRepository
	source   *stubRateSource
	now      time.Time
}

func (suite *RateTableTestSuite) SetupTest() {
	suite.mockRepo = new(MockExchangeRateRepository)
	suite.source = &stubRateSource{}
	suite.now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
}

func (suite *RateTableTestSuite) newTable() *services.RateTable {
	return services.NewRateTable(suite.mockRepo, suite.source, services.WithClock(func() time.Time {
		return suite.now
	}))
}

func storedRate(from, to string, rate float64, updatedAt time.Time) domain.ExchangeRate {
	return domain.ExchangeRate{
		ExchangeRateID:   from + "-" + to,
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		Rate:             decimal.NewFromFloat(rate),
		DateEffective:    domain.DateOnly(updatedAt),
		AuditFields: domain.AuditFields{
			CreatedAt:     updatedAt,
			LastUpdatedAt: updatedAt,
		},
	}
}

// --- Test Cases ---

func (suite *RateTableTestSuite) TestGetRate_SameCurrencyIsIdentity() {
	table := suite.newTable()

	rate := table.GetRate("BRL", "BRL")

	suite.True(rate.Equal(decimal.NewFromInt(1)))
}

func (suite *RateTableTestSuite) TestGetRate_UsesBootstrappedRates() {
	suite.mockRepo.On("ListLatestRates", mock.Anything).Return([]domain.ExchangeRate{
		storedRate("USD", "BRL", 5.25, suite.now.Add(-time.Hour)),
	}, nil).Once()

	table := suite.newTable()
	table.Bootstrap(context.Background())

	suite.True(table.GetRate("USD", "BRL").Equal(decimal.NewFromFloat(5.25)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RateTableTestSuite) TestGetRate_LowercaseCodesResolve() {
	suite.mockRepo.On("ListLatestRates", mock.Anything).Return([]domain.ExchangeRate{
		storedRate("USD", "BRL", 5.25, suite.now.Add(-time.Hour)),
	}, nil).Once()

	table := suite.newTable()
	table.Bootstrap(context.Background())

	suite.True(table.GetRate("usd", "brl").Equal(decimal.NewFromFloat(5.25)))
}

func (suite *RateTableTestSuite) TestGetRate_FallsBackToStaticTable() {
	table := suite.newTable()

	// Nothing bootstrapped; USD->BRL exists in the static fallback table.
	rate := table.GetRate("USD", "BRL")

	suite.True(rate.Equal(decimal.NewFromFloat(5.00)))
}

func (suite *RateTableTestSuite) TestGetRate_UnknownPairIsIdentity() {
	table := suite.newTable()

	rate := table.GetRate("JPY", "CHF")

	suite.True(rate.Equal(decimal.NewFromInt(1)))
}

func (suite *RateTableTestSuite) TestGetRate_NoInverseDerivation() {
	// Only USD->BRL stored; BRL->USD must not be derived from it. The static
	// fallback still answers, with its own directional entry.
	suite.mockRepo.On("ListLatestRates", mock.Anything).Return([]domain.ExchangeRate{
		storedRate("USD", "BRL", 5.25, suite.now.Add(-time.Hour)),
	}, nil).Once()

	table := suite.newTable()
	table.Bootstrap(context.Background())

	suite.True(table.GetRate("BRL", "USD").Equal(decimal.NewFromFloat(0.20)))
}

func (suite *RateTableTestSuite) TestConvert_RoundsOnceAtConversion() {
	suite.mockRepo.On("ListLatestRates", mock.Anything).Return([]domain.ExchangeRate{
		storedRate("USD", "BRL", 5, suite.now.Add(-time.Hour)),
	}, nil).Once()

	table := suite.newTable()
	table.Bootstrap(context.Background())

	// 10.555 * 5 = 52.775, rounded half-up to 52.78
	converted := table.Convert(decimal.RequireFromString("10.555"), "USD", "BRL")

	suite.True(converted.Equal(decimal.RequireFromString("52.78")), "got %s", converted)
}

func (suite *RateTableTestSuite) TestConvert_IdentityIsExact() {
	table := suite.newTable()

	amount := decimal.RequireFromString("10.555")

	// Same currency and unknown pair both keep the amount bit-for-bit,
	// including digits beyond the display precision.
	suite.True(table.Convert(amount, "BRL", "BRL").Equal(amount))
	suite.True(table.Convert(amount, "JPY", "CHF").Equal(amount))
}

func (suite *RateTableTestSuite) TestConvert_StoredUnitRateStillRounds() {
	// A pegged pair carries a stored rate of exactly 1. That is a resolved
	// rate, not an identity shortcut, so the conversion still rounds.
	suite.mockRepo.On("ListLatestRates", mock.Anything).Return([]domain.ExchangeRate{
		storedRate("USD", "PAB", 1, suite.now.Add(-time.Hour)),
	}, nil).Once()

	table := suite.newTable()
	table.Bootstrap(context.Background())

	converted := table.Convert(decimal.RequireFromString("10.555"), "USD", "PAB")

	suite.True(converted.Equal(decimal.RequireFromString("10.56")), "got %s", converted)
}

func (suite *RateTableTestSuite) TestIsStale_TrueWhenNeverLoaded() {
	table := suite.newTable()

	suite.True(table.IsStale())
}

func (suite *RateTableTestSuite) TestIsStale_FollowsThreshold() {
	suite.mockRepo.On("ListLatestRates", mock.Anything).Return([]domain.ExchangeRate{
		storedRate("USD", "BRL", 5, suite.now.Add(-time.Hour)),
	}, nil).Once()

	table := suite.newTable()
	table.Bootstrap(context.Background())

	suite.False(table.IsStale())

	suite.now = suite.now.Add(services.StaleAfter + time.Minute)
	suite.True(table.IsStale())
}

func (suite *RateTableTestSuite) TestRefresh_ReplacesTableWholesale() {
	suite.mockRepo.On("ListLatestRates", mock.Anything).Return([]domain.ExchangeRate{
		storedRate("USD", "BRL", 5, suite.now.Add(-time.Hour)),
	}, nil).Once()
	suite.mockRepo.On("SaveExchangeRates", mock.Anything, mock.Anything).Return(nil).Once()

	suite.source.rates = []domain.ExchangeRate{
		storedRate("EUR", "BRL", 6.5, suite.now),
	}

	table := suite.newTable()
	table.Bootstrap(context.Background())

	err := table.Refresh(context.Background())

	suite.Require().NoError(err)
	// New snapshot wins; the old USD pair is gone and falls back to the
	// static table.
	suite.True(table.GetRate("EUR", "BRL").Equal(decimal.NewFromFloat(6.5)))
	suite.True(table.GetRate("USD", "BRL").Equal(decimal.NewFromFloat(5.00)))
	suite.Equal(suite.now, table.LastRefreshed())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RateTableTestSuite) TestRefresh_ToleratesPersistFailure() {
	suite.mockRepo.On("SaveExchangeRates", mock.Anything, mock.Anything).Return(errRepoDown).Once()

	suite.source.rates = []domain.ExchangeRate{
		storedRate("USD", "BRL", 5.5, suite.now),
	}

	table := suite.newTable()
	err := table.Refresh(context.Background())

	suite.Require().NoError(err)
	suite.True(table.GetRate("USD", "BRL").Equal(decimal.NewFromFloat(5.5)))
}

func (suite *RateTableTestSuite) TestRefresh_FetchErrorKeepsOldRates() {
	suite.mockRepo.On("ListLatestRates", mock.Anything).Return([]domain.ExchangeRate{
		storedRate("USD", "BRL", 5.25, suite.now.Add(-time.Hour)),
	}, nil).Once()

	suite.source.err = errRepoDown

	table := suite.newTable()
	table.Bootstrap(context.Background())

	err := table.Refresh(context.Background())

	suite.Require().Error(err)
	suite.True(table.GetRate("USD", "BRL").Equal(decimal.NewFromFloat(5.25)))
}

func (suite *RateTableTestSuite) TestOnRefresh_NotifiesAndUnsubscribes() {
	suite.mockRepo.On("SaveExchangeRates", mock.Anything, mock.Anything).Return(nil).Twice()
	suite.source.rates = []domain.ExchangeRate{
		storedRate("USD", "BRL", 5, suite.now),
	}

	table := suite.newTable()

	var fired atomic.Int32
	unsubscribe := table.OnRefresh(func() {
		fired.Add(1)
	})

	suite.Require().NoError(table.Refresh(context.Background()))
	suite.Equal(int32(1), fired.Load())

	unsubscribe()

	suite.Require().NoError(table.Refresh(context.Background()))
	suite.Equal(int32(1), fired.Load())
}

func (suite *RateTableTestSuite) TestRefresh_ConcurrentCallsCoalesce() {
	suite.mockRepo.On("SaveExchangeRates", mock.Anything, mock.Anything).Return(nil)
	suite.source.rates = []domain.ExchangeRate{
		storedRate("USD", "BRL", 5, suite.now),
	}
	suite.source.blockUntil = make(chan struct{})

	table := suite.newTable()

	const workers = 5
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_ = table.Refresh(context.Background())
		}()
	}

	// Give the goroutines time to pile up behind the in-flight fetch.
	time.Sleep(50 * time.Millisecond)
	close(suite.source.blockUntil)
	wg.Wait()

	suite.Equal(int32(1), suite.source.calls.Load())
}

func TestRateTableTestSuite(t *testing.T) {
	suite.Run(t, new(RateTableTestSuite))
}
