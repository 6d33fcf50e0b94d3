package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/grana-app/grana_backend/internal/apperrors"
	"github.com/grana-app/grana_backend/internal/core/domain"
	portsrepo "github.com/grana-app/grana_backend/internal/core/ports/repositories"
	portssvc "github.com/grana-app/grana_backend/internal/core/ports/services"
	"github.com/grana-app/grana_backend/internal/dto"
	"github.com/google/uuid"
)

// defaultDisplayCurrency is served when no user context is available, so
// presentation never fails for lack of a profile.
var defaultDisplayCurrency = domain.Currency{
	CurrencyCode: domain.BaseCurrencyCode,
	Symbol:       "R$",
	Name:         "Brazilian Real",
	Precision:    2,
}

type userService struct {
	BaseService
	userRepo     portsrepo.UserRepositoryFacade
	currencyRepo portsrepo.CurrencyReader
}

// NewUserService creates a new user profile service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, currencyRepo portsrepo.CurrencyReader) portssvc.UserSvcFacade {
	return &userService{
		userRepo:     userRepo,
		currencyRepo: currencyRepo,
	}
}

// Ensure userService implements the UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser persists a new user profile.
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	preferred := strings.ToUpper(req.PreferredCurrencyCode)
	if preferred == "" {
		preferred = domain.BaseCurrencyCode
	}

	now := time.Now()
	userID := uuid.NewString()
	user := domain.User{
		UserID:                userID,
		Name:                  req.Name,
		PreferredCurrencyCode: preferred,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user")
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// GetUser retrieves a user by ID.
func (s *userService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// DisplayCurrency resolves the user's display currency, falling back to the
// base currency when the user or their preferred currency can't be resolved.
func (s *userService) DisplayCurrency(ctx context.Context, userID string) domain.Currency {
	if userID == "" {
		return defaultDisplayCurrency
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to resolve user for display currency", slog.String("user_id", userID))
		}
		return defaultDisplayCurrency
	}
	if user == nil || user.PreferredCurrencyCode == "" {
		return defaultDisplayCurrency
	}

	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, user.PreferredCurrencyCode)
	if err != nil {
		// Preference points at a currency the catalog doesn't know; render
		// with the code and default formatting rules rather than failing.
		fallback := defaultDisplayCurrency
		fallback.CurrencyCode = user.PreferredCurrencyCode
		fallback.Symbol = user.PreferredCurrencyCode
		return fallback
	}
	return *currency
}

// SetPreferredCurrency updates the user's display currency after validating
// the code against the currency catalog.
func (s *userService) SetPreferredCurrency(ctx context.Context, userID, currencyCode string) error {
	code := strings.ToUpper(currencyCode)
	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, code); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: unsupported currency code '%s'", apperrors.ErrValidation, code)
		}
		return fmt.Errorf("failed to validate currency '%s': %w", code, err)
	}

	if err := s.userRepo.UpdatePreferredCurrency(ctx, userID, code, userID); err != nil {
		s.LogError(ctx, err, "Failed to update preferred currency",
			slog.String("user_id", userID), slog.String("currency", code))
		return fmt.Errorf("failed to update preferred currency: %w", err)
	}
	return nil
}
