package services

import (
	"context"

	"github.com/grana-app/grana_backend/internal/core/domain"
	"github.com/grana-app/grana_backend/internal/dto"
)

// UserReaderSvc defines read operations for user profiles
type UserReaderSvc interface {
	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, userID string) (*domain.User, error)

	// DisplayCurrency resolves the user's display currency including symbol
	// and precision. It never fails: an unknown or absent user yields the
	// base currency so presentation code always has something to render.
	DisplayCurrency(ctx context.Context, userID string) domain.Currency
}

// UserWriterSvc defines write operations for user profiles
type UserWriterSvc interface {
	// CreateUser persists a new user profile.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// SetPreferredCurrency updates the user's display currency. The code must
	// exist in the currency catalog.
	SetPreferredCurrency(ctx context.Context, userID, currencyCode string) error
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
