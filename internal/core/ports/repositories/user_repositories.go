package repositories

import (
	"context"

	"github.com/grana-app/grana_backend/internal/core/domain"
)

// UserReader defines read operations for user profile data
type UserReader interface {
	// FindUserByID retrieves a user by ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// UserWriter defines write operations for user profile data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdatePreferredCurrency persists the user's display currency choice.
	UpdatePreferredCurrency(ctx context.Context, userID, currencyCode, updatedBy string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
