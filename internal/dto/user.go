package dto

import (
	"github.com/grana-app/grana_backend/internal/core/domain"
)

// CreateUserRequest defines the structure for creating a user profile.
type CreateUserRequest struct {
	Name                  string `json:"name" binding:"required"`
	PreferredCurrencyCode string `json:"preferredCurrencyCode" binding:"omitempty,currencycode"`
}

// UpdateCurrencyRequest defines the structure for changing the display currency.
type UpdateCurrencyRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,currencycode"`
}

// UserResponse defines the structure for API responses containing user details.
type UserResponse struct {
	UserID                string `json:"userID"`
	Name                  string `json:"name"`
	PreferredCurrencyCode string `json:"preferredCurrencyCode"`
}

// UserCurrencyResponse describes the active display currency of a user.
type UserCurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Precision    int    `json:"precision"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:                user.UserID,
		Name:                  user.Name,
		PreferredCurrencyCode: user.PreferredCurrencyCode,
	}
}

// ToUserCurrencyResponse converts a domain.Currency to the display-currency DTO.
func ToUserCurrencyResponse(currency domain.Currency) UserCurrencyResponse {
	return UserCurrencyResponse{
		CurrencyCode: currency.CurrencyCode,
		Symbol:       currency.Symbol,
		Precision:    currency.Precision,
	}
}
