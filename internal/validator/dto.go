package validator

import (
	"github.com/shopspring/decimal"

	"github.com/daveylupes/womantech/internal/models"
)

// RegisterUserRequest is the inbound registration payload. Name, role and
// wallet address are mandatory; everything else is optional profile data.
type RegisterUserRequest struct {
	WalletAddress string           `json:"wallet_address" validate:"required,wallet_address"`
	Name          string           `json:"name" validate:"required,min=1,max=100"`
	Email         *string          `json:"email" validate:"omitempty,email"`
	Role          models.UserRole  `json:"role" validate:"required,user_role"`
	Bio           *string          `json:"bio" validate:"omitempty,max=2000"`
	Skills        []string         `json:"skills" validate:"omitempty,max=50,dive,max=100"`
	Experience    *string          `json:"experience" validate:"omitempty,max=5000"`
	HourlyRate    *decimal.Decimal `json:"hourly_rate" validate:"omitempty,min=0"`
}

// UpdateUserRequest is the profile-update payload. Role and wallet address
// are fixed at registration and deliberately absent here.
type UpdateUserRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=100"`
	Email        *string          `json:"email" validate:"omitempty,email"`
	Bio          *string          `json:"bio" validate:"omitempty,max=2000"`
	Skills       []string         `json:"skills" validate:"omitempty,max=50,dive,max=100"`
	Experience   *string          `json:"experience" validate:"omitempty,max=5000"`
	HourlyRate   *decimal.Decimal `json:"hourly_rate" validate:"omitempty,min=0"`
	ProfileImage *string          `json:"profile_image" validate:"omitempty,max=500"`
}
