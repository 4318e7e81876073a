package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ===== RESPONSE PROJECTIONS =====

// UserResponse is the outward-facing projection of a stored User. Every
// stored field is present; the skills column is decoded back to a list.
type UserResponse struct {
	ID                 uint             `json:"id"`
	WalletAddress      string           `json:"wallet_address"`
	Name               string           `json:"name"`
	Email              *string          `json:"email"`
	Role               UserRole         `json:"role"`
	Reputation         int              `json:"reputation"`
	SubscriptionTier   SubscriptionTier `json:"subscription_tier"`
	SubscriptionExpiry *time.Time       `json:"subscription_expiry"`
	Bio                *string          `json:"bio"`
	Skills             []string         `json:"skills"`
	Experience         *string          `json:"experience"`
	HourlyRate         *decimal.Decimal `json:"hourly_rate"`
	ProfileImage       *string          `json:"profile_image"`
	IsVerified         bool             `json:"is_verified"`
	IsActive           bool             `json:"is_active"`
	LastActiveAt       *time.Time       `json:"last_active_at"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// NewUserResponse projects a stored user, decoding serialized fields.
func NewUserResponse(u *User) *UserResponse {
	return &UserResponse{
		ID:                 u.ID,
		WalletAddress:      u.WalletAddress,
		Name:               u.Name,
		Email:              u.Email,
		Role:               u.Role,
		Reputation:         u.Reputation,
		SubscriptionTier:   u.SubscriptionTier,
		SubscriptionExpiry: u.SubscriptionExpiry,
		Bio:                u.Bio,
		Skills:             u.SkillList(),
		Experience:         u.Experience,
		HourlyRate:         u.HourlyRate,
		ProfileImage:       u.ProfileImage,
		IsVerified:         u.IsVerified,
		IsActive:           u.IsActive,
		LastActiveAt:       u.LastActiveAt,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}

// PlaceholderResponse is the explicit "not yet available" variant returned
// by stubbed endpoints, so callers can tell a missing feature from an
// empty result.
type PlaceholderResponse struct {
	Message     string `json:"message"`
	Implemented bool   `json:"implemented"`
}
