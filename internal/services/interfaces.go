package services

import (
	"context"

	"github.com/daveylupes/womantech/internal/models"
	"github.com/daveylupes/womantech/internal/validator"
)

// ===== REQUEST/RESPONSE DTOs =====

// Use business validator types
type RegisterUserRequest = validator.RegisterUserRequest
type UpdateUserRequest = validator.UpdateUserRequest

type UserResponse = models.UserResponse

// SearchUsersRequest carries the user search filters as received from the
// transport layer.
type SearchUsersRequest struct {
	Role   *string
	Skills *string
	Limit  int
}

type SearchUsersResponse struct {
	Users []*UserResponse `json:"users"`
	Total int             `json:"total"`
}

// PlaceholderResponse marks a surface that is declared but not yet live.
type PlaceholderResponse = models.PlaceholderResponse

// ===== SERVICE INTERFACES =====

type UserService interface {
	Register(ctx context.Context, req *RegisterUserRequest) (*UserResponse, error)
	GetByWallet(ctx context.Context, walletAddress string) (*UserResponse, error)
	GetCurrent(ctx context.Context) (*UserResponse, error)
	Search(ctx context.Context, req *SearchUsersRequest) (*SearchUsersResponse, error)
	UpdateProfile(ctx context.Context, walletAddress string, req *UpdateUserRequest) (*UserResponse, error)
	Deactivate(ctx context.Context, walletAddress string) error
}

// SessionService fronts the mentorship session surface. Booking is not
// live yet; List reports the placeholder state.
type SessionService interface {
	List(ctx context.Context) (*PlaceholderResponse, error)
}

// PaymentService fronts the payment surface. Processing is not live yet;
// List reports the placeholder state.
type PaymentService interface {
	List(ctx context.Context) (*PlaceholderResponse, error)
}

type CreateNotificationRequest struct {
	UserID  uint                    `json:"user_id" validate:"required"`
	Type    models.NotificationType `json:"type" validate:"required"`
	Title   string                  `json:"title" validate:"required,max=255"`
	Message string                  `json:"message" validate:"required"`
}

type NotificationService interface {
	Create(ctx context.Context, req *CreateNotificationRequest) (*models.Notification, error)
	ListByUser(ctx context.Context, userID uint, unreadOnly bool, limit int) ([]*models.Notification, error)
	MarkRead(ctx context.Context, id uint) error
}

// ServiceManager wires every service with shared dependencies and owns their
// lifecycle.
type ServiceManager interface {
	Initialize(ctx context.Context) error
	Shutdown(ctx context.Context) error

	User() UserService
	Session() SessionService
	Payment() PaymentService
	Notification() NotificationService
}
