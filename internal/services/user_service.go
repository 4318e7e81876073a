package services

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/daveylupes/womantech/internal/events"
	"github.com/daveylupes/womantech/internal/models"
	"github.com/daveylupes/womantech/internal/repositories"
	"github.com/daveylupes/womantech/internal/validator"
)

const userEventsTopic = "womantech.users"

type userService struct {
	repo           repositories.Repository
	db             *gorm.DB
	logger         *slog.Logger
	validator      *validator.Validator
	eventPublisher events.EventPublisher
}

func NewUserService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, validator *validator.Validator, publisher events.EventPublisher) UserService {
	return &userService{
		repo:           repo,
		db:             db,
		logger:         logger,
		validator:      validator,
		eventPublisher: publisher,
	}
}

// Register creates a new user profile. Wallet address and email uniqueness
// is enforced by the store; the role and wallet address are fixed at
// registration and cannot change afterwards.
func (s *userService) Register(ctx context.Context, req *RegisterUserRequest) (*UserResponse, error) {
	s.logger.InfoContext(ctx, "Registering user", "wallet_address", req.WalletAddress, "role", req.Role)

	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	exists, err := s.repo.User().ExistsByWallet(ctx, nil, req.WalletAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to check wallet uniqueness: %w", err)
	}
	if exists {
		return nil, ErrDuplicateWallet
	}

	if req.Email != nil && *req.Email != "" {
		exists, err = s.repo.User().ExistsByEmail(ctx, nil, *req.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
		}
		if exists {
			return nil, ErrDuplicateEmail
		}
	}

	user := &models.User{
		WalletAddress:    req.WalletAddress,
		Name:             req.Name,
		Email:            req.Email,
		Role:             models.UserRole(req.Role),
		SubscriptionTier: models.TierFree,
		Bio:              req.Bio,
		Experience:       req.Experience,
		HourlyRate:       req.HourlyRate,
		IsActive:         true,
	}
	user.SetSkills(req.Skills)

	if err := s.repo.User().Create(ctx, nil, user); err != nil {
		// The existence checks above can race a concurrent insert; the
		// unique constraints are the source of truth.
		if repositories.IsDuplicateKeyError(err) {
			if repositories.DuplicateColumn(err) == "email" {
				return nil, ErrDuplicateEmail
			}
			return nil, ErrDuplicateWallet
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.publishUserEvent(ctx, events.EventUserRegistered, &events.UserRegisteredEvent{
		UserID:        user.ID,
		WalletAddress: user.WalletAddress,
		Role:          string(user.Role),
	})

	s.logger.InfoContext(ctx, "User registered successfully", "user_id", user.ID, "wallet_address", user.WalletAddress)

	return models.NewUserResponse(user), nil
}

// GetByWallet returns the active user holding the wallet address.
func (s *userService) GetByWallet(ctx context.Context, walletAddress string) (*UserResponse, error) {
	user, err := s.repo.User().GetByWallet(ctx, nil, walletAddress)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return models.NewUserResponse(user), nil
}

// GetCurrent resolves the authenticated caller's profile. Authentication is
// not wired yet, so this always reports not implemented.
func (s *userService) GetCurrent(ctx context.Context) (*UserResponse, error) {
	return nil, ErrNotImplemented
}

// Search returns active users matching the filters. Unknown role values
// yield an empty result rather than an error.
func (s *userService) Search(ctx context.Context, req *SearchUsersRequest) (*SearchUsersResponse, error) {
	filters := repositories.UserFilters{Limit: req.Limit}

	if req.Role != nil && *req.Role != "" {
		role := models.UserRole(*req.Role)
		filters.Role = &role
	}
	if req.Skills != nil && *req.Skills != "" {
		filters.Skill = req.Skills
	}

	users, err := s.repo.User().Search(ctx, nil, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	responses := make([]*UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, models.NewUserResponse(user))
	}

	return &SearchUsersResponse{
		Users: responses,
		Total: len(responses),
	}, nil
}

// UpdateProfile applies profile changes to an existing user. Role and
// wallet address are not updatable.
func (s *userService) UpdateProfile(ctx context.Context, walletAddress string, req *UpdateUserRequest) (*UserResponse, error) {
	s.logger.InfoContext(ctx, "Updating user profile", "wallet_address", walletAddress)

	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	user, err := s.repo.User().GetByWallet(ctx, nil, walletAddress)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = req.Email
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}
	if req.Skills != nil {
		user.SetSkills(req.Skills)
	}
	if req.Experience != nil {
		user.Experience = req.Experience
	}
	if req.HourlyRate != nil {
		user.HourlyRate = req.HourlyRate
	}
	if req.ProfileImage != nil {
		user.ProfileImage = req.ProfileImage
	}

	if err := s.repo.User().Update(ctx, nil, user); err != nil {
		if repositories.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.publishUserEvent(ctx, events.EventUserUpdated, &events.UserUpdatedEvent{
		UserID:        user.ID,
		WalletAddress: user.WalletAddress,
	})

	return models.NewUserResponse(user), nil
}

// Deactivate soft-deletes a user; subsequent lookups treat them as absent.
func (s *userService) Deactivate(ctx context.Context, walletAddress string) error {
	user, err := s.repo.User().GetByWallet(ctx, nil, walletAddress)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if err := s.repo.User().Deactivate(ctx, nil, user.ID); err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}

	s.publishUserEvent(ctx, events.EventUserDeactivated, &events.UserUpdatedEvent{
		UserID:        user.ID,
		WalletAddress: user.WalletAddress,
	})

	return nil
}

// publishUserEvent emits a domain event best effort; delivery failures are
// logged and never fail the originating operation.
func (s *userService) publishUserEvent(ctx context.Context, eventType string, payload interface{}) {
	if s.eventPublisher == nil {
		return
	}

	event := events.NewEvent(eventType, payload)
	if err := s.eventPublisher.Publish(ctx, userEventsTopic, event); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish user event",
			"error", err,
			"event_type", eventType)
	}
}
