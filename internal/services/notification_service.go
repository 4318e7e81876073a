package services

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/daveylupes/womantech/internal/models"
	"github.com/daveylupes/womantech/internal/repositories"
	"github.com/daveylupes/womantech/internal/validator"
)

type notificationService struct {
	repo      repositories.Repository
	db        *gorm.DB
	logger    *slog.Logger
	validator *validator.Validator
}

func NewNotificationService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, validator *validator.Validator) NotificationService {
	return &notificationService{
		repo:      repo,
		db:        db,
		logger:    logger,
		validator: validator,
	}
}

func (s *notificationService) Create(ctx context.Context, req *CreateNotificationRequest) (*models.Notification, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	notification := &models.Notification{
		UserID:  req.UserID,
		Type:    req.Type,
		Title:   req.Title,
		Message: req.Message,
	}

	if err := s.repo.Notification().Create(ctx, nil, notification); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	s.logger.InfoContext(ctx, "Notification created",
		"notification_id", notification.ID,
		"user_id", req.UserID,
		"type", req.Type)

	return notification, nil
}

func (s *notificationService) ListByUser(ctx context.Context, userID uint, unreadOnly bool, limit int) ([]*models.Notification, error) {
	notifications, err := s.repo.Notification().ListByUser(ctx, nil, userID, unreadOnly, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id uint) error {
	if err := s.repo.Notification().MarkRead(ctx, nil, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrNotificationNotFound
		}
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}
