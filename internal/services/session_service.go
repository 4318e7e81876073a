package services

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	"github.com/daveylupes/womantech/internal/repositories"
	"github.com/daveylupes/womantech/internal/validator"
)

type sessionService struct {
	repo      repositories.Repository
	db        *gorm.DB
	logger    *slog.Logger
	validator *validator.Validator
}

func NewSessionService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, validator *validator.Validator) SessionService {
	return &sessionService{
		repo:      repo,
		db:        db,
		logger:    logger,
		validator: validator,
	}
}

// List reports the session surface as declared but not yet live. The
// schema and repository exist so booking can be wired without a migration.
func (s *sessionService) List(ctx context.Context) (*PlaceholderResponse, error) {
	return &PlaceholderResponse{
		Message:     "Session management coming soon",
		Implemented: false,
	}, nil
}
