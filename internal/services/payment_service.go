package services

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	"github.com/daveylupes/womantech/internal/repositories"
	"github.com/daveylupes/womantech/internal/validator"
)

type paymentService struct {
	repo      repositories.Repository
	db        *gorm.DB
	logger    *slog.Logger
	validator *validator.Validator
}

func NewPaymentService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, validator *validator.Validator) PaymentService {
	return &paymentService{
		repo:      repo,
		db:        db,
		logger:    logger,
		validator: validator,
	}
}

// List reports the payment surface as declared but not yet live. Stripe
// identifiers are already part of the schema for when processing lands.
func (s *paymentService) List(ctx context.Context) (*PlaceholderResponse, error) {
	return &PlaceholderResponse{
		Message:     "Payment history coming soon",
		Implemented: false,
	}, nil
}
