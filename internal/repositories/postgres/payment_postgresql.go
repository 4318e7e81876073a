package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/daveylupes/womantech/internal/models"
	"github.com/daveylupes/womantech/internal/repositories"
)

type PaymentPostgreSQL struct {
	db *gorm.DB
}

func NewPaymentPostgreSQL(db *gorm.DB) repositories.PaymentRepository {
	return &PaymentPostgreSQL{db: db}
}

func (p *PaymentPostgreSQL) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return p.db
}

func (p *PaymentPostgreSQL) Create(ctx context.Context, tx *gorm.DB, payment *models.Payment) error {
	db := p.getDB(tx)
	if err := db.WithContext(ctx).Create(payment).Error; err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

func (p *PaymentPostgreSQL) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Payment, error) {
	db := p.getDB(tx)

	var payment models.Payment
	err := db.WithContext(ctx).First(&payment, id).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return &payment, nil
}

func (p *PaymentPostgreSQL) List(ctx context.Context, tx *gorm.DB, filters repositories.PaymentFilters) ([]*models.Payment, int64, error) {
	db := p.getDB(tx)

	query := db.WithContext(ctx).Model(&models.Payment{})
	if filters.UserID != nil {
		query = query.Where("user_id = ?", *filters.UserID)
	}
	if filters.SessionID != nil {
		query = query.Where("session_id = ?", *filters.SessionID)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	var payments []*models.Payment
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(filters.Offset).
		Find(&payments).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payments: %w", err)
	}

	return payments, total, nil
}

func (p *PaymentPostgreSQL) Update(ctx context.Context, tx *gorm.DB, payment *models.Payment) error {
	db := p.getDB(tx)
	if err := db.WithContext(ctx).Save(payment).Error; err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}
	return nil
}
