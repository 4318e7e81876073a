package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/daveylupes/womantech/internal/models"
	"github.com/daveylupes/womantech/internal/repositories"
)

type InvitePostgreSQL struct {
	db *gorm.DB
}

func NewInvitePostgreSQL(db *gorm.DB) repositories.InviteRepository {
	return &InvitePostgreSQL{db: db}
}

func (i *InvitePostgreSQL) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return i.db
}

func (i *InvitePostgreSQL) Create(ctx context.Context, tx *gorm.DB, invite *models.Invite) error {
	db := i.getDB(tx)
	if err := db.WithContext(ctx).Create(invite).Error; err != nil {
		return fmt.Errorf("failed to create invite: %w", err)
	}
	return nil
}

func (i *InvitePostgreSQL) GetByCode(ctx context.Context, tx *gorm.DB, code string) (*models.Invite, error) {
	db := i.getDB(tx)

	var invite models.Invite
	err := db.WithContext(ctx).
		Where("code = ?", code).
		First(&invite).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get invite by code: %w", err)
	}
	return &invite, nil
}

func (i *InvitePostgreSQL) MarkUsed(ctx context.Context, tx *gorm.DB, id uint, usedAt time.Time) error {
	db := i.getDB(tx)

	result := db.WithContext(ctx).
		Model(&models.Invite{}).
		Where("id = ? AND is_used = ?", id, false).
		Updates(map[string]interface{}{
			"is_used": true,
			"used_at": usedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to mark invite used: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to mark invite used: %w", gorm.ErrRecordNotFound)
	}
	return nil
}
