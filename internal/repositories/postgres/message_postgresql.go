package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/daveylupes/womantech/internal/models"
	"github.com/daveylupes/womantech/internal/repositories"
)

type MessagePostgreSQL struct {
	db *gorm.DB
}

func NewMessagePostgreSQL(db *gorm.DB) repositories.MessageRepository {
	return &MessagePostgreSQL{db: db}
}

func (m *MessagePostgreSQL) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return m.db
}

func (m *MessagePostgreSQL) Create(ctx context.Context, tx *gorm.DB, message *models.Message) error {
	db := m.getDB(tx)
	if err := db.WithContext(ctx).Create(message).Error; err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// ListConversation returns the messages exchanged between two users in
// either direction, newest first.
func (m *MessagePostgreSQL) ListConversation(ctx context.Context, tx *gorm.DB, userA, userB uint, limit int) ([]*models.Message, error) {
	db := m.getDB(tx)

	if limit <= 0 {
		limit = defaultSearchLimit
	}

	var messages []*models.Message
	err := db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list conversation: %w", err)
	}
	return messages, nil
}

func (m *MessagePostgreSQL) MarkRead(ctx context.Context, tx *gorm.DB, id uint) error {
	db := m.getDB(tx)

	result := db.WithContext(ctx).
		Model(&models.Message{}).
		Where("id = ?", id).
		Update("is_read", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark message read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to mark message read: %w", gorm.ErrRecordNotFound)
	}
	return nil
}
