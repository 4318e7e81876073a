package models

import (
	"time"

	"gorm.io/datatypes"
)

type NotificationType string

const (
	NotificationSessionRequest    NotificationType = "SESSION_REQUEST"
	NotificationSessionConfirmed  NotificationType = "SESSION_CONFIRMED"
	NotificationSessionCancelled  NotificationType = "SESSION_CANCELLED"
	NotificationPaymentReceived   NotificationType = "PAYMENT_RECEIVED"
	NotificationReputationUpdated NotificationType = "REPUTATION_UPDATED"
	NotificationSystemMessage     NotificationType = "SYSTEM_MESSAGE"
)

// Notification belongs to one user and carries a typed JSON payload.
type Notification struct {
	ID      uint             `json:"id" gorm:"primaryKey"`
	UserID  uint             `json:"user_id" gorm:"not null;index"`
	Type    NotificationType `json:"type" gorm:"not null;size:32"`
	Title   string           `json:"title" gorm:"not null;size:200"`
	Message string           `json:"message" gorm:"not null;type:text"`
	Data    datatypes.JSON   `json:"data"`
	IsRead  bool             `json:"is_read" gorm:"not null;default:false;index"`

	CreatedAt time.Time `json:"created_at"`

	User *User `json:"-" gorm:"foreignKey:UserID"`
}

func (Notification) TableName() string {
	return "notifications"
}
