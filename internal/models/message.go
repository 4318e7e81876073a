package models

import "time"

// Message is a directed text communication between two users.
type Message struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	SenderID   uint   `json:"sender_id" gorm:"not null;index"`
	ReceiverID uint   `json:"receiver_id" gorm:"not null;index"`
	Content    string `json:"content" gorm:"not null;type:text"`
	IsRead     bool   `json:"is_read" gorm:"not null;default:false"`

	CreatedAt time.Time `json:"created_at"`

	Sender   *User `json:"-" gorm:"foreignKey:SenderID"`
	Receiver *User `json:"-" gorm:"foreignKey:ReceiverID"`
}

func (Message) TableName() string {
	return "messages"
}
