package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type SessionStatus string

const (
	SessionPending   SessionStatus = "PENDING"
	SessionConfirmed SessionStatus = "CONFIRMED"
	SessionCompleted SessionStatus = "COMPLETED"
	SessionCancelled SessionStatus = "CANCELLED"
	SessionNoShow    SessionStatus = "NO_SHOW"
)

// Session is a scheduled engagement between exactly one mentor and one
// mentee, referenced externally by SessionID. Status transition logic is
// future work; the schema and relations are declared here so the store is
// complete.
type Session struct {
	ID            uint             `json:"id" gorm:"primaryKey"`
	SessionID     string           `json:"session_id" gorm:"uniqueIndex;not null;size:64"`
	MentorAddress string           `json:"mentor_address" gorm:"not null;size:255;index"`
	MenteeAddress string           `json:"mentee_address" gorm:"not null;size:255;index"`
	Price         *decimal.Decimal `json:"price" gorm:"type:numeric(10,2)"`
	Status        SessionStatus    `json:"status" gorm:"not null;default:PENDING;size:20"`
	ScheduledAt   *time.Time       `json:"scheduled_at"`
	CompletedAt   *time.Time       `json:"completed_at"`
	Duration      *int             `json:"duration"` // minutes
	Notes         *string          `json:"notes" gorm:"type:text"`
	Rating        *int             `json:"rating"` // 1-5
	Review        *string          `json:"review" gorm:"type:text"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`

	// Relations
	Mentor   *User     `json:"-" gorm:"foreignKey:MentorAddress;references:WalletAddress"`
	Mentee   *User     `json:"-" gorm:"foreignKey:MenteeAddress;references:WalletAddress"`
	Payments []Payment `json:"-" gorm:"foreignKey:SessionID"`
}

func (Session) TableName() string {
	return "sessions"
}
