package models

import "time"

// Invite binds an email to a single-use code granting a role on signup.
type Invite struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Email     string     `json:"email" gorm:"not null;size:255;index"`
	Code      string     `json:"code" gorm:"uniqueIndex;not null;size:64"`
	Role      UserRole   `json:"role" gorm:"not null;size:20"`
	IsUsed    bool       `json:"is_used" gorm:"not null;default:false"`
	UsedAt    *time.Time `json:"used_at"`
	ExpiresAt time.Time  `json:"expires_at" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
}

func (Invite) TableName() string {
	return "invites"
}

// Expired reports whether the invite can no longer be redeemed.
func (i *Invite) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}
