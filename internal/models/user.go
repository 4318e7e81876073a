package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type UserRole string

const (
	RoleMentor UserRole = "MENTOR"
	RoleMentee UserRole = "MENTEE"
	RoleAdmin  UserRole = "ADMIN"
)

// Valid reports whether the role is one of the closed set.
func (r UserRole) Valid() bool {
	switch r {
	case RoleMentor, RoleMentee, RoleAdmin:
		return true
	}
	return false
}

type SubscriptionTier string

const (
	TierFree       SubscriptionTier = "FREE"
	TierBasic      SubscriptionTier = "BASIC"
	TierPremium    SubscriptionTier = "PREMIUM"
	TierEnterprise SubscriptionTier = "ENTERPRISE"
)

func (t SubscriptionTier) Valid() bool {
	switch t {
	case TierFree, TierBasic, TierPremium, TierEnterprise:
		return true
	}
	return false
}

// User is a marketplace participant. The wallet address is the stable
// external key; the numeric ID is system-assigned.
type User struct {
	ID            uint     `json:"id" gorm:"primaryKey"`
	WalletAddress string   `json:"wallet_address" gorm:"uniqueIndex;not null;size:255"`
	Name          string   `json:"name" gorm:"not null;size:100"`
	Email         *string  `json:"email" gorm:"uniqueIndex;size:255"`
	Role          UserRole `json:"role" gorm:"not null;size:20;index"`

	Reputation         int              `json:"reputation" gorm:"not null;default:0"`
	SubscriptionTier   SubscriptionTier `json:"subscription_tier" gorm:"not null;default:FREE;size:20"`
	SubscriptionExpiry *time.Time       `json:"subscription_expiry"`

	// Profile
	Bio          *string          `json:"bio" gorm:"type:text"`
	Skills       string           `json:"skills" gorm:"type:text;not null;default:'[]'"` // encoded skill list, see skills.go
	Experience   *string          `json:"experience" gorm:"type:text"`
	HourlyRate   *decimal.Decimal `json:"hourly_rate" gorm:"type:numeric(10,2)"`
	ProfileImage *string          `json:"profile_image" gorm:"size:500"`

	// Status
	IsVerified   bool       `json:"is_verified" gorm:"not null;default:false"`
	IsActive     bool       `json:"is_active" gorm:"not null;default:true;index"`
	LastActiveAt *time.Time `json:"last_active_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	MentorSessions   []Session      `json:"-" gorm:"foreignKey:MentorAddress;references:WalletAddress"`
	MenteeSessions   []Session      `json:"-" gorm:"foreignKey:MenteeAddress;references:WalletAddress"`
	Payments         []Payment      `json:"-" gorm:"foreignKey:UserID"`
	Notifications    []Notification `json:"-" gorm:"foreignKey:UserID"`
	SentMessages     []Message      `json:"-" gorm:"foreignKey:SenderID"`
	ReceivedMessages []Message      `json:"-" gorm:"foreignKey:ReceiverID"`
}

func (User) TableName() string {
	return "users"
}

// SkillList decodes the stored skills column. Projections must use this
// instead of reading Skills directly.
func (u *User) SkillList() []string {
	return DecodeSkills(u.Skills)
}

// SetSkills encodes and stores the given skill list.
func (u *User) SetSkills(skills []string) {
	u.Skills = EncodeSkills(skills)
}
