package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "PENDING"
	PaymentProcessing PaymentStatus = "PROCESSING"
	PaymentCompleted  PaymentStatus = "COMPLETED"
	PaymentFailed     PaymentStatus = "FAILED"
	PaymentRefunded   PaymentStatus = "REFUNDED"
)

// Payment is a monetary transaction tied to a user and optionally a
// session. Stripe references are kept when the external processor is
// configured.
type Payment struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	SessionID *uint           `json:"session_id" gorm:"index"`
	UserID    uint            `json:"user_id" gorm:"not null;index"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:numeric(10,2);not null"`
	Currency  string          `json:"currency" gorm:"not null;default:USD;size:8"`
	Status    PaymentStatus   `json:"status" gorm:"not null;default:PENDING;size:20"`

	StripePaymentIntentID *string `json:"stripe_payment_intent_id" gorm:"size:255"`
	StripeChargeID        *string `json:"stripe_charge_id" gorm:"size:255"`

	Refunded   bool       `json:"refunded" gorm:"not null;default:false"`
	RefundedAt *time.Time `json:"refunded_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Session *Session `json:"-" gorm:"foreignKey:SessionID"`
	User    *User    `json:"-" gorm:"foreignKey:UserID"`
}

func (Payment) TableName() string {
	return "payments"
}
