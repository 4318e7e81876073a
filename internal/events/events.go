package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	EventSource  = "womantech-api"
	EventVersion = "1.0"
)

// Event types emitted by the service.
const (
	EventUserRegistered  = "user.registered"
	EventUserUpdated     = "user.updated"
	EventUserDeactivated = "user.deactivated"
)

// Event is the envelope published to the message broker.
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Source    string      `json:"source"`
	Version   string      `json:"version"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

// NewEvent builds an envelope with a fresh ID and the current timestamp.
func NewEvent(eventType string, data interface{}) *Event {
	return &Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Source:    EventSource,
		Version:   EventVersion,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
}

// UserRegisteredEvent is the payload for user.registered.
type UserRegisteredEvent struct {
	UserID        uint   `json:"user_id"`
	WalletAddress string `json:"wallet_address"`
	Role          string `json:"role"`
}

// UserUpdatedEvent is the payload for user.updated.
type UserUpdatedEvent struct {
	UserID        uint   `json:"user_id"`
	WalletAddress string `json:"wallet_address"`
}

// EventPublisher publishes domain events. Implementations must be safe for
// concurrent use.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, event *Event) error
	Close() error
}
