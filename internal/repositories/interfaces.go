package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/daveylupes/womantech/internal/models"
)

// UserFilters defines filters for user search queries.
type UserFilters struct {
	Role  *models.UserRole // exact match when set
	Skill *string          // exact membership in the decoded skill list
	Limit int              // capped result count; 0 means the default
}

// UserRepository is the access layer for user records. All lookups treat
// inactive users as absent; Create relies on the store's unique
// constraints so the existence check and insert cannot race.
type UserRepository interface {
	Create(ctx context.Context, tx *gorm.DB, user *models.User) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.User, error)
	GetByWallet(ctx context.Context, tx *gorm.DB, walletAddress string) (*models.User, error)
	Search(ctx context.Context, tx *gorm.DB, filters UserFilters) ([]*models.User, error)
	Update(ctx context.Context, tx *gorm.DB, user *models.User) error
	Deactivate(ctx context.Context, tx *gorm.DB, id uint) error

	ExistsByWallet(ctx context.Context, tx *gorm.DB, walletAddress string) (bool, error)
	ExistsByEmail(ctx context.Context, tx *gorm.DB, email string) (bool, error)
}

// SessionFilters defines filters for session queries.
type SessionFilters struct {
	MentorAddress *string
	MenteeAddress *string
	Status        *models.SessionStatus
	Limit         int
	Offset        int
}

type SessionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, session *models.Session) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Session, error)
	GetBySessionID(ctx context.Context, tx *gorm.DB, sessionID string) (*models.Session, error)
	List(ctx context.Context, tx *gorm.DB, filters SessionFilters) ([]*models.Session, int64, error)
	Update(ctx context.Context, tx *gorm.DB, session *models.Session) error
}

// PaymentFilters defines filters for payment queries.
type PaymentFilters struct {
	UserID    *uint
	SessionID *uint
	Status    *models.PaymentStatus
	Limit     int
	Offset    int
}

type PaymentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, payment *models.Payment) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Payment, error)
	List(ctx context.Context, tx *gorm.DB, filters PaymentFilters) ([]*models.Payment, int64, error)
	Update(ctx context.Context, tx *gorm.DB, payment *models.Payment) error
}

type NotificationRepository interface {
	Create(ctx context.Context, tx *gorm.DB, notification *models.Notification) error
	ListByUser(ctx context.Context, tx *gorm.DB, userID uint, unreadOnly bool, limit int) ([]*models.Notification, error)
	MarkRead(ctx context.Context, tx *gorm.DB, id uint) error
}

type MessageRepository interface {
	Create(ctx context.Context, tx *gorm.DB, message *models.Message) error
	ListConversation(ctx context.Context, tx *gorm.DB, userA, userB uint, limit int) ([]*models.Message, error)
	MarkRead(ctx context.Context, tx *gorm.DB, id uint) error
}

type InviteRepository interface {
	Create(ctx context.Context, tx *gorm.DB, invite *models.Invite) error
	GetByCode(ctx context.Context, tx *gorm.DB, code string) (*models.Invite, error)
	MarkUsed(ctx context.Context, tx *gorm.DB, id uint, usedAt time.Time) error
}

// Repository aggregates the per-entity repositories.
type Repository interface {
	User() UserRepository
	Session() SessionRepository
	Payment() PaymentRepository
	Notification() NotificationRepository
	Message() MessageRepository
	Invite() InviteRepository

	// WithTransaction runs fn inside a database transaction; the passed
	// Repository routes all operations through that transaction.
	WithTransaction(ctx context.Context, fn func(Repository) error) error

	Ping(ctx context.Context) error
	Close() error
}

// RepositoryManager owns repository lifecycle.
type RepositoryManager interface {
	Initialize() error
	GetRepository() Repository
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
