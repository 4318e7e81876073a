package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/daveylupes/womantech/internal/cache"
	"github.com/daveylupes/womantech/internal/models"
	"github.com/daveylupes/womantech/internal/repositories"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 100
)

type UserPostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewUserPostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.UserRepository {
	return &UserPostgreSQL{
		db:           db,
		cacheManager: cache.NewCacheManager(redisClient),
	}
}

// getDB returns the transaction DB if provided, otherwise returns the default DB
func (u *UserPostgreSQL) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return u.db
}

// Create inserts a new user and invalidates cached lookups. Uniqueness of
// wallet address and email is enforced by the database constraints, so a
// concurrent duplicate surfaces here as a duplicate-key error.
func (u *UserPostgreSQL) Create(ctx context.Context, tx *gorm.DB, user *models.User) error {
	db := u.getDB(tx)
	if user.Skills == "" {
		user.Skills = "[]"
	}
	if err := db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	cache.InvalidateUserCache(ctx, u.cacheManager, user.WalletAddress)
	return nil
}

// GetByID retrieves a user by primary key. Inactive users are not returned.
func (u *UserPostgreSQL) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.User, error) {
	db := u.getDB(tx)

	var user models.User
	err := db.WithContext(ctx).
		Where("is_active = ?", true).
		First(&user, id).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetByWallet retrieves an active user by wallet address with caching.
func (u *UserPostgreSQL) GetByWallet(ctx context.Context, tx *gorm.DB, walletAddress string) (*models.User, error) {
	// Skip the cache inside transactions so reads see transactional writes.
	if tx == nil {
		var cached models.User
		cacheKey := fmt.Sprintf("wallet:%s", walletAddress)
		if err := u.cacheManager.User.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	db := u.getDB(tx)
	var user models.User
	err := db.WithContext(ctx).
		Where("wallet_address = ? AND is_active = ?", walletAddress, true).
		First(&user).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get user by wallet: %w", err)
	}

	if tx == nil {
		cacheKey := fmt.Sprintf("wallet:%s", walletAddress)
		// Cache failures never fail the read path.
		_ = u.cacheManager.User.Set(ctx, cacheKey, &user, cache.UserCacheConfig.TTL)
	}

	return &user, nil
}

// Search returns active users matching the given filters, newest first.
// The skill filter requires exact membership in the stored skill list; a
// LIKE prefilter narrows the candidate set before decoding. Results are
// cached briefly outside transactions and dropped on every user write.
func (u *UserPostgreSQL) Search(ctx context.Context, tx *gorm.DB, filters repositories.UserFilters) ([]*models.User, error) {
	limit := filters.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	if tx == nil {
		var cached []*models.User
		err := u.cacheManager.Search.CacheOrExecute(ctx, searchCacheKey(filters, limit), &cached, cache.SearchCacheConfig.TTL, func() (interface{}, error) {
			return u.searchUsers(ctx, u.db, filters, limit)
		})
		if err != nil {
			return nil, err
		}
		return cached, nil
	}

	return u.searchUsers(ctx, tx, filters, limit)
}

func (u *UserPostgreSQL) searchUsers(ctx context.Context, db *gorm.DB, filters repositories.UserFilters, limit int) ([]*models.User, error) {
	query := db.WithContext(ctx).
		Model(&models.User{}).
		Where("is_active = ?", true)

	if filters.Role != nil {
		query = query.Where("role = ?", *filters.Role)
	}
	if filters.Skill != nil && *filters.Skill != "" {
		// Candidates only; membership is confirmed against the decoded
		// list. The column stores the JSON encoding, so the pattern must
		// match the encoded form ("R&D" is stored as "R&D").
		fragment := strings.Trim(models.EncodeSkills([]string{*filters.Skill}), "[]")
		query = query.Where(`skills LIKE ? ESCAPE '\'`, "%"+likeEscape(fragment)+"%")
	}

	var candidates []*models.User
	err := query.Order("created_at DESC").Find(&candidates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	results := make([]*models.User, 0, limit)
	for _, candidate := range candidates {
		if filters.Skill != nil && *filters.Skill != "" && !hasSkill(candidate, *filters.Skill) {
			continue
		}
		results = append(results, candidate)
		if len(results) >= limit {
			break
		}
	}

	return results, nil
}

func searchCacheKey(filters repositories.UserFilters, limit int) string {
	role, skill := "", ""
	if filters.Role != nil {
		role = string(*filters.Role)
	}
	if filters.Skill != nil {
		skill = *filters.Skill
	}
	return fmt.Sprintf("role=%s|skill=%s|limit=%d", role, skill, limit)
}

// Update persists changed fields and invalidates cached lookups.
func (u *UserPostgreSQL) Update(ctx context.Context, tx *gorm.DB, user *models.User) error {
	db := u.getDB(tx)

	if err := db.WithContext(ctx).Save(user).Error; err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	cache.InvalidateUserCache(ctx, u.cacheManager, user.WalletAddress)
	return nil
}

// Deactivate soft-deletes a user by clearing the active flag.
func (u *UserPostgreSQL) Deactivate(ctx context.Context, tx *gorm.DB, id uint) error {
	db := u.getDB(tx)

	var user models.User
	if err := db.WithContext(ctx).First(&user, id).Error; err != nil {
		return fmt.Errorf("failed to get user for deactivation: %w", err)
	}

	result := db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return fmt.Errorf("failed to deactivate user: %w", result.Error)
	}

	cache.InvalidateUserCache(ctx, u.cacheManager, user.WalletAddress)
	return nil
}

// ExistsByWallet checks whether any user, active or not, holds the address.
// Outside transactions the answer is cached briefly; user writes for the
// address drop the cached entry.
func (u *UserPostgreSQL) ExistsByWallet(ctx context.Context, tx *gorm.DB, walletAddress string) (bool, error) {
	cacheKey := fmt.Sprintf("wallet:%s", walletAddress)
	if tx == nil {
		var cached bool
		if err := u.cacheManager.Exists.Get(ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	db := u.getDB(tx)
	var count int64
	err := db.WithContext(ctx).
		Model(&models.User{}).
		Where("wallet_address = ?", walletAddress).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check wallet existence: %w", err)
	}

	exists := count > 0
	if tx == nil {
		// Cache failures never fail the read path.
		_ = u.cacheManager.Exists.Set(ctx, cacheKey, exists, cache.ExistsCacheConfig.TTL)
	}
	return exists, nil
}

// ExistsByEmail checks whether any user holds the email address.
func (u *UserPostgreSQL) ExistsByEmail(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	db := u.getDB(tx)

	var count int64
	err := db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return count > 0, nil
}

func hasSkill(user *models.User, skill string) bool {
	for _, s := range user.SkillList() {
		if s == skill {
			return true
		}
	}
	return false
}

func likeEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
