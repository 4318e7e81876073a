package cache

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// CacheManager groups per-concern cache helpers behind one entry point.
type CacheManager struct {
	User   *CacheHelper
	Exists *CacheHelper
	Search *CacheHelper
}

// NewCacheManager creates helpers for every cache namespace. A nil client
// yields a manager whose helpers no-op on writes and miss on reads.
func NewCacheManager(client *redis.Client) *CacheManager {
	return &CacheManager{
		User:   NewCacheHelper(client, UserCacheConfig.Prefix),
		Exists: NewCacheHelper(client, ExistsCacheConfig.Prefix),
		Search: NewCacheHelper(client, SearchCacheConfig.Prefix),
	}
}

// SafeDelete safely deletes cache keys with logging
func SafeDelete(ctx context.Context, helper *CacheHelper, keys ...string) {
	if err := helper.Delete(ctx, keys...); err != nil {
		slog.ErrorContext(ctx, "Failed to delete cache keys",
			"error", err,
			"keys", keys)
	}
}

// SafeInvalidatePattern safely invalidates cache pattern with logging
func SafeInvalidatePattern(ctx context.Context, helper *CacheHelper, pattern string) {
	if err := helper.InvalidatePattern(ctx, pattern); err != nil {
		slog.ErrorContext(ctx, "Failed to invalidate cache pattern",
			"error", err,
			"pattern", pattern)
	}
}

// InvalidateUserCache drops every cached projection of a user after a write.
func InvalidateUserCache(ctx context.Context, cm *CacheManager, walletAddress string) {
	SafeDelete(ctx, cm.User, fmt.Sprintf("wallet:%s", walletAddress))
	SafeDelete(ctx, cm.Exists,
		fmt.Sprintf("wallet:%s", walletAddress))
	SafeInvalidatePattern(ctx, cm.Search, "*")
}
