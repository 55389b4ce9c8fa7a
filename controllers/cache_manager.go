package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Bishanprabhashwara/NYXAEBackend/models"
)

const (
	tshirtCachePrefix     = "tshirt:detail:"
	tshirtListCachePrefix = "tshirts:v:"
	cacheVersionKey       = "tshirts:version"

	defaultCacheTTL = 5 * time.Minute
)

// CacheManager handles read-through caching of catalog lookups. A nil
// manager (or one built around a nil client) disables caching entirely.
type CacheManager struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCacheManager(client *redis.Client) *CacheManager {
	if client == nil {
		return nil
	}
	return &CacheManager{
		redis: client,
		ttl:   defaultCacheTTL,
	}
}

// GetTshirt retrieves a cached t-shirt by its internal key.
func (cm *CacheManager) GetTshirt(ctx context.Context, id string) (*models.Tshirt, bool) {
	if cm == nil {
		return nil, false
	}

	data, err := cm.redis.Get(ctx, tshirtCachePrefix+id).Result()
	if err != nil {
		return nil, false
	}

	var tshirt models.Tshirt
	if err := json.Unmarshal([]byte(data), &tshirt); err != nil {
		zap.L().Warn("Failed to unmarshal cached tshirt", zap.Error(err))
		return nil, false
	}
	return &tshirt, true
}

// SetTshirtAsync caches a single t-shirt without blocking the request.
func (cm *CacheManager) SetTshirtAsync(id string, tshirt *models.Tshirt) {
	if cm == nil {
		return
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		data, err := json.Marshal(tshirt)
		if err != nil {
			zap.L().Warn("Failed to marshal tshirt for cache", zap.Error(err), zap.String("id", id))
			return
		}
		if err := cm.redis.Set(bgCtx, tshirtCachePrefix+id, data, cm.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache tshirt", zap.Error(err), zap.String("id", id))
		}
	}()
}

// GetList retrieves a cached listing page for the current cache version.
func (cm *CacheManager) GetList(ctx context.Context, page, limit int, sortBy, sortOrder string) (json.RawMessage, bool) {
	if cm == nil {
		return nil, false
	}

	version, err := cm.getCacheVersion(ctx)
	if err != nil || version == 0 {
		return nil, false
	}

	data, err := cm.redis.Get(ctx, cm.listKey(version, page, limit, sortBy, sortOrder)).Result()
	if err != nil {
		return nil, false
	}
	return json.RawMessage(data), true
}

// SetListAsync caches a serialized listing response for the current version.
func (cm *CacheManager) SetListAsync(page, limit int, sortBy, sortOrder string, response interface{}) {
	if cm == nil {
		return
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		version, err := cm.getCacheVersion(bgCtx)
		if err != nil || version == 0 {
			return
		}

		data, err := json.Marshal(response)
		if err != nil {
			zap.L().Warn("Failed to marshal tshirt list for cache", zap.Error(err))
			return
		}
		if err := cm.redis.Set(bgCtx, cm.listKey(version, page, limit, sortBy, sortOrder), data, cm.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache tshirt list", zap.Error(err))
		}
	}()
}

// InvalidateTshirt drops the detail entry and bumps the list version after a
// catalog mutation.
func (cm *CacheManager) InvalidateTshirt(ctx context.Context, id string) {
	if cm == nil {
		return
	}

	if err := cm.redis.Incr(ctx, cacheVersionKey).Err(); err != nil {
		zap.L().Error("Failed to invalidate tshirt list cache", zap.Error(err), zap.String("id", id))
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := cm.redis.Del(bgCtx, tshirtCachePrefix+id).Err(); err != nil {
			zap.L().Warn("Failed to delete tshirt cache", zap.Error(err), zap.String("id", id))
		}
	}()
}

func (cm *CacheManager) getCacheVersion(ctx context.Context) (int64, error) {
	ver, err := cm.redis.Get(ctx, cacheVersionKey).Int64()
	if err == redis.Nil {
		if err := cm.redis.Set(ctx, cacheVersionKey, 1, 0).Err(); err != nil {
			return 0, err
		}
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return ver, nil
}

func (cm *CacheManager) listKey(version int64, page, limit int, sortBy, sortOrder string) string {
	return fmt.Sprintf("%s%d:p:%d:l:%d:s:%s:%s", tshirtListCachePrefix, version, page, limit, sortBy, sortOrder)
}
