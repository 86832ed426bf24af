package customer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"loan-assistant/internal/common/logger"
	"loan-assistant/internal/models"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "customer:mobile:"

// CachedDirectory keeps profiles fetched from next in Redis for ttl.
// Misses are not cached. Redis failures degrade to a direct lookup.
type CachedDirectory struct {
	next   Directory
	redis  *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewCachedDirectory(next Directory, rdb *redis.Client, ttl time.Duration, log logger.Logger) *CachedDirectory {
	return &CachedDirectory{
		next:   next,
		redis:  rdb,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "customer-cache"}),
	}
}

func (d *CachedDirectory) FindByMobile(ctx context.Context, mobile string) (*models.CustomerProfile, error) {
	cacheKey := cacheKeyPrefix + mobile

	val, err := d.redis.Get(ctx, cacheKey).Bytes()
	switch {
	case err == nil:
		var p models.CustomerProfile
		if jsonErr := json.Unmarshal(val, &p); jsonErr == nil {
			return &p, nil
		}
		d.logger.Warn("discarding corrupt cache entry", map[string]interface{}{"key": cacheKey})
	case !errors.Is(err, redis.Nil):
		d.logger.Warn("cache read failed", map[string]interface{}{"error": err.Error()})
	}

	p, err := d.next.FindByMobile(ctx, mobile)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(p); err == nil {
		if err := d.redis.Set(ctx, cacheKey, data, d.ttl).Err(); err != nil {
			d.logger.Warn("cache write failed", map[string]interface{}{"error": err.Error()})
		}
	}
	return p, nil
}

// Invalidate drops the cached profile for mobile.
func (d *CachedDirectory) Invalidate(ctx context.Context, mobile string) error {
	return d.redis.Del(ctx, cacheKeyPrefix+mobile).Err()
}
