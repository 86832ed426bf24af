package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"loan-assistant/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "loan:session:"
	lockKeyPrefix    = "loan:session:lock:"
	lockPollInterval = 50 * time.Millisecond
)

var releaseLock = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

type RedisConfig struct {
	TTL      time.Duration
	LockTTL  time.Duration
	LockWait time.Duration
}

// RedisStore keeps sessions as JSON with a sliding TTL. Locks are SET NX keys
// holding a random token, released only by their owner.
type RedisStore struct {
	client *redis.Client
	config RedisConfig
}

func NewRedisStore(client *redis.Client, cfg RedisConfig) *RedisStore {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.LockTTL <= 0 {
		cfg.LockTTL = DefaultLockTTL
	}
	if cfg.LockWait <= 0 {
		cfg.LockWait = DefaultLockWait
	}
	return &RedisStore{client: client, config: cfg}
}

func (r *RedisStore) Get(ctx context.Context, id string) (*models.Session, error) {
	data, err := r.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	var s models.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &s, nil
}

func (r *RedisStore) Save(ctx context.Context, s *models.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := r.client.Set(ctx, sessionKeyPrefix+s.ID, data, r.config.TTL).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, sessionKeyPrefix+id, lockKeyPrefix+id).Err()
}

// Lock polls until the lock is acquired, LockWait elapses or ctx is done.
func (r *RedisStore) Lock(ctx context.Context, id string) (func(), error) {
	key := lockKeyPrefix + id
	token := uuid.NewString()

	waitCtx, cancel := context.WithTimeout(ctx, r.config.LockWait)
	defer cancel()

	ticker := time.NewTicker(lockPollInterval)
	defer ticker.Stop()

	for {
		ok, err := r.client.SetNX(waitCtx, key, token, r.config.LockTTL).Result()
		if err != nil && waitCtx.Err() == nil {
			return nil, fmt.Errorf("acquire session lock: %w", err)
		}
		if ok {
			return func() {
				releaseLock.Run(context.Background(), r.client, []string{key}, token)
			}, nil
		}

		select {
		case <-waitCtx.Done():
			// The caller's own deadline is reported alongside ErrBusy.
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrBusy, err)
			}
			return nil, ErrBusy
		case <-ticker.C:
		}
	}
}
