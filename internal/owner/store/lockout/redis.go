package lockout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"aquaria/internal/owner/models"
	"aquaria/pkg/platform/sentinel"
	"aquaria/pkg/requestcontext"
)

const keyPrefix = "aquaria:login_lockout:"

// RedisLockoutStore shares failed-login counters between instances. Keys
// expire when the record no longer affects logins.
type RedisLockoutStore struct {
	client redis.Cmdable
}

func NewRedis(client redis.Cmdable) *RedisLockoutStore {
	return &RedisLockoutStore{client: client}
}

func (s *RedisLockoutStore) Get(ctx context.Context, key string) (*models.LoginLockout, error) {
	raw, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("lockout not found: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("get lockout: %w", err)
	}
	var l models.LoginLockout
	if err := json.Unmarshal(raw, &l); err != nil {
		return nil, fmt.Errorf("decode lockout: %w", err)
	}
	return &l, nil
}

func (s *RedisLockoutStore) Save(ctx context.Context, lockout *models.LoginLockout, expiresAt time.Time) error {
	ttl := expiresAt.Sub(requestcontext.Now(ctx))
	if ttl <= 0 {
		return s.Delete(ctx, lockout.Key)
	}
	raw, err := json.Marshal(lockout)
	if err != nil {
		return fmt.Errorf("encode lockout: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+lockout.Key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("save lockout: %w", err)
	}
	return nil
}

func (s *RedisLockoutStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("delete lockout: %w", err)
	}
	return nil
}
