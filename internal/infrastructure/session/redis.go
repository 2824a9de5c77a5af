package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/collectif-avenir/campaign-api/internal/core/domain"
	"github.com/collectif-avenir/campaign-api/internal/core/ports"
)

const keyPrefix = "sess:"

// RedisStore keeps sessions in Redis with the TTL enforced by key expiry,
// for deployments that need sessions to survive restarts or span instances.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	return &RedisStore{client: client, ttl: ttl}
}

func (r *RedisStore) Issue(ctx context.Context, userID string) (*ports.Session, error) {
	token, err := newToken()
	if err != nil {
		return nil, err
	}
	if err := r.client.Set(ctx, keyPrefix+token, userID, r.ttl).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return &ports.Session{Token: token, UserID: userID, ExpiresAt: time.Now().Add(r.ttl)}, nil
}

func (r *RedisStore) Resolve(ctx context.Context, token string) (string, error) {
	userID, err := r.client.Get(ctx, keyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrInvalidSession
		}
		return "", fmt.Errorf("resolve session: %w", err)
	}
	return userID, nil
}

func (r *RedisStore) Revoke(ctx context.Context, token string) error {
	if err := r.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}
