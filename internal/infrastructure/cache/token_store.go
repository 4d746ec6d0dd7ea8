package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// AccessTokenKey is the Redis key under which a live access token is
// registered. The auth middleware checks the same key on every request.
func AccessTokenKey(userID uint, tokenID string) string {
	return fmt.Sprintf("access_token:%d:%s", userID, tokenID)
}

// RedisTokenStore keeps issued access tokens in Redis so logout can revoke
// them before expiry.
type RedisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

func (s *RedisTokenStore) Store(ctx context.Context, userID uint, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, AccessTokenKey(userID, tokenID), "valid", ttl).Err()
}

func (s *RedisTokenStore) Revoke(ctx context.Context, userID uint, tokenID string) error {
	return s.client.Del(ctx, AccessTokenKey(userID, tokenID)).Err()
}
