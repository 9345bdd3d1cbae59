package sessions

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Storage keeps issued refresh tokens keyed by user id. A token is
// valid only while its key lives; logout deletes it.
type Storage struct {
	redis *redis.Client
}

func NewStorage(client *redis.Client) *Storage {
	return &Storage{
		redis: client,
	}
}

func (s *Storage) Set(ctx context.Context, userID int64, refreshToken string, expiration time.Duration) error {
	return s.redis.Set(ctx, key(userID), refreshToken, expiration).Err()
}

func (s *Storage) Get(ctx context.Context, userID int64) (string, error) {
	return s.redis.Get(ctx, key(userID)).Result()
}

func (s *Storage) Clear(ctx context.Context, userID int64) error {
	return s.redis.Del(ctx, key(userID)).Err()
}

func key(userID int64) string {
	return fmt.Sprintf("session:%d", userID)
}
