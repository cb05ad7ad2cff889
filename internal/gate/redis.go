package gate

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisGate stores flags as expiring keys so they survive restarts and are
// shared across instances.
type RedisGate struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisGate(rdb *redis.Client, ttl time.Duration) *RedisGate {
	return &RedisGate{rdb: rdb, ttl: ttl}
}

var _ Gate = (*RedisGate)(nil)

func (g *RedisGate) Disable(ctx context.Context, sessionKey string, jobID uuid.UUID) error {
	if err := g.rdb.Set(ctx, key(sessionKey, jobID), 1, g.ttl).Err(); err != nil {
		return fmt.Errorf("set apply gate: %w", err)
	}
	return nil
}

func (g *RedisGate) IsDisabled(ctx context.Context, sessionKey string, jobID uuid.UUID) (bool, error) {
	n, err := g.rdb.Exists(ctx, key(sessionKey, jobID)).Result()
	if err != nil {
		return false, fmt.Errorf("read apply gate: %w", err)
	}
	return n > 0, nil
}

func (g *RedisGate) Clear(ctx context.Context, sessionKey string, jobID uuid.UUID) error {
	if err := g.rdb.Del(ctx, key(sessionKey, jobID)).Err(); err != nil {
		return fmt.Errorf("clear apply gate: %w", err)
	}
	return nil
}
