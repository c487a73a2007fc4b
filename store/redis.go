package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	enneabot "github.com/ennealab/enneabot-go"
)

// RedisSessionStore implements enneabot.SessionStore using Redis.
// Sessions are stored as JSON under "{prefix}:{userID}". An optional TTL
// expires idle sessions, which bounds session growth on long-running
// deployments; an expired session simply restarts at the menu.
type RedisSessionStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// RedisSessionConfig configures the Redis session store.
type RedisSessionConfig struct {
	Prefix string        // key prefix, default "quiz:sess"
	TTL    time.Duration // idle expiry for sessions, 0 = never expire
}

// NewRedisSessionStore creates a SessionStore backed by Redis.
func NewRedisSessionStore(client redis.UniversalClient, config ...RedisSessionConfig) *RedisSessionStore {
	cfg := RedisSessionConfig{Prefix: "quiz:sess"}
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "quiz:sess"
	}
	return &RedisSessionStore{
		client: client,
		prefix: cfg.Prefix,
		ttl:    cfg.TTL,
	}
}

func (r *RedisSessionStore) key(userID string) string {
	return r.prefix + ":" + userID
}

func (r *RedisSessionStore) Get(ctx context.Context, userID string) (*enneabot.Session, error) {
	val, err := r.client.Get(ctx, r.key(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var s enneabot.Session
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", userID, err)
	}
	return &s, nil
}

func (r *RedisSessionStore) Put(ctx context.Context, s *enneabot.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", s.UserID, err)
	}
	return r.client.Set(ctx, r.key(s.UserID), data, r.ttl).Err()
}
