package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	enneabot "github.com/ennealab/enneabot-go"
)

func newTestRedisStore(t *testing.T, config ...RedisSessionConfig) (*RedisSessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisSessionStore(client, config...), mr
}

func TestRedisSessionStore_RoundTrip(t *testing.T) {
	s, _ := newTestRedisStore(t)
	ctx := context.Background()

	got, err := s.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get unknown: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for unknown user, got %+v", got)
	}

	sess := enneabot.NewSession("u1")
	sess.Step = enneabot.StepWing
	sess.Name = "Alice"
	sess.Answers = enneabot.Answers{Q11: "1", Q12: "2", Q21: "1", Triple: "1-2-3"}
	sess.BasicType = "5"
	if err := s.Put(ctx, sess); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err = s.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || *got != *sess {
		t.Fatalf("round-tripped session = %+v, want %+v", got, sess)
	}
}

func TestRedisSessionStore_TTLExpiry(t *testing.T) {
	s, mr := newTestRedisStore(t, RedisSessionConfig{TTL: time.Minute})
	ctx := context.Background()

	if err := s.Put(ctx, enneabot.NewSession("u1")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if got, _ := s.Get(ctx, "u1"); got == nil {
		t.Fatal("session missing before expiry")
	}

	mr.FastForward(2 * time.Minute)

	got, err := s.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get after expiry: %v", err)
	}
	if got != nil {
		t.Fatalf("expected expired session to be gone, got %+v", got)
	}
}

func TestRedisSessionStore_KeyPrefix(t *testing.T) {
	s, mr := newTestRedisStore(t, RedisSessionConfig{Prefix: "custom"})
	ctx := context.Background()

	if err := s.Put(ctx, enneabot.NewSession("u1")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if !mr.Exists("custom:u1") {
		t.Fatalf("expected key custom:u1, have %v", mr.Keys())
	}
}
