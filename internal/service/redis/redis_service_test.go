package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestService(t *testing.T, clock *time.Time) (*Service, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return &Service{client: client, now: func() time.Time { return *clock }}, mr
}

func TestCheckRateLimitResetsEachWindow(t *testing.T) {
	start := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	clock := start
	s, _ := newTestService(t, &clock)
	ctx := context.Background()

	steps := []struct {
		offset  time.Duration
		allowed bool
	}{
		{0, true},
		{30 * time.Second, true},
		{45 * time.Second, false},
		{60 * time.Second, true},
		{70 * time.Second, true},
		{80 * time.Second, false},
		{125 * time.Second, true},
	}

	for _, step := range steps {
		clock = start.Add(step.offset)
		allowed, err := s.CheckRateLimit(ctx, "ratelimit:ingest:1.2.3.4", 2, time.Minute)
		if err != nil {
			t.Fatalf("t+%s: %v", step.offset, err)
		}
		if allowed != step.allowed {
			t.Fatalf("t+%s: allowed = %v, want %v", step.offset, allowed, step.allowed)
		}
	}
}

func TestCheckRateLimitSteadyTrafficStaysAllowed(t *testing.T) {
	start := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	clock := start
	s, _ := newTestService(t, &clock)
	ctx := context.Background()

	// One batch every 10s for half an hour against 120 per minute.
	for i := 0; i < 180; i++ {
		clock = start.Add(time.Duration(i) * 10 * time.Second)
		allowed, err := s.CheckRateLimit(ctx, "ratelimit:ingest:1.2.3.4", 120, time.Minute)
		if err != nil {
			t.Fatal(err)
		}
		if !allowed {
			t.Fatalf("request %d at t+%s was rejected", i, clock.Sub(start))
		}
	}
}

func TestCheckRateLimitSetsExpiry(t *testing.T) {
	clock := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	s, mr := newTestService(t, &clock)

	if _, err := s.CheckRateLimit(context.Background(), "ratelimit:ingest:ip", 5, time.Minute); err != nil {
		t.Fatal(err)
	}

	key := windowKey("ratelimit:ingest:ip", clock, time.Minute)
	if ttl := mr.TTL(key); ttl <= 0 || ttl > time.Minute {
		t.Fatalf("ttl of %s = %s, want (0, 1m]", key, ttl)
	}
}

func TestWindowKey(t *testing.T) {
	start := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	if windowKey("k", start, time.Minute) != windowKey("k", start.Add(59*time.Second), time.Minute) {
		t.Fatal("hits in the same minute should share a key")
	}
	if windowKey("k", start, time.Minute) == windowKey("k", start.Add(time.Minute), time.Minute) {
		t.Fatal("hits in different minutes should not share a key")
	}
	if got := windowKey("k", start, 0); got != "k" {
		t.Fatalf("windowKey without a window = %q", got)
	}
}

func TestNewRedisService(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	s, err := NewRedisService(ctx, RedisConfig{Host: mr.Host(), Port: mr.Port()})
	if err != nil {
		t.Fatalf("NewRedisService: %v", err)
	}
	if err := s.Health(ctx); err != nil {
		t.Fatalf("Health: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	host, port := mr.Host(), mr.Port()
	mr.Close()
	if _, err := NewRedisService(ctx, RedisConfig{Host: host, Port: port}); err == nil {
		t.Fatal("expected error when redis is down")
	}
}
