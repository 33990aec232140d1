package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Service struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedisService connects and pings; callers treat an error as "run without
// rate limiting".
func NewRedisService(ctx context.Context, config RedisConfig) (*Service, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s:%s: %w", config.Host, config.Port, err)
	}

	return &Service{client: client, now: time.Now}, nil
}

// CheckRateLimit counts a hit against key in the current fixed window and
// reports whether the caller is still within limit. Each window has its own
// counter, so a client is let through again as soon as a new window starts.
func (r *Service) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	bucket := windowKey(key, r.now(), window)
	pipe := r.client.Pipeline()

	incr := pipe.Incr(ctx, bucket)

	pipe.Expire(ctx, bucket, window)

	_, err := pipe.Exec(ctx)
	if err != nil {
		return false, err
	}

	count := incr.Val()
	return count <= int64(limit), nil
}

func (r *Service) Health(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Service) Close() error {
	return r.client.Close()
}

// windowKey suffixes key with the index of the window containing now.
func windowKey(key string, now time.Time, window time.Duration) string {
	if window <= 0 {
		return key
	}
	return fmt.Sprintf("%s:%d", key, now.UnixNano()/int64(window))
}
