package redis

import (
	"context"
	"time"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type ServiceInterface interface {
	CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
	Health(ctx context.Context) error
	Close() error
}
