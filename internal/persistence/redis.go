package persistence

import (
	"context"
	"errors"

	"github.com/org-lifecycle-api/internal/config"
	"github.com/redis/go-redis/v9"
)

// Redis оборачивает клиент go-redis.
// Бизнес-логика кэш не использует, клиент нужен для проверки доступности.
type Redis struct {
	Client *redis.Client
}

// NewRedis создаёт клиента; соединение устанавливается лениво при первом запросе
func NewRedis(cfg config.RedisConfig) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &Redis{Client: client}
}

// Close закрывает клиента
func (r *Redis) Close() {
	if r != nil && r.Client != nil {
		_ = r.Client.Close()
	}
}

// Ping проверяет доступность Redis
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return errors.New("redis client not configured")
	}
	return r.Client.Ping(ctx).Err()
}
