package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/jet-charter-service/internal/config"
	"github.com/jet-charter-service/internal/pkg/utils"
)

const (
	pingTimeout    = 3 * time.Second
	connectBackoff = 500 * time.Millisecond
)

// Redis - клиент кеша и стримов; один на процесс
type Redis struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedis подключается к Redis, повторяя ping до cfg.ConnectAttempts раз
func NewRedis(cfg *config.RedisConfig, logger *zap.Logger) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	ping := func(ctx context.Context) error {
		pctx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		return client.Ping(pctx).Err()
	}
	onRetry := func(attempt int, err error) {
		logger.Warn("Redis not ready, retrying",
			zap.String("addr", cfg.Addr()),
			zap.Int("attempt", attempt),
			zap.Error(err))
	}

	if err := utils.Retry(context.Background(), cfg.ConnectAttempts, connectBackoff, ping, onRetry); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr(), err)
	}

	logger.Info("Redis connected",
		zap.String("addr", cfg.Addr()),
		zap.Int("db", cfg.DB),
		zap.Int("pool_size", cfg.PoolSize),
	)

	return &Redis{client: client, logger: logger}, nil
}

// NewRedisFromClient оборачивает готовый клиент (тесты на miniredis)
func NewRedisFromClient(client *redis.Client, logger *zap.Logger) *Redis {
	return &Redis{client: client, logger: logger}
}

func (r *Redis) Client() *redis.Client {
	return r.client
}

// Health - ping для /api/v1/health
func (r *Redis) Health(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	r.logger.Info("Closing Redis connection")
	return r.client.Close()
}
