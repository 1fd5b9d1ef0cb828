package repository

import (
	"context"
	"time"

	"github.com/jet-charter-service/internal/domain"
)

type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error

	// GetGeolocation возвращает (nil, nil) при промахе кеша
	GetGeolocation(ctx context.Context, ip string) (*domain.Geolocation, error)
	SetGeolocation(ctx context.Context, ip string, geo *domain.Geolocation, ttl time.Duration) error

	GetStats(ctx context.Context) (*domain.Statistics, error)
	SetStats(ctx context.Context, stats *domain.Statistics, ttl time.Duration) error
}
