package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jet-charter-service/internal/domain"
	"github.com/jet-charter-service/internal/repository/cache"
)

func newTestCache(t *testing.T) (*miniredis.Miniredis, *cache.Redis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, cache.NewRedisFromClient(client, zap.NewNop())
}

func TestCacheRepository_GetSet(t *testing.T) {
	_, r := newTestCache(t)
	repo := cache.NewCacheRepository(r)
	ctx := context.Background()

	val, err := repo.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, val)

	require.NoError(t, repo.Set(ctx, "k", []byte("v"), time.Minute))
	val, err = repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), val)

	require.NoError(t, repo.Delete(ctx, "k"))
	val, err = repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestCacheRepository_Geolocation(t *testing.T) {
	mr, r := newTestCache(t)
	repo := cache.NewCacheRepository(r)
	ctx := context.Background()

	geo, err := repo.GetGeolocation(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.Nil(t, geo)

	want := &domain.Geolocation{IP: "203.0.113.7", City: "Paris", CountryCode: "FR", Currency: "EUR"}
	require.NoError(t, repo.SetGeolocation(ctx, "203.0.113.7", want, time.Hour))

	got, err := repo.GetGeolocation(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, time.Hour, mr.TTL("geo:ip:203.0.113.7"))

	mr.FastForward(2 * time.Hour)
	got, err = repo.GetGeolocation(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCacheRepository_CorruptValue(t *testing.T) {
	mr, r := newTestCache(t)
	repo := cache.NewCacheRepository(r)

	require.NoError(t, mr.Set("stats:current", "{not json"))
	stats, err := repo.GetStats(context.Background())
	assert.Error(t, err)
	assert.Nil(t, stats)
}

func TestCacheRepository_Stats(t *testing.T) {
	_, r := newTestCache(t)
	repo := cache.NewCacheRepository(r)
	ctx := context.Background()

	in := &domain.Statistics{Cities: 10, CitiesNoImage: 2, LastUpdated: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, repo.SetStats(ctx, in, time.Hour))

	out, err := repo.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestCacheRepository_ConnectionError(t *testing.T) {
	mr, r := newTestCache(t)
	repo := cache.NewCacheRepository(r)
	mr.Close()

	_, err := repo.Get(context.Background(), "k")
	assert.Error(t, err)
}
