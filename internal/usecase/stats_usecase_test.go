package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jet-charter-service/internal/domain"
	"github.com/jet-charter-service/internal/usecase"
)

func TestStatsUseCase_GetStatistics(t *testing.T) {
	ctx := context.Background()
	stats := &domain.Statistics{Countries: 40, Cities: 310, CitiesNoImage: 12}

	t.Run("cache hit", func(t *testing.T) {
		repo := &MockStatsRepository{}
		cache := &MockCacheRepository{}
		uc := usecase.NewStatsUseCase(repo, cache, zap.NewNop())
		cache.On("GetStats", ctx).Return(stats, nil)

		got, err := uc.GetStatistics(ctx)

		require.NoError(t, err)
		assert.Equal(t, stats, got)
		repo.AssertNotCalled(t, "GetStatistics", ctx)
	})

	t.Run("cache miss reads database and caches", func(t *testing.T) {
		repo := &MockStatsRepository{}
		cache := &MockCacheRepository{}
		uc := usecase.NewStatsUseCase(repo, cache, zap.NewNop())
		cache.On("GetStats", ctx).Return(nil, nil)
		repo.On("GetStatistics", ctx).Return(stats, nil)
		cache.On("SetStats", ctx, stats, time.Hour).Return(errors.New("redis down"))

		got, err := uc.GetStatistics(ctx)

		require.NoError(t, err)
		assert.Equal(t, 310, got.Cities)
		assert.Equal(t, 96.6, got.ImageCoverage)
		cache.AssertExpectations(t)
	})

	t.Run("database error", func(t *testing.T) {
		repo := &MockStatsRepository{}
		cache := &MockCacheRepository{}
		uc := usecase.NewStatsUseCase(repo, cache, zap.NewNop())
		cache.On("GetStats", ctx).Return(nil, nil)
		repo.On("GetStatistics", ctx).Return(nil, errors.New("connection refused"))

		_, err := uc.GetStatistics(ctx)

		assert.Error(t, err)
	})
}

func TestStatistics_Coverage(t *testing.T) {
	assert.Equal(t, 100.0, domain.Statistics{}.Coverage())
	assert.Equal(t, 50.0, domain.Statistics{Countries: 2, CountriesNoImage: 1, Cities: 2, CitiesNoImage: 1}.Coverage())
	assert.Equal(t, 0.0, domain.Statistics{Cities: 3, CitiesNoImage: 3}.Coverage())
}

func TestStatsUseCase_RefreshStatistics(t *testing.T) {
	ctx := context.Background()
	repo := &MockStatsRepository{}
	cache := &MockCacheRepository{}
	uc := usecase.NewStatsUseCase(repo, cache, zap.NewNop())

	stats := &domain.Statistics{Countries: 1, Cities: 3, CitiesNoImage: 1}
	repo.On("GetStatistics", ctx).Return(stats, nil)
	cache.On("SetStats", ctx, stats, time.Hour).Return(nil)

	got, err := uc.RefreshStatistics(ctx)

	require.NoError(t, err)
	assert.Equal(t, 75.0, got.ImageCoverage)
	cache.AssertNotCalled(t, "GetStats", ctx)
	cache.AssertExpectations(t)
}
