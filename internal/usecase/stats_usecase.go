package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/jet-charter-service/internal/domain"
	"github.com/jet-charter-service/internal/domain/repository"
)

const statsCacheTTL = time.Hour

// StatsUseCase - сводка по наполненности каталога (фото, маршруты, заявки)
type StatsUseCase struct {
	statsRepo repository.StatsRepository
	cacheRepo repository.CacheRepository
	loads     singleflight.Group
	logger    *zap.Logger
}

// NewStatsUseCase создает новый экземпляр StatsUseCase
func NewStatsUseCase(
	statsRepo repository.StatsRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
) *StatsUseCase {
	return &StatsUseCase{
		statsRepo: statsRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
	}
}

// GetStatistics отдаёт статистику из кеша, при промахе считает её в БД
func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	cached, err := uc.cacheRepo.GetStats(ctx)
	if err != nil {
		uc.logger.Warn("Failed to get stats from cache", zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	v, err, _ := uc.loads.Do("stats", func() (interface{}, error) {
		return uc.load(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Statistics), nil
}

// RefreshStatistics пересчитывает статистику после обслуживания каталога
func (uc *StatsUseCase) RefreshStatistics(ctx context.Context) (*domain.Statistics, error) {
	stats, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Statistics refreshed",
		zap.Int("cities", stats.Cities),
		zap.Int("cities_no_image", stats.CitiesNoImage),
		zap.Float64("image_coverage", stats.ImageCoverage),
	)
	return stats, nil
}

func (uc *StatsUseCase) load(ctx context.Context) (*domain.Statistics, error) {
	stats, err := uc.statsRepo.GetStatistics(ctx)
	if err != nil {
		return nil, fmt.Errorf("get statistics from db: %w", err)
	}
	stats.ImageCoverage = stats.Coverage()

	if err := uc.cacheRepo.SetStats(ctx, stats, statsCacheTTL); err != nil {
		uc.logger.Warn("Failed to cache stats", zap.Error(err))
	}
	return stats, nil
}
