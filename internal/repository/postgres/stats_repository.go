package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jet-charter-service/internal/domain"
	"github.com/jet-charter-service/internal/domain/repository"
	"go.uber.org/zap"
)

type statsRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewStatsRepository создает новый экземпляр stats repository
func NewStatsRepository(db *DB, logger *zap.Logger) repository.StatsRepository {
	return &statsRepository{
		db:     db,
		logger: logger,
	}
}

// GetStatistics возвращает агрегированную статистику одним запросом
func (r *statsRepository) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM countries) AS countries,
			(SELECT COUNT(*) FROM countries WHERE image IS NULL OR image = '') AS countries_no_image,
			(SELECT COUNT(*) FROM cities) AS cities,
			(SELECT COUNT(*) FROM cities WHERE image IS NULL OR image = '') AS cities_no_image,
			(SELECT COUNT(*) FROM empty_leg_routes) AS empty_leg_routes,
			(SELECT COUNT(*) FROM jet_sharing_routes) AS jet_sharing_routes,
			(SELECT COUNT(*) FROM orders) AS orders,
			(SELECT COUNT(*) FROM orders WHERE created_at > NOW() - INTERVAL '24 hours') AS orders_last_24h
	`

	var stats domain.Statistics
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		r.logger.Error("failed to get statistics", zap.Error(err))
		return nil, fmt.Errorf("get statistics: %w", err)
	}
	stats.LastUpdated = time.Now().UTC()

	return &stats, nil
}
