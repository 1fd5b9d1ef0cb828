package repository

import (
	"context"

	"github.com/jet-charter-service/internal/domain"
)

// StatsRepository - интерфейс для получения статистики
type StatsRepository interface {
	// GetStatistics возвращает агрегированную статистику по каталогу
	GetStatistics(ctx context.Context) (*domain.Statistics, error)
}
