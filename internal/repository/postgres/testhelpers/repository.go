package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/jet-charter-service/internal/domain/repository"
	"github.com/jet-charter-service/internal/repository/postgres"
)

// Конструкторы репозиториев поверх тестового соединения

func NewPlaceRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.PlaceRepository {
	return postgres.NewPlaceRepository(postgres.NewDBForTest(db, logger), logger)
}

func NewRouteRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.RouteRepository {
	return postgres.NewRouteRepository(postgres.NewDBForTest(db, logger), logger)
}

func NewOrderRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.OrderRepository {
	return postgres.NewOrderRepository(postgres.NewDBForTest(db, logger), logger)
}

func NewStatsRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.StatsRepository {
	return postgres.NewStatsRepository(postgres.NewDBForTest(db, logger), logger)
}
