package postgres

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/jet-charter-service/internal/domain"
	"github.com/jet-charter-service/internal/domain/repository"
)

// routeTables - таблицы маршрутов по типу; имя таблицы никогда не берётся из ввода
var routeTables = map[domain.RouteKind]string{
	domain.RouteKindEmptyLeg:   "empty_leg_routes",
	domain.RouteKindJetSharing: "jet_sharing_routes",
}

type routeRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewRouteRepository создает репозиторий маршрутов
func NewRouteRepository(db *DB, logger *zap.Logger) repository.RouteRepository {
	return &routeRepository{
		db:     db,
		logger: logger,
	}
}

// ListRoutes возвращает маршруты с присоединёнными городами.
// LEFT JOIN оставляет маршруты с потерянными городами, чтобы генератор мог залогировать их.
func (r *routeRepository) ListRoutes(ctx context.Context, kind domain.RouteKind) ([]domain.RouteRow, error) {
	table, ok := routeTables[kind]
	if !ok {
		return nil, fmt.Errorf("no route table for kind %q", kind)
	}

	query := fmt.Sprintf(`
		SELECT
			r.id, r.from_city_id, r.to_city_id, r.aircraft_category,
			r.base_price, r.distance_nm, r.duration, r.is_popular,
			fc.name AS from_name, fc.country_code AS from_country_code, fc.iata AS from_iata,
			fc.lat AS from_lat, fc.lon AS from_lon, fc.image AS from_image,
			tc.name AS to_name, tc.country_code AS to_country_code, tc.iata AS to_iata,
			tc.lat AS to_lat, tc.lon AS to_lon, tc.image AS to_image
		FROM %s r
		LEFT JOIN cities fc ON fc.id = r.from_city_id
		LEFT JOIN cities tc ON tc.id = r.to_city_id
		ORDER BY r.id
	`, table)

	var rows []domain.RouteRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		r.logger.Error("failed to list routes", zap.String("kind", string(kind)), zap.Error(err))
		return nil, fmt.Errorf("list %s: %w", table, err)
	}

	return rows, nil
}

// RepointCity переносит ссылки маршрутов с дубликатов на оставляемый город в одной транзакции
func (r *routeRepository) RepointCity(ctx context.Context, fromIDs []int64, toID int64) (int64, error) {
	if len(fromIDs) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var total int64
	for _, table := range []string{"empty_leg_routes", "jet_sharing_routes"} {
		for _, column := range []string{"from_city_id", "to_city_id"} {
			query := fmt.Sprintf(`UPDATE %s SET %s = $1 WHERE %s = ANY($2)`, table, column, column)
			res, err := tx.ExecContext(ctx, query, toID, pq.Array(fromIDs))
			if err != nil {
				return 0, fmt.Errorf("repoint %s.%s: %w", table, column, err)
			}
			n, _ := res.RowsAffected()
			total += n
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit repoint: %w", err)
	}

	r.logger.Debug("routes repointed",
		zap.Int64s("from_ids", fromIDs),
		zap.Int64("to_id", toID),
		zap.Int64("rows", total))
	return total, nil
}
