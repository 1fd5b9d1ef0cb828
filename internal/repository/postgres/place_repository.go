package postgres

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/jet-charter-service/internal/domain"
	"github.com/jet-charter-service/internal/domain/repository"
)

const cityColumns = `id, name, slug, country_code, iata, lat, lon, image, description`

type placeRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewPlaceRepository создает репозиторий городов и стран
func NewPlaceRepository(db *DB, logger *zap.Logger) repository.PlaceRepository {
	return &placeRepository{
		db:     db,
		logger: logger,
	}
}

func (r *placeRepository) ListCities(ctx context.Context) ([]domain.City, error) {
	var cities []domain.City
	query := `SELECT ` + cityColumns + ` FROM cities ORDER BY id`
	if err := r.db.SelectContext(ctx, &cities, query); err != nil {
		r.logger.Error("failed to list cities", zap.Error(err))
		return nil, fmt.Errorf("list cities: %w", err)
	}
	return cities, nil
}

func (r *placeRepository) ListCountries(ctx context.Context, continent domain.Continent) ([]domain.Country, error) {
	var countries []domain.Country
	query := `SELECT code, name, image, continent FROM countries WHERE continent = $1 ORDER BY name`
	if err := r.db.SelectContext(ctx, &countries, query, string(continent)); err != nil {
		r.logger.Error("failed to list countries", zap.String("continent", string(continent)), zap.Error(err))
		return nil, fmt.Errorf("list countries: %w", err)
	}
	return countries, nil
}

func (r *placeRepository) ListCitiesByCountries(ctx context.Context, codes []string) ([]domain.City, error) {
	if len(codes) == 0 {
		return nil, nil
	}
	var cities []domain.City
	query := `SELECT ` + cityColumns + ` FROM cities WHERE country_code = ANY($1) ORDER BY name, id`
	if err := r.db.SelectContext(ctx, &cities, query, pq.Array(codes)); err != nil {
		r.logger.Error("failed to list cities by countries", zap.Strings("codes", codes), zap.Error(err))
		return nil, fmt.Errorf("list cities by countries: %w", err)
	}
	return cities, nil
}

// ListImageTargets - записи для подбора фото. limit <= 0 снимает ограничение.
// Ещё не проверенные записи идут первыми, дальше - по давности последней проверки.
func (r *placeRepository) ListImageTargets(ctx context.Context, kind string, onlyMissing bool, limit int) ([]domain.ImageTarget, error) {
	var query string
	switch kind {
	case domain.TargetCities:
		query = `
			SELECT 'cities' AS kind, c.id::text AS key, c.name, co.name AS country_name, c.image
			FROM cities c
			LEFT JOIN countries co ON co.code = c.country_code`
		if onlyMissing {
			query += ` WHERE c.image IS NULL OR c.image = ''`
		}
		query += ` ORDER BY c.photo_checked_at NULLS FIRST, c.id`
	case domain.TargetCountries:
		query = `SELECT 'countries' AS kind, code AS key, name, NULL::text AS country_name, image FROM countries`
		if onlyMissing {
			query += ` WHERE image IS NULL OR image = ''`
		}
		query += ` ORDER BY photo_checked_at NULLS FIRST, code`
	default:
		return nil, fmt.Errorf("unknown image target %q", kind)
	}
	query += ` LIMIT NULLIF($1, 0)`

	if limit < 0 {
		limit = 0
	}

	var targets []domain.ImageTarget
	if err := r.db.SelectContext(ctx, &targets, query, limit); err != nil {
		r.logger.Error("failed to list image targets", zap.String("kind", kind), zap.Error(err))
		return nil, fmt.Errorf("list image targets: %w", err)
	}
	return targets, nil
}

// UpdateImage записывает URL фото; повторная запись того же URL безопасна
func (r *placeRepository) UpdateImage(ctx context.Context, kind, key, url string) error {
	var query string
	switch kind {
	case domain.TargetCities:
		query = `UPDATE cities SET image = $1, photo_checked_at = NOW() WHERE id = $2::bigint`
	case domain.TargetCountries:
		query = `UPDATE countries SET image = $1, photo_checked_at = NOW() WHERE code = $2`
	default:
		return fmt.Errorf("unknown image target %q", kind)
	}

	res, err := r.db.ExecContext(ctx, query, url, key)
	if err != nil {
		r.logger.Error("failed to update image", zap.String("kind", kind), zap.String("key", key), zap.Error(err))
		return fmt.Errorf("update %s image: %w", kind, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("update %s image: no row with key %s", kind, key)
	}
	return nil
}

// MarkPhotoChecked отмечает попытку подбора фото (photo_checked_at = NOW())
func (r *placeRepository) MarkPhotoChecked(ctx context.Context, kind, key string) error {
	var query string
	switch kind {
	case domain.TargetCities:
		query = `UPDATE cities SET photo_checked_at = NOW() WHERE id = $1::bigint`
	case domain.TargetCountries:
		query = `UPDATE countries SET photo_checked_at = NOW() WHERE code = $1`
	default:
		return fmt.Errorf("unknown image target %q", kind)
	}

	if _, err := r.db.ExecContext(ctx, query, key); err != nil {
		r.logger.Error("failed to mark photo checked", zap.String("kind", kind), zap.String("key", key), zap.Error(err))
		return fmt.Errorf("mark %s photo checked: %w", kind, err)
	}
	return nil
}

func (r *placeRepository) DeleteCities(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM cities WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		r.logger.Error("failed to delete cities", zap.Int64s("ids", ids), zap.Error(err))
		return 0, fmt.Errorf("delete cities: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
