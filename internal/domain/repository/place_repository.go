package repository

import (
	"context"

	"github.com/jet-charter-service/internal/domain"
)

// PlaceRepository - города и страны
type PlaceRepository interface {
	ListCities(ctx context.Context) ([]domain.City, error)
	ListCountries(ctx context.Context, continent domain.Continent) ([]domain.Country, error)
	ListCitiesByCountries(ctx context.Context, codes []string) ([]domain.City, error)

	// ListImageTargets возвращает записи kind (cities|countries); onlyMissing - только без фото
	ListImageTargets(ctx context.Context, kind string, onlyMissing bool, limit int) ([]domain.ImageTarget, error)
	UpdateImage(ctx context.Context, kind, key, url string) error
	// MarkPhotoChecked переносит запись в конец очереди ListImageTargets
	MarkPhotoChecked(ctx context.Context, kind, key string) error

	DeleteCities(ctx context.Context, ids []int64) (int64, error)
}
