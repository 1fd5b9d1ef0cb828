package repository

import (
	"context"

	"github.com/jet-charter-service/internal/domain"
)

// GeolocationProvider - внешний сервис IP-геолокации
type GeolocationProvider interface {
	// Lookup с пустым ip определяет адрес вызывающего
	Lookup(ctx context.Context, ip string) (*domain.Geolocation, error)
}

// PhotoSearchRepository - внешний API поиска фотографий
type PhotoSearchRepository interface {
	SearchPhotos(ctx context.Context, query string, perPage int) ([]domain.PhotoCandidate, error)
}
