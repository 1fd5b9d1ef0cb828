package repository

import (
	"context"

	"github.com/jet-charter-service/internal/domain"
)

// RouteRepository - чтение маршрутов empty leg / jet sharing
type RouteRepository interface {
	// ListRoutes возвращает все маршруты данного типа с данными городов
	ListRoutes(ctx context.Context, kind domain.RouteKind) ([]domain.RouteRow, error)

	// RepointCity переносит маршруты с городов fromIDs на город toID
	RepointCity(ctx context.Context, fromIDs []int64, toID int64) (int64, error)
}
