package dto

import "github.com/jet-charter-service/internal/domain"

// ListingsResponse - ответ со списком предложений
type ListingsResponse struct {
	Listings  []domain.Listing `json:"listings"`
	Continent domain.Continent `json:"continent"`
	Total     int              `json:"total"`
}

// Destination - страна с городами для страницы направлений
type Destination struct {
	Code   string            `json:"code"`
	Name   string            `json:"name"`
	Image  string            `json:"image,omitempty"`
	Cities []DestinationCity `json:"cities"`
}

// DestinationCity - город в карточке направления
type DestinationCity struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	IATA  string `json:"iata"`
	Image string `json:"image,omitempty"`
}

// DestinationsResponse - ответ /api/destinations
type DestinationsResponse struct {
	Continent    domain.Continent `json:"continent"`
	Destinations []Destination    `json:"destinations"`
}

// OrderResponse - заявка в ответах POST и GET /api/orders
type OrderResponse struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// DuplicatesReport - итог поиска дубликатов городов
type DuplicatesReport struct {
	Groups      []domain.DuplicateGroup `json:"groups"`
	Removed     int64                   `json:"removed"`
	RoutesMoved int64                   `json:"routes_moved"`
	DryRun      bool                    `json:"dry_run"`
	Stats       domain.BatchStats       `json:"stats"`
}
