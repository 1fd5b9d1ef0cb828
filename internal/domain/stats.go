package domain

import (
	"math"
	"time"
)

// Statistics - сводка по каталогу для мониторинга наполненности данных
type Statistics struct {
	Countries         int       `json:"countries" db:"countries"`
	CountriesNoImage  int       `json:"countries_without_image" db:"countries_no_image"`
	Cities            int       `json:"cities" db:"cities"`
	CitiesNoImage     int       `json:"cities_without_image" db:"cities_no_image"`
	EmptyLegRoutes    int       `json:"empty_leg_routes" db:"empty_leg_routes"`
	JetSharingRoutes  int       `json:"jet_sharing_routes" db:"jet_sharing_routes"`
	Orders            int       `json:"orders" db:"orders"`
	OrdersLast24Hours int       `json:"orders_last_24h" db:"orders_last_24h"`
	ImageCoverage     float64   `json:"image_coverage"`
	LastUpdated       time.Time `json:"last_updated"`
}

// Coverage - доля стран и городов с фотографией, в процентах с одним знаком.
// Пустой каталог считается полностью покрытым.
func (s Statistics) Coverage() float64 {
	total := s.Countries + s.Cities
	if total == 0 {
		return 100
	}
	withImage := total - s.CountriesNoImage - s.CitiesNoImage
	return math.Round(float64(withImage)*1000/float64(total)) / 10
}
