package domain

// RouteKind - тип маршрута
type RouteKind string

const (
	RouteKindTop        RouteKind = "top"
	RouteKindEmptyLeg   RouteKind = "empty_leg"
	RouteKindJetSharing RouteKind = "jet_sharing"
)

// Route - маршрут, из которого генерируются предложения. Генератор только читает его.
type Route struct {
	ID               string    `json:"id"`
	Kind             RouteKind `json:"kind"`
	From             Place     `json:"from"`
	To               Place     `json:"to"`
	AircraftCategory string    `json:"aircraftCategory"`
	BasePrice        float64   `json:"basePrice"`
	DistanceNM       int       `json:"distanceNm"`
	DurationMinutes  int       `json:"durationMinutes"`
	IsPopular        bool      `json:"isPopular"`
}

// InContinent reports whether both endpoints lie in the continent.
func (r Route) InContinent(c Continent) bool {
	return r.From.Continent == c && r.To.Continent == c
}

// RouteRow - строка таблиц empty_leg_routes / jet_sharing_routes с присоединёнными городами
type RouteRow struct {
	ID               int64    `db:"id"`
	FromCityID       int64    `db:"from_city_id"`
	ToCityID         int64    `db:"to_city_id"`
	AircraftCategory string   `db:"aircraft_category"`
	BasePrice        *float64 `db:"base_price"`
	DistanceNM       *int     `db:"distance_nm"`
	Duration         *int     `db:"duration"`
	IsPopular        bool     `db:"is_popular"`

	FromName        *string  `db:"from_name"`
	FromCountryCode *string  `db:"from_country_code"`
	FromIATA        *string  `db:"from_iata"`
	FromLat         *float64 `db:"from_lat"`
	FromLon         *float64 `db:"from_lon"`
	FromImage       *string  `db:"from_image"`

	ToName        *string  `db:"to_name"`
	ToCountryCode *string  `db:"to_country_code"`
	ToIATA        *string  `db:"to_iata"`
	ToLat         *float64 `db:"to_lat"`
	ToLon         *float64 `db:"to_lon"`
	ToImage       *string  `db:"to_image"`
}
