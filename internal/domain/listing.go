package domain

// Listing status values
const (
	ListingStatusAvailable = "available"
	ListingStatusLimited   = "limited"
)

// Listing - сгенерированное предложение; не сохраняется в БД
type Listing struct {
	ID              string    `json:"id"`
	RouteID         string    `json:"routeId"`
	Type            RouteKind `json:"type"`
	From            Place     `json:"from"`
	To              Place     `json:"to"`
	DepartureDate   string    `json:"departureDate"`
	DepartureTime   string    `json:"departureTime"`
	ArrivalTime     string    `json:"arrivalTime"`
	DurationMinutes int       `json:"durationMinutes"`
	DistanceNM      int       `json:"distanceNm"`
	Aircraft        Aircraft  `json:"aircraft"`
	OriginalPrice   float64   `json:"originalPrice"`
	DiscountedPrice float64   `json:"discountedPrice,omitempty"`
	DiscountPercent int       `json:"discountPercent,omitempty"`
	PricePerSeat    float64   `json:"pricePerSeat,omitempty"`
	Currency        string    `json:"currency"`
	AvailableSeats  int       `json:"availableSeats"`
	TotalSeats      int       `json:"totalSeats"`
	Status          string    `json:"status"`
	IsFeatured      bool      `json:"isFeatured"`
	IsPopular       bool      `json:"isPopular"`
}

// SortPrice - цена, по которой упорядочиваются предложения данного типа
func (l Listing) SortPrice() float64 {
	switch l.Type {
	case RouteKindEmptyLeg:
		return l.DiscountedPrice
	case RouteKindJetSharing:
		return l.PricePerSeat
	default:
		return l.OriginalPrice
	}
}

// Aircraft - самолёт в предложении
type Aircraft struct {
	Category string `json:"category"`
	Model    string `json:"model"`
	Seats    int    `json:"seats"`
}

// AircraftCategory - класс самолёта из каталога
type AircraftCategory struct {
	Slug             string   `json:"slug" yaml:"slug"`
	Name             string   `json:"name" yaml:"name"`
	Seats            int      `json:"seats" yaml:"seats"`
	CruiseSpeedKnots int      `json:"cruiseSpeedKnots" yaml:"cruise_speed_knots"`
	RangeNM          int      `json:"rangeNm" yaml:"range_nm"`
	HourlyRate       float64  `json:"hourlyRate" yaml:"hourly_rate"`
	Models           []string `json:"models" yaml:"models"`
}
