package domain

// Coordinates - географические координаты
type Coordinates struct {
	Lat float64 `json:"lat" db:"lat" yaml:"lat"`
	Lon float64 `json:"lon" db:"lon" yaml:"lon"`
}

// Place - город или аэропорт, участвующий в маршрутах
type Place struct {
	ID          int64       `json:"id,omitempty"`
	Name        string      `json:"name"`
	Slug        string      `json:"slug,omitempty"`
	CountryCode string      `json:"countryCode"`
	Country     string      `json:"country,omitempty"`
	Continent   Continent   `json:"continent"`
	Coordinates Coordinates `json:"coordinates"`
	IATA        string      `json:"iata"`
	Image       string      `json:"image,omitempty"`
}

// City - строка таблицы cities
type City struct {
	ID          int64    `db:"id"`
	Name        string   `db:"name"`
	Slug        *string  `db:"slug"`
	CountryCode string   `db:"country_code"`
	IATA        *string  `db:"iata"`
	Lat         *float64 `db:"lat"`
	Lon         *float64 `db:"lon"`
	Image       *string  `db:"image"`
	Description *string  `db:"description"`
}

// Country - строка таблицы countries
type Country struct {
	Code      string  `db:"code" json:"code"`
	Name      string  `db:"name" json:"name"`
	Image     *string `db:"image" json:"image,omitempty"`
	Continent string  `db:"continent" json:"continent"`
}

// ImageTarget - запись, которой нужна фотография (город или страна)
type ImageTarget struct {
	Kind        string  `db:"kind"`
	Key         string  `db:"key"`
	Name        string  `db:"name"`
	CountryName *string `db:"country_name"`
	Image       *string `db:"image"`
}

// Image target kinds
const (
	TargetCities    = "cities"
	TargetCountries = "countries"
)

// SearchName returns the query subject used for photo search.
func (t ImageTarget) SearchName() string {
	if t.Kind == TargetCities && t.CountryName != nil && *t.CountryName != "" {
		return t.Name + ", " + *t.CountryName
	}
	return t.Name
}

// CurrentImage returns the stored image URL or an empty string.
func (t ImageTarget) CurrentImage() string {
	if t.Image == nil {
		return ""
	}
	return *t.Image
}
