package domain

// Geolocation - упрощённый результат IP-геолокации
type Geolocation struct {
	IP          string      `json:"ip"`
	City        string      `json:"city"`
	Region      string      `json:"region,omitempty"`
	Country     string      `json:"country"`
	CountryCode string      `json:"countryCode"`
	Coordinates Coordinates `json:"coordinates"`
	Timezone    string      `json:"timezone"`
	Currency    string      `json:"currency"`
}

// Continent returns the continent bucket of the resolved country.
func (g *Geolocation) Continent() Continent {
	if g == nil {
		return DefaultContinent
	}
	return ContinentOf(g.CountryCode)
}

// TopRoutesResult - ответ /api/top-routes
type TopRoutesResult struct {
	Routes    []Listing `json:"routes"`
	UserCity  *string   `json:"userCity"`
	Continent Continent `json:"continent"`
}
