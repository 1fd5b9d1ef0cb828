// Package reference holds the static airport, route and aircraft tables
// the listing generator reads. Tables are embedded YAML parsed once at startup.
package reference

import (
	"embed"
	"fmt"
	"math"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jet-charter-service/internal/domain"
	"github.com/jet-charter-service/internal/pkg/utils"
)

//go:embed data/*.yaml
var dataFS embed.FS

// taxiMinutes is added to every airborne time estimate.
const taxiMinutes = 20

type placeRecord struct {
	Name        string  `yaml:"name"`
	CountryCode string  `yaml:"country_code"`
	IATA        string  `yaml:"iata"`
	Lat         float64 `yaml:"lat"`
	Lon         float64 `yaml:"lon"`
}

type routeRecord struct {
	ID        string  `yaml:"id"`
	From      string  `yaml:"from"`
	To        string  `yaml:"to"`
	Category  string  `yaml:"category"`
	BasePrice float64 `yaml:"base_price"`
	Popular   bool    `yaml:"popular"`
}

// Catalog - неизменяемый снимок справочных данных. Безопасен для конкурентного чтения.
type Catalog struct {
	places    map[string]domain.Place
	topRoutes []domain.Route
	aircraft  []domain.AircraftCategory
	bySlug    map[string]domain.AircraftCategory
}

// Load parses the embedded tables.
func Load() (*Catalog, error) {
	read := func(name string) ([]byte, error) {
		b, err := dataFS.ReadFile("data/" + name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		return b, nil
	}

	places, err := read("places.yaml")
	if err != nil {
		return nil, err
	}
	routes, err := read("top_routes.yaml")
	if err != nil {
		return nil, err
	}
	aircraft, err := read("aircraft.yaml")
	if err != nil {
		return nil, err
	}

	return Parse(places, routes, aircraft)
}

// Parse builds a catalog from raw YAML tables.
func Parse(placesYAML, routesYAML, aircraftYAML []byte) (*Catalog, error) {
	var (
		placeRecs []placeRecord
		routeRecs []routeRecord
		aircraft  []domain.AircraftCategory
	)
	if err := yaml.Unmarshal(placesYAML, &placeRecs); err != nil {
		return nil, fmt.Errorf("parse places: %w", err)
	}
	if err := yaml.Unmarshal(routesYAML, &routeRecs); err != nil {
		return nil, fmt.Errorf("parse top routes: %w", err)
	}
	if err := yaml.Unmarshal(aircraftYAML, &aircraft); err != nil {
		return nil, fmt.Errorf("parse aircraft: %w", err)
	}

	c := &Catalog{
		places:   make(map[string]domain.Place, len(placeRecs)),
		aircraft: aircraft,
		bySlug:   make(map[string]domain.AircraftCategory, len(aircraft)),
	}

	for _, a := range aircraft {
		if a.Slug == "" || a.Seats <= 0 || a.CruiseSpeedKnots <= 0 {
			return nil, fmt.Errorf("invalid aircraft category %q", a.Slug)
		}
		c.bySlug[a.Slug] = a
	}

	for _, rec := range placeRecs {
		if rec.Name == "" || rec.CountryCode == "" {
			return nil, fmt.Errorf("place without name or country: %+v", rec)
		}
		iata := strings.ToUpper(rec.IATA)
		if iata == "" {
			iata = DeriveCode(rec.Name)
		}
		p := domain.Place{
			Name:        rec.Name,
			Slug:        Slugify(rec.Name),
			CountryCode: strings.ToUpper(rec.CountryCode),
			Continent:   domain.ContinentOf(rec.CountryCode),
			Coordinates: domain.Coordinates{Lat: rec.Lat, Lon: rec.Lon},
			IATA:        iata,
		}
		key := NormalizeName(rec.Name)
		if _, dup := c.places[key]; dup {
			return nil, fmt.Errorf("duplicate place %q", rec.Name)
		}
		c.places[key] = p
	}

	seen := make(map[string]struct{}, len(routeRecs))
	for _, rec := range routeRecs {
		if _, dup := seen[rec.ID]; dup || rec.ID == "" {
			return nil, fmt.Errorf("missing or duplicate top route id %q", rec.ID)
		}
		seen[rec.ID] = struct{}{}

		from, ok := c.Place(rec.From)
		if !ok {
			return nil, fmt.Errorf("top route %s: unknown place %q", rec.ID, rec.From)
		}
		to, ok := c.Place(rec.To)
		if !ok {
			return nil, fmt.Errorf("top route %s: unknown place %q", rec.ID, rec.To)
		}
		category, ok := c.bySlug[rec.Category]
		if !ok {
			return nil, fmt.Errorf("top route %s: unknown aircraft category %q", rec.ID, rec.Category)
		}

		distance := RouteDistanceNM(from, to)
		c.topRoutes = append(c.topRoutes, domain.Route{
			ID:               rec.ID,
			Kind:             domain.RouteKindTop,
			From:             from,
			To:               to,
			AircraftCategory: category.Slug,
			BasePrice:        rec.BasePrice,
			DistanceNM:       distance,
			DurationMinutes:  EstimateDuration(distance, category),
			IsPopular:        rec.Popular,
		})
	}

	return c, nil
}

// Place looks a place up by name, ignoring case, accents and punctuation.
func (c *Catalog) Place(name string) (domain.Place, bool) {
	p, ok := c.places[NormalizeName(name)]
	return p, ok
}

// TopRoutes returns a copy of the curated top routes.
func (c *Catalog) TopRoutes() []domain.Route {
	out := make([]domain.Route, len(c.topRoutes))
	copy(out, c.topRoutes)
	return out
}

// Aircraft returns the aircraft categories ordered by seat count.
func (c *Catalog) Aircraft() []domain.AircraftCategory {
	out := make([]domain.AircraftCategory, len(c.aircraft))
	copy(out, c.aircraft)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Seats < out[j].Seats })
	return out
}

// AircraftCategory returns the category by slug.
func (c *Catalog) AircraftCategory(slug string) (domain.AircraftCategory, bool) {
	a, ok := c.bySlug[slug]
	return a, ok
}

// RouteDistanceNM - расстояние между местами в морских милях, округлённое
func RouteDistanceNM(from, to domain.Place) int {
	d := utils.DistanceNM(from.Coordinates.Lat, from.Coordinates.Lon, to.Coordinates.Lat, to.Coordinates.Lon)
	return int(math.Round(d))
}

// EstimateDuration - время полёта в минутах с учётом руления, кратно 5
func EstimateDuration(distanceNM int, category domain.AircraftCategory) int {
	if distanceNM <= 0 || category.CruiseSpeedKnots <= 0 {
		return 0
	}
	minutes := float64(distanceNM)/float64(category.CruiseSpeedKnots)*60 + taxiMinutes
	return int(math.Round(minutes/5) * 5)
}
