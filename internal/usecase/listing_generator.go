package usecase

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/jet-charter-service/internal/domain"
	"github.com/jet-charter-service/internal/reference"
)

// DiscountSteps - допустимые скидки на empty leg, в процентах
var DiscountSteps = []int{40, 45, 50, 55, 60, 65, 70, 75}

// FeaturedProbability - вероятность пометить непопулярный маршрут как featured
const FeaturedProbability = 0.15

// Sort modes
const (
	SortDefault  = "default"
	SortDiscount = "discount"
)

// Horizon of synthesized departure dates, in days from the window start.
var departureHorizon = map[domain.RouteKind][2]int{
	domain.RouteKindTop:        {7, 30},
	domain.RouteKindEmptyLeg:   {1, 14},
	domain.RouteKindJetSharing: {3, 30},
}

var departureMinutes = []int{0, 15, 30, 45}

// GenerateRequest - параметры генерации предложений
type GenerateRequest struct {
	Type      domain.RouteKind
	Continent domain.Continent
	Count     int
	UserCity  string
	SortBy    string
}

// ListingGenerator превращает маршруты в предложения. Не имеет изменяемого состояния.
type ListingGenerator struct {
	catalog  *reference.Catalog
	window   time.Duration
	currency string
}

// NewListingGenerator - создание генератора; window задаёт окно, в котором выдача стабильна
func NewListingGenerator(catalog *reference.Catalog, window time.Duration, currency string) *ListingGenerator {
	if window <= 0 {
		window = time.Hour
	}
	return &ListingGenerator{
		catalog:  catalog,
		window:   window,
		currency: currency,
	}
}

// WindowStart returns the start of the seed window containing now.
func (g *ListingGenerator) WindowStart(now time.Time) time.Time {
	return now.UTC().Truncate(g.window)
}

// Generate builds listings from the route pool. Same routes, request and window give the same output.
func (g *ListingGenerator) Generate(routes []domain.Route, req GenerateRequest, now time.Time) []domain.Listing {
	windowStart := g.WindowStart(now)
	baseSeed := hashString(fmt.Sprintf("%s|%s|%d", req.Type, req.Continent, windowStart.Unix()))

	listings := make([]domain.Listing, 0, len(routes))
	for _, route := range routes {
		if !route.InContinent(req.Continent) {
			continue
		}
		category, ok := g.catalog.AircraftCategory(route.AircraftCategory)
		if !ok {
			continue
		}
		rng := rand.New(rand.NewSource(int64(baseSeed ^ hashString(route.ID))))
		listings = append(listings, g.synthesize(route, req.Type, category, windowStart, rng))
	}

	sortListings(listings, req.SortBy)

	if req.UserCity != "" {
		listings = prioritizeCity(listings, req.UserCity)
	}

	if req.Count > 0 && len(listings) > req.Count {
		listings = listings[:req.Count]
	}

	return listings
}

// synthesize draws every random value in a fixed order so that a route maps to one listing per window.
func (g *ListingGenerator) synthesize(
	route domain.Route,
	kind domain.RouteKind,
	category domain.AircraftCategory,
	windowStart time.Time,
	rng *rand.Rand,
) domain.Listing {
	model := category.Name
	if len(category.Models) > 0 {
		model = category.Models[rng.Intn(len(category.Models))]
	}

	horizon, ok := departureHorizon[kind]
	if !ok {
		horizon = departureHorizon[domain.RouteKindTop]
	}
	dayOffset := horizon[0] + rng.Intn(horizon[1]-horizon[0]+1)
	hour := 6 + rng.Intn(15)
	minute := departureMinutes[rng.Intn(len(departureMinutes))]
	discount := DiscountSteps[rng.Intn(len(DiscountSteps))]
	seatDraw := rng.Intn(max(category.Seats, 1))
	featuredDraw := rng.Float64()

	distance := route.DistanceNM
	if distance <= 0 {
		distance = reference.RouteDistanceNM(route.From, route.To)
	}
	duration := route.DurationMinutes
	if duration <= 0 {
		duration = reference.EstimateDuration(distance, category)
	}

	day := windowStart.AddDate(0, 0, dayOffset)
	departure := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)
	arrival := departure.Add(time.Duration(duration) * time.Minute)

	listing := domain.Listing{
		ID:              fmt.Sprintf("%s-%s", route.ID, departure.Format("20060102")),
		RouteID:         route.ID,
		Type:            kind,
		From:            route.From,
		To:              route.To,
		DepartureDate:   departure.Format("2006-01-02"),
		DepartureTime:   departure.Format("15:04"),
		ArrivalTime:     arrival.Format("15:04"),
		DurationMinutes: duration,
		DistanceNM:      distance,
		Aircraft: domain.Aircraft{
			Category: category.Slug,
			Model:    model,
			Seats:    category.Seats,
		},
		OriginalPrice:  originalPrice(route, category, duration),
		Currency:       g.currency,
		AvailableSeats: category.Seats,
		TotalSeats:     category.Seats,
		Status:         domain.ListingStatusAvailable,
		IsPopular:      route.IsPopular,
		IsFeatured:     route.IsPopular || featuredDraw < FeaturedProbability,
	}

	switch kind {
	case domain.RouteKindEmptyLeg:
		listing.DiscountPercent = discount
		listing.DiscountedPrice = DiscountedPrice(listing.OriginalPrice, discount)
	case domain.RouteKindJetSharing:
		seats := max(category.Seats, 1)
		listing.PricePerSeat = math.Round(listing.OriginalPrice / float64(seats))
		listing.AvailableSeats = 1 + seatDraw
		if listing.AvailableSeats <= 2 {
			listing.Status = domain.ListingStatusLimited
		}
	}

	return listing
}

// DiscountedPrice - цена со скидкой discount процентов, округлённая до целого
func DiscountedPrice(original float64, discount int) float64 {
	return math.Round(original * (1 - float64(discount)/100))
}

// originalPrice falls back to the hourly rate when the route has no base price.
func originalPrice(route domain.Route, category domain.AircraftCategory, durationMinutes int) float64 {
	if route.BasePrice > 0 {
		return route.BasePrice
	}
	hours := float64(durationMinutes) / 60
	return math.Round(category.HourlyRate*hours/100) * 100
}

func sortListings(listings []domain.Listing, mode string) {
	byNames := func(a, b domain.Listing) bool {
		if a.From.Name != b.From.Name {
			return a.From.Name < b.From.Name
		}
		if a.To.Name != b.To.Name {
			return a.To.Name < b.To.Name
		}
		return a.ID < b.ID
	}

	if mode == SortDiscount {
		sort.SliceStable(listings, func(i, j int) bool {
			a, b := listings[i], listings[j]
			if a.DiscountPercent != b.DiscountPercent {
				return a.DiscountPercent > b.DiscountPercent
			}
			if a.SortPrice() != b.SortPrice() {
				return a.SortPrice() < b.SortPrice()
			}
			return byNames(a, b)
		})
		return
	}

	sort.SliceStable(listings, func(i, j int) bool {
		a, b := listings[i], listings[j]
		if a.IsFeatured != b.IsFeatured {
			return a.IsFeatured
		}
		if a.SortPrice() != b.SortPrice() {
			return a.SortPrice() < b.SortPrice()
		}
		return byNames(a, b)
	})
}

// prioritizeCity moves listings departing from city to the front, keeping both parts in order.
func prioritizeCity(listings []domain.Listing, city string) []domain.Listing {
	key := reference.NormalizeName(city)
	if key == "" {
		return listings
	}

	out := make([]domain.Listing, 0, len(listings))
	rest := make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		if reference.NormalizeName(l.From.Name) == key {
			out = append(out, l)
		} else {
			rest = append(rest, l)
		}
	}
	return append(out, rest...)
}

func hashString(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}
