package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/jet-charter-service/internal/config"
	"github.com/jet-charter-service/internal/domain"
	"github.com/jet-charter-service/internal/domain/repository"
	apperrors "github.com/jet-charter-service/internal/pkg/errors"
	"github.com/jet-charter-service/internal/reference"
	"github.com/jet-charter-service/internal/usecase/dto"
)

const routesCacheKeyPrefix = "routes:"

// ListingUseCase собирает выдачу top routes / empty legs / jet sharing
type ListingUseCase struct {
	catalog   *reference.Catalog
	routeRepo repository.RouteRepository
	cacheRepo repository.CacheRepository
	geoUC     *GeolocationUseCase
	generator *ListingGenerator
	cfg       *config.ListingsConfig
	routesTTL time.Duration
	fallback  domain.Continent
	now       func() time.Time
	loads     singleflight.Group
	logger    *zap.Logger
}

// NewListingUseCase - создание use case выдачи предложений
func NewListingUseCase(
	catalog *reference.Catalog,
	routeRepo repository.RouteRepository,
	cacheRepo repository.CacheRepository,
	geoUC *GeolocationUseCase,
	generator *ListingGenerator,
	cfg *config.ListingsConfig,
	routesTTL time.Duration,
	logger *zap.Logger,
) *ListingUseCase {
	fallback, ok := domain.ParseContinent(cfg.DefaultContinent)
	if !ok {
		fallback = domain.DefaultContinent
	}

	return &ListingUseCase{
		catalog:   catalog,
		routeRepo: routeRepo,
		cacheRepo: cacheRepo,
		geoUC:     geoUC,
		generator: generator,
		cfg:       cfg,
		routesTTL: routesTTL,
		fallback:  fallback,
		now:       time.Now,
		logger:    logger,
	}
}

// WithClock подменяет источник времени (тесты, maintenance)
func (uc *ListingUseCase) WithClock(now func() time.Time) *ListingUseCase {
	uc.now = now
	return uc
}

// GetTopRoutes возвращает популярные маршруты для континента клиента.
// Никогда не возвращает ошибку: при любом сбое отдаётся выдача по континенту по умолчанию.
func (uc *ListingUseCase) GetTopRoutes(ctx context.Context, ip string) domain.TopRoutesResult {
	geo := uc.geoUC.Resolve(ctx, ip)

	continent := uc.fallback
	var userCity *string
	if geo != nil {
		continent = geo.Continent()
		if geo.City != "" {
			city := geo.City
			userCity = &city
		}
	}

	req := GenerateRequest{
		Type:      domain.RouteKindTop,
		Continent: continent,
		Count:     uc.cfg.Count,
	}
	if userCity != nil {
		req.UserCity = *userCity
	}

	routes, err := uc.Generate(ctx, req)
	if err != nil || len(routes) == 0 {
		if err != nil {
			uc.logger.Error("Failed to generate top routes", zap.String("continent", string(continent)), zap.Error(err))
		}
		if continent != uc.fallback {
			req.Continent = uc.fallback
			continent = uc.fallback
			routes, err = uc.Generate(ctx, req)
			if err != nil {
				uc.logger.Error("Failed to generate fallback top routes", zap.Error(err))
			}
		}
	}
	if routes == nil {
		routes = []domain.Listing{}
	}

	return domain.TopRoutesResult{
		Routes:    routes,
		UserCity:  userCity,
		Continent: continent,
	}
}

// GetListings - выдача empty legs или jet sharing по параметрам запроса
func (uc *ListingUseCase) GetListings(
	ctx context.Context,
	kind domain.RouteKind,
	req dto.ListingsRequest,
) (*dto.ListingsResponse, error) {
	if kind != domain.RouteKindEmptyLeg && kind != domain.RouteKindJetSharing {
		return nil, apperrors.ErrInvalidListingType
	}

	continent := uc.fallback
	if req.Continent != "" {
		c, ok := domain.ParseContinent(req.Continent)
		if !ok {
			return nil, apperrors.ErrInvalidContinent.WithDetails(map[string]interface{}{"continent": req.Continent})
		}
		continent = c
	}

	count := req.Count
	if count <= 0 {
		count = uc.cfg.Count
	}

	listings, err := uc.Generate(ctx, GenerateRequest{
		Type:      kind,
		Continent: continent,
		Count:     count,
		UserCity:  req.City,
		SortBy:    req.Sort,
	})
	if err != nil {
		return nil, apperrors.ErrDatabaseError.Wrap(err)
	}

	return &dto.ListingsResponse{
		Listings:  listings,
		Continent: continent,
		Total:     len(listings),
	}, nil
}

// Generate строит предложения; только читает маршруты
func (uc *ListingUseCase) Generate(ctx context.Context, req GenerateRequest) ([]domain.Listing, error) {
	var (
		routes []domain.Route
		err    error
	)

	switch req.Type {
	case domain.RouteKindTop:
		routes = uc.catalog.TopRoutes()
	case domain.RouteKindEmptyLeg, domain.RouteKindJetSharing:
		routes, err = uc.loadRoutes(ctx, req.Type)
		if err != nil {
			return nil, err
		}
	default:
		return nil, apperrors.ErrInvalidListingType
	}

	return uc.generator.Generate(routes, req, uc.now()), nil
}

// InvalidateRoutes сбрасывает кеш пулов маршрутов после изменения городов
func (uc *ListingUseCase) InvalidateRoutes(ctx context.Context) {
	invalidateRoutesCache(ctx, uc.cacheRepo, uc.logger)
}

// loadRoutes reads the persisted pool through the Redis cache.
func (uc *ListingUseCase) loadRoutes(ctx context.Context, kind domain.RouteKind) ([]domain.Route, error) {
	key := routesCacheKeyPrefix + string(kind)

	// 1. Проверяем кеш
	if data, err := uc.cacheRepo.Get(ctx, key); err != nil {
		uc.logger.Warn("Failed to read routes from cache", zap.String("key", key), zap.Error(err))
	} else if data != nil {
		var cached []domain.Route
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
		uc.logger.Warn("Corrupted routes cache entry", zap.String("key", key))
	}

	// 2. Читаем из БД; одновременные промахи кеша делят один запрос
	v, err, _ := uc.loads.Do(key, func() (interface{}, error) {
		rows, err := uc.routeRepo.ListRoutes(ctx, kind)
		if err != nil {
			return nil, fmt.Errorf("list %s routes: %w", kind, err)
		}

		routes := make([]domain.Route, 0, len(rows))
		for _, row := range rows {
			route, ok := uc.rowToRoute(kind, row)
			if ok {
				routes = append(routes, route)
			}
		}

		// 3. Кешируем
		if data, err := json.Marshal(routes); err == nil {
			if err := uc.cacheRepo.Set(ctx, key, data, uc.routesTTL); err != nil {
				uc.logger.Warn("Failed to cache routes", zap.String("key", key), zap.Error(err))
			}
		}
		return routes, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]domain.Route), nil
}

// rowToRoute validates a joined route row. Rows without a city or with an unknown
// aircraft category are skipped; a missing airport code is derived from the name.
func (uc *ListingUseCase) rowToRoute(kind domain.RouteKind, row domain.RouteRow) (domain.Route, bool) {
	if row.FromName == nil || row.ToName == nil || row.FromCountryCode == nil || row.ToCountryCode == nil {
		uc.logger.Warn("Route references a missing city, skipping",
			zap.String("kind", string(kind)),
			zap.Int64("route_id", row.ID),
			zap.Int64("from_city_id", row.FromCityID),
			zap.Int64("to_city_id", row.ToCityID),
		)
		return domain.Route{}, false
	}

	category, ok := uc.catalog.AircraftCategory(row.AircraftCategory)
	if !ok {
		uc.logger.Warn("Route has unknown aircraft category, skipping",
			zap.Int64("route_id", row.ID),
			zap.String("category", row.AircraftCategory),
		)
		return domain.Route{}, false
	}

	from := uc.rowPlace(row.FromCityID, *row.FromName, *row.FromCountryCode, row.FromIATA, row.FromLat, row.FromLon, row.FromImage)
	to := uc.rowPlace(row.ToCityID, *row.ToName, *row.ToCountryCode, row.ToIATA, row.ToLat, row.ToLon, row.ToImage)

	prefix := "el"
	if kind == domain.RouteKindJetSharing {
		prefix = "js"
	}

	route := domain.Route{
		ID:               fmt.Sprintf("%s-%d", prefix, row.ID),
		Kind:             kind,
		From:             from,
		To:               to,
		AircraftCategory: category.Slug,
		IsPopular:        row.IsPopular,
	}
	if row.BasePrice != nil {
		route.BasePrice = *row.BasePrice
	}
	if row.DistanceNM != nil && *row.DistanceNM > 0 {
		route.DistanceNM = *row.DistanceNM
	} else {
		route.DistanceNM = reference.RouteDistanceNM(from, to)
	}
	if row.Duration != nil && *row.Duration > 0 {
		route.DurationMinutes = *row.Duration
	} else {
		route.DurationMinutes = reference.EstimateDuration(route.DistanceNM, category)
	}

	return route, true
}

func (uc *ListingUseCase) rowPlace(
	id int64,
	name, countryCode string,
	iata *string,
	lat, lon *float64,
	image *string,
) domain.Place {
	place := domain.Place{
		ID:          id,
		Name:        name,
		Slug:        reference.Slugify(name),
		CountryCode: countryCode,
		Continent:   domain.ContinentOf(countryCode),
	}

	known, isKnown := uc.catalog.Place(name)
	if isKnown {
		place.Country = known.Country
	}

	switch {
	case iata != nil && *iata != "":
		place.IATA = *iata
	case isKnown && known.IATA != "":
		place.IATA = known.IATA
	default:
		place.IATA = reference.DeriveCode(name)
		uc.logger.Debug("Derived airport code", zap.String("city", name), zap.String("code", place.IATA))
	}

	if lat != nil && lon != nil {
		place.Coordinates = domain.Coordinates{Lat: *lat, Lon: *lon}
	} else if isKnown {
		place.Coordinates = known.Coordinates
	}

	if image != nil {
		place.Image = *image
	}
	return place
}
