package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jet-charter-service/internal/domain"
	"github.com/jet-charter-service/internal/domain/repository"
	apperrors "github.com/jet-charter-service/internal/pkg/errors"
	"github.com/jet-charter-service/internal/reference"
	"github.com/jet-charter-service/internal/usecase/dto"
)

// CatalogUseCase - справочник самолётов и направлений
type CatalogUseCase struct {
	catalog   *reference.Catalog
	placeRepo repository.PlaceRepository
	fallback  domain.Continent
	logger    *zap.Logger
}

// NewCatalogUseCase - создание use case каталога
func NewCatalogUseCase(
	catalog *reference.Catalog,
	placeRepo repository.PlaceRepository,
	fallback domain.Continent,
	logger *zap.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		catalog:   catalog,
		placeRepo: placeRepo,
		fallback:  fallback,
		logger:    logger,
	}
}

// Aircraft возвращает классы самолётов по возрастанию вместимости
func (uc *CatalogUseCase) Aircraft() []domain.AircraftCategory {
	return uc.catalog.Aircraft()
}

// Destinations возвращает страны континента с их городами
func (uc *CatalogUseCase) Destinations(ctx context.Context, continentParam string) (*dto.DestinationsResponse, error) {
	continent := uc.fallback
	if continentParam != "" {
		c, ok := domain.ParseContinent(continentParam)
		if !ok {
			return nil, apperrors.ErrInvalidContinent.WithDetails(map[string]interface{}{"continent": continentParam})
		}
		continent = c
	}

	countries, err := uc.placeRepo.ListCountries(ctx, continent)
	if err != nil {
		return nil, apperrors.ErrDatabaseError.Wrap(fmt.Errorf("list countries: %w", err))
	}

	codes := make([]string, 0, len(countries))
	for _, c := range countries {
		codes = append(codes, c.Code)
	}

	var cities []domain.City
	if len(codes) > 0 {
		cities, err = uc.placeRepo.ListCitiesByCountries(ctx, codes)
		if err != nil {
			return nil, apperrors.ErrDatabaseError.Wrap(fmt.Errorf("list cities: %w", err))
		}
	}

	byCountry := make(map[string][]dto.DestinationCity, len(countries))
	for _, city := range cities {
		byCountry[city.CountryCode] = append(byCountry[city.CountryCode], uc.destinationCity(city))
	}

	resp := &dto.DestinationsResponse{
		Continent:    continent,
		Destinations: make([]dto.Destination, 0, len(countries)),
	}
	for _, country := range countries {
		d := dto.Destination{
			Code:   country.Code,
			Name:   country.Name,
			Cities: byCountry[country.Code],
		}
		if country.Image != nil {
			d.Image = *country.Image
		}
		if d.Cities == nil {
			d.Cities = []dto.DestinationCity{}
		}
		resp.Destinations = append(resp.Destinations, d)
	}

	return resp, nil
}

func (uc *CatalogUseCase) destinationCity(city domain.City) dto.DestinationCity {
	out := dto.DestinationCity{
		ID:   city.ID,
		Name: city.Name,
	}
	if city.Slug != nil && *city.Slug != "" {
		out.Slug = *city.Slug
	} else {
		out.Slug = reference.Slugify(city.Name)
	}

	switch {
	case city.IATA != nil && *city.IATA != "":
		out.IATA = *city.IATA
	default:
		if p, ok := uc.catalog.Place(city.Name); ok && p.IATA != "" {
			out.IATA = p.IATA
		} else {
			out.IATA = reference.DeriveCode(city.Name)
		}
	}

	if city.Image != nil {
		out.Image = *city.Image
	}
	return out
}
