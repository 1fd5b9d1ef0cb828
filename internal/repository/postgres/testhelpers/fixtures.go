package testhelpers

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// CityFixture describes a city row to insert
type CityFixture struct {
	Name        string
	CountryCode string
	IATA        string
	Lat, Lon    float64
	Image       string
}

// InsertCountry inserts a country row
func InsertCountry(ctx context.Context, db *sqlx.DB, code, name, continent, image string) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO countries (code, name, continent, image) VALUES ($1, $2, $3, NULLIF($4, ''))`,
		code, name, continent, image)
	if err != nil {
		return fmt.Errorf("insert country %s: %w", code, err)
	}
	return nil
}

// InsertCity inserts a city row and returns its id
func InsertCity(ctx context.Context, db *sqlx.DB, c CityFixture) (int64, error) {
	var id int64
	err := db.QueryRowContext(ctx, `
		INSERT INTO cities (name, country_code, iata, lat, lon, image)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, NULLIF($6, ''))
		RETURNING id`,
		c.Name, c.CountryCode, c.IATA, c.Lat, c.Lon, c.Image,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert city %s: %w", c.Name, err)
	}
	return id, nil
}

// InsertRoute inserts a route into empty_leg_routes or jet_sharing_routes and returns its id
func InsertRoute(ctx context.Context, db *sqlx.DB, table string, fromID, toID int64, category string, basePrice float64, popular bool) (int64, error) {
	var id int64
	query := fmt.Sprintf(`
		INSERT INTO %s (from_city_id, to_city_id, aircraft_category, base_price, is_popular)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`, table)
	if err := db.QueryRowContext(ctx, query, fromID, toID, category, basePrice, popular).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert route into %s: %w", table, err)
	}
	return id, nil
}
