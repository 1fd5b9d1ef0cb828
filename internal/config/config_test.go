package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "Europe", cfg.Listings.DefaultContinent)
	assert.Equal(t, time.Hour, cfg.Listings.SeedWindow)
	assert.Equal(t, time.Hour, cfg.Cache.GeolocationTTL)
	assert.Equal(t, 2*time.Second, cfg.Geolocation.Timeout)
	assert.Equal(t, 10, cfg.Photos.PerPage)
	assert.Equal(t, "EUR", cfg.Listings.Currency)
	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddr())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("API_PORT", "9090")
	t.Setenv("LISTINGS_COUNT", "6")
	t.Setenv("GEOLOCATION_BASE_URL", "http://geo.local/")
	t.Setenv("LISTINGS_CURRENCY", "usd")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 6, cfg.Listings.Count)
	assert.Equal(t, "http://geo.local", cfg.Geolocation.BaseURL)
	assert.Equal(t, "USD", cfg.Listings.Currency)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PHOTOS_PER_PAGE", "100")

	_, err := Load()
	assert.Error(t, err)
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: 5432, User: "u", Password: "p", DBName: "jets", SSLMode: "disable",
	}}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=jets sslmode=disable", cfg.GetDatabaseDSN())
}
