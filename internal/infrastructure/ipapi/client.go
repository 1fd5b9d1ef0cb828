package ipapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/currency"

	"github.com/jet-charter-service/internal/config"
	"github.com/jet-charter-service/internal/domain"
	"github.com/jet-charter-service/internal/domain/repository"
)

// response - схема ответа ipapi.co (используемые поля)
type response struct {
	IP          string  `json:"ip"`
	City        string  `json:"city"`
	Region      string  `json:"region"`
	CountryName string  `json:"country_name"`
	CountryCode string  `json:"country_code"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Timezone    string  `json:"timezone"`
	Currency    string  `json:"currency"`

	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

type client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewClient создает клиент IP-геолокации. Повторов нет: запрос best-effort и чувствителен к задержке.
func NewClient(cfg *config.GeolocationConfig, logger *zap.Logger) repository.GeolocationProvider {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		logger:  logger,
	}
}

// Lookup возвращает геолокацию адреса; пустой ip - адрес вызывающего
func (c *client) Lookup(ctx context.Context, ip string) (*domain.Geolocation, error) {
	endpoint := c.baseURL + "/json/"
	if ip != "" {
		endpoint = fmt.Sprintf("%s/%s/json/", c.baseURL, url.PathEscape(ip))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "jet-charter-service/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Geolocation request failed", zap.String("ip", ip), zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("Geolocation API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("geolocation API error: status %d", resp.StatusCode)
	}

	var payload response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.Warn("Failed to decode geolocation response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if payload.Error {
		c.logger.Warn("Geolocation API reported error",
			zap.String("ip", ip),
			zap.String("reason", payload.Reason))
		return nil, fmt.Errorf("geolocation API reported error: %s", payload.Reason)
	}

	if payload.CountryCode == "" {
		return nil, fmt.Errorf("geolocation API returned no country for %q", ip)
	}

	return toDomain(payload), nil
}

func toDomain(p response) *domain.Geolocation {
	geo := &domain.Geolocation{
		IP:          p.IP,
		City:        p.City,
		Region:      p.Region,
		Country:     p.CountryName,
		CountryCode: strings.ToUpper(p.CountryCode),
		Coordinates: domain.Coordinates{Lat: p.Latitude, Lon: p.Longitude},
		Timezone:    p.Timezone,
	}
	// Keep only valid ISO 4217 codes.
	if unit, err := currency.ParseISO(p.Currency); err == nil {
		geo.Currency = unit.String()
	}
	return geo
}
