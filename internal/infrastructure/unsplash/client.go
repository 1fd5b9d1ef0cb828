package unsplash

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"

	"github.com/jet-charter-service/internal/config"
	"github.com/jet-charter-service/internal/domain"
	"github.com/jet-charter-service/internal/domain/repository"
)

// maxPerPage - ограничение API на размер страницы
const maxPerPage = 30

type searchResponse struct {
	Total   int     `json:"total"`
	Results []photo `json:"results"`
}

type photo struct {
	ID             string `json:"id"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	Likes          int    `json:"likes"`
	Description    string `json:"description"`
	AltDescription string `json:"alt_description"`
	URLs           struct {
		Raw     string `json:"raw"`
		Full    string `json:"full"`
		Regular string `json:"regular"`
	} `json:"urls"`
}

type client struct {
	httpClient *retryablehttp.Client
	baseURL    string
	accessKey  string
	logger     *zap.Logger
}

// NewClient создает клиент поиска фотографий с ограниченным числом повторов на 429/5xx
func NewClient(cfg *config.PhotosConfig, logger *zap.Logger) repository.PhotoSearchRepository {
	rc := retryablehttp.NewClient()
	rc.RetryMax = cfg.RetryMax
	rc.RetryWaitMin = retryWaitMin
	rc.RetryWaitMax = retryWaitMax
	rc.CheckRetry = retryPolicy
	rc.HTTPClient.Timeout = cfg.Timeout
	rc.Logger = leveledLogger{logger.Sugar()}

	return &client{
		httpClient: rc,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		accessKey:  cfg.AccessKey,
		logger:     logger,
	}
}

// SearchPhotos ищет горизонтальные фотографии; порядок результатов сохраняется как в API
func (c *client) SearchPhotos(ctx context.Context, query string, perPage int) ([]domain.PhotoCandidate, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query cannot be empty")
	}
	if perPage <= 0 || perPage > maxPerPage {
		perPage = maxPerPage
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("orientation", "landscape")
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("content_filter", "high")

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search/photos?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept-Version", "v1")
	if c.accessKey != "" {
		req.Header.Set("Authorization", "Client-ID "+c.accessKey)
	}

	c.logger.Debug("Searching photos", zap.String("query", query), zap.Int("per_page", perPage))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Photo search request failed", zap.String("query", query), zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.logger.Error("Photo search API returned error",
			zap.String("query", query),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("photo search API error: status %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	candidates := make([]domain.PhotoCandidate, 0, len(payload.Results))
	for _, p := range payload.Results {
		u := p.URLs.Regular
		if u == "" {
			u = p.URLs.Full
		}
		if u == "" {
			continue
		}
		desc := p.Description
		if desc == "" {
			desc = p.AltDescription
		}
		candidates = append(candidates, domain.PhotoCandidate{
			URL:         u,
			Width:       p.Width,
			Height:      p.Height,
			Likes:       p.Likes,
			Description: desc,
		})
	}

	return candidates, nil
}
