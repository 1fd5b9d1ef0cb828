package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jet-charter-service/internal/domain"
	"github.com/jet-charter-service/internal/domain/repository"
)

// PhotoPolicy - пороги отбора фотографий для городов и стран
type PhotoPolicy struct {
	// QueryTemplates перебираются по порядку, пока не найдётся подходящий кадр
	QueryTemplates []string
	// BannedKeywords отсекают флаги, гербы и карты
	BannedKeywords []string
	MinAspect      float64
	MaxAspect      float64
	PerPage        int
}

// DefaultPhotoPolicy - политика по умолчанию
func DefaultPhotoPolicy() PhotoPolicy {
	return PhotoPolicy{
		QueryTemplates: []string{
			"Tourism in %s",
			"%s",
			"Geography of %s",
			"Culture of %s",
			"%s landmarks",
			"%s skyline",
		},
		BannedKeywords: []string{"flag", "coat_of_arms", "emblem", "seal", "logo", "map_of", "location_map"},
		MinAspect:      1.3,
		MaxAspect:      2.2,
		PerPage:        10,
	}
}

// Accept reports whether the candidate passes every filter.
func (p PhotoPolicy) Accept(c domain.PhotoCandidate) bool {
	if c.URL == "" {
		return false
	}
	url := strings.ToLower(c.URL)
	for _, kw := range p.BannedKeywords {
		if strings.Contains(url, kw) {
			return false
		}
	}
	ratio := c.AspectRatio()
	return ratio >= p.MinAspect && ratio <= p.MaxAspect
}

// Pick returns the accepted candidate with most likes; the first one wins a tie.
func (p PhotoPolicy) Pick(candidates []domain.PhotoCandidate) *domain.PhotoCandidate {
	var best *domain.PhotoCandidate
	for i := range candidates {
		c := candidates[i]
		if !p.Accept(c) {
			continue
		}
		if best == nil || c.Likes > best.Likes {
			best = &c
		}
	}
	return best
}

// Queries returns the search queries for a place in fallback order.
func (p PhotoPolicy) Queries(placeName string) []string {
	out := make([]string, 0, len(p.QueryTemplates))
	for _, tmpl := range p.QueryTemplates {
		out = append(out, fmt.Sprintf(tmpl, placeName))
	}
	return out
}

// PhotoSelector подбирает фотографию для места через внешний поиск
type PhotoSelector struct {
	search repository.PhotoSearchRepository
	policy PhotoPolicy
	logger *zap.Logger
}

// NewPhotoSelector - создание селектора фотографий
func NewPhotoSelector(search repository.PhotoSearchRepository, policy PhotoPolicy, logger *zap.Logger) *PhotoSelector {
	return &PhotoSelector{
		search: search,
		policy: policy,
		logger: logger,
	}
}

// SelectPhoto возвращает лучший кадр или nil. Ошибка запроса переводит к следующему шаблону.
func (s *PhotoSelector) SelectPhoto(ctx context.Context, placeName string) *domain.PhotoCandidate {
	for _, query := range s.policy.Queries(placeName) {
		if ctx.Err() != nil {
			return nil
		}

		candidates, err := s.search.SearchPhotos(ctx, query, s.policy.PerPage)
		if err != nil {
			s.logger.Warn("Photo search failed", zap.String("query", query), zap.Error(err))
			continue
		}

		if best := s.policy.Pick(candidates); best != nil {
			s.logger.Debug("Photo selected",
				zap.String("place", placeName),
				zap.String("query", query),
				zap.Int("likes", best.Likes),
			)
			return best
		}

		s.logger.Debug("No acceptable photo for query", zap.String("query", query), zap.Int("candidates", len(candidates)))
	}

	return nil
}
