package usecase

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jet-charter-service/internal/domain"
	"github.com/jet-charter-service/internal/domain/repository"
	"github.com/jet-charter-service/internal/reference"
	"github.com/jet-charter-service/internal/usecase/dto"
)

// Query parameters dropped by NormalizeImageURL besides utm_*.
var trackingParams = map[string]struct{}{
	"fbclid": {},
	"gclid":  {},
}

// FetchPhotosOptions - параметры пакетной загрузки фотографий
type FetchPhotosOptions struct {
	Target string
	Force  bool
	Limit  int
	Delay  time.Duration
}

// MaintenanceUseCase - операции обслуживания каталога городов и стран.
// Записи обрабатываются последовательно, ошибка одной записи не прерывает пакет.
type MaintenanceUseCase struct {
	placeRepo repository.PlaceRepository
	routeRepo repository.RouteRepository
	cacheRepo repository.CacheRepository
	selector  *PhotoSelector
	sleep     func(ctx context.Context, d time.Duration) error
	logger    *zap.Logger
}

// NewMaintenanceUseCase - создание use case обслуживания
func NewMaintenanceUseCase(
	placeRepo repository.PlaceRepository,
	routeRepo repository.RouteRepository,
	cacheRepo repository.CacheRepository,
	selector *PhotoSelector,
	logger *zap.Logger,
) *MaintenanceUseCase {
	return &MaintenanceUseCase{
		placeRepo: placeRepo,
		routeRepo: routeRepo,
		cacheRepo: cacheRepo,
		selector:  selector,
		sleep:     sleepContext,
		logger:    logger,
	}
}

// WithSleep подменяет паузу между запросами (тесты)
func (uc *MaintenanceUseCase) WithSleep(sleep func(ctx context.Context, d time.Duration) error) *MaintenanceUseCase {
	uc.sleep = sleep
	return uc
}

// FetchPhotos подбирает фотографии для записей без изображения (или для всех при Force)
func (uc *MaintenanceUseCase) FetchPhotos(ctx context.Context, opts FetchPhotosOptions) (domain.BatchStats, error) {
	var stats domain.BatchStats

	if opts.Target != domain.TargetCities && opts.Target != domain.TargetCountries {
		return stats, fmt.Errorf("unknown photo target %q", opts.Target)
	}

	targets, err := uc.placeRepo.ListImageTargets(ctx, opts.Target, !opts.Force, opts.Limit)
	if err != nil {
		return stats, fmt.Errorf("list %s: %w", opts.Target, err)
	}

	uc.logger.Info("Fetching photos",
		zap.String("target", opts.Target),
		zap.Int("records", len(targets)),
		zap.Bool("force", opts.Force),
	)

	for i, target := range targets {
		if i > 0 && opts.Delay > 0 {
			if err := uc.sleep(ctx, opts.Delay); err != nil {
				return stats, err
			}
		}

		stats.Processed++

		photo := uc.selector.SelectPhoto(ctx, target.SearchName())
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if photo == nil {
			stats.NotFound++
			uc.logger.Info("No photo found", zap.String("kind", target.Kind), zap.String("name", target.Name))
			uc.markChecked(ctx, target)
			continue
		}

		photoURL, err := NormalizeImageURL(photo.URL)
		if err != nil {
			photoURL = photo.URL
		}

		if photoURL == target.CurrentImage() {
			stats.Unchanged++
			uc.markChecked(ctx, target)
			continue
		}

		if err := uc.placeRepo.UpdateImage(ctx, target.Kind, target.Key, photoURL); err != nil {
			stats.Failed++
			uc.logger.Error("Failed to store photo",
				zap.String("kind", target.Kind),
				zap.String("key", target.Key),
				zap.Error(err),
			)
			continue
		}

		stats.Updated++
		uc.logger.Info("Photo stored", zap.String("name", target.Name), zap.String("url", photoURL))
	}

	return stats, nil
}

// markChecked сдвигает запись в конец очереди ListImageTargets
func (uc *MaintenanceUseCase) markChecked(ctx context.Context, target domain.ImageTarget) {
	if err := uc.placeRepo.MarkPhotoChecked(ctx, target.Kind, target.Key); err != nil {
		uc.logger.Warn("Failed to mark photo attempt",
			zap.String("kind", target.Kind),
			zap.String("key", target.Key),
			zap.Error(err),
		)
	}
}

// FindDuplicates группирует города с совпадающим нормализованным названием
func (uc *MaintenanceUseCase) FindDuplicates(ctx context.Context) ([]domain.DuplicateGroup, error) {
	cities, err := uc.placeRepo.ListCities(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}
	return GroupDuplicates(cities), nil
}

// GroupDuplicates returns groups of two or more cities sharing a normalized name, sorted by key.
func GroupDuplicates(cities []domain.City) []domain.DuplicateGroup {
	byKey := make(map[string][]domain.City)
	for _, c := range cities {
		key := reference.NormalizeName(c.Name)
		if key == "" {
			continue
		}
		byKey[key] = append(byKey[key], c)
	}

	groups := make([]domain.DuplicateGroup, 0)
	for key, members := range byKey {
		if len(members) < 2 {
			continue
		}
		sort.Slice(members, func(i, j int) bool { return members[i].ID < members[j].ID })
		groups = append(groups, domain.DuplicateGroup{Key: key, Cities: members})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })

	return groups
}

// RemoveDuplicates оставляет по одному городу в группе и переносит на него маршруты.
// Без force только отчёт.
func (uc *MaintenanceUseCase) RemoveDuplicates(ctx context.Context, force bool) (*dto.DuplicatesReport, error) {
	groups, err := uc.FindDuplicates(ctx)
	if err != nil {
		return nil, err
	}

	report := &dto.DuplicatesReport{
		Groups: groups,
		DryRun: !force,
	}

	for _, group := range groups {
		report.Stats.Processed++

		keeper, losers := pickKeeper(group)
		if !force {
			uc.logger.Info("Would merge duplicates",
				zap.String("key", group.Key),
				zap.Int64("keep", keeper.ID),
				zap.Int64s("remove", losers),
			)
			report.Stats.Unchanged++
			continue
		}

		moved, err := uc.routeRepo.RepointCity(ctx, losers, keeper.ID)
		if err != nil {
			report.Stats.Failed++
			uc.logger.Error("Failed to repoint routes", zap.String("key", group.Key), zap.Error(err))
			continue
		}
		report.RoutesMoved += moved

		removed, err := uc.placeRepo.DeleteCities(ctx, losers)
		if err != nil {
			report.Stats.Failed++
			uc.logger.Error("Failed to delete duplicate cities", zap.String("key", group.Key), zap.Error(err))
			continue
		}
		report.Removed += removed
		report.Stats.Updated++

		uc.logger.Info("Duplicates merged",
			zap.String("key", group.Key),
			zap.Int64("keep", keeper.ID),
			zap.Int64("removed", removed),
			zap.Int64("routes_moved", moved),
		)
	}

	if force && report.Stats.Updated > 0 {
		invalidateRoutesCache(ctx, uc.cacheRepo, uc.logger)
	}

	return report, nil
}

// pickKeeper prefers a row that already has an image, then the lowest id.
func pickKeeper(group domain.DuplicateGroup) (domain.City, []int64) {
	keeperIdx := 0
	for i, c := range group.Cities {
		k := group.Cities[keeperIdx]
		hasImage := c.Image != nil && *c.Image != ""
		keeperHasImage := k.Image != nil && *k.Image != ""
		if hasImage && !keeperHasImage || hasImage == keeperHasImage && c.ID < k.ID {
			keeperIdx = i
		}
	}

	losers := make([]int64, 0, len(group.Cities)-1)
	for i, c := range group.Cities {
		if i != keeperIdx {
			losers = append(losers, c.ID)
		}
	}
	return group.Cities[keeperIdx], losers
}

// NormalizeURLs приводит сохранённые ссылки на изображения к каноническому виду.
// Без force только считает, что изменилось бы.
func (uc *MaintenanceUseCase) NormalizeURLs(ctx context.Context, force bool) (domain.BatchStats, error) {
	var total domain.BatchStats

	for _, kind := range []string{domain.TargetCountries, domain.TargetCities} {
		targets, err := uc.placeRepo.ListImageTargets(ctx, kind, false, 0)
		if err != nil {
			return total, fmt.Errorf("list %s: %w", kind, err)
		}

		var stats domain.BatchStats
		for _, target := range targets {
			current := target.CurrentImage()
			if current == "" {
				continue
			}
			stats.Processed++

			normalized, err := NormalizeImageURL(current)
			if err != nil {
				stats.Failed++
				uc.logger.Warn("Malformed image URL", zap.String("key", target.Key), zap.String("url", current), zap.Error(err))
				continue
			}
			if normalized == current {
				stats.Unchanged++
				continue
			}

			if !force {
				stats.Updated++
				uc.logger.Info("Would normalize image URL", zap.String("key", target.Key), zap.String("from", current), zap.String("to", normalized))
				continue
			}

			if err := uc.placeRepo.UpdateImage(ctx, kind, target.Key, normalized); err != nil {
				stats.Failed++
				uc.logger.Error("Failed to update image URL", zap.String("key", target.Key), zap.Error(err))
				continue
			}
			stats.Updated++
		}

		uc.logger.Info("Image URLs normalized", zap.String("kind", kind), zap.Any("stats", stats), zap.Bool("dry_run", !force))
		total.Add(stats)
	}

	return total, nil
}

// NormalizeImageURL canonicalizes an image URL. Applying it twice gives the same result.
func NormalizeImageURL(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", nil
	}
	if strings.HasPrefix(s, "//") {
		s = "https:" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return "", fmt.Errorf("parse image url: %w", err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("image url %q has no host", raw)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	if u.Scheme == "http" {
		u.Scheme = "https"
	}
	u.Host = strings.ToLower(u.Host)

	u.RawQuery = stripTrackingParams(u.RawQuery)
	u.ForceQuery = false

	return u.String(), nil
}

// stripTrackingParams убирает utm_*, fbclid и gclid из сырой строки запроса.
// Остальные пары сохраняются как есть (без перекодирования) и сортируются по ключу.
func stripTrackingParams(rawQuery string) string {
	if rawQuery == "" {
		return ""
	}

	kept := make([]string, 0, strings.Count(rawQuery, "&")+1)
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		key := strings.ToLower(queryKey(pair))
		if _, tracking := trackingParams[key]; tracking || strings.HasPrefix(key, "utm_") {
			continue
		}
		kept = append(kept, pair)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return queryKey(kept[i]) < queryKey(kept[j])
	})
	return strings.Join(kept, "&")
}

// queryKey - ключ пары "k=v"; неразбираемое экранирование оставляем как есть
func queryKey(pair string) string {
	key, _, _ := strings.Cut(pair, "=")
	if unescaped, err := url.QueryUnescape(key); err == nil {
		return unescaped
	}
	return key
}

func invalidateRoutesCache(ctx context.Context, cacheRepo repository.CacheRepository, logger *zap.Logger) {
	for _, kind := range []domain.RouteKind{domain.RouteKindEmptyLeg, domain.RouteKindJetSharing} {
		if err := cacheRepo.Delete(ctx, routesCacheKeyPrefix+string(kind)); err != nil {
			logger.Warn("Failed to invalidate routes cache", zap.String("kind", string(kind)), zap.Error(err))
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
