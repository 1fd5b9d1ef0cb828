package usecase_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jet-charter-service/internal/domain"
	"github.com/jet-charter-service/internal/usecase"
)

func noSleep(context.Context, time.Duration) error { return nil }

func newMaintenance(places *MockPlaceRepository, routes *MockRouteRepository, cache *MockCacheRepository, search *MockPhotoSearchRepository) *usecase.MaintenanceUseCase {
	logger := zap.NewNop()
	selector := usecase.NewPhotoSelector(search, usecase.DefaultPhotoPolicy(), logger)
	return usecase.NewMaintenanceUseCase(places, routes, cache, selector, logger).WithSleep(noSleep)
}

func TestMaintenanceUseCase_FetchPhotos(t *testing.T) {
	ctx := context.Background()
	photo := []domain.PhotoCandidate{{URL: "https://images.example/nice.jpg", Width: 1600, Height: 1000, Likes: 10}}

	t.Run("writes winners and counts outcomes", func(t *testing.T) {
		places := &MockPlaceRepository{}
		search := &MockPhotoSearchRepository{}
		uc := newMaintenance(places, &MockRouteRepository{}, &MockCacheRepository{}, search)

		places.On("ListImageTargets", ctx, domain.TargetCities, true, 0).Return([]domain.ImageTarget{
			{Kind: domain.TargetCities, Key: "1", Name: "Nice", CountryName: strPtr("France")},
			{Kind: domain.TargetCities, Key: "2", Name: "Olbia", CountryName: strPtr("Italy")},
			{Kind: domain.TargetCities, Key: "3", Name: "Ghost"},
		}, nil)
		search.On("SearchPhotos", ctx, "Tourism in Nice, France", 10).Return(photo, nil)
		search.On("SearchPhotos", ctx, "Tourism in Olbia, Italy", 10).Return([]domain.PhotoCandidate{
			{URL: "https://images.example/olbia.jpg", Width: 1600, Height: 1000},
		}, nil)
		search.On("SearchPhotos", ctx, mock.MatchedBy(func(q string) bool {
			return q != "Tourism in Nice, France" && q != "Tourism in Olbia, Italy"
		}), 10).Return([]domain.PhotoCandidate{}, nil)
		places.On("UpdateImage", ctx, domain.TargetCities, "1", "https://images.example/nice.jpg").Return(nil)
		places.On("UpdateImage", ctx, domain.TargetCities, "2", "https://images.example/olbia.jpg").Return(errors.New("deadlock"))
		places.On("MarkPhotoChecked", ctx, domain.TargetCities, "3").Return(nil)

		stats, err := uc.FetchPhotos(ctx, usecase.FetchPhotosOptions{Target: domain.TargetCities, Delay: time.Second})

		require.NoError(t, err)
		assert.Equal(t, domain.BatchStats{Processed: 3, Updated: 1, NotFound: 1, Failed: 1}, stats)
		places.AssertExpectations(t)
	})

	t.Run("second forced run on unchanged data writes nothing", func(t *testing.T) {
		places := &MockPlaceRepository{}
		search := &MockPhotoSearchRepository{}
		uc := newMaintenance(places, &MockRouteRepository{}, &MockCacheRepository{}, search)

		places.On("ListImageTargets", ctx, domain.TargetCountries, false, 5).Return([]domain.ImageTarget{
			{Kind: domain.TargetCountries, Key: "FR", Name: "France", Image: strPtr("https://images.example/nice.jpg")},
		}, nil)
		search.On("SearchPhotos", ctx, "Tourism in France", 10).Return(photo, nil)
		places.On("MarkPhotoChecked", ctx, domain.TargetCountries, "FR").Return(nil)

		stats, err := uc.FetchPhotos(ctx, usecase.FetchPhotosOptions{Target: domain.TargetCountries, Force: true, Limit: 5})

		require.NoError(t, err)
		assert.Equal(t, domain.BatchStats{Processed: 1, Unchanged: 1}, stats)
		places.AssertNotCalled(t, "UpdateImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("records without photos do not block the next batch", func(t *testing.T) {
		places := newMemoryPlaces(
			domain.ImageTarget{Kind: domain.TargetCountries, Key: "AA", Name: "Atlantis"},
			domain.ImageTarget{Kind: domain.TargetCountries, Key: "BB", Name: "Brigadoon"},
			domain.ImageTarget{Kind: domain.TargetCountries, Key: "FR", Name: "France"},
		)
		search := &MockPhotoSearchRepository{}
		logger := zap.NewNop()
		selector := usecase.NewPhotoSelector(search, usecase.DefaultPhotoPolicy(), logger)
		uc := usecase.NewMaintenanceUseCase(places, &MockRouteRepository{}, &MockCacheRepository{}, selector, logger).WithSleep(noSleep)

		search.On("SearchPhotos", ctx, mock.MatchedBy(func(q string) bool {
			return strings.Contains(q, "France")
		}), 10).Return(photo, nil)
		search.On("SearchPhotos", ctx, mock.Anything, 10).Return([]domain.PhotoCandidate{}, nil)

		opts := usecase.FetchPhotosOptions{Target: domain.TargetCountries, Limit: 2}
		first, err := uc.FetchPhotos(ctx, opts)
		require.NoError(t, err)
		assert.Equal(t, domain.BatchStats{Processed: 2, NotFound: 2}, first)

		second, err := uc.FetchPhotos(ctx, opts)
		require.NoError(t, err)
		assert.Equal(t, 1, second.Updated)
		assert.Equal(t, "https://images.example/nice.jpg", places.image("FR"))
	})

	t.Run("unknown target", func(t *testing.T) {
		uc := newMaintenance(&MockPlaceRepository{}, &MockRouteRepository{}, &MockCacheRepository{}, &MockPhotoSearchRepository{})

		_, err := uc.FetchPhotos(ctx, usecase.FetchPhotosOptions{Target: "airports"})

		assert.Error(t, err)
	})
}

func TestGroupDuplicates(t *testing.T) {
	cities := []domain.City{
		{ID: 7, Name: "Courchevel", CountryCode: "FR"},
		{ID: 3, Name: "COURCHEVEL ", CountryCode: "FR"},
		{ID: 4, Name: "Zürich", CountryCode: "CH"},
		{ID: 9, Name: "Zurich", CountryCode: "CH"},
		{ID: 5, Name: "Nice", CountryCode: "FR"},
	}

	groups := usecase.GroupDuplicates(cities)

	require.Len(t, groups, 2)
	assert.Equal(t, "courchevel", groups[0].Key)
	assert.Equal(t, 2, groups[0].Size())
	assert.Equal(t, int64(3), groups[0].Cities[0].ID)
	assert.Equal(t, "zurich", groups[1].Key)
}

func TestMaintenanceUseCase_RemoveDuplicates(t *testing.T) {
	ctx := context.Background()
	cities := []domain.City{
		{ID: 3, Name: "Courchevel", CountryCode: "FR"},
		{ID: 7, Name: "courchevel", CountryCode: "FR", Image: strPtr("https://images.example/cvf.jpg")},
		{ID: 8, Name: "Courchevel", CountryCode: "FR"},
	}

	t.Run("dry run only reports", func(t *testing.T) {
		places := &MockPlaceRepository{}
		routes := &MockRouteRepository{}
		uc := newMaintenance(places, routes, &MockCacheRepository{}, &MockPhotoSearchRepository{})
		places.On("ListCities", ctx).Return(cities, nil)

		report, err := uc.RemoveDuplicates(ctx, false)

		require.NoError(t, err)
		assert.True(t, report.DryRun)
		assert.Len(t, report.Groups, 1)
		assert.Zero(t, report.Removed)
		routes.AssertNotCalled(t, "RepointCity", mock.Anything, mock.Anything, mock.Anything)
		places.AssertNotCalled(t, "DeleteCities", mock.Anything, mock.Anything)
	})

	t.Run("force keeps the row with an image", func(t *testing.T) {
		places := &MockPlaceRepository{}
		routes := &MockRouteRepository{}
		cache := &MockCacheRepository{}
		uc := newMaintenance(places, routes, cache, &MockPhotoSearchRepository{})

		places.On("ListCities", ctx).Return(cities, nil)
		routes.On("RepointCity", ctx, []int64{3, 8}, int64(7)).Return(int64(4), nil)
		places.On("DeleteCities", ctx, []int64{3, 8}).Return(int64(2), nil)
		cache.On("Delete", ctx, "routes:empty_leg").Return(nil)
		cache.On("Delete", ctx, "routes:jet_sharing").Return(nil)

		report, err := uc.RemoveDuplicates(ctx, true)

		require.NoError(t, err)
		assert.False(t, report.DryRun)
		assert.Equal(t, int64(2), report.Removed)
		assert.Equal(t, int64(4), report.RoutesMoved)
		assert.Equal(t, 1, report.Stats.Updated)
		routes.AssertExpectations(t)
		places.AssertExpectations(t)
		cache.AssertExpectations(t)
	})
}

func TestNormalizeImageURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  https://images.example/a.jpg ", "https://images.example/a.jpg"},
		{"//Images.Example/a.jpg", "https://images.example/a.jpg"},
		{"http://IMAGES.example/a.jpg?w=1080&utm_source=site&fbclid=x&ixid=abc", "https://images.example/a.jpg?ixid=abc&w=1080"},
		{"https://images.example/a.jpg?", "https://images.example/a.jpg"},
		{"https://images.example/img.jpg?w=800;h=600", "https://images.example/img.jpg?w=800;h=600"},
		{"https://images.example/img.jpg?w=800&sig=ab%ZZcd&gclid=1", "https://images.example/img.jpg?sig=ab%ZZcd&w=800"},
		{"https://images.example/img.jpg?token", "https://images.example/img.jpg?token"},
		{"https://images.example/img.jpg?q=a%20b&UTM_Campaign=x&&fm=jpg", "https://images.example/img.jpg?fm=jpg&q=a%20b"},
		{"", ""},
	}

	for _, tt := range tests {
		got, err := usecase.NormalizeImageURL(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)

		again, err := usecase.NormalizeImageURL(got)
		require.NoError(t, err)
		assert.Equal(t, got, again, "normalization must be idempotent")
	}

	_, err := usecase.NormalizeImageURL("not a url")
	assert.Error(t, err)
}

func TestMaintenanceUseCase_NormalizeURLs(t *testing.T) {
	ctx := context.Background()
	places := &MockPlaceRepository{}
	uc := newMaintenance(places, &MockRouteRepository{}, &MockCacheRepository{}, &MockPhotoSearchRepository{})

	places.On("ListImageTargets", ctx, domain.TargetCountries, false, 0).Return([]domain.ImageTarget{
		{Kind: domain.TargetCountries, Key: "FR", Name: "France", Image: strPtr("https://images.example/fr.jpg")},
	}, nil)
	places.On("ListImageTargets", ctx, domain.TargetCities, false, 0).Return([]domain.ImageTarget{
		{Kind: domain.TargetCities, Key: "1", Name: "Nice", Image: strPtr("http://images.example/nice.jpg?utm_medium=x")},
		{Kind: domain.TargetCities, Key: "2", Name: "Olbia"},
	}, nil)
	places.On("UpdateImage", ctx, domain.TargetCities, "1", "https://images.example/nice.jpg").Return(nil)

	stats, err := uc.NormalizeURLs(ctx, true)

	require.NoError(t, err)
	assert.Equal(t, domain.BatchStats{Processed: 2, Updated: 1, Unchanged: 1}, stats)
	places.AssertExpectations(t)
}

// memoryPlaces хранит страны в памяти и выдаёт ImageTarget в том же порядке, что postgres:
// сначала непроверенные, затем по времени последней проверки
type memoryPlaces struct {
	MockPlaceRepository
	targets []domain.ImageTarget
	checked map[string]int
	tick    int
}

func newMemoryPlaces(targets ...domain.ImageTarget) *memoryPlaces {
	return &memoryPlaces{targets: targets, checked: make(map[string]int)}
}

func (m *memoryPlaces) ListImageTargets(_ context.Context, kind string, onlyMissing bool, limit int) ([]domain.ImageTarget, error) {
	var out []domain.ImageTarget
	for _, t := range m.targets {
		if t.Kind != kind || (onlyMissing && t.CurrentImage() != "") {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return m.checked[out[i].Key] < m.checked[out[j].Key]
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memoryPlaces) UpdateImage(_ context.Context, _, key, url string) error {
	for i := range m.targets {
		if m.targets[i].Key == key {
			m.targets[i].Image = &url
			m.touch(key)
			return nil
		}
	}
	return errors.New("not found")
}

func (m *memoryPlaces) MarkPhotoChecked(_ context.Context, _, key string) error {
	m.touch(key)
	return nil
}

func (m *memoryPlaces) touch(key string) {
	m.tick++
	m.checked[key] = m.tick
}

func (m *memoryPlaces) image(key string) string {
	for _, t := range m.targets {
		if t.Key == key {
			return t.CurrentImage()
		}
	}
	return ""
}
