package photos_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jet-charter-service/internal/domain"
	"github.com/jet-charter-service/internal/usecase"
	"github.com/jet-charter-service/internal/worker/photos"
)

type MockPhotoFetcher struct {
	mock.Mock
}

func (m *MockPhotoFetcher) FetchPhotos(ctx context.Context, opts usecase.FetchPhotosOptions) (domain.BatchStats, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(domain.BatchStats), args.Error(1)
}

type MockStatsRefresher struct {
	mock.Mock
}

func (m *MockStatsRefresher) RefreshStatistics(ctx context.Context) (*domain.Statistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statistics), args.Error(1)
}

func TestBackfillWorker_RunOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("countries then cities, stats refreshed after updates", func(t *testing.T) {
		fetcher := &MockPhotoFetcher{}
		stats := &MockStatsRefresher{}
		w := photos.NewBackfillWorker(fetcher, stats, "@every 1h", 10, time.Second, zap.NewNop())

		fetcher.On("FetchPhotos", ctx, usecase.FetchPhotosOptions{Target: domain.TargetCountries, Limit: 10, Delay: time.Second}).
			Return(domain.BatchStats{Processed: 2, Updated: 1, NotFound: 1}, nil).Once()
		fetcher.On("FetchPhotos", ctx, usecase.FetchPhotosOptions{Target: domain.TargetCities, Limit: 10, Delay: time.Second}).
			Return(domain.BatchStats{Processed: 3, Unchanged: 3}, nil).Once()
		stats.On("RefreshStatistics", ctx).Return(&domain.Statistics{}, nil)

		total := w.RunOnce(ctx)

		assert.Equal(t, domain.BatchStats{Processed: 5, Updated: 1, Unchanged: 3, NotFound: 1}, total)
		fetcher.AssertExpectations(t)
		stats.AssertExpectations(t)
	})

	t.Run("failure on countries still processes cities", func(t *testing.T) {
		fetcher := &MockPhotoFetcher{}
		stats := &MockStatsRefresher{}
		w := photos.NewBackfillWorker(fetcher, stats, "@every 1h", 5, 0, zap.NewNop())

		fetcher.On("FetchPhotos", ctx, mock.MatchedBy(func(o usecase.FetchPhotosOptions) bool {
			return o.Target == domain.TargetCountries
		})).Return(domain.BatchStats{}, errors.New("db down")).Once()
		fetcher.On("FetchPhotos", ctx, mock.MatchedBy(func(o usecase.FetchPhotosOptions) bool {
			return o.Target == domain.TargetCities
		})).Return(domain.BatchStats{Processed: 1, NotFound: 1}, nil).Once()

		total := w.RunOnce(ctx)

		assert.Equal(t, 1, total.NotFound)
		stats.AssertNotCalled(t, "RefreshStatistics", mock.Anything)
	})
}

func TestBackfillWorker_InvalidSchedule(t *testing.T) {
	w := photos.NewBackfillWorker(&MockPhotoFetcher{}, nil, "every tuesday", 5, 0, zap.NewNop())

	assert.Error(t, w.Start(context.Background()))
}

func TestBackfillWorker_StopsOnStop(t *testing.T) {
	w := photos.NewBackfillWorker(&MockPhotoFetcher{}, nil, "@every 1h", 5, 0, zap.NewNop())

	done := make(chan error, 1)
	go func() { done <- w.Start(context.Background()) }()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, w.Stop())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
}
