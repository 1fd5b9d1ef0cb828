package photos

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/jet-charter-service/internal/domain"
	"github.com/jet-charter-service/internal/usecase"
	"github.com/jet-charter-service/internal/worker"
)

// PhotoFetcher - пакетная загрузка фотографий
type PhotoFetcher interface {
	FetchPhotos(ctx context.Context, opts usecase.FetchPhotosOptions) (domain.BatchStats, error)
}

// StatsRefresher обновляет закешированную статистику после загрузки
type StatsRefresher interface {
	RefreshStatistics(ctx context.Context) (*domain.Statistics, error)
}

// BackfillWorker по расписанию подбирает фото для стран и городов без изображения
type BackfillWorker struct {
	*worker.BaseWorker
	fetcher   PhotoFetcher
	stats     StatsRefresher
	schedule  string
	batchSize int
	delay     time.Duration
}

// NewBackfillWorker создает новый BackfillWorker
func NewBackfillWorker(
	fetcher PhotoFetcher,
	stats StatsRefresher,
	schedule string,
	batchSize int,
	delay time.Duration,
	logger *zap.Logger,
) *BackfillWorker {
	return &BackfillWorker{
		BaseWorker: worker.NewBaseWorker("photo-backfill", logger),
		fetcher:    fetcher,
		stats:      stats,
		schedule:   schedule,
		batchSize:  batchSize,
		delay:      delay,
	}
}

// Start регистрирует задачу в cron и ждёт остановки.
// Запуски не перекрываются: следующий пропускается, пока идёт текущий.
func (w *BackfillWorker) Start(ctx context.Context) error {
	logger := w.Logger()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	cl := cronLogger{logger: logger}
	c := cron.New(
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)

	if _, err := c.AddFunc(w.schedule, func() { w.RunOnce(runCtx) }); err != nil {
		return fmt.Errorf("invalid photo schedule %q: %w", w.schedule, err)
	}

	logger.Info("Photo backfill scheduled", zap.String("schedule", w.schedule), zap.Int("batch_size", w.batchSize))
	c.Start()

	var err error
	select {
	case <-w.StopChan():
	case <-ctx.Done():
		err = ctx.Err()
	}

	// отменяем текущий проход и ждём его завершения
	cancel()
	<-c.Stop().Done()

	return err
}

// RunOnce - один проход: сначала страны, потом города
func (w *BackfillWorker) RunOnce(ctx context.Context) domain.BatchStats {
	logger := w.Logger()
	var total domain.BatchStats

	for _, target := range []string{domain.TargetCountries, domain.TargetCities} {
		stats, err := w.fetcher.FetchPhotos(ctx, usecase.FetchPhotosOptions{
			Target: target,
			Limit:  w.batchSize,
			Delay:  w.delay,
		})
		total.Add(stats)
		if err != nil {
			logger.Error("Photo backfill failed", zap.String("target", target), zap.Error(err))
			if ctx.Err() != nil {
				return total
			}
			continue
		}
		logger.Info("Photo backfill finished",
			zap.String("target", target),
			zap.Int("processed", stats.Processed),
			zap.Int("updated", stats.Updated),
			zap.Int("unchanged", stats.Unchanged),
			zap.Int("not_found", stats.NotFound),
			zap.Int("failed", stats.Failed),
		)
	}

	if total.Updated > 0 && w.stats != nil {
		if _, err := w.stats.RefreshStatistics(ctx); err != nil {
			logger.Warn("Failed to refresh statistics", zap.Error(err))
		}
	}

	return total
}

// cronLogger adapts zap to cron.Logger.
type cronLogger struct {
	logger *zap.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Sugar().Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Sugar().Errorw(msg, append(keysAndValues, "error", err)...)
}
