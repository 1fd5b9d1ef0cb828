package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jet-charter-service/internal/config"
	"github.com/jet-charter-service/internal/infrastructure/unsplash"
	"github.com/jet-charter-service/internal/pkg/logger"
	"github.com/jet-charter-service/internal/repository/cache"
	"github.com/jet-charter-service/internal/repository/postgres"
	redisRepo "github.com/jet-charter-service/internal/repository/redis"
	"github.com/jet-charter-service/internal/usecase"
	"github.com/jet-charter-service/internal/worker"
	"github.com/jet-charter-service/internal/worker/orders"
	"github.com/jet-charter-service/internal/worker/photos"
	"go.uber.org/zap"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "jet-charter-worker")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Jet Charter Worker")
	log.Info("Configuration loaded",
		zap.String("orders_group", cfg.Worker.OrdersGroup),
		zap.Int("max_retries", cfg.Worker.MaxRetries),
		zap.String("photo_schedule", cfg.Worker.PhotoSchedule),
		zap.Int("photo_batch_size", cfg.Worker.PhotoBatchSize))

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Initialize repositories
	routeRepo := postgres.NewRouteRepository(db, log)
	placeRepo := postgres.NewPlaceRepository(db, log)
	orderRepo := postgres.NewOrderRepository(db, log)
	statsRepo := postgres.NewStatsRepository(db, log)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log, cfg.Worker.ReadTimeout)
	photoSearch := unsplash.NewClient(&cfg.Photos, log)

	// 6. Initialize use cases
	policy := usecase.DefaultPhotoPolicy()
	policy.PerPage = cfg.Photos.PerPage
	selector := usecase.NewPhotoSelector(photoSearch, policy, log)

	maintenanceUC := usecase.NewMaintenanceUseCase(placeRepo, routeRepo, cacheRepo, selector, log)
	orderUC := usecase.NewOrderUseCase(orderRepo, streamRepo, log)
	statsUC := usecase.NewStatsUseCase(statsRepo, cacheRepo, log)

	// 7. Initialize workers
	notificationWorker := orders.NewNotificationWorker(
		streamRepo,
		orderUC,
		cfg.Worker.OrdersGroup,
		cfg.Worker.MaxRetries,
		log,
	)

	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(notificationWorker)

	// без ключа Unsplash бэкфилл фото не запускаем
	if cfg.Photos.AccessKey != "" {
		backfillWorker := photos.NewBackfillWorker(
			maintenanceUC,
			statsUC,
			cfg.Worker.PhotoSchedule,
			cfg.Worker.PhotoBatchSize,
			cfg.Photos.Delay,
			log,
		)
		workerManager.Register(backfillWorker)
	} else {
		log.Warn("PHOTOS_ACCESS_KEY is empty, photo backfill disabled")
	}

	// 8. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stopCancel()

	if err := workerManager.Stop(stopCtx); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete", zap.Any("workers", workerManager.Statuses()))
}
