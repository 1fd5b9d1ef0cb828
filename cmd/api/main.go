package main

// @title Jet Charter Service API
// @version 1.0.0
// @description Бэкенд сайта чартерных перелётов на частных самолётах.
// @description
// @description Основные возможности:
// @description - Популярные маршруты для континента посетителя (по IP)
// @description - Пустые перелёты (empty legs) и jet sharing со скидками
// @description - Каталог самолётов и направлений
// @description - Приём заявок на перелёт

// @contact.name API Support
// @contact.email support@jet-charter.example

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jet-charter-service/docs"
	"github.com/jet-charter-service/internal/config"
	httpDelivery "github.com/jet-charter-service/internal/delivery/http"
	"github.com/jet-charter-service/internal/delivery/http/handler"
	"github.com/jet-charter-service/internal/domain"
	"github.com/jet-charter-service/internal/infrastructure/ipapi"
	"github.com/jet-charter-service/internal/pkg/logger"
	"github.com/jet-charter-service/internal/reference"
	"github.com/jet-charter-service/internal/repository/cache"
	"github.com/jet-charter-service/internal/repository/postgres"
	redisRepo "github.com/jet-charter-service/internal/repository/redis"
	"github.com/jet-charter-service/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "jet-charter-api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Jet Charter Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("default_continent", cfg.Listings.DefaultContinent),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if cfg.Database.RunMigrations {
		if err := db.Migrate(ctx); err != nil {
			cancel()
			log.Fatal("Failed to apply migrations", zap.Error(err))
		}
		log.Info("Migrations applied")
	}
	cancel()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// 5. Load reference catalog (континенты, города, самолёты, маршруты)
	catalog, err := reference.Load()
	if err != nil {
		log.Fatal("Failed to load reference catalog", zap.Error(err))
	}

	fallback, ok := domain.ParseContinent(cfg.Listings.DefaultContinent)
	if !ok {
		log.Fatal("Unknown default continent", zap.String("continent", cfg.Listings.DefaultContinent))
	}

	// 6. Initialize repositories
	routeRepo := postgres.NewRouteRepository(db, log)
	placeRepo := postgres.NewPlaceRepository(db, log)
	orderRepo := postgres.NewOrderRepository(db, log)
	statsRepo := postgres.NewStatsRepository(db, log)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log, cfg.Worker.ReadTimeout)
	geoProvider := ipapi.NewClient(&cfg.Geolocation, log)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	geoUC := usecase.NewGeolocationUseCase(geoProvider, cacheRepo, cfg.Cache.GeolocationTTL, log)
	generator := usecase.NewListingGenerator(catalog, cfg.Listings.SeedWindow, cfg.Listings.Currency)
	listingUC := usecase.NewListingUseCase(
		catalog,
		routeRepo,
		cacheRepo,
		geoUC,
		generator,
		&cfg.Listings,
		cfg.Cache.RoutesTTL,
		log,
	)
	catalogUC := usecase.NewCatalogUseCase(catalog, placeRepo, fallback, log)
	orderUC := usecase.NewOrderUseCase(orderRepo, streamRepo, log)
	statsUC := usecase.NewStatsUseCase(statsRepo, cacheRepo, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	handlers := httpDelivery.Handlers{
		Listing:     handler.NewListingHandler(listingUC, log),
		Geolocation: handler.NewGeolocationHandler(geoUC, log),
		Catalog:     handler.NewCatalogHandler(catalogUC, log),
		Order:       handler.NewOrderHandler(orderUC, log),
		Stats:       handler.NewStatsHandler(statsUC, log),
	}

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(cfg, log, handlers, map[string]httpDelivery.HealthChecker{
		"postgres": db,
		"redis":    redisClient,
	})

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := db.Close(); err != nil {
		log.Error("Failed to close PostgreSQL", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
