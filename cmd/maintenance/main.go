package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/jet-charter-service/internal/config"
	"github.com/jet-charter-service/internal/domain"
	"github.com/jet-charter-service/internal/infrastructure/unsplash"
	"github.com/jet-charter-service/internal/pkg/logger"
	"github.com/jet-charter-service/internal/repository/cache"
	"github.com/jet-charter-service/internal/repository/postgres"
	"github.com/jet-charter-service/internal/usecase"
)

const (
	cmdFetchPhotos      = "fetch-photos"
	cmdFindDuplicates   = "find-duplicates"
	cmdRemoveDuplicates = "remove-duplicates"
	cmdNormalizeURLs    = "normalize-urls"
)

// command - разобранная команда и её флаги
type command struct {
	name   string
	target string
	force  bool
	limit  int
	delay  time.Duration
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: maintenance <command> [flags]

Commands:
  %s       --target cities|countries [--force] [--limit N] [--delay 1.5s]
  %s
  %s  [--force]
  %s     [--force]

Без --force команды remove-duplicates и normalize-urls работают в режиме dry-run.
`, cmdFetchPhotos, cmdFindDuplicates, cmdRemoveDuplicates, cmdNormalizeURLs)
}

// parseCommand разбирает аргументы командной строки (без имени программы)
func parseCommand(args []string, defaultDelay time.Duration) (command, error) {
	if len(args) == 0 {
		return command{}, errors.New("command is required")
	}

	cmd := command{name: args[0]}
	fs := pflag.NewFlagSet(cmd.name, pflag.ContinueOnError)

	switch cmd.name {
	case cmdFetchPhotos:
		fs.StringVar(&cmd.target, "target", domain.TargetCities, "cities or countries")
		fs.IntVar(&cmd.limit, "limit", 0, "max records to process (0 = all)")
		fs.DurationVar(&cmd.delay, "delay", defaultDelay, "pause between provider requests")
		fs.BoolVar(&cmd.force, "force", false, "re-fetch photos for records that already have one")
	case cmdRemoveDuplicates, cmdNormalizeURLs:
		fs.BoolVar(&cmd.force, "force", false, "apply changes (default is dry-run)")
	case cmdFindDuplicates:
	default:
		return command{}, fmt.Errorf("unknown command %q", cmd.name)
	}

	if err := fs.Parse(args[1:]); err != nil {
		return command{}, err
	}

	if cmd.name == cmdFetchPhotos {
		if cmd.target != domain.TargetCities && cmd.target != domain.TargetCountries {
			return command{}, fmt.Errorf("invalid --target %q: expected cities or countries", cmd.target)
		}
		if cmd.limit < 0 {
			return command{}, fmt.Errorf("invalid --limit %d", cmd.limit)
		}
	}

	return cmd, nil
}

func main() {
	// 1. Load configuration (.env подхватывается в config.Load)
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	cmd, err := parseCommand(os.Args[1:], cfg.Photos.Delay)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage()
		os.Exit(2)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "jet-charter-maintenance")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	if cmd.name == cmdFetchPhotos && cfg.Photos.AccessKey == "" {
		log.Fatal("PHOTOS_ACCESS_KEY is required for fetch-photos")
	}

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer db.Close()

	// 4. Connect to Redis (сброс кеша маршрутов после изменений)
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// 5. Initialize use case
	policy := usecase.DefaultPhotoPolicy()
	policy.PerPage = cfg.Photos.PerPage
	selector := usecase.NewPhotoSelector(unsplash.NewClient(&cfg.Photos, log), policy, log)

	maintenanceUC := usecase.NewMaintenanceUseCase(
		postgres.NewPlaceRepository(db, log),
		postgres.NewRouteRepository(db, log),
		cache.NewCacheRepository(redisClient),
		selector,
		log,
	)

	// 6. Run command, Ctrl+C прерывает пакет между записями
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, maintenanceUC, cmd, log); err != nil {
		log.Error("Command failed", zap.String("command", cmd.name), zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, uc *usecase.MaintenanceUseCase, cmd command, log *zap.Logger) error {
	log = log.With(zap.String("command", cmd.name), zap.Bool("force", cmd.force))

	switch cmd.name {
	case cmdFetchPhotos:
		stats, err := uc.FetchPhotos(ctx, usecase.FetchPhotosOptions{
			Target: cmd.target,
			Force:  cmd.force,
			Limit:  cmd.limit,
			Delay:  cmd.delay,
		})
		logSummary(log, stats)
		return err

	case cmdFindDuplicates:
		groups, err := uc.FindDuplicates(ctx)
		if err != nil {
			return err
		}
		for _, g := range groups {
			ids := make([]int64, 0, len(g.Cities))
			for _, c := range g.Cities {
				ids = append(ids, c.ID)
			}
			log.Info("Duplicate group", zap.String("key", g.Key), zap.Int64s("ids", ids))
		}
		log.Info("Duplicates found", zap.Int("groups", len(groups)))
		return nil

	case cmdRemoveDuplicates:
		report, err := uc.RemoveDuplicates(ctx, cmd.force)
		if err != nil {
			return err
		}
		log.Info("Duplicates processed",
			zap.Int("groups", len(report.Groups)),
			zap.Int64("removed", report.Removed),
			zap.Int64("routes_moved", report.RoutesMoved),
			zap.Bool("dry_run", report.DryRun),
		)
		logSummary(log, report.Stats)
		return nil

	case cmdNormalizeURLs:
		stats, err := uc.NormalizeURLs(ctx, cmd.force)
		logSummary(log, stats)
		return err
	}

	return fmt.Errorf("unknown command %q", cmd.name)
}

func logSummary(log *zap.Logger, stats domain.BatchStats) {
	log.Info("Summary",
		zap.Int("processed", stats.Processed),
		zap.Int("updated", stats.Updated),
		zap.Int("unchanged", stats.Unchanged),
		zap.Int("not_found", stats.NotFound),
		zap.Int("failed", stats.Failed),
	)
}
