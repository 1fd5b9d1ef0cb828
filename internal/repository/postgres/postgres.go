package postgres

import (
	"context"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/jet-charter-service/internal/config"
	"github.com/jet-charter-service/internal/pkg/utils"
	"github.com/jet-charter-service/migrations"
)

const (
	pingTimeout    = 5 * time.Second
	connectBackoff = time.Second
)

// DB - пул соединений sqlx поверх драйвера pgx
type DB struct {
	*sqlx.DB
	logger *zap.Logger
}

// New открывает пул и ждёт, пока база ответит на ping (cfg.ConnectAttempts попыток)
func New(cfg *config.DatabaseConfig, logger *zap.Logger) (*DB, error) {
	db, err := sqlx.Open("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	ping := func(ctx context.Context) error {
		pctx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		return db.PingContext(pctx)
	}
	onRetry := func(attempt int, err error) {
		logger.Warn("PostgreSQL not ready, retrying",
			zap.String("host", cfg.Host),
			zap.Int("attempt", attempt),
			zap.Error(err))
	}

	if err := utils.Retry(context.Background(), cfg.ConnectAttempts, connectBackoff, ping, onRetry); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	logger.Info("PostgreSQL connected",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.DBName),
		zap.Int("max_conns", cfg.MaxConns),
	)

	return &DB{DB: db, logger: logger}, nil
}

// NewDBForTest оборачивает готовое соединение (testhelpers)
func NewDBForTest(sqlxDB *sqlx.DB, logger *zap.Logger) *DB {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DB{DB: sqlxDB, logger: logger}
}

// Health - ping для /api/v1/health; в лог попадает состояние пула
func (db *DB) Health(ctx context.Context) error {
	if err := db.PingContext(ctx); err != nil {
		st := db.Stats()
		db.logger.Warn("PostgreSQL health check failed",
			zap.Int("open", st.OpenConnections),
			zap.Int("in_use", st.InUse),
			zap.Int64("wait_count", st.WaitCount),
			zap.Error(err))
		return err
	}
	return nil
}

// Migrate применяет встроенные миграции схемы
func (db *DB) Migrate(ctx context.Context) error {
	start := time.Now()
	if err := migrations.Run(ctx, db.DB.DB); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	db.logger.Info("Database migrations applied", zap.Duration("took", time.Since(start)))
	return nil
}

func (db *DB) Close() error {
	db.logger.Info("Closing PostgreSQL connection")
	return db.DB.Close()
}
