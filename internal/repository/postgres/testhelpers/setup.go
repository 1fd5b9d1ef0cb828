package testhelpers

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/jet-charter-service/internal/config"
	"github.com/jet-charter-service/internal/pkg/utils"
	"github.com/jet-charter-service/migrations"
)

// TestDB - соединение с тестовой базой и логгер теста
type TestDB struct {
	DB     *sqlx.DB
	Logger *zap.Logger
}

// testDatabaseConfig читает TEST_DB_* из окружения
func testDatabaseConfig() config.DatabaseConfig {
	v := viper.New()
	v.SetEnvPrefix("TEST_DB")
	v.AutomaticEnv()
	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", 5433)
	v.SetDefault("USER", "postgres")
	v.SetDefault("PASSWORD", "postgres")
	v.SetDefault("NAME", "jet_charter_test")
	v.SetDefault("SSLMODE", "disable")

	return config.DatabaseConfig{
		Host:     v.GetString("HOST"),
		Port:     v.GetInt("PORT"),
		User:     v.GetString("USER"),
		Password: v.GetString("PASSWORD"),
		DBName:   v.GetString("NAME"),
		SSLMode:  v.GetString("SSLMODE"),
	}
}

// SetupTestDB подключается к тестовой базе и применяет миграции.
// Если база недоступна, тест пропускается.
func SetupTestDB(t *testing.T) *TestDB {
	cfg := testDatabaseConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var db *sqlx.DB
	connect := func(ctx context.Context) error {
		var err error
		db, err = sqlx.ConnectContext(ctx, "postgres", cfg.DSN())
		return err
	}
	if err := utils.Retry(ctx, 3, 200*time.Millisecond, connect, nil); err != nil {
		t.Skipf("Postgres not available for integration tests: %v", err)
	}

	if err := ApplyMigrations(ctx, db); err != nil {
		db.Close()
		t.Fatalf("Failed to apply migrations: %v", err)
	}

	return &TestDB{
		DB:     db,
		Logger: zaptest.NewLogger(t, zaptest.Level(zap.WarnLevel)),
	}
}

// ApplyMigrations применяет встроенную схему к тестовой базе
func ApplyMigrations(ctx context.Context, db *sqlx.DB) error {
	return migrations.Run(ctx, db.DB)
}

func (tdb *TestDB) Close() {
	if tdb.DB != nil {
		tdb.DB.Close()
	}
}

// Cleanup очищает таблицы приложения между тестами
func (tdb *TestDB) Cleanup(ctx context.Context) error {
	_, err := tdb.DB.ExecContext(ctx, `
		TRUNCATE TABLE orders, empty_leg_routes, jet_sharing_routes, cities, countries
		RESTART IDENTITY CASCADE`)
	if err != nil {
		return fmt.Errorf("truncate tables: %w", err)
	}
	return nil
}
