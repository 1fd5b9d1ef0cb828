package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Cache       CacheConfig
	Log         LogConfig
	Geolocation GeolocationConfig
	Photos      PhotosConfig
	Listings    ListingsConfig
	Worker      WorkerConfig
}

type ServerConfig struct {
	Host           string
	Port           int
	Env            string
	AllowedOrigins string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	ConnectAttempts int
	RunMigrations   bool
}

// DSN - строка подключения для драйвера pgx
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

type RedisConfig struct {
	Host            string
	Port            int
	Password        string
	DB              int
	PoolSize        int
	ConnectAttempts int
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type CacheConfig struct {
	GeolocationTTL time.Duration
	RoutesTTL      time.Duration
}

type LogConfig struct {
	Level string
}

// GeolocationConfig - настройки провайдера IP-геолокации
type GeolocationConfig struct {
	BaseURL string
	Timeout time.Duration
}

// PhotosConfig - настройки API поиска фотографий
type PhotosConfig struct {
	BaseURL   string
	AccessKey string
	PerPage   int
	Timeout   time.Duration
	RetryMax  int
	Delay     time.Duration
}

// ListingsConfig - параметры генератора предложений
type ListingsConfig struct {
	DefaultContinent string
	Count            int
	SeedWindow       time.Duration
	Currency         string
}

type WorkerConfig struct {
	Enabled        bool
	PhotoSchedule  string
	PhotoBatchSize int
	OrdersGroup    string
	MaxRetries     int
	ReadTimeout    time.Duration
}

func Load() (*Config, error) {
	// .env is optional; real environment variables win over it.
	_ = godotenv.Load(".env")

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Server: ServerConfig{
			Host:           v.GetString("API_HOST"),
			Port:           v.GetInt("API_PORT"),
			Env:            v.GetString("API_ENV"),
			AllowedOrigins: v.GetString("API_ALLOWED_ORIGINS"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
			ConnectAttempts: v.GetInt("DB_CONNECT_ATTEMPTS"),
			RunMigrations:   v.GetBool("DB_RUN_MIGRATIONS"),
		},
		Redis: RedisConfig{
			Host:            v.GetString("REDIS_HOST"),
			Port:            v.GetInt("REDIS_PORT"),
			Password:        v.GetString("REDIS_PASSWORD"),
			DB:              v.GetInt("REDIS_DB"),
			PoolSize:        v.GetInt("REDIS_POOL_SIZE"),
			ConnectAttempts: v.GetInt("REDIS_CONNECT_ATTEMPTS"),
		},
		Cache: CacheConfig{
			GeolocationTTL: v.GetDuration("GEOLOCATION_CACHE_TTL"),
			RoutesTTL:      v.GetDuration("ROUTES_CACHE_TTL"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Geolocation: GeolocationConfig{
			BaseURL: strings.TrimRight(v.GetString("GEOLOCATION_BASE_URL"), "/"),
			Timeout: v.GetDuration("GEOLOCATION_TIMEOUT"),
		},
		Photos: PhotosConfig{
			BaseURL:   strings.TrimRight(v.GetString("PHOTOS_BASE_URL"), "/"),
			AccessKey: v.GetString("PHOTOS_ACCESS_KEY"),
			PerPage:   v.GetInt("PHOTOS_PER_PAGE"),
			Timeout:   v.GetDuration("PHOTOS_TIMEOUT"),
			RetryMax:  v.GetInt("PHOTOS_RETRY_MAX"),
			Delay:     v.GetDuration("PHOTOS_DELAY"),
		},
		Listings: ListingsConfig{
			DefaultContinent: v.GetString("LISTINGS_DEFAULT_CONTINENT"),
			Count:            v.GetInt("LISTINGS_COUNT"),
			SeedWindow:       v.GetDuration("LISTINGS_SEED_WINDOW"),
			Currency:         strings.ToUpper(v.GetString("LISTINGS_CURRENCY")),
		},
		Worker: WorkerConfig{
			Enabled:        v.GetBool("WORKER_ENABLED"),
			PhotoSchedule:  v.GetString("WORKER_PHOTO_SCHEDULE"),
			PhotoBatchSize: v.GetInt("WORKER_PHOTO_BATCH_SIZE"),
			OrdersGroup:    v.GetString("WORKER_ORDERS_GROUP"),
			MaxRetries:     v.GetInt("WORKER_MAX_RETRIES"),
			ReadTimeout:    v.GetDuration("WORKER_STREAM_READ_TIMEOUT"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("API_ALLOWED_ORIGINS", "http://localhost:3000")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "jet_charter")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 300)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 60)
	v.SetDefault("DB_CONNECT_ATTEMPTS", 5)
	v.SetDefault("DB_RUN_MIGRATIONS", true)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 10)
	v.SetDefault("REDIS_CONNECT_ATTEMPTS", 5)

	v.SetDefault("GEOLOCATION_CACHE_TTL", time.Hour)
	v.SetDefault("ROUTES_CACHE_TTL", 10*time.Minute)

	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("GEOLOCATION_BASE_URL", "https://ipapi.co")
	v.SetDefault("GEOLOCATION_TIMEOUT", 2*time.Second)

	v.SetDefault("PHOTOS_BASE_URL", "https://api.unsplash.com")
	v.SetDefault("PHOTOS_PER_PAGE", 10)
	v.SetDefault("PHOTOS_TIMEOUT", 15*time.Second)
	v.SetDefault("PHOTOS_RETRY_MAX", 3)
	v.SetDefault("PHOTOS_DELAY", 1500*time.Millisecond)

	v.SetDefault("LISTINGS_DEFAULT_CONTINENT", "Europe")
	v.SetDefault("LISTINGS_COUNT", 12)
	v.SetDefault("LISTINGS_SEED_WINDOW", time.Hour)
	v.SetDefault("LISTINGS_CURRENCY", "EUR")

	v.SetDefault("WORKER_ENABLED", true)
	v.SetDefault("WORKER_PHOTO_SCHEDULE", "0 */6 * * *")
	v.SetDefault("WORKER_PHOTO_BATCH_SIZE", 25)
	v.SetDefault("WORKER_ORDERS_GROUP", "order-notifiers")
	v.SetDefault("WORKER_MAX_RETRIES", 3)
	v.SetDefault("WORKER_STREAM_READ_TIMEOUT", 5*time.Second)
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid API_PORT: %d", c.Server.Port)
	}
	if c.Listings.Count <= 0 {
		return fmt.Errorf("LISTINGS_COUNT must be positive, got %d", c.Listings.Count)
	}
	if c.Listings.SeedWindow <= 0 {
		return fmt.Errorf("LISTINGS_SEED_WINDOW must be positive")
	}
	if c.Photos.PerPage <= 0 || c.Photos.PerPage > 30 {
		return fmt.Errorf("PHOTOS_PER_PAGE must be within 1..30, got %d", c.Photos.PerPage)
	}
	return nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return c.Database.DSN()
}

func (c *Config) GetRedisAddr() string {
	return c.Redis.Addr()
}
