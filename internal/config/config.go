package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Redis     RedisConfig
	Firebase  FirebaseConfig
	Log       LogConfig
	Health    HealthConfig
	Itinerary ItineraryConfig
	Ledger    LedgerConfig
	Dataset   DatasetConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	AllowOrigins string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// FirebaseConfig - remote backend credentials. Both fields empty means the
// service runs in local-only mode.
type FirebaseConfig struct {
	ProjectID         string
	CredentialsBase64 string
	Timeout           time.Duration
}

type LogConfig struct {
	Level string
}

type HealthConfig struct {
	Enabled            bool
	Interval           time.Duration
	MaxRetries         int
	ReconnectRateLimit time.Duration
}

type ItineraryConfig struct {
	StorageKey    string
	OptimizeDelay time.Duration
	Strategy      string
}

type LedgerConfig struct {
	StorageKey  string
	EventStream string
}

type DatasetConfig struct {
	PlannersFile string
}

const (
	StrategyAnchor          = "anchor"
	StrategyNearestNeighbor = "nearest_neighbor"
)

// Load reads .env (when present) and the environment.
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom reads configuration from path and the environment; a missing
// file is not an error.
func LoadFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &pathErr) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:         v.GetString("API_HOST"),
			Port:         v.GetInt("API_PORT"),
			Env:          v.GetString("API_ENV"),
			AllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Firebase: FirebaseConfig{
			ProjectID:         strings.TrimSpace(v.GetString("FIREBASE_PROJECT_ID")),
			CredentialsBase64: strings.TrimSpace(v.GetString("FIREBASE_CREDENTIALS_BASE64")),
			Timeout:           time.Duration(v.GetInt("FIREBASE_TIMEOUT")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Health: HealthConfig{
			Enabled:            v.GetBool("HEALTH_CHECK_ENABLED"),
			Interval:           time.Duration(v.GetInt("HEALTH_CHECK_INTERVAL")) * time.Second,
			MaxRetries:         v.GetInt("BACKEND_MAX_RETRIES"),
			ReconnectRateLimit: time.Duration(v.GetInt("RECONNECT_RATE_LIMIT")) * time.Second,
		},
		Itinerary: ItineraryConfig{
			StorageKey:    v.GetString("ITINERARY_STORAGE_KEY"),
			OptimizeDelay: time.Duration(v.GetInt("ROUTE_OPTIMIZE_DELAY")) * time.Millisecond,
			Strategy:      strings.ToLower(v.GetString("ROUTE_STRATEGY")),
		},
		Ledger: LedgerConfig{
			StorageKey:  v.GetString("LEDGER_STORAGE_KEY"),
			EventStream: v.GetString("LEDGER_EVENT_STREAM"),
		},
		Dataset: DatasetConfig{
			PlannersFile: v.GetString("PLANNERS_DATASET_FILE"),
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
	v.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("FIREBASE_TIMEOUT", 5)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HEALTH_CHECK_ENABLED", true)
	v.SetDefault("HEALTH_CHECK_INTERVAL", 30)
	v.SetDefault("BACKEND_MAX_RETRIES", 1)
	v.SetDefault("RECONNECT_RATE_LIMIT", 5)
	v.SetDefault("ITINERARY_STORAGE_KEY", "trip-planner:itinerary")
	v.SetDefault("ROUTE_OPTIMIZE_DELAY", 0)
	v.SetDefault("ROUTE_STRATEGY", StrategyAnchor)
	v.SetDefault("LEDGER_STORAGE_KEY", "trip-planner:local-ledger")
	v.SetDefault("LEDGER_EVENT_STREAM", "stream:trip:local-ledger")
}

func (c *Config) validate() error {
	switch c.Itinerary.Strategy {
	case StrategyAnchor, StrategyNearestNeighbor:
	default:
		return fmt.Errorf("unknown ROUTE_STRATEGY %q", c.Itinerary.Strategy)
	}
	if c.Health.MaxRetries < 1 {
		return fmt.Errorf("BACKEND_MAX_RETRIES must be at least 1, got %d", c.Health.MaxRetries)
	}
	if c.Health.Enabled && c.Health.Interval <= 0 {
		return fmt.Errorf("HEALTH_CHECK_INTERVAL must be positive when health checks are enabled")
	}
	return nil
}

// RemoteConfigured reports whether remote backend credentials are present.
func (c *Config) RemoteConfigured() bool {
	return c.Firebase.ProjectID != "" && c.Firebase.CredentialsBase64 != ""
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
