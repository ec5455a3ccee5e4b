package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Engine   EngineConfig
	Log      LogConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout      time.Duration
	PoolMaxConns        int32
	PoolMinConns        int32
	PoolMaxConnLifetime time.Duration
	PoolMaxConnIdleTime time.Duration

	MigrationsDir string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

type JWTConfig struct {
	AccessSecret    string
	AccessExpiresIn time.Duration
}

type EngineConfig struct {
	RecommendLimit       int
	HomeLimit            int
	DiversePerCategory   int
	DiverseMaxCategories int
	InferenceWorkers     int
	ReputationCacheTTL   time.Duration
}

type LogConfig struct {
	JSON  bool
	Debug bool
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func setDefaults(v *viper.Viper) {
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_CONNECT_TIMEOUT", "5s")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_TTL", "600s")
	v.SetDefault("JWT_ACCESS_EXPIRES_IN", "15m")
	v.SetDefault("RECOMMEND_LIMIT", 6)
	v.SetDefault("HOME_LIMIT", 8)
	v.SetDefault("DIVERSE_PER_CATEGORY", 2)
	v.SetDefault("DIVERSE_MAX_CATEGORIES", 6)
	v.SetDefault("INFERENCE_WORKERS", 5)
	v.SetDefault("REPUTATION_CACHE_TTL", "60s")
	v.SetDefault("LOG_JSON", false)
	v.SetDefault("LOG_DEBUG", false)
}

// Load reads configuration from the environment, after loading a .env file when
// one is present. Keys only the HTTP server needs are checked by RequireServer.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) Config {
	cfg := Config{}

	opt := func(key string) string {
		return strings.TrimSpace(v.GetString(key))
	}

	cfg.App = AppConfig{
		AppName:     opt("APP_NAME"),
		Environment: opt("APP_ENV"),
		HTTPPort:    opt("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:              opt("DB_HOST"),
		DBPort:              opt("DB_PORT"),
		DBName:              opt("DB_NAME"),
		DBUser:              opt("DB_USER"),
		DBPassword:          v.GetString("DB_PASSWORD"),
		DBSSLMode:           opt("DB_SSL_MODE"),
		ConnectTimeout:      v.GetDuration("DB_CONNECT_TIMEOUT"),
		PoolMaxConns:        v.GetInt32("DB_POOL_MAX_CONNS"),
		PoolMinConns:        v.GetInt32("DB_POOL_MIN_CONNS"),
		PoolMaxConnLifetime: v.GetDuration("DB_POOL_MAX_CONN_LIFETIME"),
		PoolMaxConnIdleTime: v.GetDuration("DB_POOL_MAX_CONN_IDLE_TIME"),
		MigrationsDir:       opt("MIGRATIONS_DIR"),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: opt("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
		TTL:      v.GetDuration("REDIS_TTL"),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:    opt("JWT_ACCESS_SECRET"),
		AccessExpiresIn: v.GetDuration("JWT_ACCESS_EXPIRES_IN"),
	}

	cfg.Engine = EngineConfig{
		RecommendLimit:       v.GetInt("RECOMMEND_LIMIT"),
		HomeLimit:            v.GetInt("HOME_LIMIT"),
		DiversePerCategory:   v.GetInt("DIVERSE_PER_CATEGORY"),
		DiverseMaxCategories: v.GetInt("DIVERSE_MAX_CATEGORIES"),
		InferenceWorkers:     v.GetInt("INFERENCE_WORKERS"),
		ReputationCacheTTL:   v.GetDuration("REPUTATION_CACHE_TTL"),
	}

	cfg.Log = LogConfig{
		JSON:  v.GetBool("LOG_JSON"),
		Debug: v.GetBool("LOG_DEBUG"),
	}

	return cfg
}

// RequireServer reports every key the HTTP server needs that is unset. The CLI
// runs without them.
func (c Config) RequireServer() error {
	var missing []string
	for _, kv := range [][2]string{
		{"APP_NAME", c.App.AppName},
		{"APP_ENV", c.App.Environment},
		{"HTTP_PORT", c.App.HTTPPort},
		{"JWT_ACCESS_SECRET", c.JWT.AccessSecret},
	} {
		if strings.TrimSpace(kv[1]) == "" {
			missing = append(missing, kv[0])
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	return nil
}
