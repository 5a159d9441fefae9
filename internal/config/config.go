package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App     AppConfig
	Storage StorageConfig
	Logger  LoggerConfig
	Auth    AuthConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name    string
	Env     string
	Host    string
	Port    string
	Version string
}

// StorageDriver selects the durable key-value backend.
type StorageDriver string

const (
	DriverMemory   StorageDriver = "memory"
	DriverFile     StorageDriver = "file"
	DriverRedis    StorageDriver = "redis"
	DriverPostgres StorageDriver = "postgres"
)

// StorageConfig holds connection values for the key-value backends.
type StorageConfig struct {
	Driver        StorageDriver
	FileDir       string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	PostgresDSN   string
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines session token parameters.
type AuthConfig struct {
	JWTSecret             string
	AccessTokenTTLMinutes int
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	driver := StorageDriver(getEnv("STORAGE_DRIVER", string(DriverFile)))
	switch driver {
	case DriverMemory, DriverFile, DriverRedis, DriverPostgres:
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", driver)
	}

	cfg := &Config{
		App: AppConfig{
			Name:    getEnv("APP_NAME", "helpdesk-inventory"),
			Env:     getEnv("APP_ENV", "development"),
			Host:    getEnv("APP_HOST", "0.0.0.0"),
			Port:    getEnv("APP_PORT", "8080"),
			Version: getEnv("APP_VERSION", "dev"),
		},
		Storage: StorageConfig{
			Driver:        driver,
			FileDir:       getEnv("STORAGE_FILE_DIR", "data"),
			RedisAddr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			RedisPassword: os.Getenv("REDIS_PASSWORD"),
			RedisDB:       redisDB,
			PostgresDSN:   os.Getenv("POSTGRES_DSN"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:             getEnv("AUTH_JWT_SECRET", "dev-secret"),
			AccessTokenTTLMinutes: getEnvAsInt("AUTH_ACCESS_TOKEN_TTL_MINUTES", 480),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
