package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	Auth      AuthConfig
	Quotes    QuoteConfig
	Exchange  ExchangeConfig
	Scheduler SchedulerConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// AuthConfig holds PIN and token settings.
type AuthConfig struct {
	PIN           string
	JWTSecret     string
	TokenLifetime time.Duration
}

// QuoteConfig holds price/NAV cache and fetch settings.
type QuoteConfig struct {
	CacheTTL    time.Duration
	HTTPTimeout time.Duration
}

// ExchangeConfig holds Binance API credentials and the key used to encrypt
// credentials stored in the database. Environment credentials, when set,
// take precedence over stored ones.
type ExchangeConfig struct {
	APIKey    string
	Secret    string
	FernetKey string
}

// SchedulerConfig holds the background quote refresh schedule.
type SchedulerConfig struct {
	RefreshSpec string // cron spec; empty disables the scheduler
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5000"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/fintrack.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: strings.Split(
				getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000"), ",",
			),
		},
		Auth: AuthConfig{
			PIN:           os.Getenv("PIN_CODE"),
			JWTSecret:     os.Getenv("JWT_SECRET"),
			TokenLifetime: getEnvDuration("TOKEN_LIFETIME", time.Hour),
		},
		Quotes: QuoteConfig{
			CacheTTL:    getEnvDuration("QUOTE_CACHE_TTL", 60*time.Second),
			HTTPTimeout: getEnvDuration("QUOTE_HTTP_TIMEOUT", 5*time.Second),
		},
		Exchange: ExchangeConfig{
			APIKey:    os.Getenv("BINANCE_API_KEY"),
			Secret:    os.Getenv("BINANCE_SECRET"),
			FernetKey: os.Getenv("FERNET_KEY"),
		},
		Scheduler: SchedulerConfig{
			RefreshSpec: getEnv("REFRESH_CRON", "0 */6 * * *"),
		},
	}

	if config.Auth.PIN == "" || config.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("missing required environment variables: PIN_CODE, JWT_SECRET")
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvDuration reads a duration expressed either as a Go duration string
// ("90s", "5m") or a bare number of seconds.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
