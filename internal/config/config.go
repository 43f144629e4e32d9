package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Database       DatabaseConfig
	JWT            JWTConfig
	App            AppConfig
	Reconciliation ReconciliationConfig
	Cron           CronConfig
	Scheduler      SchedulerConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT verification configuration. Tokens are issued by the
// external identity provider; this service only verifies them.
type JWTConfig struct {
	Secret string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// ReconciliationConfig controls the attendance reconciliation engine.
type ReconciliationConfig struct {
	// EligibleLocations restricts the reconciled population to employees at
	// these work locations. Biometric hardware only exists at the head
	// office, hence the single-location default.
	EligibleLocations []string

	// MaxRangeDays bounds the requested date range. Zero means unbounded.
	MaxRangeDays int

	// Workers bounds per-employee update fan-out.
	Workers int
}

type CronConfig struct {
	Enabled  bool
	Interval string
}

// SchedulerConfig holds credentials for headless job triggers (external
// schedulers hitting the internal job endpoints with an API key).
type SchedulerConfig struct {
	APIKeyHash string
}

func Load() (*Config, error) {
	// .env is optional outside local development
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "staffsight"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	// Reconciliation configuration
	maxRangeDays, err := strconv.Atoi(getEnv("RECONCILIATION_MAX_RANGE_DAYS", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid RECONCILIATION_MAX_RANGE_DAYS: %w", err)
	}
	workers, err := strconv.Atoi(getEnv("RECONCILIATION_WORKERS", "4"))
	if err != nil {
		return nil, fmt.Errorf("invalid RECONCILIATION_WORKERS: %w", err)
	}

	config.Reconciliation = ReconciliationConfig{
		EligibleLocations: getEnvSlice("ELIGIBLE_LOCATIONS", "Head Office"),
		MaxRangeDays:      maxRangeDays,
		Workers:           workers,
	}

	// Cron configuration
	config.Cron = CronConfig{
		Enabled:  getEnv("CRON_ENABLED", "true") == "true",
		Interval: getEnv("CRON_INTERVAL", "1h"),
	}

	config.Scheduler = SchedulerConfig{
		APIKeyHash: getEnv("SCHEDULER_API_KEY_HASH", ""),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if len(c.Reconciliation.EligibleLocations) == 0 {
		return fmt.Errorf("ELIGIBLE_LOCATIONS is required")
	}
	if c.Reconciliation.MaxRangeDays < 0 {
		return fmt.Errorf("RECONCILIATION_MAX_RANGE_DAYS must be >= 0")
	}
	if c.Reconciliation.Workers < 1 {
		return fmt.Errorf("RECONCILIATION_WORKERS must be >= 1")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string, fallback string) []string {
	value := getEnv(env, fallback)
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
