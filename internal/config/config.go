package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/period"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Store    StoreConfig
	JWT      JWTConfig
	Payroll  PayrollConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// StoreConfig selects the persistence backend. FixturesPath overrides the
// embedded seed dataset.
type StoreConfig struct {
	Driver       string
	FixturesPath string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret    string
	AccessTTL time.Duration
}

type PayrollConfig struct {
	ISRRate  decimal.Decimal
	IMSSRate decimal.Decimal
	// ReferenceDate, when set, replaces the stored simulation date at startup.
	ReferenceDate string
}

// Load reads the environment, after merging an optional .env file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("APP_LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("APP_ALLOWED_ORIGINS"),
	}

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
		Name:     getEnv("DB_NAME", "nomina"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	config.Store = StoreConfig{
		Driver:       strings.ToLower(getEnv("STORE_DRIVER", StoreMemory)),
		FixturesPath: getEnv("STORE_FIXTURES_PATH", ""),
	}

	// JWT configuration
	accessTTL, err := time.ParseDuration(getEnv("JWT_ACCESS_EXPIRATION_TIME", "8h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}

	config.JWT = JWTConfig{
		Secret:    getEnv("JWT_SECRET_KEY", ""),
		AccessTTL: accessTTL,
	}

	// Payroll configuration
	isrRate, err := decimal.NewFromString(getEnv("PAYROLL_ISR_RATE", "0.20"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_ISR_RATE: %w", err)
	}
	imssRate, err := decimal.NewFromString(getEnv("PAYROLL_IMSS_RATE", "0.05"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_IMSS_RATE: %w", err)
	}

	config.Payroll = PayrollConfig{
		ISRRate:       isrRate,
		IMSSRate:      imssRate,
		ReferenceDate: getEnv("PAYROLL_REFERENCE_DATE", ""),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("APP_PORT out of range: %d", c.App.Port)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	switch c.Store.Driver {
	case StoreMemory:
	case StorePostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required")
		}
	default:
		return fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", StoreMemory, StorePostgres, c.Store.Driver)
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.JWT.AccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_EXPIRATION_TIME must be positive")
	}
	one := decimal.NewFromInt(1)
	if c.Payroll.ISRRate.IsNegative() || c.Payroll.ISRRate.GreaterThan(one) {
		return fmt.Errorf("PAYROLL_ISR_RATE must be between 0 and 1")
	}
	if c.Payroll.IMSSRate.IsNegative() || c.Payroll.IMSSRate.GreaterThan(one) {
		return fmt.Errorf("PAYROLL_IMSS_RATE must be between 0 and 1")
	}
	if c.Payroll.ReferenceDate != "" {
		if _, err := period.ParseReferenceDate(c.Payroll.ReferenceDate); err != nil {
			return fmt.Errorf("invalid PAYROLL_REFERENCE_DATE: %w", err)
		}
	}
	return nil
}

// SlogLevel maps the configured log level name to a slog.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.App.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid APP_LOG_LEVEL %q", c.App.LogLevel)
	}
	return level, nil
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

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
