package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App:   AppConfig{Port: 8080, Env: "test", LogLevel: "info"},
		Store: StoreConfig{Driver: StoreMemory},
		JWT:   JWTConfig{Secret: "secret", AccessTTL: time.Hour},
		Payroll: PayrollConfig{
			ISRRate:  decimal.RequireFromString("0.20"),
			IMSSRate: decimal.RequireFromString("0.05"),
		},
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("APP_ALLOWED_ORIGINS", "http://localhost:3000, https://nomina.pro ,")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, StoreMemory, cfg.Store.Driver)
	assert.Equal(t, 8*time.Hour, cfg.JWT.AccessTTL)
	assert.True(t, cfg.Payroll.ISRRate.Equal(decimal.RequireFromString("0.2")))
	assert.True(t, cfg.Payroll.IMSSRate.Equal(decimal.RequireFromString("0.05")))
	assert.Equal(t, []string{"http://localhost:3000", "https://nomina.pro"}, cfg.App.AllowedOrigins)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"port", "APP_PORT", "eighty"},
		{"ttl", "JWT_ACCESS_EXPIRATION_TIME", "forever"},
		{"isr rate", "PAYROLL_ISR_RATE", "twenty"},
		{"driver", "STORE_DRIVER", "sqlite"},
		{"reference date", "PAYROLL_REFERENCE_DATE", "20/07/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET_KEY", "secret")
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing secret", func(c *Config) { c.JWT.Secret = "" }, true},
		{"zero ttl", func(c *Config) { c.JWT.AccessTTL = 0 }, true},
		{"postgres without password", func(c *Config) { c.Store.Driver = StorePostgres }, true},
		{"postgres with password", func(c *Config) {
			c.Store.Driver = StorePostgres
			c.Database.Password = "pw"
		}, false},
		{"rate above one", func(c *Config) { c.Payroll.ISRRate = decimal.NewFromInt(2) }, true},
		{"negative rate", func(c *Config) { c.Payroll.IMSSRate = decimal.NewFromInt(-1) }, true},
		{"bad log level", func(c *Config) { c.App.LogLevel = "loud" }, true},
		{"reference date", func(c *Config) { c.Payroll.ReferenceDate = "2024-07-20" }, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSlogLevel(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.App.LogLevel = "debug"

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestDatabaseURL(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Database = DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", Name: "nomina", SSLMode: "disable"}

	assert.Equal(t, "postgres://u:p@db:5432/nomina?sslmode=disable", cfg.DatabaseURL())
}
