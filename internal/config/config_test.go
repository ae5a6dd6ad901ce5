package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "TND", cfg.App.TransferCurrency)
	assert.Equal(t, "1000000.000", cfg.App.TransferMaxAmount.StringFixed(3))
	assert.Equal(t, 500, cfg.App.TransferReasonMaxLength)
	assert.Equal(t, 24*time.Hour, cfg.Redis.IdempotencyTTL)
	assert.Equal(t, "bank.notifications", cfg.Broker.Exchange)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoadFrom_EnvOverridesDotEnv(t *testing.T) {
	dir := t.TempDir()
	dotEnv := "JWT_SECRET=from-file\nPORT=9000\nFRONTEND_URL=https://bank.example/\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(dotEnv), 0o600))

	t.Setenv("JWT_SECRET", "")
	t.Setenv("PORT", "9100")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.Auth.JWTSecret)
	assert.Equal(t, "9100", cfg.Server.Port)
	assert.Equal(t, "https://bank.example", cfg.App.FrontendURL)
}

func TestLoadFrom_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadFrom(t.TempDir())

	assert.ErrorContains(t, err, "JWT secret")
}

func TestLoadFrom_InvalidMaxAmount(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("TRANSFER_MAX_AMOUNT", "lots")

	_, err := LoadFrom(t.TempDir())

	assert.ErrorContains(t, err, "TRANSFER_MAX_AMOUNT")
}

func TestConfig_Validate(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	base, err := LoadFrom(t.TempDir())
	require.NoError(t, err)

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logger.Level = "verbose" },
			wantErr: "invalid log level",
		},
		{
			name:    "bad currency",
			mutate:  func(c *Config) { c.App.TransferCurrency = "DINAR" },
			wantErr: "3-letter",
		},
		{
			name:    "empty database name",
			mutate:  func(c *Config) { c.Database.DBName = "" },
			wantErr: "database name",
		},
		{
			name:    "non-positive ttl",
			mutate:  func(c *Config) { c.Redis.IdempotencyTTL = 0 },
			wantErr: "idempotency TTL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := *base
			tt.mutate(&cfg)

			assert.ErrorContains(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", DBName: "bank", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=bank sslmode=disable", c.DSN())
}
