// Package config loads service configuration from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Broker   BrokerConfig
	Auth     AuthConfig
	App      AppConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	ConnMaxLifetime time.Duration
	MaxOpenConns    int
	MaxIdleConns    int
	AutoMigrate     bool
}

// RedisConfig holds the idempotency cache configuration
type RedisConfig struct {
	URL            string
	IdempotencyTTL time.Duration
}

// BrokerConfig holds the notification broker configuration
type BrokerConfig struct {
	URL      string
	Exchange string
}

// AuthConfig holds bearer token verification settings
type AuthConfig struct {
	JWTSecret string
	JWTIssuer string
}

// AppConfig holds transfer engine settings
type AppConfig struct {
	FrontendURL             string
	TransferCurrency        string
	TransferMaxAmount       decimal.Decimal
	TransferReasonMaxLength int
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level string // debug, info, warn, error
}

var defaults = map[string]any{
	"PORT":                       "8080",
	"SERVER_READ_TIMEOUT":        "15s",
	"SERVER_WRITE_TIMEOUT":       "15s",
	"SERVER_IDLE_TIMEOUT":        "60s",
	"DB_HOST":                    "localhost",
	"DB_PORT":                    "5432",
	"DB_USER":                    "postgres",
	"DB_PASSWORD":                "postgres",
	"DB_NAME":                    "bank",
	"DB_SSLMODE":                 "disable",
	"DB_MAX_OPEN_CONNS":          25,
	"DB_MAX_IDLE_CONNS":          5,
	"DB_CONN_MAX_LIFETIME":       "5m",
	"DB_AUTO_MIGRATE":            true,
	"REDIS_URL":                  "",
	"IDEMPOTENCY_TTL":            "24h",
	"RABBITMQ_URL":               "",
	"NOTIFICATION_EXCHANGE":      "bank.notifications",
	"JWT_SECRET":                 "",
	"JWT_ISSUER":                 "",
	"FRONTEND_URL":               "http://localhost:4200",
	"TRANSFER_CURRENCY":          "TND",
	"TRANSFER_MAX_AMOUNT":        "1000000.000",
	"TRANSFER_REASON_MAX_LENGTH": 500,
	"LOG_LEVEL":                  "info",
}

// Load loads configuration from environment variables, falling back to a .env
// file in the working directory and then to defaults.
func Load() (*Config, error) {
	return LoadFrom(".")
}

// LoadFrom is Load with an explicit directory for the optional .env file.
func LoadFrom(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	maxAmount, err := decimal.NewFromString(v.GetString("TRANSFER_MAX_AMOUNT"))
	if err != nil {
		return nil, fmt.Errorf("invalid TRANSFER_MAX_AMOUNT: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetString("PORT"),
			ReadTimeout:  v.GetDuration("SERVER_READ_TIMEOUT"),
			WriteTimeout: v.GetDuration("SERVER_WRITE_TIMEOUT"),
			IdleTimeout:  v.GetDuration("SERVER_IDLE_TIMEOUT"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetString("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
			AutoMigrate:     v.GetBool("DB_AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			URL:            v.GetString("REDIS_URL"),
			IdempotencyTTL: v.GetDuration("IDEMPOTENCY_TTL"),
		},
		Broker: BrokerConfig{
			URL:      v.GetString("RABBITMQ_URL"),
			Exchange: v.GetString("NOTIFICATION_EXCHANGE"),
		},
		Auth: AuthConfig{
			JWTSecret: v.GetString("JWT_SECRET"),
			JWTIssuer: v.GetString("JWT_ISSUER"),
		},
		App: AppConfig{
			FrontendURL:             strings.TrimSuffix(v.GetString("FRONTEND_URL"), "/"),
			TransferCurrency:        v.GetString("TRANSFER_CURRENCY"),
			TransferMaxAmount:       maxAmount,
			TransferReasonMaxLength: v.GetInt("TRANSFER_REASON_MAX_LENGTH"),
		},
		Logger: LoggerConfig{
			Level: strings.ToLower(v.GetString("LOG_LEVEL")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port cannot be empty")
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host cannot be empty")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database name cannot be empty")
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT secret cannot be empty")
	}

	if c.Broker.Exchange == "" {
		return fmt.Errorf("notification exchange cannot be empty")
	}

	if len(c.App.TransferCurrency) != 3 {
		return fmt.Errorf("transfer currency must be a 3-letter code, got %q", c.App.TransferCurrency)
	}
	if !c.App.TransferMaxAmount.IsPositive() {
		return fmt.Errorf("transfer max amount must be positive, got %s", c.App.TransferMaxAmount)
	}
	if c.App.TransferReasonMaxLength <= 0 {
		return fmt.Errorf("transfer reason max length must be positive")
	}

	if c.Redis.IdempotencyTTL <= 0 {
		return fmt.Errorf("idempotency TTL must be positive")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	return nil
}

// DSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}
