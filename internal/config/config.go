package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"mercado_erp/internal/logger"
)

const (
	StorageSQLite   = "sqlite"
	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"
)

type Config struct {
	Port int

	// Snapshot storage
	StorageDriver    string
	SQLitePath       string
	AWSRegion        string
	DynamoDBEndpoint string
	CollectionsTable string

	// Auth
	JWTSecret string
	JWTTTL    time.Duration

	// AI insight collaborator
	OpenAIAPIKey string
	OpenAIModel  string

	// Payment provider
	MercadoPagoAccessToken string
	MercadoPagoPayerEmail  string
	PaymentGatewayMock     bool

	// Logging
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

// DevJWTSecret signs tokens when JWT_SECRET is unset. It is public, so any
// deployment reachable by others must override it.
const DevJWTSecret = "mercado-do-bairro-dev-secret"

func Load() (*Config, error) {
	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("config: invalid PORT: %w", err)
	}
	ttl, err := time.ParseDuration(getEnv("JWT_TTL", "12h"))
	if err != nil {
		return nil, fmt.Errorf("config: invalid JWT_TTL: %w", err)
	}

	cfg := &Config{
		Port:                   port,
		StorageDriver:          strings.ToLower(getEnv("STORAGE_DRIVER", StorageSQLite)),
		SQLitePath:             getEnv("SQLITE_PATH", "mercado_erp.db"),
		AWSRegion:              getEnv("AWS_REGION", "us-east-1"),
		DynamoDBEndpoint:       getEnv("DYNAMODB_ENDPOINT", ""),
		CollectionsTable:       getEnv("COLLECTIONS_TABLE", "erp_collections"),
		JWTSecret:              getEnv("JWT_SECRET", DevJWTSecret),
		JWTTTL:                 ttl,
		OpenAIAPIKey:           getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:            getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		MercadoPagoAccessToken: getEnv("MERCADOPAGO_ACCESS_TOKEN", ""),
		MercadoPagoPayerEmail:  getEnv("MERCADOPAGO_TEST_PAYER_EMAIL", ""),
		PaymentGatewayMock:     isTruthy(os.Getenv("PAYMENT_GATEWAY_MOCK")) || isTruthy(os.Getenv("MERCADOPAGO_MOCK")),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		LogFormat:              getEnv("LOG_FORMAT", "console"),
		LogTimeFormat:          getEnv("LOG_TIME_FORMAT", time.RFC3339),
		LogOutput:              getEnv("LOG_OUTPUT", "stdout"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageDriver {
	case StorageSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite driver")
		}
	case StorageDynamoDB:
		if c.CollectionsTable == "" {
			return fmt.Errorf("COLLECTIONS_TABLE is required for the dynamodb driver")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive")
	}
	return nil
}

// UsesDevJWTSecret reports whether tokens are signed with DevJWTSecret.
func (c *Config) UsesDevJWTSecret() bool {
	return c.JWTSecret == DevJWTSecret
}

// PaymentGatewayEnabled reports whether PIX payments go through the provider.
func (c *Config) PaymentGatewayEnabled() bool {
	return c.PaymentGatewayMock || c.MercadoPagoAccessToken != ""
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
