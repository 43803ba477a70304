package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(LevelForEnvironment(GetEnvWithDefault("APP_ENV", "development")))
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Port        int    `json:"port"`
	Host        string `json:"host"`
	Environment string `json:"environment"`

	// Database configuration
	DBDriver   string `json:"db_driver"`
	DBPath     string `json:"db_path"`
	DBHost     string `json:"db_host"`
	DBPort     string `json:"db_port"`
	DBName     string `json:"db_name"`
	DBUser     string `json:"db_user"`
	DBPassword string `json:"db_password"`
	DBSSLMode  string `json:"db_sslmode"`

	// Connection attempts before giving up at startup
	DBMaxRetries int `json:"db_max_retries"`

	// Logging configuration, empty means the APP_ENV default
	LogLevel string `json:"log_level"`

	// Session configuration
	SessionSecret string        `json:"session_secret"`
	SessionTTL    time.Duration `json:"session_ttl"`

	// Storefront configuration
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %d, Host: %s, Environment: %s, DBDriver: %s, DBPath: %s, DBHost: %s, DBPort: %s, DBName: %s, DBUser: %s, DBPassword: [REDACTED], LogLevel: %s, SessionSecret: [REDACTED], SessionTTL: %s, UnitPrice: %s}",
		c.Port, c.Host, c.Environment, c.DBDriver, c.DBPath, c.DBHost, c.DBPort, c.DBName, c.DBUser, c.LogLevel, c.SessionTTL, c.UnitPrice.StringFixed(2))
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// It also validates numeric values, the unit price and the database driver
// Returns an error if any environment variable is invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	ttlMinutes, err := strconv.Atoi(GetEnvWithDefault("SESSION_TTL_MINUTES", "120"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL_MINUTES: %w", err)
	}

	unitPrice, err := decimal.NewFromString(GetEnvWithDefault("UNIT_PRICE", "7.90"))
	if err != nil {
		return nil, fmt.Errorf("invalid UNIT_PRICE: %w", err)
	}
	if unitPrice.IsNegative() {
		return nil, fmt.Errorf("invalid UNIT_PRICE: must not be negative")
	}

	driver := strings.ToLower(GetEnvWithDefault("DB_DRIVER", "sqlite"))
	switch driver {
	case "sqlite", "postgres", "postgresql":
	default:
		return nil, fmt.Errorf("invalid DB_DRIVER %q (supported: sqlite, postgres)", driver)
	}

	config := &Config{
		Port:          port,
		Host:          GetEnvWithDefault("APP_HOST", "localhost"),
		Environment:   GetEnvWithDefault("APP_ENV", "development"),
		DBDriver:      driver,
		DBPath:        GetEnvWithDefault("DB_PATH", "brigadeiro.sqlite"),
		DBHost:        GetEnvWithDefault("DB_HOST", "localhost"),
		DBPort:        GetEnvWithDefault("DB_PORT", "5432"),
		DBName:        GetEnvWithDefault("DB_NAME", "brigalab"),
		DBUser:        GetEnvWithDefault("DB_USER", "user"),
		DBPassword:    GetEnvWithDefault("DB_PASSWORD", "password"),
		DBSSLMode:     GetEnvWithDefault("DB_SSLMODE", "disable"),
		DBMaxRetries:  GetEnvAsType("DB_MAX_RETRIES", 5),
		LogLevel:      GetEnvWithDefault("LOG_LEVEL", ""),
		SessionSecret: GetEnvWithDefault("SESSION_SECRET", "secret"),
		SessionTTL:    time.Duration(ttlMinutes) * time.Minute,
		UnitPrice:     unitPrice,
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// LevelForEnvironment maps APP_ENV to the default log level
func LevelForEnvironment(environment string) logrus.Level {
	switch environment {
	case "development":
		return logrus.DebugLevel
	case "production":
		return logrus.ErrorLevel
	default:
		// Default to info level for other environments
		return logrus.InfoLevel
	}
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value", key)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
