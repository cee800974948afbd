package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	level, _ := logrus.ParseLevel(DefaultLogLevel(GetEnvAsType("APP_ENV", "development")))
	log.SetLevel(level)
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Environment string `json:"environment"`
	Port        int    `json:"port"`
	Host        string `json:"host"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// Database configuration
	DBDriver     string `json:"db_driver"`
	DBPath       string `json:"db_path"`
	DatabaseURL  string `json:"database_url"`
	DBHost       string `json:"db_host"`
	DBPort       string `json:"db_port"`
	DBName       string `json:"db_name"`
	DBUser       string `json:"db_user"`
	DBPassword   string `json:"db_password"`
	DBSSLMode    string `json:"db_sslmode"`
	SeedDatabase bool   `json:"seed_database"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Environment: %s, Port: %d, Host: %s, LogLevel: %s, DBDriver: %s, DBPath: %s, DatabaseURL: %s, DBHost: %s, DBPort: %s, DBName: %s, DBUser: %s, DBPassword: [REDACTED], DBSSLMode: %s, SeedDatabase: %t}",
		c.Environment, c.Port, c.Host, c.LogLevel, c.DBDriver, c.DBPath, maskDatabaseURL(c.DatabaseURL),
		c.DBHost, c.DBPort, c.DBName, c.DBUser, c.DBSSLMode, c.SeedDatabase)
}

// Address returns the host:port the server listens on
func (c *Config) Address() string {
	return fmt.Sprintf("%v:%d", c.Host, c.Port)
}

// maskDatabaseURL masks password in database URL
func maskDatabaseURL(dbURL string) string {
	if dbURL == "" {
		return ""
	}

	parsed, err := url.Parse(dbURL)
	if err != nil {
		return "[REDACTED_INVALID_URL]"
	}

	if parsed.User != nil {
		if _, hasPassword := parsed.User.Password(); hasPassword {
			parsed.User = url.UserPassword(parsed.User.Username(), "REDACTED")
		}
	}

	return parsed.String()
}

// DefaultLogLevel maps an application environment to its log level
func DefaultLogLevel(environment string) string {
	switch environment {
	case "development":
		return "debug"
	case "production":
		return "error"
	default:
		return "info"
	}
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// Returns an error if any variable is present but malformed
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "5555"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	environment := GetEnvWithDefault("APP_ENV", "development")
	logLevel := GetEnvWithDefault("LOG_LEVEL", DefaultLogLevel(environment))
	if _, err := logrus.ParseLevel(logLevel); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	driver := strings.ToLower(GetEnvWithDefault("DB_DRIVER", "sqlite"))
	dbPath := GetEnvWithDefault("DB_PATH", "app.db")
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		// older name of the variable
		dbURL = os.Getenv("DB_URI")
	}
	if dbURL != "" {
		driver, dbPath, dbURL, err = parseDatabaseURL(dbURL, dbPath)
		if err != nil {
			return nil, err
		}
	}
	switch driver {
	case "sqlite", "postgres", "postgresql":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (supported: sqlite, postgres)", driver)
	}

	config := &Config{
		Environment:  environment,
		Port:         port,
		Host:         GetEnvWithDefault("APP_HOST", "localhost"),
		LogLevel:     logLevel,
		DBDriver:     driver,
		DBPath:       dbPath,
		DatabaseURL:  dbURL,
		DBHost:       GetEnvWithDefault("DB_HOST", "localhost"),
		DBPort:       GetEnvWithDefault("DB_PORT", "5432"),
		DBName:       GetEnvWithDefault("DB_NAME", "pizzas"),
		DBUser:       GetEnvWithDefault("DB_USER", "postgres"),
		DBPassword:   GetEnvWithDefault("DB_PASSWORD", "postgres"),
		DBSSLMode:    GetEnvWithDefault("DB_SSLMODE", "disable"),
		SeedDatabase: GetEnvAsType("DB_SEED", true),
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// parseDatabaseURL picks the driver from the URL scheme. sqlite:///app.db is a
// relative path and sqlite:////var/app.db an absolute one. For sqlite the
// returned URL is empty and the path is used instead.
func parseDatabaseURL(dbURL, dbPath string) (driver, path, normalized string, err error) {
	u, err := url.ParseRequestURI(dbURL)
	if err != nil {
		return "", "", "", fmt.Errorf("invalid DATABASE_URL format: %w", err)
	}

	scheme := strings.ToLower(u.Scheme)
	// drop SQLAlchemy style driver suffixes such as postgresql+psycopg2
	if i := strings.Index(scheme, "+"); i >= 0 {
		scheme = scheme[:i]
	}

	switch scheme {
	case "sqlite":
		path = strings.TrimPrefix(u.Path, "/")
		if path == "" {
			return "", "", "", fmt.Errorf("invalid DATABASE_URL: sqlite URL %q has no database path", dbURL)
		}
		return "sqlite", path, "", nil
	case "postgres", "postgresql":
		u.Scheme = scheme
		return "postgres", dbPath, u.String(), nil
	default:
		return "", "", "", fmt.Errorf("unsupported DATABASE_URL scheme %q (supported: sqlite, postgres)", u.Scheme)
	}
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value: %s", key, defaultValue)
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
