package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Content source backends
const (
	SourceFS = "fs"
	SourceDB = "db"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Content store configuration
	Content ContentConfig

	// Database mirror configuration
	Database DatabaseConfig

	// Logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	AllowOrigin     string
}

// ContentConfig holds content store settings
type ContentConfig struct {
	Dir             string
	Extension       string
	Source          string // "fs" or "db"
	LoadConcurrency int
	EnsureDirs      bool
	Cache           bool // false re-reads every document, for local editing
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host           string
	Port           string
	User           string
	Password       string
	Name           string
	SSLMode        string
	MaxOpenConns   int
	MaxIdleConns   int
	MaxLifetime    time.Duration
	MigrationsPath string
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string // "json" or "pretty"
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 15*time.Second),
			AllowOrigin:     getEnv("CORS_ALLOW_ORIGIN", "*"),
		},
		Content: ContentConfig{
			Dir:             getEnv("CONTENT_DIR", "./content"),
			Extension:       getEnv("CONTENT_EXTENSION", ".json"),
			Source:          strings.ToLower(getEnv("CONTENT_SOURCE", SourceFS)),
			LoadConcurrency: getIntEnv("CONTENT_LOAD_CONCURRENCY", 8),
			EnsureDirs:      getBoolEnv("CONTENT_ENSURE_DIRS", false),
			Cache:           getBoolEnv("CONTENT_CACHE", true),
		},
		Database: DatabaseConfig{
			Host:           getEnv("DB_HOST", "localhost"),
			Port:           getEnv("DB_PORT", "5432"),
			User:           getEnv("DB_USER", "postgres"),
			Password:       getEnv("DB_PASSWORD", "postgres"),
			Name:           getEnv("DB_NAME", "portfolio_content"),
			SSLMode:        getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:   getIntEnv("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:   getIntEnv("DB_MAX_IDLE_CONNS", 2),
			MaxLifetime:    getDurationEnv("DB_MAX_LIFETIME", 5*time.Minute),
			MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if !strings.HasPrefix(cfg.Content.Extension, ".") {
		cfg.Content.Extension = "." + cfg.Content.Extension
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Content.Dir == "" {
		return fmt.Errorf("CONTENT_DIR is required")
	}
	if c.Content.Extension == "" || c.Content.Extension == "." {
		return fmt.Errorf("CONTENT_EXTENSION must not be empty")
	}
	if c.Content.Source != SourceFS && c.Content.Source != SourceDB {
		return fmt.Errorf("CONTENT_SOURCE must be one of: %s, %s", SourceFS, SourceDB)
	}
	if c.Content.LoadConcurrency < 1 {
		return fmt.Errorf("CONTENT_LOAD_CONCURRENCY must be positive")
	}
	if c.UsesDatabase() {
		if c.Database.Host == "" {
			return fmt.Errorf("DB_HOST is required")
		}
		if c.Database.Name == "" {
			return fmt.Errorf("DB_NAME is required")
		}
	}
	return nil
}

// UsesDatabase reports whether content is served from the database mirror
func (c *Config) UsesDatabase() bool {
	return c.Content.Source == SourceDB
}

// GetDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
