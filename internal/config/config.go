package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	Database DatabaseConfig
	Seed     SeedConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// SeedConfig holds the initial admin account settings. An empty
// password means the seeder generates one and logs it once.
type SeedConfig struct {
	AdminLogin    string
	AdminEmail    string
	AdminPassword string
}

// Load reads configuration from a .env file and environment variables
func Load() (*Config, error) {
	// .env is optional; plain environment variables win in production
	_ = godotenv.Load()

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: %q (must be 'dev' or 'prod')", appMode)
	}

	return &Config{
		AppMode:  appMode,
		Database: loadDatabaseConfig(appMode),
		Seed: SeedConfig{
			AdminLogin:    getEnv("ADMIN_LOGIN", "admin"),
			AdminEmail:    getEnv("ADMIN_EMAIL", "admin@systemgp.local"),
			AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		},
	}, nil
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	return DatabaseConfig{
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", "3306"),
		User:     getEnv(prefix+"DB_USER", "root"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "systemgp"),
	}
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}
