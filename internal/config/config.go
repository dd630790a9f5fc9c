package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	DatabaseURL        string // Postgres connection string
	JWTSecret          string // Token signing secret
	JWTExpirationHours int64  // Token validity window
	ServerPort         string // HTTP listen port
	LogLevel           string // Log verbosity
	AppEnv             string // "production" switches release mode and JSON logs
	InitialAdminEmail  string // First account registered with this email becomes admin
}

// IsProd reports whether the app runs in production mode
func (c *Config) IsProd() bool {
	return c.AppEnv == "production"
}

// Load reads configuration from the environment, with a .env file as fallback
func Load() (*Config, error) {
	_ = godotenv.Load() // Load .env file if present

	cfg := &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		JWTSecret:         os.Getenv("JWT_SECRET_KEY"),
		ServerPort:        os.Getenv("SERVER_PORT"),
		LogLevel:          os.Getenv("LOG_LEVEL"),
		AppEnv:            os.Getenv("APP_ENV"),
		InitialAdminEmail: os.Getenv("INITIAL_ADMIN_EMAIL"),
	}

	if cfg.DatabaseURL == "" {
		dsn, err := dsnFromParts()
		if err != nil {
			return nil, err
		}
		cfg.DatabaseURL = dsn
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY not set in environment")
	}

	cfg.JWTExpirationHours = 24
	if raw := os.Getenv("JWT_EXPIRATION_HOURS"); raw != "" {
		hours, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS %q: %w", raw, err)
		}
		cfg.JWTExpirationHours = hours
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.AppEnv == "" {
		cfg.AppEnv = "development"
	}

	return cfg, nil
}

// dsnFromParts builds a connection string from the discrete DB_* variables
func dsnFromParts() (string, error) {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	if dbHost == "" || dbPort == "" || dbUser == "" || dbName == "" {
		return "", fmt.Errorf("database environment variables not set (DATABASE_URL or DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME)")
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPassword, dbName), nil
}
