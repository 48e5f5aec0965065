package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultJWTSecret is the development fallback used when JWT_SECRET is not
// set. It is intentionally kept for parity with existing deployments and is
// logged as a warning at startup.
const DefaultJWTSecret = "your-fallback-secret-key"

// Config holds all application configuration loaded from environment variables.
// It is the single source of truth for runtime parameters and is passed
// explicitly to constructors at startup.
type Config struct {
	Port      string
	Env       string
	BaseURL   string
	JWTSecret string
	UploadDir string

	DB    DatabaseConfig
	Redis RedisConfig
	SMTP  SMTPConfig
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// RedisConfig contains Redis connection parameters. Redis is optional: when
// Host is empty the content cache is disabled.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// SMTPConfig contains credentials for the welcome-email sender. When Username
// is empty, administrator creation still works and reports a warning instead
// of sending mail.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// Load reads configuration from environment variables. If a .env file exists
// in the working directory, it will be loaded first. It returns a populated
// Config or an error with a human-friendly message.
func Load() (*Config, error) {
	// Load .env if present; ignore error if file is missing so that production
	// environments relying solely on real environment variables keep working.
	_ = godotenv.Load()

	cfg := &Config{}

	// Server
	cfg.Port = getEnv("PORT", "8080")
	cfg.Env = getEnv("ENV", "development")
	cfg.BaseURL = getEnv("PUBLIC_BASE_URL", "http://localhost:"+cfg.Port)
	cfg.JWTSecret = getEnv("JWT_SECRET", DefaultJWTSecret)
	cfg.UploadDir = getEnv("UPLOAD_DIR", "./public/uploads")

	// Database
	cfg.DB = DatabaseConfig{
		Host:     getEnv("DB_HOST", ""),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", ""),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", ""),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Redis (optional content cache)
	cfg.Redis = RedisConfig{
		Host:     getEnv("REDIS_HOST", ""),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvInt("REDIS_DB", 0),
	}

	// SMTP (Gmail account, same variables the panel has always used)
	cfg.SMTP = SMTPConfig{
		Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		Port:     getEnvInt("SMTP_PORT", 587),
		Username: getEnv("GMAIL_USER", ""),
		Password: getEnv("GMAIL_PASSWORD", ""),
	}

	// Basic validation for DB parameters — keeps messages concise and helpful.
	if cfg.DB.Host == "" || cfg.DB.User == "" || cfg.DB.Name == "" {
		return nil, errors.New("database configuration incomplete: ensure DB_HOST, DB_USER, and DB_NAME are set")
	}

	return cfg, nil
}

// IsProduction reports whether the server runs with ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// getEnv returns the value of an environment variable or a default if empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvInt returns the value of an environment variable as an integer or a default if empty/invalid.
func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}
