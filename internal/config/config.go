// Package config loads and validates application configuration from environment variables.
// A .env file in the working directory, when present, is loaded first; variables
// already set in the environment win over it.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the API server and castctl.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	Log Log

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:3000"] (admin UI dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// MaxBodyBytes caps request body size. Defaults to 1 MiB.
	MaxBodyBytes int64

	// MetricsEnabled mounts GET /metrics. Defaults to true.
	MetricsEnabled bool

	// SeedAdminEmail and SeedAdminPassword are used by `castctl seed`.
	// The password is only required when seeding.
	SeedAdminEmail    string
	SeedAdminPassword string
}

// Log configures the process logger.
type Log struct {
	// Level controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	Level string

	// File, when set, receives a copy of every log line, rotated by size.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Client holds what the terminal wizard needs. It never touches the database.
type Client struct {
	// APIBaseURL is where the cast directory API is served.
	// Defaults to "http://localhost:8080".
	APIBaseURL string

	Log Log
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set or that
// fail to parse.
func Load() (Config, error) {
	_ = godotenv.Load()

	var problems []string

	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		CORSOrigins:    splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		SeedAdminEmail: getEnv("SEED_ADMIN_EMAIL", "admin@arisa.com"),
	}
	cfg.SeedAdminPassword = os.Getenv("SEED_ADMIN_PASSWORD")

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		problems = append(problems, "DATABASE_URL is required")
	}

	var err error
	if cfg.MaxBodyBytes, err = getInt64("MAX_BODY_BYTES", 1<<20); err != nil {
		problems = append(problems, err.Error())
	}
	if cfg.MetricsEnabled, err = getBool("METRICS_ENABLED", true); err != nil {
		problems = append(problems, err.Error())
	}
	if cfg.Log, err = loadLog(); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return Config{}, fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return cfg, nil
}

// LoadClient reads the subset of configuration the terminal wizard needs.
// Unlike Load it does not require DATABASE_URL.
func LoadClient() (Client, error) {
	_ = godotenv.Load()

	lc, err := loadLog()
	if err != nil {
		return Client{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return Client{
		APIBaseURL: strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:8080"), "/"),
		Log:        lc,
	}, nil
}

func loadLog() (Log, error) {
	l := Log{
		Level: getEnv("LOG_LEVEL", "info"),
		File:  os.Getenv("LOG_FILE"),
	}
	var errs []string
	var err error
	if l.MaxSizeMB, err = getInt("LOG_MAX_SIZE_MB", 100); err != nil {
		errs = append(errs, err.Error())
	}
	if l.MaxBackups, err = getInt("LOG_MAX_BACKUPS", 3); err != nil {
		errs = append(errs, err.Error())
	}
	if l.MaxAgeDays, err = getInt("LOG_MAX_AGE_DAYS", 28); err != nil {
		errs = append(errs, err.Error())
	}
	if len(errs) > 0 {
		return Log{}, fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return l, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer, got %q", key, v)
	}
	return n, nil
}

func getInt64(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, v)
	}
	return n, nil
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", key, v)
	}
	return b, nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
