// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// Env is the deployment environment: dev, staging or prod. Defaults to "prod".
	// In dev, logs are written for humans instead of as JSON.
	Env string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// SessionTTL is how long a login session lasts. Defaults to 24h.
	SessionTTL time.Duration

	// CookieSecure marks the session cookie Secure (HTTPS only).
	CookieSecure bool

	// MaxBodyBytes caps request body sizes. Defaults to 1 MiB.
	MaxBodyBytes int64

	// AutoMigrate applies pending migrations at startup. Defaults to true.
	AutoMigrate bool

	// AdminUsername and AdminPassword, when both set, make sure a superuser
	// with that name exists at startup. Nothing happens if it already exists.
	AdminUsername string
	AdminPassword string

	// SessionSweep is how often expired sessions are deleted. Defaults to 1h.
	SessionSweep time.Duration
}

var defaults = map[string]any{
	"PORT":           "8080",
	"LOG_LEVEL":      "info",
	"APP_ENV":        "prod",
	"CORS_ORIGINS":   "http://localhost:5173",
	"SESSION_TTL":    "24h",
	"COOKIE_SECURE":  false,
	"MAX_BODY_BYTES": int64(1 << 20),
	"AUTO_MIGRATE":   true,
	"SESSION_SWEEP":  "1h",
}

// Load reads configuration from environment variables and returns a Config.
// Empty variables count as unset. Returns an error listing any required
// variables that are missing.
func Load() (Config, error) {
	v := viper.New()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	v.AutomaticEnv()

	cfg := Config{
		Port:         v.GetString("PORT"),
		DatabaseURL:  v.GetString("DATABASE_URL"),
		LogLevel:     v.GetString("LOG_LEVEL"),
		Env:          v.GetString("APP_ENV"),
		CORSOrigins:  splitCSV(v.GetString("CORS_ORIGINS")),
		SessionTTL:   v.GetDuration("SESSION_TTL"),
		CookieSecure: v.GetBool("COOKIE_SECURE"),
		MaxBodyBytes: v.GetInt64("MAX_BODY_BYTES"),
		AutoMigrate:  v.GetBool("AUTO_MIGRATE"),

		AdminUsername: v.GetString("ADMIN_USERNAME"),
		AdminPassword: v.GetString("ADMIN_PASSWORD"),
		SessionSweep:  v.GetDuration("SESSION_SWEEP"),
	}

	var missing []string
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	if cfg.SessionTTL <= 0 {
		return Config{}, fmt.Errorf("SESSION_TTL must be a positive duration, got %q", v.GetString("SESSION_TTL"))
	}
	if cfg.SessionSweep <= 0 {
		return Config{}, fmt.Errorf("SESSION_SWEEP must be a positive duration, got %q", v.GetString("SESSION_SWEEP"))
	}
	if (cfg.AdminUsername == "") != (cfg.AdminPassword == "") {
		return Config{}, fmt.Errorf("ADMIN_USERNAME and ADMIN_PASSWORD must be set together")
	}
	if cfg.MaxBodyBytes <= 0 {
		return Config{}, fmt.Errorf("MAX_BODY_BYTES must be positive, got %d", cfg.MaxBodyBytes)
	}

	return cfg, nil
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
