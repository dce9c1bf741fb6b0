package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"leadgen/internal/validation"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string
	ViewsDir   string // HTML templates, env: VIEWS_DIR

	// Webhook
	WebhookURL            string        // n8n (or compatible) workflow endpoint
	WebhookTimeout        time.Duration // upper bound for a single search call
	WebhookRatePerMinute  int           // outbound searches allowed per minute, 0 disables limiting
	WebhookHealthInterval time.Duration // 0 disables the background reachability probe

	// Session
	SessionSecret      string // Used for cookie encryption (min 32 chars)
	SessionIdleTimeout time.Duration
	RedisURL           string // Optional session storage, e.g. "redis://localhost:6379/0"

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "LinkedIn Lead Generator"
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER

	// Catalog holds the option lists offered to the user. Populated from
	// CONFIG_FILE when present, otherwise DefaultCatalog().
	Catalog *Catalog
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:                   getEnv("ENV", "development"),
		ServerAddr:            getEnv("SERVER_ADDR", ":3000"),
		BaseURL:               getEnv("BASE_URL", "http://localhost:3000"),
		ViewsDir:              getEnv("VIEWS_DIR", "./views"),
		WebhookURL:            getEnv("WEBHOOK_URL", ""),
		WebhookTimeout:        getDuration("WEBHOOK_TIMEOUT", 300*time.Second),
		WebhookRatePerMinute:  getInt("WEBHOOK_RATE_PER_MINUTE", 30),
		WebhookHealthInterval: getDuration("WEBHOOK_HEALTH_INTERVAL", 0),
		SessionSecret:         getEnv("SESSION_SECRET", "change-me-in-production-min-32-chars"),
		SessionIdleTimeout:    getDuration("SESSION_IDLE_TIMEOUT", 2*time.Hour),
		RedisURL:              getEnv("REDIS_URL", ""),
		CORSOrigins:           getEnv("CORS_ORIGINS", ""),

		SiteTitle:   getEnv("SITE_TITLE", "LinkedIn Lead Generator"),
		SiteTagline: getEnv("SITE_TAGLINE", "Executive lead search powered by your automation workflow"),
		SiteFooter:  getEnv("SITE_FOOTER", "LinkedIn Lead Generator - Powered by N8N"),
	}
}

// Validate checks settings that would make the server unusable.
func (c *Config) Validate() error {
	if c.WebhookURL != "" {
		if valid, msg := validation.ValidateURL(c.WebhookURL); !valid {
			return fmt.Errorf("WEBHOOK_URL: %s", msg)
		}
	}
	if c.WebhookTimeout <= 0 {
		return fmt.Errorf("WEBHOOK_TIMEOUT must be positive, got %s", c.WebhookTimeout)
	}
	if c.WebhookRatePerMinute < 0 {
		return fmt.Errorf("WEBHOOK_RATE_PER_MINUTE must not be negative, got %d", c.WebhookRatePerMinute)
	}
	if c.Catalog != nil {
		if err := c.Catalog.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsWebhookConfigured returns true if searches can be sent anywhere.
func (c *Config) IsWebhookConfigured() bool {
	return c.WebhookURL != ""
}
