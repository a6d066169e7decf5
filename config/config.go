package config

import (
	"log"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime settings. Values come from the environment
// (MINISHOP_* variables), with defaults suitable for local development.
type Config struct {
	Port           string        `envconfig:"PORT" default:"8080"`
	GinMode        string        `envconfig:"GIN_MODE" default:"debug"`
	AllowedOrigins []string      `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	SessionTTL     time.Duration `envconfig:"SESSION_TTL" default:"30m"`
	SessionSweep   time.Duration `envconfig:"SESSION_SWEEP" default:"5m"`
	RateLimitMax   int           `envconfig:"RATE_LIMIT_MAX" default:"120"`
	RateLimitWin   time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
}

var App Config

// Load parses the environment into App. Call once at startup, after
// godotenv has had its chance to populate the process environment.
func Load() Config {
	if err := envconfig.Process("minishop", &App); err != nil {
		log.Fatalf("❌ invalid configuration: %v", err)
	}

	log.Printf("✅ Configuration loaded (port=%s, session_ttl=%s)", App.Port, App.SessionTTL)
	return App
}
