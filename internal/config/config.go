// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string `env:"PORT" envDefault:"8080"`

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// LogLevel controls the minimum log level: debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// CORSOrigins is the list of allowed cross-origin request origins.
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"http://localhost:3000" envSeparator:","`

	// APIBaseURL prefixes the confirmation links sent by email.
	APIBaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:8080"`

	// WebBaseURL is where confirmation links redirect the browser afterwards.
	WebBaseURL string `env:"WEB_BASE_URL" envDefault:"http://localhost:3000"`

	// MaxBodyBytes caps request bodies.
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"1048576"`

	Mail Mail `envPrefix:"MAIL_"`
	SMTP SMTP `envPrefix:"SMTP_"`

	// NotifyTimeout bounds each individual email send.
	NotifyTimeout time.Duration `env:"NOTIFY_TIMEOUT" envDefault:"10s"`

	// NotifyConcurrency caps parallel sends when confirming a trip.
	NotifyConcurrency int `env:"NOTIFY_CONCURRENCY" envDefault:"8"`

	// OTLPEndpoint enables tracing when set, e.g. http://localhost:4318.
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// Mail is the sender identity and language of outgoing email.
type Mail struct {
	FromName    string `env:"FROM_NAME" envDefault:"plann.er"`
	FromAddress string `env:"FROM_ADDRESS" envDefault:"hello@plann.er"`
	Locale      string `env:"LOCALE" envDefault:"en"`
}

// SMTP is the outbound relay. An empty Host logs emails instead of sending them.
type SMTP struct {
	Host     string `env:"HOST"`
	Port     int    `env:"PORT" envDefault:"587"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		var aggErr env.AggregateError
		if errors.As(err, &aggErr) {
			return Config{}, fmt.Errorf("config.Load: %s", describe(aggErr))
		}
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}

	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	cfg.WebBaseURL = strings.TrimRight(cfg.WebBaseURL, "/")
	return cfg, nil
}

// describe flattens env's aggregate error, naming missing variables first.
func describe(agg env.AggregateError) string {
	var missing, other []string
	for _, err := range agg.Errors {
		var notSet env.VarIsNotSetError
		var empty env.EmptyVarError
		switch {
		case errors.As(err, &notSet):
			missing = append(missing, notSet.Key)
		case errors.As(err, &empty):
			missing = append(missing, empty.Key)
		default:
			other = append(other, err.Error())
		}
	}
	var parts []string
	if len(missing) > 0 {
		parts = append(parts, "required environment variables not set: "+strings.Join(missing, ", "))
	}
	return strings.Join(append(parts, other...), "; ")
}
