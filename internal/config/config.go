package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Logging  LoggingConfig
	Exercise ExerciseConfig
	Contact  ContactConfig
	HTTP     HTTPConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            string
	Environment     string
	ShutdownTimeout time.Duration
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string // json or console
}

// ExerciseConfig holds guided session configuration
type ExerciseConfig struct {
	StepDuration time.Duration
	TickInterval time.Duration
	SessionTTL   time.Duration
	MaxSessions  int
}

// ContactConfig holds contact notification configuration.
// Without a Resend API key messages are only logged.
type ContactConfig struct {
	ResendAPIKey string
	From         string
	To           []string
}

// HTTPConfig holds request handling options
type HTTPConfig struct {
	ValidateRequests bool
	AllowOrigins     []string
}

var environments = map[string]bool{
	"development": true,
	"test":        true,
	"staging":     true,
	"production":  true,
}

var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	// Read from environment variables
	v.AutomaticEnv()

	// Bind specific environment variables
	bindEnvVars(v)

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.shutdowntimeout", 30*time.Second)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	// Exercise session defaults
	v.SetDefault("exercise.stepduration", 30*time.Second)
	v.SetDefault("exercise.tickinterval", time.Second)
	v.SetDefault("exercise.sessionttl", 30*time.Minute)
	v.SetDefault("exercise.maxsessions", 1000)

	// Contact defaults
	v.SetDefault("contact.to", []string{})

	// HTTP defaults
	v.SetDefault("http.validaterequests", true)
	v.SetDefault("http.alloworigins", []string{"*"})
}

// bindEnvVars binds environment variables to config keys
func bindEnvVars(v *viper.Viper) {
	// Server
	v.BindEnv("server.port", "PORT")
	v.BindEnv("server.environment", "ENV", "ENVIRONMENT")
	v.BindEnv("server.shutdowntimeout", "SHUTDOWN_TIMEOUT")

	// Logging
	v.BindEnv("logging.level", "LOG_LEVEL")
	v.BindEnv("logging.format", "LOG_FORMAT")

	// Exercise
	v.BindEnv("exercise.stepduration", "EXERCISE_STEP_DURATION")
	v.BindEnv("exercise.tickinterval", "EXERCISE_TICK_INTERVAL")
	v.BindEnv("exercise.sessionttl", "EXERCISE_SESSION_TTL")
	v.BindEnv("exercise.maxsessions", "EXERCISE_MAX_SESSIONS")

	// Contact
	v.BindEnv("contact.resendapikey", "RESEND_API_KEY")
	v.BindEnv("contact.from", "CONTACT_FROM")
	v.BindEnv("contact.to", "CONTACT_TO")

	// HTTP
	v.BindEnv("http.validaterequests", "HTTP_VALIDATE_REQUESTS")
	v.BindEnv("http.alloworigins", "HTTP_ALLOW_ORIGINS")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server.port is required")
	}

	if !environments[c.Server.Environment] {
		return fmt.Errorf("server.environment must be one of development, test, staging, production: %q", c.Server.Environment)
	}

	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdowntimeout must be positive")
	}

	if !logLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("logging.level must be one of debug, info, warn, error: %q", c.Logging.Level)
	}

	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("logging.format must be json or console: %q", c.Logging.Format)
	}

	if c.Exercise.StepDuration <= 0 {
		return fmt.Errorf("exercise.stepduration must be positive")
	}

	if c.Exercise.TickInterval <= 0 {
		return fmt.Errorf("exercise.tickinterval must be positive")
	}

	if c.Exercise.SessionTTL < 0 {
		return fmt.Errorf("exercise.sessionttl must not be negative")
	}

	if c.Exercise.MaxSessions < 0 {
		return fmt.Errorf("exercise.maxsessions must not be negative")
	}

	if c.Contact.ResendAPIKey != "" && (c.Contact.From == "" || len(c.Contact.To) == 0) {
		return fmt.Errorf("contact.from and contact.to are required when a Resend API key is set")
	}

	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
