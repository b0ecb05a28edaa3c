package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Services ServicesConfig
	Session  SessionConfig
	Logging  LoggingConfig
	Metrics  MetricsConfig
	HTTP     HTTPConfig
}

type AppConfig struct {
	Env string
}

// ServicesConfig holds the base URLs of the three backend services.
type ServicesConfig struct {
	UserBaseURL   string
	CourseBaseURL string
	ChatBaseURL   string
}

type SessionConfig struct {
	// File is the path of the on-disk key-value session file.
	File string
	// InMemory switches the session store to the non-persistent variant.
	InMemory bool
}

type LoggingConfig struct {
	Level string
	Dir   string
}

type MetricsConfig struct {
	// Addr is the optional listen address for the prometheus endpoint.
	// Empty disables the listener.
	Addr string
}

type HTTPConfig struct {
	Timeout time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("USER_SERVICE_URL", "http://localhost:8081")
	v.SetDefault("COURSE_SERVICE_URL", "http://localhost:8082")
	v.SetDefault("CHAT_SERVICE_URL", "http://localhost:8083")
	v.SetDefault("SESSION_FILE", "")
	v.SetDefault("SESSION_IN_MEMORY", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DIR", "")
	v.SetDefault("METRICS_ADDR", "")
	v.SetDefault("HTTP_TIMEOUT_SECONDS", 30)

	// Automatically read environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	_ = v.ReadInConfig() //nolint:errcheck // Ignore error if .env file doesn't exist

	cfg := &Config{
		App: AppConfig{
			Env: v.GetString("APP_ENV"),
		},
		Services: ServicesConfig{
			UserBaseURL:   strings.TrimRight(v.GetString("USER_SERVICE_URL"), "/"),
			CourseBaseURL: strings.TrimRight(v.GetString("COURSE_SERVICE_URL"), "/"),
			ChatBaseURL:   strings.TrimRight(v.GetString("CHAT_SERVICE_URL"), "/"),
		},
		Session: SessionConfig{
			File:     v.GetString("SESSION_FILE"),
			InMemory: v.GetBool("SESSION_IN_MEMORY"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
			Dir:   v.GetString("LOG_DIR"),
		},
		Metrics: MetricsConfig{
			Addr: v.GetString("METRICS_ADDR"),
		},
		HTTP: HTTPConfig{
			Timeout: time.Duration(v.GetInt("HTTP_TIMEOUT_SECONDS")) * time.Second,
		},
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that required configuration values are present.
func (c *Config) Validate() error {
	if c.Services.UserBaseURL == "" {
		return fmt.Errorf("USER_SERVICE_URL is required")
	}
	if c.Services.CourseBaseURL == "" {
		return fmt.Errorf("COURSE_SERVICE_URL is required")
	}
	if c.Services.ChatBaseURL == "" {
		return fmt.Errorf("CHAT_SERVICE_URL is required")
	}
	if !c.Session.InMemory && c.Session.File == "" {
		return fmt.Errorf("SESSION_FILE is required unless SESSION_IN_MEMORY is set")
	}
	if c.HTTP.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT_SECONDS must be positive")
	}
	return nil
}

// IsDevelopment returns true when running in a development environment.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true when running in a production environment.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
