package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected bool
	}{
		{
			name: "development environment",
			config: &Config{
				App: AppConfig{Env: "development"},
			},
			expected: true,
		},
		{
			name: "production environment",
			config: &Config{
				App: AppConfig{Env: "production"},
			},
			expected: false,
		},
		{
			name:     "unset environment",
			config:   &Config{},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.IsDevelopment())
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Services: ServicesConfig{
				UserBaseURL:   "http://localhost:8081",
				CourseBaseURL: "http://localhost:8082",
				ChatBaseURL:   "http://localhost:8083",
			},
			Session: SessionConfig{File: "/tmp/session.json"},
			HTTP:    HTTPConfig{Timeout: 30 * time.Second},
		}
	}

	t.Run("valid config passes", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("missing user service URL", func(t *testing.T) {
		cfg := valid()
		cfg.Services.UserBaseURL = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing course service URL", func(t *testing.T) {
		cfg := valid()
		cfg.Services.CourseBaseURL = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing chat service URL", func(t *testing.T) {
		cfg := valid()
		cfg.Services.ChatBaseURL = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("session file required for persistent store", func(t *testing.T) {
		cfg := valid()
		cfg.Session.File = ""
		assert.Error(t, cfg.Validate())

		cfg.Session.InMemory = true
		assert.NoError(t, cfg.Validate())
	})

	t.Run("non-positive timeout rejected", func(t *testing.T) {
		cfg := valid()
		cfg.HTTP.Timeout = 0
		assert.Error(t, cfg.Validate())
	})
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("USER_SERVICE_URL", "http://users.test/")
	t.Setenv("COURSE_SERVICE_URL", "http://courses.test")
	t.Setenv("CHAT_SERVICE_URL", "http://chat.test")
	t.Setenv("SESSION_IN_MEMORY", "true")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	// Trailing slash is trimmed so path joining stays predictable.
	assert.Equal(t, "http://users.test", cfg.Services.UserBaseURL)
	assert.Equal(t, "http://courses.test", cfg.Services.CourseBaseURL)
	assert.Equal(t, "http://chat.test", cfg.Services.ChatBaseURL)
	assert.True(t, cfg.Session.InMemory)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeout)
}

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("APP_ENV")
	t.Setenv("SESSION_FILE", "/tmp/eduterm-session.json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
	assert.Empty(t, cfg.Metrics.Addr)
}
