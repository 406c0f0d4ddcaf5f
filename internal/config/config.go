package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"exportdesk/internal/infrastructure/logging"
)

// EnvPrefix is prepended to every environment variable read by LoadFromEnvironment
const EnvPrefix = "EXPORTDESK_"

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
	EnvTest        = "test"
)

// Config holds the ambient settings of the desktop backend.
// Commands themselves are not configurable.
type Config struct {
	// Environment and runtime settings
	Environment string `json:"environment" env:"ENVIRONMENT"` // production, development, test
	LogLevel    string `json:"logLevel" env:"LOG_LEVEL"`       // debug, info, warn, error

	// Window settings passed to the host framework
	WindowTitle  string `json:"windowTitle" env:"WINDOW_TITLE"`
	WindowWidth  int    `json:"windowWidth" env:"WINDOW_WIDTH"`
	WindowHeight int    `json:"windowHeight" env:"WINDOW_HEIGHT"`

	// User-Agent sent by the fetch commands
	UserAgent string `json:"userAgent" env:"USER_AGENT"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Environment:  EnvProduction,
		LogLevel:     "info",
		WindowTitle:  "Export Desk",
		WindowWidth:  1280,
		WindowHeight: 800,
		UserAgent:    "exportdesk/1.0",
	}
}

// DevelopmentConfig returns a configuration optimized for development
func DevelopmentConfig() *Config {
	config := DefaultConfig()
	config.Environment = EnvDevelopment
	config.LogLevel = "debug"
	config.WindowTitle = "Export Desk (dev)"
	return config
}

// TestConfig returns a configuration optimized for testing
func TestConfig() *Config {
	config := DefaultConfig()
	config.Environment = EnvTest
	config.LogLevel = "error"
	return config
}

// ConfigForEnvironment returns the preset for env, falling back to production
func ConfigForEnvironment(environment string) *Config {
	switch normalize(environment) {
	case EnvDevelopment:
		return DevelopmentConfig()
	case EnvTest:
		return TestConfig()
	default:
		return DefaultConfig()
	}
}

// Load builds the preset for environment, overlays EXPORTDESK_* variables and validates the result
func Load(environment string) (*Config, error) {
	config := ConfigForEnvironment(environment)
	if err := config.LoadFromEnvironment(); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadFromEnvironment overlays EXPORTDESK_* variables onto c.
// Unset variables leave the current value untouched.
func (c *Config) LoadFromEnvironment() error {
	return c.loadFrom(env.Options{Prefix: EnvPrefix})
}

func (c *Config) loadFrom(opts env.Options) error {
	if err := env.ParseWithOptions(c, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	c.Environment = normalize(c.Environment)
	c.LogLevel = normalize(c.LogLevel)
	return nil
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// Validate validates the configuration parameters
func (c *Config) Validate() error {
	switch c.Environment {
	case EnvProduction, EnvDevelopment, EnvTest:
	default:
		return fmt.Errorf("environment must be one of production, development, test, got %q", c.Environment)
	}

	if _, ok := logging.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("logLevel must be one of debug, info, warn, error, got %q", c.LogLevel)
	}

	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	}

	if strings.TrimSpace(c.WindowTitle) == "" {
		return fmt.Errorf("windowTitle cannot be empty")
	}

	if strings.TrimSpace(c.UserAgent) == "" {
		return fmt.Errorf("userAgent cannot be empty")
	}

	return nil
}

// Level returns the parsed log level
func (c *Config) Level() logging.Level {
	level, _ := logging.ParseLevel(c.LogLevel)
	return level
}

// Clone returns a copy of the configuration
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// IsDevelopment reports whether the development preset is active
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}
