package config

import (
	"strings"
	"testing"

	"github.com/caarlos0/env/v11"

	"exportdesk/internal/infrastructure/logging"
)

func TestConfigForEnvironment(t *testing.T) {
	tests := []struct {
		env       string
		wantEnv   string
		wantLevel string
	}{
		{"development", EnvDevelopment, "debug"},
		{" Development ", EnvDevelopment, "debug"},
		{"TEST", EnvTest, "error"},
		{"test", EnvTest, "error"},
		{"production", EnvProduction, "info"},
		{"", EnvProduction, "info"},
		{"staging", EnvProduction, "info"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			config := ConfigForEnvironment(tt.env)
			if config.Environment != tt.wantEnv {
				t.Errorf("Environment = %q, want %q", config.Environment, tt.wantEnv)
			}
			if config.LogLevel != tt.wantLevel {
				t.Errorf("LogLevel = %q, want %q", config.LogLevel, tt.wantLevel)
			}
			if err := config.Validate(); err != nil {
				t.Errorf("preset should validate: %v", err)
			}
		})
	}
}

func TestLoadFrom_OverlaysPrefixedVariables(t *testing.T) {
	config := DefaultConfig()
	err := config.loadFrom(env.Options{
		Prefix: EnvPrefix,
		Environment: map[string]string{
			"EXPORTDESK_ENVIRONMENT":   " Development ",
			"EXPORTDESK_LOG_LEVEL":     "WARN",
			"EXPORTDESK_WINDOW_WIDTH":  "1024",
			"EXPORTDESK_WINDOW_HEIGHT": "768",
			"EXPORTDESK_WINDOW_TITLE":  "Exports",
			"EXPORTDESK_USER_AGENT":    "custom-agent",
			"LOG_LEVEL":                "debug", // unprefixed, ignored
		},
	})
	if err != nil {
		t.Fatalf("loadFrom() error = %v", err)
	}

	if config.Environment != EnvDevelopment {
		t.Errorf("Environment = %q", config.Environment)
	}
	if config.LogLevel != "warn" {
		t.Errorf("LogLevel = %q", config.LogLevel)
	}
	if config.WindowWidth != 1024 || config.WindowHeight != 768 {
		t.Errorf("window = %dx%d", config.WindowWidth, config.WindowHeight)
	}
	if config.WindowTitle != "Exports" || config.UserAgent != "custom-agent" {
		t.Errorf("unexpected strings %+v", config)
	}
	if config.Level() != logging.LevelWarn {
		t.Errorf("Level() = %v", config.Level())
	}
}

func TestLoadFrom_KeepsDefaultsWhenUnset(t *testing.T) {
	config := DevelopmentConfig()
	if err := config.loadFrom(env.Options{Prefix: EnvPrefix, Environment: map[string]string{}}); err != nil {
		t.Fatalf("loadFrom() error = %v", err)
	}

	if *config != *DevelopmentConfig() {
		t.Errorf("config changed without variables: %+v", config)
	}
}

func TestLoadFrom_InvalidNumber(t *testing.T) {
	config := DefaultConfig()
	err := config.loadFrom(env.Options{
		Prefix:      EnvPrefix,
		Environment: map[string]string{"EXPORTDESK_WINDOW_WIDTH": "wide"},
	})
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "parse env") {
		t.Errorf("unexpected error %v", err)
	}
}

func TestLoad_FromProcessEnvironment(t *testing.T) {
	t.Setenv("EXPORTDESK_LOG_LEVEL", "debug")
	t.Setenv("EXPORTDESK_WINDOW_TITLE", "From Env")

	config, err := Load(EnvTest)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if config.LogLevel != "debug" || config.WindowTitle != "From Env" || config.Environment != EnvTest {
		t.Errorf("unexpected config %+v", config)
	}
}

func TestLoad_RejectsInvalid(t *testing.T) {
	t.Setenv("EXPORTDESK_LOG_LEVEL", "chatty")

	if _, err := Load(EnvProduction); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"bad environment", func(c *Config) { c.Environment = "staging" }, "environment"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "logLevel"},
		{"zero width", func(c *Config) { c.WindowWidth = 0 }, "window size"},
		{"negative height", func(c *Config) { c.WindowHeight = -1 }, "window size"},
		{"blank title", func(c *Config) { c.WindowTitle = "  " }, "windowTitle"},
		{"blank user agent", func(c *Config) { c.UserAgent = "" }, "userAgent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)

			err := config.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestClone(t *testing.T) {
	original := DefaultConfig()
	clone := original.Clone()
	clone.WindowTitle = "changed"

	if original.WindowTitle == "changed" {
		t.Error("Clone() should not share state")
	}
}

func TestIsDevelopment(t *testing.T) {
	if DefaultConfig().IsDevelopment() || TestConfig().IsDevelopment() || !DevelopmentConfig().IsDevelopment() {
		t.Error("IsDevelopment disagrees with presets")
	}
}

func TestLoad_NormalizesEnvironmentBeforePreset(t *testing.T) {
	t.Setenv("EXPORTDESK_ENVIRONMENT", "Development")

	config, err := Load(" Development ")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := DevelopmentConfig()
	if config.Environment != EnvDevelopment || config.LogLevel != want.LogLevel || config.WindowTitle != want.WindowTitle {
		t.Errorf("expected development preset, got %+v", config)
	}
}
