package config

import (
	"os"
	"testing"
	"time"
)

func TestGetEnvDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when unset", "TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}
			if got := getEnvDefault(tc.key, tc.defaultVal); got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestGetEnvIntDefault(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		envValue string
		def      int
		expected int
	}{
		{"parses integer", "TEST_INT_1", "30", 60, 30},
		{"uses default for unset", "TEST_INT_2", "", 60, 60},
		{"uses default for non-numeric", "TEST_INT_3", "abc", 60, 60},
		{"uses default for non-positive", "TEST_INT_4", "-5", 60, 60},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}
			if got := getEnvIntDefault(tc.key, tc.def); got != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, got)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "OPENAI_API_KEY", "OPENAI_MODEL", "APP_ENV", "LOG_LEVEL", "PERSONA_FILE", "OPENAI_TIMEOUT_SECONDS"} {
		os.Unsetenv(key)
	}

	cfg := Load()
	if cfg.Port != "3000" {
		t.Errorf("Expected default port 3000, got %q", cfg.Port)
	}
	if cfg.Environment != "development" {
		t.Errorf("Expected default environment development, got %q", cfg.Environment)
	}
	if cfg.UpstreamTimeout != 60*time.Second {
		t.Errorf("Expected default upstream timeout 60s, got %v", cfg.UpstreamTimeout)
	}
	if !cfg.IsDevelopment() {
		t.Error("Expected default config to be development mode")
	}
}

func TestIsDevelopment(t *testing.T) {
	if (Config{Environment: "production"}).IsDevelopment() {
		t.Error("Expected production to not be development mode")
	}
	if !(Config{Environment: "development"}).IsDevelopment() {
		t.Error("Expected development mode")
	}
}
