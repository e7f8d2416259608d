package config

import (
	"testing"
	"time"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv(EnvBaseURL, "")
	t.Setenv(EnvTokenTTL, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogFile, "")

	cfg := FromEnv()
	if cfg.BaseURL != "" || cfg.LogLevel != "" || cfg.LogFile != "" {
		t.Errorf("expected empty defaults, got %+v", cfg)
	}
	if cfg.TokenTTL != 0 {
		t.Errorf("token caching must be off by default, got %v", cfg.TokenTTL)
	}
}

func TestFromEnv_Values(t *testing.T) {
	t.Setenv(EnvBaseURL, "http://localhost:9000")
	t.Setenv(EnvTokenTTL, "30m")
	t.Setenv(EnvLogLevel, "debug")

	cfg := FromEnv()
	if cfg.BaseURL != "http://localhost:9000" {
		t.Errorf("unexpected base URL: %q", cfg.BaseURL)
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Errorf("unexpected token TTL: %v", cfg.TokenTTL)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("unexpected log level: %q", cfg.LogLevel)
	}
}

func TestFromEnv_BadTTLIgnored(t *testing.T) {
	t.Setenv(EnvTokenTTL, "not-a-duration")

	cfg := FromEnv()
	if cfg.TokenTTL != 0 {
		t.Errorf("unparsable TTL should be treated as unset, got %v", cfg.TokenTTL)
	}
}
