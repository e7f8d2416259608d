// Package config loads process configuration from the environment.
//
// Credentials are deliberately not read here: the client reads them at
// first token request, so a missing appkey/appsecret is a per-call
// configuration error rather than a startup failure.
package config

import (
	"os"
	"time"
)

// Environment variables understood by the server.
const (
	EnvBaseURL  = "DINGDING_BASE_URL"
	EnvTokenTTL = "DINGDING_TOKEN_TTL"
	EnvLogLevel = "DINGDING_LOG_LEVEL"
	EnvLogFile  = "DINGDING_LOG_FILE"
)

// Config holds the server configuration.
type Config struct {
	// BaseURL overrides the DingTalk API endpoint. Empty means production.
	BaseURL string

	// TokenTTL enables access-token caching when positive. Zero keeps the
	// upstream-faithful one-token-per-operation behavior.
	TokenTTL time.Duration

	// LogLevel is a logrus level name. Empty means info.
	LogLevel string

	// LogFile redirects logging to a file. Empty means stderr.
	LogFile string
}

// FromEnv reads the configuration from the environment. An unparsable
// TokenTTL is treated as unset.
func FromEnv() Config {
	cfg := Config{
		BaseURL:  os.Getenv(EnvBaseURL),
		LogLevel: os.Getenv(EnvLogLevel),
		LogFile:  os.Getenv(EnvLogFile),
	}
	if raw := os.Getenv(EnvTokenTTL); raw != "" {
		if ttl, err := time.ParseDuration(raw); err == nil && ttl > 0 {
			cfg.TokenTTL = ttl
		}
	}
	return cfg
}
