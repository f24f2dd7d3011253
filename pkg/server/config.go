package server

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/coapi/validator/pkg/defaults"
)

const (
	// EnvPort overrides Config.Port.
	EnvPort = "PORT"
	// EnvLogLevel overrides Config.LogLevel.
	EnvLogLevel = "LOG_LEVEL"
)

// DefaultConfig returns sensible defaults, overridden by PORT and LOG_LEVEL
// when set.
func DefaultConfig() *Config {
	cfg := &Config{
		Address:         "",
		Port:            defaults.ServerPort,
		RateLimit:       defaults.ServerRateLimit,
		RateLimitBurst:  defaults.ServerRateLimitBurst,
		MaxBodyBytes:    defaults.ServerMaxBodyBytes,
		ReadTimeout:     defaults.ServerReadTimeout,
		WriteTimeout:    defaults.ServerWriteTimeout,
		IdleTimeout:     defaults.ServerIdleTimeout,
		ShutdownTimeout: defaults.ServerShutdownTimeout,
		LogLevel:        slog.LevelInfo.String(),
	}

	cfg.ApplyEnv()
	return cfg
}

// ApplyEnv overrides fields from the environment. Unparsable values are
// ignored.
func (c *Config) ApplyEnv() {
	if portStr := os.Getenv(EnvPort); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			c.Port = port
		} else {
			slog.Warn("ignoring invalid port from environment", "value", portStr)
		}
	}

	if logLevelStr := os.Getenv(EnvLogLevel); logLevelStr != "" {
		c.LogLevel = logLevelStr
	}
}

// Validate reports settings the server cannot run with.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("rate limit must be positive, got %v", c.RateLimit)
	}
	if c.RateLimitBurst <= 0 {
		return fmt.Errorf("rate limit burst must be positive, got %d", c.RateLimitBurst)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("max body bytes must be positive, got %d", c.MaxBodyBytes)
	}
	return nil
}

// addr returns the listen address.
func (c *Config) addr() string {
	return fmt.Sprintf("%s:%d", c.Address, c.Port)
}
