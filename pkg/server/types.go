package server

import (
	"time"

	"golang.org/x/time/rate"
)

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string    `json:"status" yaml:"status"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Reason    string    `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Config holds server configuration
type Config struct {
	// Server configuration
	Address string `yaml:"address"`
	Port    int    `yaml:"port"`

	// Rate limiting configuration
	RateLimit      rate.Limit `yaml:"rateLimit"`      // requests per second
	RateLimitBurst int        `yaml:"rateLimitBurst"` // burst size

	// Request limits
	MaxBodyBytes int64 `yaml:"maxBodyBytes"`

	// Timeouts
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"`
	IdleTimeout     time.Duration `yaml:"idleTimeout"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`

	// Logging
	LogLevel string `yaml:"logLevel"`
}
