package defaults

import "time"

// Server defaults.
const (
	ServerPort           = 8080
	ServerRateLimit      = 100 // requests per second
	ServerRateLimitBurst = 200
	ServerMaxBodyBytes   = 4 << 20

	ServerReadTimeout     = 10 * time.Second
	ServerWriteTimeout    = 30 * time.Second
	ServerIdleTimeout     = 120 * time.Second
	ServerShutdownTimeout = 30 * time.Second
)

// K8sAPITimeout bounds a single Kubernetes API call.
const K8sAPITimeout = 30 * time.Second

// MaxNestingDepth is the deepest mapping or sequence nesting a parsed
// document may have.
const MaxNestingDepth = 256

// ValidateConcurrency is the number of documents the CLI checks at once.
const ValidateConcurrency = 4
