// Package defaults provides centralized configuration constants for the
// validator.
//
// This package defines timeout values, size limits and concurrency bounds
// used across the codebase. Packages that expose these settings as options
// or configuration fields take their defaults from here.
//
// # Categories
//
//   - Server: listen port, rate limits, request body size and HTTP timeouts
//   - Kubernetes: API call timeout for ConfigMap reads and writes
//   - Documents: maximum nesting depth accepted by the parsers
//   - CLI: number of documents validated at once
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/coapi/validator/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.K8sAPITimeout)
//	defer cancel()
package defaults
