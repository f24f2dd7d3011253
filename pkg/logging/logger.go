// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	// EnvLogLevel overrides the default level of the structured logger.
	EnvLogLevel = "LOG_LEVEL"
)

// ParseLevel maps a level name to a slog.Level. Unknown names yield Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewStructuredLogger returns a JSON logger that tags every record with the
// service name and version.
func NewStructuredLogger(w io.Writer, name, version string, level slog.Level) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource: level == slog.LevelDebug,
		Level:     level,
	})
	return slog.New(h).With("name", name, "version", version)
}

// SetDefaultStructuredLogger installs a JSON logger on stderr as the slog
// default. The level comes from LOG_LEVEL, defaulting to info.
func SetDefaultStructuredLogger(name, version string) {
	level := ParseLevel(os.Getenv(EnvLogLevel))
	slog.SetDefault(NewStructuredLogger(os.Stderr, name, version, level))
}

// SetDefaultCLILogger installs a text logger on stderr for interactive use.
func SetDefaultCLILogger(level slog.Level) {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
}
