package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/coapi/validator/pkg/checker"
	"github.com/coapi/validator/pkg/config"
	"github.com/coapi/validator/pkg/grammar"
	"github.com/coapi/validator/pkg/logging"
	"github.com/coapi/validator/pkg/server"
)

const (
	name           = "coapi-validator"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/coapi/validator/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Routes returns the validation endpoints served next to the built-in
// health, readiness and metrics routes.
func Routes(c *checker.Checker) map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/validation": c.HandleValidation,
		"/validation":    c.HandleValidation,
		"/v1/grammar":    c.HandleGrammar,
	}
}

// Serve loads the grammar named by cfg and runs the API server until ctx
// is canceled or the process is signaled. A grammar that cannot be loaded
// is returned as an error before anything listens.
func Serve(ctx context.Context, cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration is required")
	}
	if cfg.Server != nil && cfg.Server.LogLevel != "" {
		slog.SetDefault(logging.NewStructuredLogger(os.Stderr, name, version,
			logging.ParseLevel(cfg.Server.LogLevel)))
	} else {
		logging.SetDefaultStructuredLogger(name, version)
	}

	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	root, err := grammar.Load(ctx, cfg.GrammarLocation, grammar.WithKubeconfig(cfg.Kubeconfig))
	if err != nil {
		slog.Error("failed to load grammar", "location", cfg.GrammarLocation, "error", err)
		return err
	}
	stats := root.Stats()
	slog.Info("grammar loaded",
		"location", cfg.GrammarLocation,
		"nodes", stats.Nodes,
		"depth", stats.Depth)

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithConfig(cfg.Server),
		server.WithHandler(Routes(checker.New(root))),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
