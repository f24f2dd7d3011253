package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/coapi/validator/pkg/logging"
)

const name = "coapi-validator"

var (
	// overridden during build with ldflags, e.g.
	// -X "github.com/coapi/validator/pkg/cli.version=1.0.0"
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Exit codes returned by Execute.
const (
	ExitOK       = 0
	ExitError    = 1
	ExitCanceled = 2
)

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Validate YAML and JSON documents against a grammar",
		Version:               fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "write logs as JSON",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level := logging.ParseLevel(os.Getenv(logging.EnvLogLevel))
			if cmd.Bool("debug") {
				level = slog.LevelDebug
			}
			if cmd.Bool("log-json") {
				slog.SetDefault(logging.NewStructuredLogger(os.Stderr, name, version, level))
			} else {
				logging.SetDefaultCLILogger(level)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			validateCmd(),
			grammarCmd(),
			serveCmd(),
		},
	}
}

// Execute runs the CLI with the process arguments and exits with a
// non-zero status on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCmd().Run(ctx, os.Args)
	stop()

	if code := exitCode(err); code != ExitOK {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(code)
	}
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ExitCanceled
	default:
		return ExitError
	}
}
