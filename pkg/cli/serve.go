package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/coapi/validator/pkg/api"
	"github.com/coapi/validator/pkg/config"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Run the validation API server",
		Description: `Loads the grammar once and serves POST /v1/validation until interrupted.

Settings are read in order from built-in defaults, the --config file,
the environment (PORT, LOG_LEVEL, GRAMMAR_FILE) and finally flags.

# Examples

  coapi-validator serve --grammar grammar.yaml --port 9000
  coapi-validator serve --config validator.yaml`,
		Flags: []cli.Flag{
			grammarFlag(),
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "listen port (default: 8080 or PORT)",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML configuration file",
			},
			kubeconfigFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := serveConfig(cmd)
			if err != nil {
				return err
			}
			return api.Serve(ctx, cfg)
		},
	}
}

// serveConfig layers flags over the file and environment configuration.
func serveConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	if loc := cmd.String("grammar"); loc != "" {
		cfg.GrammarLocation = loc
	}
	if cmd.IsSet("port") {
		cfg.Server.Port = int(cmd.Int("port"))
	}
	if kc := cmd.String("kubeconfig"); kc != "" {
		cfg.Kubeconfig = kc
	}
	if cmd.Root().Bool("debug") {
		cfg.Server.LogLevel = "debug"
	}
	return cfg, nil
}
