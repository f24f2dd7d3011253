package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/coapi/validator/pkg/config"
	"github.com/coapi/validator/pkg/grammar"
	"github.com/coapi/validator/pkg/serializer"
)

// Flags shared by several commands. Each call returns a fresh flag since
// flags carry parse state.

func grammarFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "grammar",
		Aliases: []string{"g"},
		Usage:   "grammar file path or ConfigMap URI (cm://namespace/name[/key])",
		Sources: cli.EnvVars(config.EnvGrammarFile),
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output destination: file path, ConfigMap URI (cm://namespace/name[/key]) or - for stdout",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("output format (%s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func kubeconfigFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "kubeconfig",
		Aliases: []string{"k"},
		Usage:   "path to kubeconfig used for ConfigMap URIs (default: KUBECONFIG or ~/.kube/config)",
	}
}

// parseOutputFormat extracts and validates the output format from CLI flags.
// Returns the validated format or an error if the format is unknown.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(strings.ToLower(cmd.String("format")))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, valid formats are: %s",
			outFormat, strings.Join(serializer.SupportedFormats(), ", "))
	}
	return outFormat, nil
}

// loadGrammar loads the grammar named by --grammar, using --kubeconfig for
// ConfigMap locations.
func loadGrammar(ctx context.Context, cmd *cli.Command) (*grammar.Node, error) {
	location := cmd.String("grammar")
	if location == "" {
		return nil, fmt.Errorf("grammar location is required (flag --grammar or %s)", config.EnvGrammarFile)
	}
	root, err := grammar.Load(ctx, location, grammar.WithKubeconfig(cmd.String("kubeconfig")))
	if err != nil {
		return nil, err
	}
	return root, nil
}

// writeOutput renders data to the destination named by --output.
func writeOutput(ctx context.Context, format serializer.Format, output string, data any) error {
	ser, err := serializer.NewFileWriterOrStdout(format, output)
	if err != nil {
		return err
	}
	if c, ok := ser.(serializer.Closer); ok {
		defer func() {
			if err := c.Close(); err != nil {
				slog.Warn("failed to close serializer", "error", err)
			}
		}()
	}
	return ser.Serialize(ctx, data)
}
